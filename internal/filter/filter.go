// Package filter implements the multi-facet project filter.
//
// A project passes when every facet passes. A facet with no selections passes
// everything; otherwise the project must match at least one selected value of
// that facet. For tags that means "any selected tag is on the project".
package filter

import (
	"errors"
	"fmt"

	"github.com/Thucdzio/profilo/internal/catalog"
)

// Facet names one filter dimension.
type Facet string

const (
	Year     Facet = "year"
	Category Facet = "category"
	Tag      Facet = "tag"
)

// ErrUnknownFacet is returned by ParseFacet for names other than the three facets.
var ErrUnknownFacet = errors.New("unknown facet")

// ParseFacet maps a wire name to a Facet.
func ParseFacet(s string) (Facet, error) {
	switch f := Facet(s); f {
	case Year, Category, Tag:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFacet, s)
}

// State is the set of active selections. Each slice has unique members in
// insertion order. The zero value has no active filters.
type State struct {
	Years      []string
	Categories []string
	Tags       []string
}

// HasActive reports whether any facet has a selection.
func (s State) HasActive() bool {
	return len(s.Years) > 0 || len(s.Categories) > 0 || len(s.Tags) > 0
}

// Contains reports whether value is selected in facet.
func (s State) Contains(f Facet, value string) bool {
	return contains(s.values(f), value)
}

func (s State) values(f Facet) []string {
	switch f {
	case Year:
		return s.Years
	case Category:
		return s.Categories
	case Tag:
		return s.Tags
	}
	return nil
}

// Toggle returns a copy of s with value flipped in facet. Unknown facets leave
// the state unchanged.
func (s State) Toggle(f Facet, value string) State {
	switch f {
	case Year:
		s.Years = Toggle(s.Years, value)
	case Category:
		s.Categories = Toggle(s.Categories, value)
	case Tag:
		s.Tags = Toggle(s.Tags, value)
	}
	return s
}

// Clear returns the empty state.
func (s State) Clear() State {
	return State{}
}

// Toggle removes value from set if present and appends it otherwise. The input
// is never modified. Removing the last member yields nil so that a double
// toggle on an empty set restores the zero value exactly.
func Toggle(set []string, value string) []string {
	if !contains(set, value) {
		out := make([]string, 0, len(set)+1)
		out = append(out, set...)
		return append(out, value)
	}
	var out []string
	for _, v := range set {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// Apply returns the projects that pass s, in their original order.
func Apply(projects []catalog.Project, s State) []catalog.Project {
	out := make([]catalog.Project, 0, len(projects))
	for _, p := range projects {
		if Match(p, s) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether a single project passes every facet of s.
func Match(p catalog.Project, s State) bool {
	if len(s.Years) > 0 && !contains(s.Years, p.Year()) {
		return false
	}
	if len(s.Categories) > 0 && !contains(s.Categories, p.Category) {
		return false
	}
	if len(s.Tags) > 0 {
		hit := false
		for _, t := range s.Tags {
			if p.HasTag(t) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
