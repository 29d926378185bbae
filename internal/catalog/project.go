// Package catalog holds the fixed list of portfolio projects and the lookups
// derived from it.
package catalog

import (
	"regexp"
	"strings"
	"time"
)

// Project is one portfolio entry. Values are never mutated after init.
type Project struct {
	ID              string
	Title           string
	Category        string
	Description     string
	FullDescription string
	Date            string
	ReadTime        string
	Tags            []string
	Technologies    []string
	Features        []string
	Results         []string
	GithubURL       string
	DemoURL         string
}

const dateLayout = "Jan 2, 2006"

var yearPattern = regexp.MustCompile(`\d{4}`)

// Year returns the four-digit calendar year of the project date.
func (p Project) Year() string {
	if t, err := time.Parse(dateLayout, strings.TrimSpace(p.Date)); err == nil {
		return t.Format("2006")
	}
	return yearPattern.FindString(p.Date)
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".bmp", ".ico"}

// DemoIsImage reports whether the demo URL points at an image rather than a
// page. The check is a plain substring match on the lower-cased URL, so query
// strings like "demo.png?raw=true" still count.
func (p Project) DemoIsImage() bool {
	if p.DemoURL == "" {
		return false
	}
	u := strings.ToLower(p.DemoURL)
	for _, ext := range imageExtensions {
		if strings.Contains(u, ext) {
			return true
		}
	}
	return false
}

// HasTag reports whether tag is one of the project's tags.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ByID returns the first project with the given id.
func ByID(id string) (Project, bool) {
	for _, p := range Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
