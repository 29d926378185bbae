// Package nav maps the page/project navigation state to and from the query
// string shown in the address bar.
package nav

import (
	"net/url"
	"strings"
)

// Page identifies a content page. Values outside the known set are kept as-is
// and rendered as home.
type Page string

const (
	Home          Page = "home"
	Archives      Page = "archives"
	About         Page = "about"
	Journey       Page = "journey"
	ProjectDetail Page = "project-detail"
)

// Query parameter names.
const (
	ParamPage    = "page"
	ParamProject = "project"
	ParamFrom    = "from"
)

// State is which page is shown and where the detail view returns to.
// ProjectID is only set while Page is ProjectDetail.
type State struct {
	Page      Page
	ProjectID string
	Previous  Page
}

// Initial is the state of a bare "/" request.
var Initial = State{Page: Home, Previous: Home}

// Decode builds the navigation state from query parameters. A non-empty
// project parameter wins over page.
func Decode(q url.Values) State {
	if id := q.Get(ParamProject); id != "" {
		from := Page(q.Get(ParamFrom))
		if from == "" {
			from = Home
		}
		return State{Page: ProjectDetail, ProjectID: id, Previous: from}
	}
	p := Page(q.Get(ParamPage))
	if p == "" {
		p = Home
	}
	return State{Page: p, Previous: p}
}

// DecodeURL decodes the query of a raw URL. Unparseable input yields Initial.
func DecodeURL(raw string) State {
	u, err := url.Parse(raw)
	if err != nil {
		return Initial
	}
	return Decode(u.Query())
}

// Encode writes s as a query string without the leading "?". The page
// parameter is omitted for home, so "page=home" is accepted by Decode but never
// produced here.
func (s State) Encode() string {
	if s.ProjectID != "" {
		var b strings.Builder
		b.WriteString(ParamProject + "=" + url.QueryEscape(s.ProjectID))
		if s.Previous != "" {
			b.WriteString("&" + ParamFrom + "=" + url.QueryEscape(string(s.Previous)))
		}
		return b.String()
	}
	if s.Page != Home && s.Page != "" {
		return ParamPage + "=" + url.QueryEscape(string(s.Page))
	}
	return ""
}

// URL is the address-bar form of s: "/" or "/?<query>".
func (s State) URL() string {
	if q := s.Encode(); q != "" {
		return "/?" + q
	}
	return "/"
}

// NavigateTo switches to page and drops any selected project.
func (s State) NavigateTo(p Page) State {
	return State{Page: p, Previous: p}
}

// OpenProject shows the detail view of id, remembering the current page.
func (s State) OpenProject(id string) State {
	return State{Page: ProjectDetail, ProjectID: id, Previous: s.Page}
}

// CloseProject returns to the page the detail view was opened from.
func (s State) CloseProject() State {
	return State{Page: s.Previous, Previous: s.Previous}
}

// DisplayName is the human label used on back buttons.
func DisplayName(p Page) string {
	switch p {
	case Home:
		return "Home"
	case Archives:
		return "Archives"
	case About:
		return "About Me"
	case Journey:
		return "Journey"
	}
	return "Home"
}
