// Package view turns the session state into everything a template needs.
// Nothing here performs I/O; a model is recomputed from scratch after every
// state change.
package view

import (
	"github.com/Thucdzio/profilo/internal/catalog"
	"github.com/Thucdzio/profilo/internal/nav"
)

// Content names the main view template.
type Content string

const (
	ContentHome     Content = "home"
	ContentArchives Content = "archives"
	ContentAbout    Content = "about"
	ContentJourney  Content = "journey"
	ContentProject  Content = "project-detail"
)

// Sidebar names the right sidebar template.
type Sidebar string

const (
	SidebarHomeFilters    Sidebar = "home-filters"
	SidebarArchiveFilters Sidebar = "archives-filters"
	SidebarAboutTOC       Sidebar = "about-toc"
	SidebarJourneyTOC     Sidebar = "journey-toc"
	SidebarProjectTOC     Sidebar = "project-toc"
)

// Lookup resolves a project id.
type Lookup func(id string) (catalog.Project, bool)

// Selection is the pair of views to show plus the resolved project, if any.
type Selection struct {
	Content Content
	Sidebar Sidebar
	Project *catalog.Project
}

// Select maps the current page to its content and sidebar. Unknown pages
// render home. A detail page whose project does not resolve also renders home
// content, but the sidebar is chosen from the page alone and stays the project
// table of contents.
func Select(s nav.State, lookup Lookup) Selection {
	if lookup == nil {
		lookup = catalog.ByID
	}
	sel := Selection{Content: ContentHome, Sidebar: sidebarFor(s.Page)}
	switch s.Page {
	case nav.Archives:
		sel.Content = ContentArchives
	case nav.About:
		sel.Content = ContentAbout
	case nav.Journey:
		sel.Content = ContentJourney
	case nav.ProjectDetail:
		if s.ProjectID == "" {
			break
		}
		if p, ok := lookup(s.ProjectID); ok {
			sel.Content = ContentProject
			sel.Project = &p
		}
	}
	return sel
}

func sidebarFor(p nav.Page) Sidebar {
	switch p {
	case nav.ProjectDetail:
		return SidebarProjectTOC
	case nav.Journey:
		return SidebarJourneyTOC
	case nav.About:
		return SidebarAboutTOC
	case nav.Archives:
		return SidebarArchiveFilters
	}
	return SidebarHomeFilters
}
