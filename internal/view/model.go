package view

import (
	"fmt"
	"html/template"
	"log"

	"github.com/Thucdzio/profilo/internal/catalog"
	"github.com/Thucdzio/profilo/internal/filter"
	"github.com/Thucdzio/profilo/internal/nav"
	"github.com/Thucdzio/profilo/internal/profile"
)

const (
	// featuredCount is how many projects the home page lists without filters.
	featuredCount = 3
	// cardTagCount is how many tags a card shows before "+N more".
	cardTagCount = 4
)

// Input is the full state a page is rendered from.
type Input struct {
	Nav     nav.State
	Filters filter.State
	Catalog []catalog.Project
	Lookup  Lookup
}

// Card is a project as shown in lists. Href is the address the card opens,
// the same one an HTMX open pushes.
type Card struct {
	catalog.Project
	Href      string
	Year      string
	Badge     string
	ShownTags []string
	MoreTags  int
}

// Option is one entry of a facet pick-list.
type Option struct {
	Facet    filter.Facet
	Value    string
	Count    int
	Selected bool
}

// Chip is an active filter badge.
type Chip struct {
	Facet filter.Facet
	Value string
	Label string
}

// YearGroup is an archives section.
type YearGroup struct {
	Year     string
	Projects []Card
}

// Facets are the sidebar pick-lists, derived from the whole catalog.
type Facets struct {
	Years      []Option
	Categories []Option
	Tags       []Option
}

// Detail is the project detail view.
type Detail struct {
	Card
	DescriptionHTML template.HTML
	BackLabel       string
	DemoImage       bool
	DemoLink        bool
}

// Profile is the static copy shared by every page.
type Profile struct {
	Name         string
	Tagline      string
	PhotoURL     string
	HomeIntro    string
	Socials      []profile.Social
	Introduction []string
	WhatIDo      []profile.Card
	Goals        []profile.GoalGroup
	FunFacts     []profile.Fact
	Education    []profile.Milestone
	License      string
	Footer       []string
}

// Model is everything the templates read.
type Model struct {
	Selection

	Title   string
	Nav     nav.State
	URL     string
	Menu    []nav.RenderedItem
	Profile Profile

	Filters          filter.State
	HasActiveFilters bool
	Chips            []Chip
	Facets           Facets
	Filtered         []Card
	Showing          string

	FeaturedHeading string
	Featured        []Card
	Activity        []string
	Archive         []YearGroup

	Detail *Detail
	Tech   catalog.TechSummary
	TOC    []profile.Section
}

// Build recomputes the page model for in.
func Build(in Input) Model {
	projects := in.Catalog
	if projects == nil {
		projects = catalog.Projects
	}
	filtered := filter.Apply(projects, in.Filters)
	active := in.Filters.HasActive()

	m := Model{
		Selection:        Select(in.Nav, in.Lookup),
		Title:            profile.Name + " - Portfolio",
		Nav:              in.Nav,
		URL:              in.Nav.URL(),
		Menu:             nav.Build(in.Nav),
		Profile:          siteProfile(),
		Filters:          in.Filters,
		HasActiveFilters: active,
		Chips:            chips(in.Filters),
		Facets:           facets(projects, in.Filters),
		Filtered:         cards(filtered, in.Nav),
		Showing:          showing(len(filtered)),
		Tech:             catalog.TechStack(projects),
	}

	switch m.Content {
	case ContentHome:
		m.FeaturedHeading = "Featured Projects"
		featured := filtered
		if active {
			m.FeaturedHeading = "Filtered Projects"
		} else if len(featured) > featuredCount {
			featured = featured[:featuredCount]
		}
		m.Featured = cards(featured, in.Nav)
		if !active {
			m.Activity = activity(filtered)
		}
	case ContentArchives:
		m.Archive = groupByYear(filtered, in.Nav)
	case ContentProject:
		m.Detail = detail(*m.Project, in.Nav)
		m.Title = m.Project.Title + " - " + profile.Name
	}

	switch m.Sidebar {
	case SidebarAboutTOC:
		m.TOC = profile.AboutSections
	case SidebarJourneyTOC:
		m.TOC = profile.JourneySections
	case SidebarProjectTOC:
		m.TOC = profile.ProjectSections
	}
	return m
}

func siteProfile() Profile {
	return Profile{
		Name:         profile.Name,
		Tagline:      profile.Tagline,
		PhotoURL:     profile.PhotoURL,
		HomeIntro:    profile.HomeIntro,
		Socials:      profile.Socials,
		Introduction: profile.Introduction,
		WhatIDo:      profile.WhatIDo,
		Goals:        profile.Goals,
		FunFacts:     profile.FunFacts,
		Education:    profile.Education,
		License:      profile.License,
		Footer:       profile.Footer,
	}
}

func card(p catalog.Project, from nav.State) Card {
	c := Card{
		Project:   p,
		Href:      from.OpenProject(p.ID).URL(),
		Year:      p.Year(),
		Badge:     BadgeClass(p.Category),
		ShownTags: p.Tags,
	}
	if len(p.Tags) > cardTagCount {
		c.ShownTags = p.Tags[:cardTagCount]
		c.MoreTags = len(p.Tags) - cardTagCount
	}
	return c
}

func activity(ps []catalog.Project) []string {
	out := make([]string, 0, len(profile.Activity)+1)
	if len(ps) > 0 {
		out = append(out, "Published new project: "+ps[0].Title)
	}
	return append(out, profile.Activity...)
}

func cards(ps []catalog.Project, from nav.State) []Card {
	out := make([]Card, 0, len(ps))
	for _, p := range ps {
		out = append(out, card(p, from))
	}
	return out
}

func detail(p catalog.Project, at nav.State) *Detail {
	desc, err := RenderMarkdown(p.FullDescription)
	if err != nil {
		log.Printf("project %s: %v", p.ID, err)
		desc = template.HTML(template.HTMLEscapeString(p.FullDescription))
	}
	img := p.DemoIsImage()
	return &Detail{
		Card:            card(p, nav.State{Page: at.Previous}),
		DescriptionHTML: desc,
		BackLabel:       "Back to " + nav.DisplayName(at.Previous),
		DemoImage:       img,
		DemoLink:        p.DemoURL != "" && !img,
	}
}

func chips(s filter.State) []Chip {
	var out []Chip
	for _, y := range s.Years {
		out = append(out, Chip{Facet: filter.Year, Value: y, Label: "Year: " + y})
	}
	for _, c := range s.Categories {
		out = append(out, Chip{Facet: filter.Category, Value: c, Label: c})
	}
	for _, t := range s.Tags {
		out = append(out, Chip{Facet: filter.Tag, Value: t, Label: "#" + t})
	}
	return out
}

func facets(projects []catalog.Project, s filter.State) Facets {
	var f Facets
	for _, yc := range catalog.YearCounts(projects) {
		f.Years = append(f.Years, Option{
			Facet: filter.Year, Value: yc.Year, Count: yc.Count,
			Selected: s.Contains(filter.Year, yc.Year),
		})
	}
	for _, c := range catalog.Categories(projects) {
		f.Categories = append(f.Categories, Option{
			Facet: filter.Category, Value: c,
			Selected: s.Contains(filter.Category, c),
		})
	}
	for _, t := range catalog.Tags(projects) {
		f.Tags = append(f.Tags, Option{
			Facet: filter.Tag, Value: t,
			Selected: s.Contains(filter.Tag, t),
		})
	}
	return f
}

func groupByYear(ps []catalog.Project, from nav.State) []YearGroup {
	var groups []YearGroup
	for _, yc := range catalog.YearCounts(ps) {
		g := YearGroup{Year: yc.Year}
		for _, p := range ps {
			if p.Year() == yc.Year {
				g.Projects = append(g.Projects, card(p, from))
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func showing(n int) string {
	if n == 1 {
		return "Showing 1 project"
	}
	return fmt.Sprintf("Showing %d projects", n)
}

// BadgeClass is the CSS class of a category badge.
func BadgeClass(category string) string {
	switch category {
	case "Personal Project":
		return "badge-green"
	case "MLOps":
		return "badge-blue"
	case "Backend":
		return "badge-purple"
	case "Frontend":
		return "badge-orange"
	case "Mobile Application":
		return "badge-pink"
	case "Web Application":
		return "badge-cyan"
	case "Desktop Application":
		return "badge-indigo"
	case "Game Development":
		return "badge-red"
	}
	return "badge-gray"
}
