package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thucdzio/profilo/internal/catalog"
	"github.com/Thucdzio/profilo/internal/filter"
	"github.com/Thucdzio/profilo/internal/nav"
)

func TestSelectTable(t *testing.T) {
	cases := []struct {
		state   nav.State
		content Content
		sidebar Sidebar
	}{
		{nav.Initial, ContentHome, SidebarHomeFilters},
		{nav.Initial.NavigateTo(nav.Archives), ContentArchives, SidebarArchiveFilters},
		{nav.Initial.NavigateTo(nav.About), ContentAbout, SidebarAboutTOC},
		{nav.Initial.NavigateTo(nav.Journey), ContentJourney, SidebarJourneyTOC},
		{nav.Initial.OpenProject("qairline"), ContentProject, SidebarProjectTOC},
		{nav.State{Page: "bogus", Previous: "bogus"}, ContentHome, SidebarHomeFilters},
	}
	for _, tc := range cases {
		sel := Select(tc.state, nil)
		assert.Equal(t, tc.content, sel.Content, "%+v", tc.state)
		assert.Equal(t, tc.sidebar, sel.Sidebar, "%+v", tc.state)
	}
}

func TestSelectMissingProjectFallsBackToHome(t *testing.T) {
	sel := Select(nav.Initial.OpenProject("does-not-exist"), nil)
	assert.Equal(t, ContentHome, sel.Content)
	assert.Nil(t, sel.Project)
	// the sidebar does not repeat the lookup
	assert.Equal(t, SidebarProjectTOC, sel.Sidebar)

	sel = Select(nav.State{Page: nav.ProjectDetail, Previous: nav.ProjectDetail}, nil)
	assert.Equal(t, ContentHome, sel.Content)
}

func TestSelectUsesLookup(t *testing.T) {
	fake := func(id string) (catalog.Project, bool) {
		return catalog.Project{ID: id, Title: "Fake"}, true
	}
	sel := Select(nav.Initial.OpenProject("anything"), fake)
	require.NotNil(t, sel.Project)
	assert.Equal(t, "Fake", sel.Project.Title)
}

func TestBuildHomeFeatured(t *testing.T) {
	m := Build(Input{Nav: nav.Initial})
	assert.Equal(t, "Featured Projects", m.FeaturedHeading)
	require.Len(t, m.Featured, 3)
	assert.Equal(t, "singape-app", m.Featured[0].ID)
	assert.False(t, m.HasActiveFilters)
	assert.Empty(t, m.Chips)
	assert.Equal(t, "Le Tien Thuc - Portfolio", m.Title)
}

func TestBuildHomeActivity(t *testing.T) {
	m := Build(Input{Nav: nav.Initial})
	require.NotEmpty(t, m.Activity)
	assert.Equal(t, "Published new project: SingApe – Next-Gen Mobile Music Streaming App", m.Activity[0])

	m = Build(Input{Nav: nav.Initial, Filters: filter.State{}.Toggle(filter.Year, "2024")})
	assert.Empty(t, m.Activity)
}

func TestCardTagOverflow(t *testing.T) {
	m := Build(Input{Nav: nav.Initial})
	qairline := m.Featured[1]
	require.Equal(t, "qairline", qairline.ID)
	assert.Equal(t, []string{"Web", "Flight Booking", "Docker", "Java"}, qairline.ShownTags)
	assert.Equal(t, 4, qairline.MoreTags)

	singape := m.Featured[0]
	assert.Len(t, singape.ShownTags, 4)
	assert.Zero(t, singape.MoreTags)
}

func TestBuildHomeFilteredShowsAll(t *testing.T) {
	fs := filter.State{}.Toggle(filter.Tag, "Web").Toggle(filter.Tag, "Game")
	m := Build(Input{Nav: nav.Initial, Filters: fs})
	assert.Equal(t, "Filtered Projects", m.FeaturedHeading)
	assert.Len(t, m.Featured, 4)
	assert.Equal(t, "Showing 4 projects", m.Showing)
	require.Len(t, m.Chips, 2)
	assert.Equal(t, "#Web", m.Chips[0].Label)
}

func TestBuildShowingSingular(t *testing.T) {
	fs := filter.State{}.Toggle(filter.Category, "Machine Learning")
	m := Build(Input{Nav: nav.Initial, Filters: fs})
	assert.Equal(t, "Showing 1 project", m.Showing)

	none := filter.State{}.Toggle(filter.Year, "1999")
	assert.Equal(t, "Showing 0 projects", Build(Input{Nav: nav.Initial, Filters: none}).Showing)
}

func TestBuildArchivesGroups(t *testing.T) {
	m := Build(Input{Nav: nav.Initial.NavigateTo(nav.Archives)})
	require.Len(t, m.Archive, 3)
	assert.Equal(t, "2025", m.Archive[0].Year)
	assert.Len(t, m.Archive[0].Projects, 3)
	assert.Equal(t, "2023", m.Archive[2].Year)

	fs := filter.State{}.Toggle(filter.Year, "2024")
	m = Build(Input{Nav: nav.Initial.NavigateTo(nav.Archives), Filters: fs})
	require.Len(t, m.Archive, 1)
	assert.Equal(t, "qairline", m.Archive[0].Projects[0].ID)
}

func TestBuildFacetsMarkSelection(t *testing.T) {
	fs := filter.State{}.Toggle(filter.Year, "2023").Toggle(filter.Category, "Game Development")
	m := Build(Input{Nav: nav.Initial, Filters: fs})

	// pick-lists always come from the whole catalog
	assert.Len(t, m.Facets.Years, 3)
	for _, o := range m.Facets.Years {
		assert.Equal(t, o.Value == "2023", o.Selected, o.Value)
	}
	for _, o := range m.Facets.Categories {
		assert.Equal(t, o.Value == "Game Development", o.Selected, o.Value)
	}
	assert.Len(t, m.Facets.Tags, len(catalog.Tags(catalog.Projects)))
}

func TestBuildDetail(t *testing.T) {
	st := nav.Initial.NavigateTo(nav.Archives).OpenProject("qairline")
	m := Build(Input{Nav: st})
	require.NotNil(t, m.Detail)
	assert.Equal(t, "Back to Archives", m.Detail.BackLabel)
	assert.True(t, m.Detail.DemoImage)
	assert.False(t, m.Detail.DemoLink)
	assert.Contains(t, string(m.Detail.DescriptionHTML), "<code>qairline-api</code>")
	assert.Equal(t, "badge-cyan", m.Detail.Badge)
	assert.True(t, strings.HasPrefix(m.Title, "Q Airline"))
	assert.Len(t, m.TOC, 4)
	assert.Equal(t, "/?project=qairline&from=archives", m.URL)

	for _, it := range m.Menu {
		assert.Equal(t, it.Page == nav.Archives, it.Active, it.Label)
	}
}

func TestCardHrefRemembersOrigin(t *testing.T) {
	m := Build(Input{Nav: nav.Initial.NavigateTo(nav.Archives)})
	require.NotEmpty(t, m.Archive)
	for _, g := range m.Archive {
		for _, c := range g.Projects {
			assert.Equal(t, "/?project="+c.ID+"&from=archives", c.Href)
			assert.Equal(t, nav.Archives, nav.DecodeURL(c.Href).Previous)
		}
	}

	home := Build(Input{Nav: nav.Initial})
	require.NotEmpty(t, home.Featured)
	assert.Equal(t, nav.Initial.OpenProject(home.Featured[0].ID).URL(), home.Featured[0].Href)

	detail := Build(Input{Nav: nav.Initial.NavigateTo(nav.Archives).OpenProject("qairline")})
	require.NotNil(t, detail.Detail)
	assert.Equal(t, "/?project=qairline&from=archives", detail.Detail.Href)
}

func TestBuildDetailLinkDemo(t *testing.T) {
	m := Build(Input{Nav: nav.Initial.NavigateTo(nav.About).OpenProject("english-learning-app")})
	require.NotNil(t, m.Detail)
	assert.True(t, m.Detail.DemoLink)
	assert.Equal(t, "Back to About Me", m.Detail.BackLabel)
}

func TestBuildMissingProject(t *testing.T) {
	m := Build(Input{Nav: nav.Initial.OpenProject("does-not-exist")})
	assert.Equal(t, ContentHome, m.Content)
	assert.Nil(t, m.Detail)
	assert.NotEmpty(t, m.Featured)
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	out, err := RenderMarkdown("hello <script>alert(1)</script> **world**")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.Contains(t, string(out), "<strong>world</strong>")
}

func TestBadgeClass(t *testing.T) {
	assert.Equal(t, "badge-red", BadgeClass("Game Development"))
	assert.Equal(t, "badge-gray", BadgeClass("Machine Learning"))
}
