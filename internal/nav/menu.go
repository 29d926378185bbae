package nav

// Item is a left sidebar navigation entry.
type Item struct {
	Page  Page
	Label string
	Icon  string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Page   Page
	Label  string
	Icon   string
	Href   string
	Active bool
}

// Main is the sidebar navigation in display order.
var Main = []Item{
	{Page: Home, Label: "Home", Icon: "home"},
	{Page: Archives, Label: "Archives", Icon: "archive"},
	{Page: About, Label: "About Me", Icon: "user"},
	{Page: Journey, Label: "Journey", Icon: "map-pin"},
}

// Build renders the navigation items with active state for s.
func Build(s State) []RenderedItem {
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Page:   it.Page,
			Label:  it.Label,
			Icon:   it.Icon,
			Href:   State{}.NavigateTo(it.Page).URL(),
			Active: IsActive(it.Page, s),
		})
	}
	return items
}

// IsActive reports whether p should be highlighted: it is the current page,
// or the detail view was opened from it.
func IsActive(p Page, s State) bool {
	if s.Page == p {
		return true
	}
	return s.Page == ProjectDetail && s.Previous == p
}
