package catalog

import (
	"sort"
	"strconv"
)

// YearCount is a year pick-list entry.
type YearCount struct {
	Year  string
	Count int
}

// YearCounts counts projects per year, newest year first.
func YearCounts(projects []Project) []YearCount {
	idx := map[string]int{}
	var out []YearCount
	for _, p := range projects {
		y := p.Year()
		if i, ok := idx[y]; ok {
			out[i].Count++
			continue
		}
		idx[y] = len(out)
		out = append(out, YearCount{Year: y, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return yearNum(out[i].Year) > yearNum(out[j].Year)
	})
	return out
}

func yearNum(y string) int {
	n, _ := strconv.Atoi(y)
	return n
}

// Categories returns the distinct categories in first-seen order.
func Categories(projects []Project) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range projects {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Tags returns the distinct tags in first-seen order.
func Tags(projects []Project) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range projects {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// Highlighted tags get a heavier badge in the tech stack section.
var Highlighted = []string{"Docker", "Java", "React", "DevOps", "CI/CD"}

// TechSummary backs the "Tech Stack" section of the about page.
type TechSummary struct {
	Tags       []string
	Total      int
	Projects   int
	MostUsed   string
	highlights map[string]bool
}

// IsHighlighted reports whether tag is one of Highlighted.
func (s TechSummary) IsHighlighted(tag string) bool {
	return s.highlights[tag]
}

// TechStack summarises the tags used across projects.
func TechStack(projects []Project) TechSummary {
	tags := Tags(projects)

	counts := map[string]int{}
	for _, p := range projects {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	// ties go to the tag seen first
	most, best := "N/A", 0
	for _, t := range tags {
		if counts[t] > best {
			most, best = t, counts[t]
		}
	}

	sorted := append([]string(nil), tags...)
	sort.Strings(sorted)

	hl := make(map[string]bool, len(Highlighted))
	for _, t := range Highlighted {
		hl[t] = true
	}
	return TechSummary{
		Tags:       sorted,
		Total:      len(tags),
		Projects:   len(projects),
		MostUsed:   most,
		highlights: hl,
	}
}
