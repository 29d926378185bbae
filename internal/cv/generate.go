package cv

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Layout constants, in millimetres on an A4 page.
const (
	wrapWidth    = 160.0
	rowHeight    = 10.0
	pageBreakY   = 250.0
	topMargin    = 30.0
	footerY      = 280.0
	drawnLeading = 5.0
	bodyFontSize = 12.0
)

var (
	colorTitle  = [3]int{40, 40, 40}
	colorMuted  = [3]int{100, 100, 100}
	colorBody   = [3]int{60, 60, 60}
	colorFooter = [3]int{150, 150, 150}
)

// Op is one positioned line of text.
type Op struct {
	Page  int
	X, Y  float64
	Size  float64
	Color [3]int
	Text  string
}

// Measurer returns the rendered width of text at a font size.
type Measurer func(text string, size float64) float64

// Layout positions every line of the résumé. The vertical cursor advances by
// fixed row heights and by the measured line count of wrapped text. A single
// page break is taken after the projects section when the cursor has passed
// pageBreakY.
func Layout(d Data, now time.Time, measure Measurer) []Op {
	var ops []Op
	page := 1
	size, color := bodyFontSize, colorBody
	text := func(x, y float64, s string) {
		ops = append(ops, Op{Page: page, X: x, Y: y, Size: size, Color: color, Text: s})
	}
	lines := func(x, y float64, ls []string) {
		for i, l := range ls {
			text(x, y+float64(i)*drawnLeading, l)
		}
	}
	wrapped := func(s string) []string {
		return wrap(func(t string) float64 { return measure(t, size) }, s, wrapWidth)
	}

	size, color = 24, colorTitle
	text(20, 30, d.PersonalInfo.Name)

	size, color = 12, colorMuted
	text(20, 40, d.PersonalInfo.Website)
	text(20, 50, "Email: "+d.PersonalInfo.Email)
	text(20, 60, "Mobile: "+d.PersonalInfo.Mobile)

	size, color = 16, colorTitle
	text(20, 80, "EDUCATION")

	size, color = 12, colorBody
	text(20, 95, d.Education.Institution)
	text(25, 105, fmt.Sprintf("• %s; GPA: %s", d.Education.Degree, d.Education.GPA))
	text(25, 115, d.Education.Duration)

	size, color = 16, colorTitle
	text(20, 135, "PROJECTS")

	size, color = 12, colorBody
	y := 150.0
	for _, p := range d.Projects {
		text(25, y, "• "+p.Title+":")
		desc := wrapped("  " + p.Description)
		lines(25, y+rowHeight, desc)
		n := float64(len(desc))
		text(25, y+rowHeight+n*rowHeight, "  "+p.GithubURL)
		y += 3*rowHeight + n*rowHeight
	}

	if y > pageBreakY {
		page++
		y = topMargin
	}

	size, color = 16, colorTitle
	text(20, y, "KNOWLEDGE")
	size, color = 12, colorBody
	y += 20
	for _, k := range d.Knowledge {
		ls := wrapped("• " + k)
		lines(25, y, ls)
		y += float64(len(ls))*rowHeight + 5
	}

	y += rowHeight
	size, color = 16, colorTitle
	text(20, y, "PROGRAMMING SKILLS")
	size, color = 12, colorBody
	y += 20
	text(25, y, "• Languages: "+strings.Join(d.ProgrammingSkills.Languages, ", "))
	text(25, y+15, "• Technologies: "+strings.Join(d.ProgrammingSkills.Technologies, ", "))

	size, color = 10, colorFooter
	text(20, footerY, "Generated on "+now.Format("1/2/2006"))
	return ops
}

// wrap breaks s on spaces so that no line measures more than limit. A single
// word over the limit gets a line of its own.
func wrap(width func(string) float64, s string, limit float64) []string {
	words := strings.Split(s, " ")
	var out []string
	line := words[0]
	for _, w := range words[1:] {
		cand := line + " " + w
		if width(cand) > limit && strings.TrimSpace(line) != "" {
			out = append(out, line)
			line = w
			continue
		}
		line = cand
	}
	return append(out, line)
}

// Generate lays out d and writes the PDF to w.
func Generate(w io.Writer, d Data, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	pdf.SetTitle(d.PersonalInfo.Name+" CV", true)
	pdf.SetFont("Helvetica", "", bodyFontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	measure := func(s string, size float64) float64 {
		pdf.SetFontSize(size)
		return pdf.GetStringWidth(tr(s))
	}
	ops := Layout(d, now, measure)

	page := 0
	for _, op := range ops {
		for page < op.Page {
			pdf.AddPage()
			page++
		}
		pdf.SetFontSize(op.Size)
		pdf.SetTextColor(op.Color[0], op.Color[1], op.Color[2])
		pdf.Text(op.X, op.Y, tr(op.Text))
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("layout cv: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write cv: %w", err)
	}
	return nil
}
