// Package cv renders the downloadable résumé. Render is deterministic: the
// same experience list and content produce byte-identical output, so the
// document can be regenerated and compared freely.
package cv

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stefanramac/portfolio/internal/portfolio/domain"
)

// Page geometry in millimetres (A4 portrait).
const (
	pageMargin   = 15.0
	bottomMargin = 20.0
	headerHeight = 50.0
	contentTop   = 60.0
)

// Palette matching the site's styling.
var (
	colorPrimary  = [3]int{30, 58, 138}
	colorDarkBlue = [3]int{17, 34, 64}
	colorText     = [3]int{50, 50, 50}
	colorBody     = [3]int{60, 60, 60}
)

// Render lays out the résumé document for the given experience list and
// fixed content. Section order is fixed: header, summary, education,
// nationality, languages, experience entries, certifications. Callers that
// fail to fetch experiences pass an empty slice and still get a complete
// static document.
func Render(experiences []domain.Experience, content Content) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")

	// Pinned so identical input yields identical bytes.
	doc.SetCreationDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	doc.SetTitle(content.Name, false)
	doc.SetAutoPageBreak(false, bottomMargin)

	// The total page count is unknown until layout completes; the alias is
	// substituted in a final pass over every page.
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		pageW, pageH := doc.GetPageSize()
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(120, 120, 120)
		doc.SetXY(0, pageH-12)
		footer := fmt.Sprintf("%s - Page %d of {nb}", content.Name, doc.PageNo())
		doc.CellFormat(pageW, 5, footer, "", 0, "C", false, 0, "")
	})

	r := &renderer{doc: doc}
	r.pageW, r.pageH = doc.GetPageSize()

	doc.AddPage()
	r.drawHeader(content)
	r.y = contentTop

	if content.Summary != "" {
		r.sectionHeader("PROFESSIONAL SUMMARY", 60)
		r.drawSummary(content.Summary)
	}
	if len(content.Education) > 0 {
		r.sectionHeader("EDUCATION", 30)
		r.drawEducation(content.Education)
	}
	if content.Nationality != "" {
		r.sectionHeader("NATIONALITY", 35)
		r.drawNationality(content.Nationality)
	}
	if len(content.Languages) > 0 {
		r.sectionHeader("LANGUAGES", 30)
		r.drawLanguages(content.Languages)
	}
	if len(experiences) > 0 {
		r.sectionHeader("PROFESSIONAL EXPERIENCE", 65)
		r.y++
		for _, e := range experiences {
			r.drawExperience(e)
		}
	}
	if len(content.Certifications) > 0 {
		r.sectionHeader("CERTIFICATIONS", 40)
		r.y++
		r.drawCertifications(content.Certifications)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render cv: %w", err)
	}
	return buf.Bytes(), nil
}

// renderer threads the paginator state (current page via doc, vertical
// cursor) through the section drawing functions.
type renderer struct {
	doc          *fpdf.Fpdf
	pageW, pageH float64
	y            float64
}

// ensure starts a new page when h vertical millimetres would not fit above
// the bottom margin, resetting the cursor to the top margin.
func (r *renderer) ensure(h float64) {
	if r.y+h > r.pageH-bottomMargin {
		r.doc.AddPage()
		r.y = pageMargin
	}
}

func (r *renderer) contentWidth() float64 {
	return r.pageW - 2*pageMargin
}

func (r *renderer) wrap(text string, maxWidth float64) []string {
	return wrapText(r.doc.GetStringWidth, text, maxWidth)
}

// sectionHeader draws a section title with its underline. The space check
// reserves the header plus one content line so a title never sits alone at
// the bottom of a page.
func (r *renderer) sectionHeader(title string, underlineWidth float64) {
	r.ensure(14)

	r.doc.SetFont("Helvetica", "B", 12)
	r.doc.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	r.doc.Text(pageMargin, r.y, title)

	r.doc.SetDrawColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	r.doc.SetLineWidth(0.5)
	r.doc.Line(pageMargin, r.y+1, pageMargin+underlineWidth, r.y+1)

	r.y += 7
}

// drawHeader paints the page-1 band: name, title and the 2x2 contact grid on
// a filled rectangle. Not repeated on later pages.
func (r *renderer) drawHeader(content Content) {
	r.doc.SetFillColor(colorDarkBlue[0], colorDarkBlue[1], colorDarkBlue[2])
	r.doc.Rect(0, 0, r.pageW, headerHeight, "F")

	r.doc.SetFont("Helvetica", "B", 24)
	r.doc.SetTextColor(255, 255, 255)
	r.doc.Text(pageMargin, 20, content.Name)

	r.doc.SetFont("Helvetica", "", 14)
	r.doc.Text(pageMargin, 28, content.Title)

	r.doc.SetFont("Helvetica", "", 9)
	r.doc.SetTextColor(220, 220, 220)
	for i, contact := range content.Contacts {
		x := pageMargin + float64(i%2)*75
		y := 38 + float64(i/2)*5
		r.doc.Text(x, y, contact.Label)
		if contact.URL != "" {
			r.doc.LinkString(x, y-3.5, r.doc.GetStringWidth(contact.Label), 4.5, contact.URL)
		}
	}
}

func (r *renderer) drawSummary(summary string) {
	r.doc.SetFont("Helvetica", "", 9)
	r.doc.SetTextColor(colorText[0], colorText[1], colorText[2])
	for _, line := range r.wrap(summary, r.contentWidth()) {
		r.ensure(5)
		r.doc.Text(pageMargin, r.y, line)
		r.y += 4
	}
	r.y += 4
}

func (r *renderer) drawEducation(entries []EducationEntry) {
	for _, entry := range entries {
		r.ensure(12)

		r.doc.SetFont("Helvetica", "B", 10)
		r.doc.SetTextColor(colorText[0], colorText[1], colorText[2])
		r.doc.Text(pageMargin, r.y, entry.Degree)
		r.y += 5

		r.doc.SetFont("Helvetica", "", 9)
		r.doc.Text(pageMargin, r.y, entry.School)
		r.y += 10
	}
}

func (r *renderer) drawNationality(nationality string) {
	r.doc.SetFont("Helvetica", "", 9)
	r.doc.SetTextColor(colorText[0], colorText[1], colorText[2])
	r.ensure(5)
	r.doc.Text(pageMargin, r.y, nationality)
	r.y += 10
}

func (r *renderer) drawLanguages(languages []string) {
	r.doc.SetFont("Helvetica", "", 9)
	r.doc.SetTextColor(colorText[0], colorText[1], colorText[2])
	for _, lang := range languages {
		r.ensure(5)
		r.doc.Text(pageMargin, r.y, lang)
		r.y += 5
	}
	r.y += 5
}

// drawExperience lays out one record as a fixed sub-block sequence: period,
// title, company, description paragraphs, skills line. The leading ensure
// keeps the three header lines and the start of the description together; a
// long description may still split across pages line by line.
func (r *renderer) drawExperience(e domain.Experience) {
	r.ensure(40)

	r.doc.SetFont("Helvetica", "B", 8)
	r.doc.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	r.doc.Text(pageMargin, r.y, formatPeriod(e))
	r.y += 4

	r.doc.SetFont("Helvetica", "B", 10)
	r.doc.SetTextColor(colorText[0], colorText[1], colorText[2])
	r.doc.Text(pageMargin, r.y, e.Position)
	r.y += 5

	r.doc.SetFont("Helvetica", "", 9)
	r.doc.Text(pageMargin, r.y, e.Company)
	r.y += 6

	if paragraphs := splitParagraphs(e.Description); len(paragraphs) > 0 {
		r.doc.SetFont("Helvetica", "", 8)
		r.doc.SetTextColor(colorBody[0], colorBody[1], colorBody[2])
		for i, paragraph := range paragraphs {
			for _, line := range r.wrap(paragraph, r.contentWidth()) {
				r.ensure(5)
				r.doc.Text(pageMargin, r.y, line)
				r.y += 2.8
			}
			if i < len(paragraphs)-1 {
				r.y += 1.5
			}
		}
		r.y += 3
	}

	if len(e.Skills) > 0 {
		r.ensure(8)
		r.doc.SetFont("Helvetica", "B", 7)
		r.doc.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
		r.doc.Text(pageMargin, r.y, "Skills: ")

		r.doc.SetFont("Helvetica", "", 7)
		for i, line := range r.wrap(strings.Join(e.Skills, ", "), r.contentWidth()-15) {
			if i > 0 {
				r.ensure(4)
			}
			r.doc.Text(pageMargin+15, r.y, line)
			r.y += 3
		}
		r.y += 8
	} else {
		r.y += 6
	}
}

func (r *renderer) drawCertifications(certifications []string) {
	r.doc.SetFont("Helvetica", "", 9)
	r.doc.SetTextColor(colorText[0], colorText[1], colorText[2])
	for _, cert := range certifications {
		r.ensure(6)
		r.doc.Text(pageMargin+2, r.y, "- "+cert)
		r.y += 5
	}
}

// formatPeriod renders the record's timespan, e.g. "August 2021 - Present".
func formatPeriod(e domain.Experience) string {
	end := "Present"
	if !e.IsPresent && e.EndDate != "" {
		end = formatYearMonth(e.EndDate)
	}
	return formatYearMonth(e.StartDate) + " - " + end
}

// formatYearMonth turns "2021-08" into "August 2021". Anything that does not
// parse is passed through untouched.
func formatYearMonth(s string) string {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("January 2006")
}
