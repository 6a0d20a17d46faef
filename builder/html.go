package builder

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractHTMLLabelText reduces an HTML-bracketed label (`label=<<b>hi</b>>`)
// to its plain text content. The reference html.rs module lays an HTML
// label's <table>/<tr>/<td> grid out as its own nested record-like shape;
// that grid layout is out of scope here (see DESIGN.md) - this extracts
// only the readable text, which is enough to label a box/circle/connector
// the way a plain string label would.
func extractHTMLLabelText(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}

	var fields []string
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, s *goquery.Selection) {
			if goquery.NodeName(s) != "#text" {
				walk(s)
				return
			}
			if text := strings.TrimSpace(s.Text()); text != "" {
				fields = append(fields, text)
			}
		})
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	walk(body)

	if len(fields) == 0 {
		return strings.TrimSpace(raw)
	}
	return strings.Join(fields, " ")
}
