package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	strippedSelector = "script, style, nav, footer, header"
	contentSelector  = "p, h1, h2, h3, h4, h5, h6, li, td, th, div"
)

// NormalizeHTML returns the visible text of an HTML document. Block-level text
// is collected in document order, trimmed and joined by a blank line. Nested
// blocks contribute their text once per enclosing block.
func NormalizeHTML(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	doc.Find(strippedSelector).Remove()

	var parts []string
	doc.Find("body").Find(contentSelector).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n\n")
}
