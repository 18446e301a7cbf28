package feed

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// summaryLimit is the maximum summary length in characters. Longer summaries
// are cut mid-word and suffixed with an ellipsis.
const summaryLimit = 500

var stripPolicy = bluemonday.StrictPolicy()

// SanitizeSummary runs the summary text pipeline in order: decode XML/HTML
// entities (named plus numeric character references), strip all tags, trim,
// then truncate to summaryLimit characters with a trailing "...".
func SanitizeSummary(raw string) string {
	if raw == "" {
		return ""
	}

	decoded := html.UnescapeString(raw)
	stripped := stripPolicy.Sanitize(decoded)
	// bluemonday re-escapes the surviving text content; undo that so the
	// stored summary is plain text.
	text := strings.TrimSpace(html.UnescapeString(stripped))

	return truncate(text, summaryLimit)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}

// FirstImageSrc returns the src attribute of the first <img> element in the
// given HTML fragment.
func FirstImageSrc(htmlText string) (string, bool) {
	if htmlText == "" {
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return "", false
	}

	src, ok := doc.Find("img[src]").First().Attr("src")
	if !ok || src == "" {
		return "", false
	}

	return src, true
}
