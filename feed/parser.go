package feed

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"news-fetcher/domain"
)

// Parser normalizes RSS 2.0 and Atom documents into domain.FeedItem values.
// It is a pure adapter over gofeed: no I/O, input is the raw XML text.
type Parser struct {
	parser *gofeed.Parser
	logger *slog.Logger
	now    func() time.Time
}

// NewParser creates a new feed parser.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{
		parser: gofeed.NewParser(),
		logger: logger,
		now:    time.Now,
	}
}

// Parse converts raw feed XML into normalized items in document order.
// Items missing a title or link are dropped silently; that is not an error.
// sourceURL is only used to synthesize a GUID for items without one.
func (p *Parser) Parse(xmlText, sourceURL string) ([]domain.FeedItem, error) {
	parsed, err := p.parser.ParseString(xmlText)
	if err != nil {
		fragment, ok := p.parseFragment(xmlText)
		if !ok {
			return nil, fmt.Errorf("parse feed: %w", err)
		}
		parsed = fragment
	}

	isAtom := parsed.FeedType == "atom"

	items := make([]domain.FeedItem, 0, len(parsed.Items))
	for _, raw := range parsed.Items {
		item, ok := p.convert(raw, sourceURL, isAtom)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// parseFragment reparses bare <item> or <entry> documents by wrapping them in
// a minimal feed envelope. Some sources hand back channel-less excerpts that
// gofeed cannot type-detect on its own.
func (p *Parser) parseFragment(xmlText string) (*gofeed.Feed, bool) {
	body := strings.TrimSpace(xmlText)
	if strings.HasPrefix(body, "<?xml") {
		if i := strings.Index(body, "?>"); i >= 0 {
			body = strings.TrimSpace(body[i+2:])
		}
	}

	var wrapped string
	switch {
	case strings.HasPrefix(body, "<item"):
		wrapped = `<rss version="2.0"><channel>` + body + `</channel></rss>`
	case strings.HasPrefix(body, "<entry"):
		wrapped = `<feed xmlns="http://www.w3.org/2005/Atom">` + body + `</feed>`
	default:
		return nil, false
	}

	parsed, err := p.parser.ParseString(wrapped)
	if err != nil {
		return nil, false
	}

	return parsed, true
}

func (p *Parser) convert(raw *gofeed.Item, sourceURL string, isAtom bool) (domain.FeedItem, bool) {
	title := strings.TrimSpace(raw.Title)
	link := strings.TrimSpace(raw.Link)
	if title == "" || link == "" {
		return domain.FeedItem{}, false
	}

	// GUID fallback chain: native id, then link, then a synthesized id.
	guid := strings.TrimSpace(raw.GUID)
	if guid == "" {
		guid = link
	}
	if guid == "" {
		guid = domain.SynthesizeGUID(sourceURL, title)
	}

	// RSS: description then content:encoded. Atom: summary then content.
	// gofeed maps both dialects onto Description/Content in that order.
	body := raw.Description
	if body == "" {
		body = raw.Content
	}

	var summary *string
	if s := SanitizeSummary(body); s != "" {
		summary = &s
	}

	return domain.FeedItem{
		Title:       title,
		Link:        link,
		GUID:        guid,
		Summary:     summary,
		ImageURL:    p.extractImage(raw, body, isAtom),
		PublishedAt: p.publishedAt(raw, isAtom),
	}, true
}

// publishedAt resolves the item timestamp per dialect. RSS prefers pubDate
// (with dc:date behind it), Atom prefers updated over published. Unparsable or
// absent timestamps default to the current time.
func (p *Parser) publishedAt(raw *gofeed.Item, isAtom bool) time.Time {
	if isAtom {
		if raw.UpdatedParsed != nil {
			return *raw.UpdatedParsed
		}
		if raw.PublishedParsed != nil {
			return *raw.PublishedParsed
		}
	} else {
		if raw.PublishedParsed != nil {
			return *raw.PublishedParsed
		}
		if raw.UpdatedParsed != nil {
			return *raw.UpdatedParsed
		}
	}

	return p.now()
}

// extractImage applies the image fallback chain: media:content url, then
// media:thumbnail url, then (RSS only) enclosure url, then (RSS only) the
// first <img src> inside the HTML body. The order is load-bearing.
func (p *Parser) extractImage(raw *gofeed.Item, bodyHTML string, isAtom bool) *string {
	if u := mediaExtensionURL(raw, "content"); u != "" {
		return &u
	}
	if u := mediaExtensionURL(raw, "thumbnail"); u != "" {
		return &u
	}

	if isAtom {
		return nil
	}

	for _, enc := range raw.Enclosures {
		if enc != nil && enc.URL != "" {
			u := enc.URL
			return &u
		}
	}

	if src, ok := FirstImageSrc(bodyHTML); ok {
		return &src
	}

	return nil
}

// mediaExtensionURL returns the url attribute of the first media:<name>
// element on the item, if any.
func mediaExtensionURL(raw *gofeed.Item, name string) string {
	media, ok := raw.Extensions["media"]
	if !ok {
		return ""
	}

	for _, ext := range media[name] {
		if u := ext.Attrs["url"]; u != "" {
			return u
		}
	}

	return ""
}
