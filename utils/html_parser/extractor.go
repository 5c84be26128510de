// Package html_parser isolates readable article content from arbitrary
// third-party HTML. It combines go-readability for main-content detection,
// goquery for structural cleanup and URL rewriting, and bluemonday for
// sanitization.
package html_parser

import (
	"fmt"
	"strings"

	"skim/domain"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// noiseSelector matches page chrome and ad containers that never belong to
// the article body.
const noiseSelector = "script, style, iframe, nav, footer, .ad, .advertisement, .banner"

// ExtractReadable isolates the main article content of a fetched page.
// pageURL is the URL the document was fetched from; relative links and
// image sources in the result are resolved against it. The returned HTML
// is a sanitized fragment safe to hand to clients.
func ExtractReadable(raw string, pageURL string) (*domain.ExtractedContent, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("empty document")
	}

	title := extractTitle(trimmed)

	// Readability pass: isolate the article body from surrounding chrome.
	content := ""
	if article, err := readability.FromReader(strings.NewReader(trimmed), nil); err == nil {
		var htmlBuf strings.Builder
		if renderErr := article.RenderHTML(&htmlBuf); renderErr == nil {
			content = strings.TrimSpace(htmlBuf.String())
		}
	}

	// Fallback: clean the full page when readability finds nothing.
	if content == "" {
		content = trimmed
	}

	cleaned, err := cleanFragment(content, pageURL)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(StripTags(cleaned)) == "" {
		return nil, fmt.Errorf("no readable content found")
	}

	return &domain.ExtractedContent{Title: title, HTML: cleaned}, nil
}

// cleanFragment strips noise elements, rewrites URLs to absolute form and
// sanitizes the result.
func cleanFragment(fragment string, pageURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	doc.Find(noiseSelector).Remove()

	RewriteURLs(doc, pageURL)

	// goquery wraps fragments in html/body; unwrap before sanitizing.
	inner, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}

	return sanitizePolicy().Sanitize(inner), nil
}

// sanitizePolicy preserves structural article HTML while removing scripts,
// event handlers and anything else bluemonday considers unsafe. The target
// and rel attributes survive so rewritten anchors keep their new-tab
// safety attributes.
func sanitizePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	// Structural elements
	p.AllowElements("article", "section", "div", "p", "span", "br")

	// Headers
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")

	// Lists, quotes, code
	p.AllowElements("ul", "ol", "li", "blockquote", "pre", "code")

	// Text formatting
	p.AllowElements("b", "strong", "i", "em", "u", "s", "del", "mark", "sub", "sup")

	// Tables and figures
	p.AllowElements("table", "thead", "tbody", "tr", "th", "td", "figure", "figcaption")

	p.AllowStandardURLs()
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")

	return p
}

// extractTitle resolves the page title, preferring Open Graph metadata over
// the document title element.
func extractTitle(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}

	if ogTitle, ok := doc.Find("meta[property='og:title']").Attr("content"); ok {
		if title := strings.TrimSpace(ogTitle); title != "" {
			return title
		}
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}
