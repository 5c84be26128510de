package html_parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RewriteURLs makes every image src and anchor href in the document
// absolute. Root-relative paths are prefixed with the page's scheme and
// host; other relative paths resolve against the page's directory (the
// page URL with its trailing segment stripped). Anchors that were already
// absolute additionally get target and rel attributes so the opened page
// cannot control the opener; rewritten same-site links stay plain.
func RewriteURLs(doc *goquery.Document, pageURL string) {
	root := siteRoot(pageURL)
	dir := parentDir(pageURL)

	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		s.SetAttr("src", resolveRef(src, root, dir))
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		external := isAbsolute(href)
		s.SetAttr("href", resolveRef(href, root, dir))

		if external {
			s.SetAttr("target", "_blank")
			s.SetAttr("rel", "noopener noreferrer")
		}
	})
}

func isAbsolute(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func resolveRef(ref string, root string, dir string) string {
	switch {
	case isAbsolute(ref):
		return ref
	case strings.HasPrefix(ref, "/"):
		return root + ref
	default:
		return dir + "/" + ref
	}
}

// siteRoot returns the scheme and host portion of the page URL.
func siteRoot(pageURL string) string {
	parts := strings.SplitN(pageURL, "/", 4)
	if len(parts) >= 3 {
		return strings.Join(parts[:3], "/")
	}
	return pageURL
}

// parentDir strips the trailing path segment from the page URL. A URL with
// no path keeps only its scheme and host.
func parentDir(pageURL string) string {
	root := siteRoot(pageURL)
	idx := strings.LastIndex(pageURL, "/")
	if idx <= len(root)-1 {
		return root
	}
	return pageURL[:idx]
}
