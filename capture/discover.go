// CLAUDE:SUMMARY Same-host link discovery ranking brand-relevant pages for multi-page capture.
package capture

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	discoverTimeout  = 10 * time.Second
	maxDiscoverBytes = 2 << 20
	defaultMaxPages  = 5
)

// Page is a discovered internal page, ranked by brand relevance.
type Page struct {
	URL      string `json:"url"`
	Label    string `json:"label"`
	Priority int    `json:"priority"`
}

// Keyword ranks for internal links. Brand-defining pages first; utility
// pages are excluded outright.
var (
	pageKeywords = map[string]int{
		"about":     90,
		"product":   85,
		"pricing":   85,
		"features":  80,
		"services":  80,
		"work":      75,
		"portfolio": 75,
		"team":      70,
		"blog":      50,
		"contact":   40,
	}

	skipKeywords = []string{
		"privacy", "terms", "legal", "cookie", "login", "signin", "sign-in",
		"signup", "sign-up", "register", "cart", "checkout", "account",
	}
)

// DiscoverPages fetches the site's landing page over plain HTTP and returns
// up to maxPages same-host links ranked by brand relevance. The homepage
// itself is not included. A non-positive maxPages falls back to the default
// cap of 5.
func DiscoverPages(ctx context.Context, siteURL string, maxPages int) ([]Page, error) {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("capture: parse site url: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, discoverTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, siteURL, nil)
	if err != nil {
		return nil, fmt.Errorf("capture: discover request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("capture: discover fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("capture: discover fetch: status %d", resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxDiscoverBytes))
	if err != nil {
		return nil, fmt.Errorf("capture: parse landing page: %w", err)
	}

	pages := rankLinks(doc, base)
	if len(pages) > maxPages {
		pages = pages[:maxPages]
	}
	return pages, nil
}

// rankLinks walks anchors, keeps same-host non-utility links, and orders
// them by keyword priority then URL for determinism.
func rankLinks(doc *html.Node, base *url.URL) []Page {
	seen := make(map[string]bool)
	var pages []Page

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			if p, ok := evalLink(n, base); ok && !seen[p.URL] {
				seen[p.URL] = true
				pages = append(pages, p)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Priority != pages[j].Priority {
			return pages[i].Priority > pages[j].Priority
		}
		return pages[i].URL < pages[j].URL
	})
	return pages
}

func evalLink(n *html.Node, base *url.URL) (Page, bool) {
	var href string
	for _, a := range n.Attr {
		if a.Key == "href" {
			href = a.Val
			break
		}
	}
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
		return Page{}, false
	}

	u, err := base.Parse(href)
	if err != nil || u.Host != base.Host {
		return Page{}, false
	}
	u.Fragment = ""
	if u.Path == "" || u.Path == "/" {
		return Page{}, false
	}

	path := strings.ToLower(u.Path)
	for _, kw := range skipKeywords {
		if strings.Contains(path, kw) {
			return Page{}, false
		}
	}

	priority := 10
	for kw, p := range pageKeywords {
		if strings.Contains(path, kw) && p > priority {
			priority = p
		}
	}

	return Page{URL: u.String(), Label: linkText(n), Priority: priority}, true
}

// linkText collects the anchor's visible text.
func linkText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			walk(gc)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
