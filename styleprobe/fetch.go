// CLAUDE:SUMMARY HTTP acquisition: page fetch with browser UA, bounded parallel stylesheet fetches, Google Fonts detection.
package styleprobe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/sync/errgroup"
)

const (
	pageTimeout   = 15 * time.Second
	sheetTimeout  = 5 * time.Second
	maxSheets     = 5
	maxSheetBytes = 500 << 10 // 500 KB per stylesheet
	maxPageBytes  = 5 << 20

	browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// Fetcher performs the HTTP legs of style extraction.
type Fetcher struct {
	client *http.Client
	ua     string
	logger *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithClient sets a custom HTTP client.
func WithClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) { f.client = c }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) { f.ua = ua }
}

// WithFetcherLogger sets a custom logger.
func WithFetcherLogger(l *slog.Logger) FetcherOption {
	return func(f *Fetcher) { f.logger = l }
}

// NewFetcher creates a Fetcher with browser-like defaults.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client: &http.Client{Timeout: pageTimeout},
		ua:     browserUA,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Page GETs the page HTML with a browser-like User-Agent.
func (f *Fetcher) Page(ctx context.Context, pageURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, pageTimeout)
	defer cancel()

	body, err := f.get(ctx, pageURL, maxPageBytes)
	if err != nil {
		return "", fmt.Errorf("styleprobe: fetch page: %w", err)
	}
	return body, nil
}

// Stylesheets fetches up to maxSheets linked stylesheets concurrently and
// returns their concatenated text. Individual failures are logged and
// dropped: a missing stylesheet is missing signal, not an error.
func (f *Fetcher) Stylesheets(ctx context.Context, hrefs []string) string {
	if len(hrefs) > maxSheets {
		hrefs = hrefs[:maxSheets]
	}

	bodies := make([]string, len(hrefs))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for i, href := range hrefs {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, sheetTimeout)
			defer cancel()

			body, err := f.get(fctx, href, maxSheetBytes)
			if err != nil {
				f.logger.Debug("styleprobe: stylesheet skipped", "url", href, "error", err)
				return nil
			}
			mu.Lock()
			bodies[i] = body
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	var sb strings.Builder
	for _, b := range bodies {
		if b == "" {
			continue
		}
		sb.WriteString(b)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (f *Fetcher) get(ctx context.Context, rawURL string, cap int64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", f.ua)
	req.Header.Set("Accept", "text/html,text/css,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, cap))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}

// StylesheetLinks collects external stylesheet URLs from <link> tags,
// resolved against base. Google Fonts CSS is excluded — its families are
// picked up by GoogleFontFamilies instead of being scanned as style text.
func StylesheetLinks(doc *html.Node, base *url.URL) []string {
	var out []string
	walkNodes(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Link {
			return
		}
		if !strings.Contains(strings.ToLower(attrValue(n, "rel")), "stylesheet") {
			return
		}
		href := attrValue(n, "href")
		if href == "" {
			return
		}
		u, err := base.Parse(href)
		if err != nil {
			return
		}
		if strings.Contains(u.Host, "fonts.googleapis.com") {
			return
		}
		out = append(out, u.String())
	})
	return out
}

// GoogleFontFamilies extracts web-font family names from Google Fonts
// <link> hrefs, in document order. Handles both the classic
// css?family=A+B:400,700|C form and the css2?family=A+B:wght@400 form.
func GoogleFontFamilies(doc *html.Node) []string {
	var out []string
	seen := make(map[string]bool)

	walkNodes(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Link {
			return
		}
		href := attrValue(n, "href")
		if !strings.Contains(href, "fonts.googleapis.com") {
			return
		}
		u, err := url.Parse(href)
		if err != nil {
			return
		}
		for _, fam := range u.Query()["family"] {
			for _, part := range strings.Split(fam, "|") {
				name := part
				if idx := strings.IndexByte(name, ':'); idx >= 0 {
					name = name[:idx]
				}
				name = strings.TrimSpace(strings.ReplaceAll(name, "+", " "))
				if name == "" || seen[name] {
					continue
				}
				seen[name] = true
				out = append(out, name)
			}
		}
	})
	return out
}

func walkNodes(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkNodes(c, fn)
	}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
