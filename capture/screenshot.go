// CLAUDE:SUMMARY Full-page, viewport, and element PNG capture with per-page budgets and partial tolerance.
package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod/lib/proto"
)

const multiCaptureBudget = 90 * time.Second

// Variant selects what part of the page a screenshot covers.
type Variant string

const (
	VariantViewport Variant = "viewport"
	VariantFullPage Variant = "fullpage"
)

// CaptureScreenshot renders the URL and returns a PNG of the requested
// variant.
func (b *Browser) CaptureScreenshot(ctx context.Context, pageURL string, variant Variant) ([]byte, error) {
	page, err := b.openPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	// Let late CSS and web fonts settle before the shot.
	page.WaitIdle(2 * time.Second)

	png, err := page.Context(ctx).Screenshot(variant == VariantFullPage, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("capture: screenshot %s: %w", pageURL, err)
	}
	return png, nil
}

// CaptureMultipleScreenshots captures several URLs sequentially under one
// shared time budget. Failures are logged and skipped: the result maps each
// URL that succeeded to its PNG, and an empty map is possible.
func (b *Browser) CaptureMultipleScreenshots(ctx context.Context, urls []string, variant Variant) map[string][]byte {
	ctx, cancel := context.WithTimeout(ctx, multiCaptureBudget)
	defer cancel()

	out := make(map[string][]byte, len(urls))
	for _, u := range urls {
		if ctx.Err() != nil {
			b.logger.Warn("capture: multi-capture budget exhausted", "remaining", len(urls)-len(out))
			break
		}
		png, err := b.CaptureScreenshot(ctx, u, variant)
		if err != nil {
			b.logger.Warn("capture: page skipped", "url", u, "error", err)
			continue
		}
		out[u] = png
	}
	return out
}

// CaptureElements screenshots individual elements by CSS selector. Missing
// selectors are skipped; the result maps each found selector to its PNG.
func (b *Browser) CaptureElements(ctx context.Context, pageURL string, selectors []string) (map[string][]byte, error) {
	page, err := b.openPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page.WaitIdle(2 * time.Second)

	out := make(map[string][]byte, len(selectors))
	for _, sel := range selectors {
		el, err := page.Context(ctx).Element(sel)
		if err != nil {
			b.logger.Debug("capture: selector not found", "url", pageURL, "selector", sel)
			continue
		}
		png, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
		if err != nil {
			b.logger.Debug("capture: element screenshot failed", "selector", sel, "error", err)
			continue
		}
		out[sel] = png
	}
	return out, nil
}
