// CLAUDE:SUMMARY Chrome lifecycle for screenshot capture: lazy launch, stealth pages, crash-safe relaunch.
// Package capture drives a headless Chrome instance to take page
// screenshots and discover secondary brand pages. It is the acquisition
// side of the vision fallback: pages whose served HTML carries no style
// signal get rendered here before being read by the vision model.
package capture

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// Config configures a Browser.
type Config struct {
	// RemoteURL is the WebSocket URL of an external Chrome instance.
	// Empty = launch a local Chrome via launcher.
	RemoteURL string

	// NavTimeout bounds navigation plus load wait per page. Default: 30s.
	NavTimeout time.Duration

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.NavTimeout <= 0 {
		c.NavTimeout = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Browser manages the Chrome connection. The zero-cost constructor does not
// launch anything: Chrome starts on the first page request and is relaunched
// transparently if the connection died in between.
type Browser struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	browser *rod.Browser
	lnch    *launcher.Launcher
	closed  bool
}

// NewBrowser creates a Browser. Call Close when done.
func NewBrowser(cfg Config) *Browser {
	cfg.defaults()
	return &Browser{cfg: cfg, logger: cfg.Logger}
}

// Close shuts down Chrome if it was launched.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return b.cleanupLocked()
}

func (b *Browser) cleanupLocked() error {
	if b.browser != nil {
		b.browser.Close()
		b.browser = nil
	}
	if b.lnch != nil {
		b.lnch.Cleanup()
		b.lnch = nil
	}
	return nil
}

// handle returns a live rod browser, launching or relaunching as needed.
func (b *Browser) handle() (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, fmt.Errorf("capture: browser is closed")
	}
	if b.browser != nil {
		return b.browser, nil
	}

	wsURL := b.cfg.RemoteURL
	if wsURL == "" {
		l := launcher.New().
			Headless(true).
			Set("disable-blink-features", "AutomationControlled")
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("capture: launch chrome: %w", err)
		}
		wsURL = u
		b.lnch = l
		b.logger.Info("capture: launched local chrome", "url", wsURL)
	} else {
		b.logger.Info("capture: connecting to remote chrome", "url", wsURL)
	}

	rb := rod.New().ControlURL(wsURL)
	if err := rb.Connect(); err != nil {
		b.cleanupLocked()
		return nil, fmt.Errorf("capture: connect: %w", err)
	}
	if err := rb.IgnoreCertErrors(true); err != nil {
		b.logger.Warn("capture: ignore cert errors failed", "error", err)
	}

	b.browser = rb
	return rb, nil
}

// dropHandle forgets a dead browser handle so the next call relaunches.
func (b *Browser) dropHandle() {
	b.mu.Lock()
	b.cleanupLocked()
	b.mu.Unlock()
}

// openPage creates a stealth page, navigates it, and waits for load within
// the configured timeout. The caller owns the returned page and must close
// it.
func (b *Browser) openPage(ctx context.Context, pageURL string) (*rod.Page, error) {
	rb, err := b.handle()
	if err != nil {
		return nil, err
	}

	page, err := stealth.Page(rb)
	if err != nil {
		b.dropHandle()
		return nil, fmt.Errorf("capture: create page: %w", err)
	}

	navCtx, cancel := context.WithTimeout(ctx, b.cfg.NavTimeout)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		page.Close()
		return nil, fmt.Errorf("capture: navigate %s: %w", pageURL, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		b.logger.Warn("capture: wait load timeout", "url", pageURL, "error", err)
	}
	return page, nil
}
