// CLAUDE:SUMMARY Orchestrates fetch → scan → classify → assemble into one StyleRecord; degrades to defaults, never errors.
// Package styleprobe extracts a best-effort visual style record from a live
// web page: colors, typography, spacing, and effect flags.
//
// The extraction is deliberately regex-driven signal scraping, not a CSS
// engine: declarations are scored by the context they appear in, and the
// highest-signal candidates win. Absence of signal is communicated through
// the quality score, never through an error — every entry point returns a
// usable record.
//
// Usage:
//
//	probe := styleprobe.New(styleprobe.Config{})
//	rec := probe.ExtractFromURL(ctx, "https://example.com")
//	q := styleprobe.AssessStyleQuality(rec)
package styleprobe

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Config configures a Probe.
type Config struct {
	// UserAgent overrides the default browser-like User-Agent.
	UserAgent string

	// Logger for degradation events.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Probe is the HTML style extraction engine.
type Probe struct {
	cfg     Config
	fetcher *Fetcher
	logger  *slog.Logger
}

// New creates a Probe with the given configuration.
func New(cfg Config) *Probe {
	cfg.defaults()
	opts := []FetcherOption{WithFetcherLogger(cfg.Logger)}
	if cfg.UserAgent != "" {
		opts = append(opts, WithUserAgent(cfg.UserAgent))
	}
	return &Probe{
		cfg:     cfg,
		fetcher: NewFetcher(opts...),
		logger:  cfg.Logger,
	}
}

// ExtractFromURL fetches a page plus its linked stylesheets and extracts a
// StyleRecord. It never fails: any transport problem degrades to the
// default record, with the degradation logged for quality auditing.
func (p *Probe) ExtractFromURL(ctx context.Context, pageURL string) *StyleRecord {
	pageHTML, err := p.fetcher.Page(ctx, pageURL)
	if err != nil {
		p.logger.Warn("styleprobe: page fetch failed, using defaults", "url", pageURL, "error", err)
		return DefaultRecord()
	}

	var webFonts []string
	var sheetCSS string
	var md Metadata

	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		p.logger.Warn("styleprobe: parse failed, scanning raw HTML only", "url", pageURL, "error", err)
	} else {
		base, _ := url.Parse(pageURL)
		webFonts = GoogleFontFamilies(doc)
		if links := StylesheetLinks(doc, base); len(links) > 0 {
			sheetCSS = p.fetcher.Stylesheets(ctx, links)
		}
		md = ExtractMetadata(doc, base)
	}

	rec := p.ExtractFromHTML(pageHTML+"\n"+sheetCSS, webFonts)
	rec.Metadata = md
	return rec
}

// ExtractFromHTML runs the three extractors against combined HTML+CSS text
// and assembles the record. Pure with respect to I/O; safe for concurrent
// use since all scoring state is call-local.
func (p *Probe) ExtractFromHTML(source string, webFonts []string) *StyleRecord {
	cands := ScanColors(source)
	palette := TopPalette(cands)

	rec := &StyleRecord{
		Colors:     assembleColors(palette, cands),
		Typography: ExtractTypography(source, webFonts),
		Spacing:    ExtractSpacing(source),
		Effects:    ExtractEffects(source),
	}

	if len(palette) == 0 {
		p.logger.Debug("styleprobe: no color signal found")
	}
	return rec
}

// assembleColors fills the named color slots from the classified palette.
// Primary/secondary/accent prefer accent-classified colors, then fall back
// through raw palette order; background/text come from their own classified
// lists, then the universal defaults.
func assembleColors(palette []string, cands map[string]*ColorCandidate) ColorSet {
	var accents, bgs, texts []string
	for _, hex := range palette {
		switch ClassifyColor(hex, cands[hex]) {
		case RoleAccent:
			accents = append(accents, hex)
		case RoleBackground:
			bgs = append(bgs, hex)
		case RoleText:
			texts = append(texts, hex)
		}
	}

	cs := ColorSet{Palette: palette}

	// Ranked brand slots: accent-classified first, then remaining palette
	// entries in score order, then defaults.
	brand := append([]string{}, accents...)
	for _, hex := range palette {
		if !contains(brand, hex) {
			brand = append(brand, hex)
		}
	}
	for _, d := range []string{Defaults.Primary, Defaults.Secondary, Defaults.Accent} {
		if !contains(brand, d) {
			brand = append(brand, d)
		}
	}

	cs.Primary = brand[0]
	cs.Secondary = brand[1]
	cs.Accent = brand[2]

	cs.Background = Defaults.Background
	if len(bgs) > 0 {
		cs.Background = bgs[0]
	}
	cs.Text = Defaults.Text
	if len(texts) > 0 {
		cs.Text = texts[0]
	}

	if len(cs.Palette) == 0 {
		cs.Palette = Defaults.Colors()
	}
	return cs
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
