// CLAUDE:SUMMARY Orchestrates probe → quality gate → vision fallback → personality → composition into one BrandDNA.
package dna

import (
	"context"
	"log/slog"

	"github.com/hueloom/branddna/capture"
	"github.com/hueloom/branddna/styleprobe"
	"github.com/hueloom/branddna/vision"
)

// ScreenshotCapturer renders pages to PNG. Satisfied by *capture.Browser.
type ScreenshotCapturer interface {
	CaptureScreenshot(ctx context.Context, url string, variant capture.Variant) ([]byte, error)
}

// VisionExtractor reads style from a screenshot. Satisfied by
// *vision.Extractor.
type VisionExtractor interface {
	ExtractFromScreenshot(ctx context.Context, png []byte) (*styleprobe.VisionStyle, error)
}

// PersonalityModel refines the deterministic personality baseline from page
// content. Satisfied by *vision.Extractor.
type PersonalityModel interface {
	AnalyzePersonality(ctx context.Context, digest string) (*vision.PersonalityEstimate, error)
}

// Config configures a Builder. Probe is required; the model-backed
// collaborators are optional and their absence just skips the refinement
// they provide.
type Config struct {
	Probe            *styleprobe.Probe
	Capturer         ScreenshotCapturer
	Vision           VisionExtractor
	PersonalityModel PersonalityModel
	Logger           *slog.Logger
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Builder assembles BrandDNA profiles.
type Builder struct {
	cfg     Config
	fetcher *styleprobe.Fetcher
	logger  *slog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(cfg Config) *Builder {
	cfg.defaults()
	return &Builder{
		cfg:     cfg,
		fetcher: styleprobe.NewFetcher(styleprobe.WithFetcherLogger(cfg.Logger)),
		logger:  cfg.Logger,
	}
}

// ExtractBrandDNA builds the full identity profile for a URL. Total: every
// failure along the way degrades to defaults and is logged, so the caller
// always receives a usable profile with its quality score attached.
func (b *Builder) ExtractBrandDNA(ctx context.Context, url string) *BrandDNA {
	rec := b.cfg.Probe.ExtractFromURL(ctx, url)

	usedVision := false
	if styleprobe.AssessStyleQuality(rec) < styleprobe.StyleQualityThreshold {
		if merged := b.visionFallback(ctx, url, rec); merged != nil {
			rec = merged
			usedVision = true
		}
	}

	digest := b.contentDigest(ctx, url)

	rel := AnalyzeColorRelationships(rec.Colors)
	pers := InferPersonality(rec, rel)
	industry := DetectIndustry(digest)
	var modelMood string
	if b.cfg.PersonalityModel != nil && digest != "" {
		if est, err := b.cfg.PersonalityModel.AnalyzePersonality(ctx, digest); err != nil {
			b.logger.Warn("dna: personality model skipped", "url", url, "error", err)
		} else {
			pers = blendPersonality(pers, est)
			if est.Industry != "" {
				industry = est.Industry
			}
			modelMood = est.Mood
		}
	}

	comp := MapPersonalityToComposition(pers, rel)
	emotional := BuildEmotionalProfile(pers, comp)
	if modelMood != "" {
		emotional.Mood = modelMood
	}

	return &BrandDNA{
		Style:              *rec,
		Personality:        pers,
		EmotionalProfile:   emotional,
		ColorRelationships: rel,
		Composition:        comp,
		Layout:             CompositionToLayout(comp),
		Industry:           industry,
		BrandName:          rec.Metadata.SiteName,
		Metadata: Metadata{
			SourceURL:         url,
			ExtractionQuality: AssessExtractionQuality(rec),
			UsedVision:        usedVision,
		},
	}
}

// visionFallback captures one screenshot and merges the model's reading
// over the HTML record. Returns nil when the fallback is unavailable or
// failed; the HTML record then stands as-is.
func (b *Builder) visionFallback(ctx context.Context, url string, rec *styleprobe.StyleRecord) *styleprobe.StyleRecord {
	if b.cfg.Capturer == nil || b.cfg.Vision == nil {
		b.logger.Debug("dna: vision fallback unavailable", "url", url)
		return nil
	}

	png, err := b.cfg.Capturer.CaptureScreenshot(ctx, url, capture.VariantViewport)
	if err != nil {
		b.logger.Warn("dna: screenshot failed, keeping html record", "url", url, "error", err)
		return nil
	}
	vs, err := b.cfg.Vision.ExtractFromScreenshot(ctx, png)
	if err != nil {
		b.logger.Warn("dna: vision extraction failed, keeping html record", "url", url, "error", err)
		return nil
	}
	return styleprobe.Merge(rec, vs)
}

func (b *Builder) contentDigest(ctx context.Context, url string) string {
	pageHTML, err := b.fetcher.Page(ctx, url)
	if err != nil {
		b.logger.Debug("dna: digest fetch failed", "url", url, "error", err)
		return ""
	}
	return BuildDigest(pageHTML)
}

// blendPersonality averages the model estimate with the deterministic
// baseline so one noisy model reply cannot swing an axis to its extreme.
func blendPersonality(base Personality, est *vision.PersonalityEstimate) Personality {
	out := Personality{
		SeriousPlayful:   (base.SeriousPlayful + est.SeriousPlayful) / 2,
		LuxuryAccessible: (base.LuxuryAccessible + est.LuxuryAccessible) / 2,
		ModernClassic:    (base.ModernClassic + est.ModernClassic) / 2,
		BoldSubtle:       (base.BoldSubtle + est.BoldSubtle) / 2,
		WarmCool:         (base.WarmCool + est.WarmCool) / 2,
	}
	out.Clamp()
	return out
}
