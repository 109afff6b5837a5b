// CLAUDE:SUMMARY Three fixed derivations: brand-faithful, harmonious remix, disruptive contrast.
package themegen

import (
	"github.com/google/uuid"

	"github.com/hueloom/branddna/dna"
	"github.com/hueloom/branddna/hue"
	"github.com/hueloom/branddna/styleprobe"
)

// Per-slot confidence scores: how faithful each variation stays to the
// source brand.
const (
	confidenceBrand      = 92
	confidenceRemix      = 78
	confidenceDisruptive = 65
)

// Generate produces exactly three theme variations from one BrandDNA. The
// derivations carry no randomness beyond the ids: categories, colors, and
// layout are pure functions of the DNA.
func Generate(d *dna.BrandDNA) []TemporaryTheme {
	return []TemporaryTheme{
		buildBrandFaithful(d),
		buildHarmoniousRemix(d),
		buildDisruptiveContrast(d),
	}
}

// buildBrandFaithful translates the DNA 1:1: colors unchanged, sizes and
// decoration read straight off the composition.
func buildBrandFaithful(d *dna.BrandDNA) TemporaryTheme {
	cs := d.Style.Colors

	decoration := DecorationNone
	if d.Composition.Rhythm == dna.RhythmSyncopated {
		decoration = DecorationGlitch
	}

	return TemporaryTheme{
		ID:       uuid.NewString(),
		Label:    "Brand Faithful",
		Category: CategoryBrand,
		Colors: ThemeColors{
			Background: cs.Background,
			Text:       cs.Text,
			Accent:     pickAccent(cs),
			Surface:    surfaceFor(cs.Background),
		},
		Typography: ThemeTypography{
			HeadingFont:   d.Style.Typography.HeadingFont,
			BodyFont:      d.Style.Typography.BodyFont,
			HeadingSize:   headingSize(d.Composition.Dynamics),
			HeadingWeight: d.Style.Typography.HeadingWeight,
			BodyWeight:    d.Style.Typography.BodyWeight,
		},
		Layout: ThemeLayout{
			BorderRadius: d.Layout.BorderRadius,
			Padding:      d.Layout.Padding,
			Alignment:    d.Layout.Alignment,
		},
		Effects:     d.Style.Effects,
		Decoration:  decoration,
		Pattern:     DesignPattern{Name: inferPattern(d.Personality), Confidence: confidenceBrand},
		Composition: d.Composition,
	}
}

// buildHarmoniousRemix shifts the composition one step and re-derives the
// treatment from the shifted rules, not the original.
func buildHarmoniousRemix(d *dna.BrandDNA) TemporaryTheme {
	cs := d.Style.Colors

	shifted := d.Composition
	shifted.Rhythm = nextRhythm(d.Composition.Rhythm)
	shifted.Dynamics = flipDynamics(d.Composition.Dynamics)
	layout := dna.CompositionToLayout(shifted)

	bg := cs.Background
	if !hue.IsDark(cs.Background) && cs.Secondary != "" {
		bg = cs.Secondary
	}

	accent := cs.Accent
	if accent == "" || accent == cs.Primary {
		accent = cs.Secondary
	}

	return TemporaryTheme{
		ID:       uuid.NewString(),
		Label:    "Harmonious Remix",
		Category: CategoryRemix,
		Colors: ThemeColors{
			Background: bg,
			Text:       hue.ForegroundFor(bg),
			Accent:     accent,
			Surface:    surfaceFor(bg),
		},
		Typography: ThemeTypography{
			HeadingFont:   d.Style.Typography.HeadingFont,
			BodyFont:      d.Style.Typography.BodyFont,
			HeadingSize:   headingSize(shifted.Dynamics),
			HeadingWeight: d.Style.Typography.HeadingWeight,
			BodyWeight:    d.Style.Typography.BodyWeight,
		},
		Layout: ThemeLayout{
			BorderRadius: layout.BorderRadius,
			Padding:      layout.Padding,
			Alignment:    "center",
		},
		Effects:     d.Style.Effects,
		Decoration:  DecorationNone,
		Pattern:     DesignPattern{Name: inferPattern(d.Personality), Confidence: confidenceRemix},
		Composition: shifted,
	}
}

// buildDisruptiveContrast forces a loud composition and inverts the
// palette along one of three branches.
func buildDisruptiveContrast(d *dna.BrandDNA) TemporaryTheme {
	cs := d.Style.Colors

	forced := dna.CompositionRules{
		Rhythm:   dna.RhythmStaccato,
		Harmony:  flipHarmony(d.Composition.Harmony),
		Dynamics: dna.DynamicsForte,
		Tempo:    dna.TempoAllegro,
	}

	var colors ThemeColors
	switch {
	case hue.IsDark(cs.Background):
		// Dark brand: invert to a light neutral, keep the primary as accent.
		colors = ThemeColors{Background: "#f8fafc", Text: "#0f172a", Accent: cs.Primary}
	case d.Personality.SeriousPlayful < 40:
		// Serious brand: near-black stage for the existing brand colors.
		colors = ThemeColors{Background: "#0a0a0a", Text: "#ffffff", Accent: pickAccent(cs)}
	default:
		// Otherwise the primary itself becomes the stage.
		fg := hue.ForegroundFor(cs.Primary)
		colors = ThemeColors{Background: cs.Primary, Text: fg, Accent: fg}
	}
	colors.Surface = surfaceFor(colors.Background)

	return TemporaryTheme{
		ID:       uuid.NewString(),
		Label:    "Disruptive Contrast",
		Category: CategoryDisruptive,
		Colors:   colors,
		Typography: ThemeTypography{
			HeadingFont:   d.Style.Typography.HeadingFont,
			BodyFont:      d.Style.Typography.BodyFont,
			HeadingSize:   "2.75rem",
			HeadingWeight: "700",
			BodyWeight:    d.Style.Typography.BodyWeight,
		},
		Layout: ThemeLayout{
			BorderRadius: styleprobe.CornerSquare,
			Padding:      styleprobe.PaddingTight,
			Alignment:    "left",
		},
		Effects:     d.Style.Effects,
		Decoration:  DecorationNone,
		Pattern:     DesignPattern{Name: inferPattern(d.Personality), Confidence: confidenceDisruptive},
		Composition: forced,
	}
}

func headingSize(dy dna.Dynamics) string {
	switch dy {
	case dna.DynamicsForte:
		return "2.5rem"
	case dna.DynamicsPiano:
		return "1.75rem"
	default:
		return "2rem"
	}
}

// nextRhythm walks the fixed remix cycle.
func nextRhythm(r dna.Rhythm) dna.Rhythm {
	switch r {
	case dna.RhythmStaccato:
		return dna.RhythmLegato
	case dna.RhythmLegato:
		return dna.RhythmSyncopated
	default:
		return dna.RhythmStaccato
	}
}

func flipDynamics(dy dna.Dynamics) dna.Dynamics {
	switch dy {
	case dna.DynamicsForte:
		return dna.DynamicsMezzo
	case dna.DynamicsMezzo:
		return dna.DynamicsForte
	default:
		return dy
	}
}

func flipHarmony(h dna.Harmony) dna.Harmony {
	if h == dna.HarmonyDissonant {
		return dna.HarmonyConsonant
	}
	return dna.HarmonyDissonant
}

func pickAccent(cs styleprobe.ColorSet) string {
	if cs.Accent != "" && cs.Accent != cs.Primary {
		return cs.Accent
	}
	if cs.Secondary != "" {
		return cs.Secondary
	}
	return cs.Primary
}

// surfaceFor derives a card color one step off the background.
func surfaceFor(bg string) string {
	r, g, b, ok := hue.RGB(bg)
	if !ok {
		return "#f1f5f9"
	}
	if hue.IsDark(bg) {
		return hue.FromRGB(r+16, g+16, b+16)
	}
	return hue.FromRGB(r-10, g-10, b-10)
}
