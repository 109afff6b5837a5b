// CLAUDE:SUMMARY Deterministic personality inference from style signals, with content digest and industry detection.
package dna

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/hueloom/branddna/hue"
	"github.com/hueloom/branddna/styleprobe"
)

// maxDigestLen caps the content digest handed to the personality model.
const maxDigestLen = 6000

var serifNames = []string{
	"serif", "georgia", "times", "garamond", "playfair", "merriweather",
	"baskerville", "lora", "fraunces", "didot", "bodoni",
}

// InferPersonality derives the five spectra from extracted style signals
// alone. Deterministic: the same record and relationships always score the
// same. A model estimate, when available, refines but never replaces this
// baseline (see Builder).
func InferPersonality(rec *styleprobe.StyleRecord, rel ColorRelationships) Personality {
	p := Personality{
		SeriousPlayful:   50,
		LuxuryAccessible: 50,
		ModernClassic:    50,
		BoldSubtle:       50,
		WarmCool:         50,
	}
	if rec == nil {
		return p
	}

	primarySat := hue.Saturation(rec.Colors.Primary)
	darkBG := hue.IsDark(rec.Colors.Background)
	serifHeading := isSerif(rec.Typography.HeadingFont)

	// seriousPlayful: saturation, motion, and round shapes read playful;
	// serif faces and dark grounds read serious.
	if primarySat > 0.6 {
		p.SeriousPlayful += 15
	}
	if rec.Effects.Animations {
		p.SeriousPlayful += 10
	}
	if rec.Spacing.BorderRadius == styleprobe.CornerPill {
		p.SeriousPlayful += 10
	}
	if serifHeading {
		p.SeriousPlayful -= 15
	}
	if darkBG {
		p.SeriousPlayful -= 10
	}

	// luxuryAccessible: serif + spacious + dark reads luxury; rounded,
	// bright, saturated reads accessible.
	if serifHeading {
		p.LuxuryAccessible -= 15
	}
	if rec.Spacing.Density == styleprobe.DensitySpacious {
		p.LuxuryAccessible -= 10
	}
	if darkBG {
		p.LuxuryAccessible -= 10
	}
	if rec.Spacing.BorderRadius != styleprobe.CornerSquare {
		p.LuxuryAccessible += 10
	}
	if primarySat > 0.5 {
		p.LuxuryAccessible += 10
	}

	// modernClassic: serif pulls classic, gradients/glass pull modern.
	if serifHeading {
		p.ModernClassic += 20
	}
	if isSerif(rec.Typography.BodyFont) {
		p.ModernClassic += 10
	}
	if rec.Effects.Gradients || rec.Effects.Glassmorphism {
		p.ModernClassic -= 15
	}
	if rec.Spacing.BorderRadius == styleprobe.CornerPill {
		p.ModernClassic -= 10
	}

	// boldSubtle: contrast and saturation decide loudness.
	switch rel.Contrast {
	case "high":
		p.BoldSubtle -= 15
	case "low":
		p.BoldSubtle += 15
	}
	if primarySat > 0.5 {
		p.BoldSubtle -= 10
	} else if primarySat < 0.2 {
		p.BoldSubtle += 10
	}

	// warmCool straight from the color wheel.
	switch {
	case hue.IsWarm(rec.Colors.Primary) || hue.IsWarm(rec.Colors.Accent):
		p.WarmCool = 30
	case hue.Saturation(rec.Colors.Primary) >= 0.15:
		p.WarmCool = 70
	}

	p.Clamp()
	return p
}

func isSerif(stack string) bool {
	s := strings.ToLower(stack)
	if strings.Contains(s, "sans") {
		return false
	}
	for _, name := range serifNames {
		if strings.Contains(s, name) {
			return true
		}
	}
	return false
}

// BuildEmotionalProfile derives the affective tags from personality and
// composition.
func BuildEmotionalProfile(p Personality, c CompositionRules) EmotionalProfile {
	var ep EmotionalProfile

	switch {
	case p.BoldSubtle < 35:
		ep.Primary = "confident"
	case p.SeriousPlayful > 65:
		ep.Primary = "joyful"
	case p.LuxuryAccessible < 35:
		ep.Primary = "refined"
	default:
		ep.Primary = "calm"
	}

	if p.WarmCool < 50 {
		ep.Secondary = "energetic"
	} else {
		ep.Secondary = "serene"
	}

	switch c.Tempo {
	case TempoAllegro:
		ep.Mood = "vibrant"
	case TempoAdagio:
		ep.Mood = "composed"
	default:
		ep.Mood = "balanced"
	}
	return ep
}

// Industry keyword table, checked in order so more specific terms win.
var industryKeywords = []struct {
	keyword  string
	industry string
}{
	{"fintech", "finance"},
	{"bank", "finance"},
	{"invest", "finance"},
	{"insurance", "finance"},
	{"clinic", "healthcare"},
	{"health", "healthcare"},
	{"medical", "healthcare"},
	{"restaurant", "food"},
	{"menu", "food"},
	{"recipe", "food"},
	{"coffee", "food"},
	{"fashion", "fashion"},
	{"apparel", "fashion"},
	{"boutique", "fashion"},
	{"real estate", "real estate"},
	{"property", "real estate"},
	{"university", "education"},
	{"course", "education"},
	{"learn", "education"},
	{"law firm", "legal"},
	{"attorney", "legal"},
	{"saas", "software"},
	{"api", "software"},
	{"developer", "software"},
	{"software", "software"},
	{"agency", "creative"},
	{"design studio", "creative"},
	{"portfolio", "creative"},
	{"travel", "travel"},
	{"hotel", "travel"},
	{"fitness", "fitness"},
	{"gym", "fitness"},
	{"shop", "retail"},
	{"store", "retail"},
	{"cart", "retail"},
}

// DetectIndustry scans a lowercased content digest for industry keywords.
// Returns "general" when nothing matches.
func DetectIndustry(digest string) string {
	s := strings.ToLower(digest)
	for _, entry := range industryKeywords {
		if strings.Contains(s, entry.keyword) {
			return entry.industry
		}
	}
	return "general"
}

var digestPolicy = bluemonday.StrictPolicy()

// BuildDigest turns raw page HTML into a bounded markdown digest for
// industry detection and the optional personality model. Falls back to a
// tag-stripped version when conversion fails; either way script and style
// bodies never leak into the text.
func BuildDigest(pageHTML string) string {
	md, err := htmltomarkdown.ConvertString(pageHTML)
	if err != nil || strings.TrimSpace(md) == "" {
		md = digestPolicy.Sanitize(pageHTML)
	}
	md = strings.Join(strings.Fields(md), " ")
	if len(md) > maxDigestLen {
		md = md[:maxDigestLen]
	}
	return md
}
