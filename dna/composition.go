// CLAUDE:SUMMARY Pure threshold tables mapping personality + color relationships to composition and layout.
package dna

import "github.com/hueloom/branddna/styleprobe"

// MapPersonalityToComposition derives the four composition axes from
// personality spectra and color relationships. Pure threshold tables, no
// I/O: the same input always yields the same rules.
func MapPersonalityToComposition(p Personality, rel ColorRelationships) CompositionRules {
	var c CompositionRules

	switch {
	case p.SeriousPlayful < 35 && p.BoldSubtle < 50:
		c.Rhythm = RhythmStaccato
	case p.SeriousPlayful > 65 || p.LuxuryAccessible > 70:
		c.Rhythm = RhythmSyncopated
	default:
		c.Rhythm = RhythmLegato
	}

	switch rel.Scheme {
	case "complementary", "split-complementary":
		c.Harmony = HarmonyDissonant
	case "triadic":
		c.Harmony = HarmonyResolved
	default:
		c.Harmony = HarmonyConsonant
	}

	switch {
	case p.BoldSubtle < 35 && rel.Contrast == "high":
		c.Dynamics = DynamicsForte
	case p.BoldSubtle > 65 || rel.Contrast == "low":
		c.Dynamics = DynamicsPiano
	default:
		c.Dynamics = DynamicsMezzo
	}

	switch {
	case p.ModernClassic < 35 && p.LuxuryAccessible > 60:
		c.Tempo = TempoAllegro
	case p.ModernClassic > 65 || p.LuxuryAccessible < 35:
		c.Tempo = TempoAdagio
	default:
		c.Tempo = TempoAndante
	}

	return c
}

// CompositionToLayout turns composition rules into concrete layout
// defaults. Tempo drives density and padding together, rhythm the corner
// style, dynamics the preferred text alignment.
func CompositionToLayout(c CompositionRules) Layout {
	var l Layout

	switch c.Tempo {
	case TempoAllegro:
		l.Density, l.Padding = styleprobe.DensityCompact, styleprobe.PaddingTight
	case TempoAdagio:
		l.Density, l.Padding = styleprobe.DensitySpacious, styleprobe.PaddingLoose
	default:
		l.Density, l.Padding = styleprobe.DensityNormal, styleprobe.PaddingNormal
	}

	switch c.Rhythm {
	case RhythmStaccato:
		l.BorderRadius = styleprobe.CornerSquare
	case RhythmSyncopated:
		l.BorderRadius = styleprobe.CornerPill
	default:
		l.BorderRadius = styleprobe.CornerRounded
	}

	if c.Dynamics == DynamicsForte {
		l.Alignment = "left"
	} else {
		l.Alignment = "center"
	}

	return l
}
