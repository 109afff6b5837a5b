// CLAUDE:SUMMARY BrandDNA data model: personality spectra, composition rules, derived layout.
// Package dna builds the full brand identity profile for a site: the style
// record from styleprobe enriched with personality spectra, color
// relationships, composition rules, and derived layout defaults. The
// profile is built once per URL and is read-only afterwards.
package dna

import "github.com/hueloom/branddna/styleprobe"

// Personality holds five independent 0-100 spectra. Low values sit on the
// left-hand pole of each name: 0 seriousPlayful is fully serious, 100 is
// fully playful.
type Personality struct {
	SeriousPlayful   int `json:"seriousPlayful"`
	LuxuryAccessible int `json:"luxuryAccessible"`
	ModernClassic    int `json:"modernClassic"`
	BoldSubtle       int `json:"boldSubtle"`
	WarmCool         int `json:"warmCool"`
}

// Clamp forces every spectrum into [0,100].
func (p *Personality) Clamp() {
	for _, v := range []*int{&p.SeriousPlayful, &p.LuxuryAccessible, &p.ModernClassic, &p.BoldSubtle, &p.WarmCool} {
		if *v < 0 {
			*v = 0
		}
		if *v > 100 {
			*v = 100
		}
	}
}

// EmotionalProfile is the affective read of the brand.
type EmotionalProfile struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Mood      string `json:"mood"`
}

// ColorRelationships describes how the brand colors relate to each other.
type ColorRelationships struct {
	Scheme   string `json:"scheme"`   // monochromatic, analogous, triadic, split-complementary, complementary, contrasting
	Contrast string `json:"contrast"` // high, medium, low
}

// Rhythm, Harmony, Dynamics and Tempo are the four composition axes. The
// musical names are the project's vocabulary for visual pacing.
type (
	Rhythm   string
	Harmony  string
	Dynamics string
	Tempo    string
)

const (
	RhythmStaccato   Rhythm = "staccato"
	RhythmLegato     Rhythm = "legato"
	RhythmSyncopated Rhythm = "syncopated"

	HarmonyConsonant Harmony = "consonant"
	HarmonyDissonant Harmony = "dissonant"
	HarmonyResolved  Harmony = "resolved"

	DynamicsForte Dynamics = "forte"
	DynamicsMezzo Dynamics = "mezzo"
	DynamicsPiano Dynamics = "piano"

	TempoAllegro Tempo = "allegro"
	TempoAndante Tempo = "andante"
	TempoAdagio  Tempo = "adagio"
)

// CompositionRules is the four-axis categorical summary derived from
// personality and color relationships. Always recomputed, never stored
// independently.
type CompositionRules struct {
	Rhythm   Rhythm   `json:"rhythm"`
	Harmony  Harmony  `json:"harmony"`
	Dynamics Dynamics `json:"dynamics"`
	Tempo    Tempo    `json:"tempo"`
}

// Layout holds the concrete CSS defaults derived from composition.
type Layout struct {
	Density      styleprobe.Density      `json:"density"`
	BorderRadius styleprobe.Corner       `json:"border_radius"`
	Padding      styleprobe.PaddingScale `json:"padding"`
	Alignment    string                  `json:"alignment"` // left, center
}

// Metadata carries provenance for one DNA build.
type Metadata struct {
	SourceURL         string  `json:"source_url"`
	ExtractionQuality float64 `json:"extraction_quality"`
	UsedVision        bool    `json:"used_vision"`
}

// BrandDNA is the complete visual identity profile for one site.
type BrandDNA struct {
	Style              styleprobe.StyleRecord `json:"style"`
	Personality        Personality            `json:"personality"`
	EmotionalProfile   EmotionalProfile       `json:"emotional_profile"`
	ColorRelationships ColorRelationships     `json:"color_relationships"`
	Composition        CompositionRules       `json:"composition"`
	Layout             Layout                 `json:"layout"`
	Industry           string                 `json:"industry"`
	BrandName          string                 `json:"brand_name"`
	Metadata           Metadata               `json:"metadata"`
}
