// CLAUDE:SUMMARY Defines StyleRecord, ColorCandidate, and the vision-shaped style types for the extraction pipeline.
package styleprobe

// Density buckets how tightly a site packs its content.
type Density string

const (
	DensityCompact  Density = "compact"
	DensityNormal   Density = "normal"
	DensitySpacious Density = "spacious"
)

// Corner buckets the dominant border-radius treatment.
type Corner string

const (
	CornerSquare  Corner = "square"
	CornerRounded Corner = "rounded"
	CornerPill    Corner = "pill"
)

// PaddingScale buckets how loose the padding reads.
type PaddingScale string

const (
	PaddingTight  PaddingScale = "tight"
	PaddingNormal PaddingScale = "normal"
	PaddingLoose  PaddingScale = "loose"
)

// ColorSet holds the named brand colors plus the scored palette (max 8,
// de-duplicated, lowercase "#rrggbb").
type ColorSet struct {
	Primary    string   `json:"primary"`
	Secondary  string   `json:"secondary"`
	Background string   `json:"background"`
	Text       string   `json:"text"`
	Accent     string   `json:"accent"`
	Palette    []string `json:"palette"`
}

// Typography holds resolved font stacks and weights.
type Typography struct {
	HeadingFont   string `json:"heading_font"`
	BodyFont      string `json:"body_font"`
	HeadingWeight string `json:"heading_weight"`
	BodyWeight    string `json:"body_weight"`
}

// Spacing holds the qualitative spacing classification.
type Spacing struct {
	Density      Density      `json:"density"`
	BorderRadius Corner       `json:"border_radius"`
	Padding      PaddingScale `json:"padding"`
}

// Effects flags which visual treatments the site uses.
type Effects struct {
	Shadows       bool `json:"shadows"`
	Gradients     bool `json:"gradients"`
	Animations    bool `json:"animations"`
	Glassmorphism bool `json:"glassmorphism"`
	Noise         bool `json:"noise"`
}

// Metadata carries incidental site identity found during extraction.
type Metadata struct {
	Favicon  string `json:"favicon,omitempty"`
	Logo     string `json:"logo,omitempty"`
	SiteName string `json:"site_name,omitempty"`
}

// StyleRecord is the full result of one style extraction pass. It is built
// fresh per call and never mutated after being returned.
type StyleRecord struct {
	Colors     ColorSet   `json:"colors"`
	Typography Typography `json:"typography"`
	Spacing    Spacing    `json:"spacing"`
	Effects    Effects    `json:"effects"`
	Metadata   Metadata   `json:"metadata"`
}

// ColorContext records where in the markup a color was seen. A candidate
// accumulates a set of contexts, not a single one.
type ColorContext string

const (
	ContextBackground ColorContext = "background"
	ContextText       ColorContext = "text"
	ContextBorder     ColorContext = "border"
	ContextAccent     ColorContext = "accent"
	ContextMeta       ColorContext = "meta"
	ContextVariable   ColorContext = "variable"
)

// ColorCandidate is a transient scoring entry for one hex value during a
// single extraction pass.
type ColorCandidate struct {
	Hex      string
	Score    int
	Contexts map[ColorContext]bool
}

// Role is the classified purpose of a palette color.
type Role string

const (
	RoleBackground Role = "background"
	RoleText       Role = "text"
	RoleAccent     Role = "accent"
)

// VisionColors are the named colors a vision model reports.
type VisionColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

// VisionTypography is the vision model's font guess (category-level, e.g.
// "Inter" or "serif" — screenshots cannot name exact families reliably).
type VisionTypography struct {
	HeadingFont string `json:"headingFont"`
	BodyFont    string `json:"bodyFont"`
}

// VisionSpacing is the vision model's spacing guess.
type VisionSpacing struct {
	Density      string `json:"density"`
	BorderRadius string `json:"borderRadius"`
}

// VisionEffects flags what the model saw. DarkMode is the load-bearing one:
// it corrects white-shell records from script-rendered pages.
type VisionEffects struct {
	Shadows   bool `json:"shadows"`
	Gradients bool `json:"gradients"`
	DarkMode  bool `json:"darkMode"`
}

// VisionStyle is the constrained shape requested from the vision model.
// Field tags match the JSON contract sent in the prompt.
type VisionStyle struct {
	Colors     VisionColors     `json:"colors"`
	Typography VisionTypography `json:"typography"`
	Spacing    VisionSpacing    `json:"spacing"`
	Effects    VisionEffects    `json:"effects"`
	Aesthetic  string           `json:"aesthetic"`
}
