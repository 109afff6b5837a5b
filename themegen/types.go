// CLAUDE:SUMMARY Theme variation data model: three reproducible remixes of one BrandDNA.
// Package themegen derives presentation themes from an extracted BrandDNA.
// Generation is deterministic apart from the theme ids: the same DNA always
// yields the same three variations.
package themegen

import (
	"github.com/hueloom/branddna/dna"
	"github.com/hueloom/branddna/styleprobe"
)

// Category identifies the variation slot a theme fills.
type Category string

const (
	CategoryBrand      Category = "brand"
	CategoryRemix      Category = "remix"
	CategoryDisruptive Category = "disruptive"
)

// Decoration is an optional text treatment.
type Decoration string

const (
	DecorationNone   Decoration = "none"
	DecorationGlitch Decoration = "glitch"
)

// ThemeColors is the reduced palette a theme renders with. Surface is the
// card/panel color sitting between background and text.
type ThemeColors struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
	Surface    string `json:"surface"`
}

// ThemeTypography carries the faces plus the derived heading size.
type ThemeTypography struct {
	HeadingFont   string `json:"heading_font"`
	BodyFont      string `json:"body_font"`
	HeadingSize   string `json:"heading_size"`
	HeadingWeight string `json:"heading_weight"`
	BodyWeight    string `json:"body_weight"`
}

// ThemeLayout is the concrete spacing treatment.
type ThemeLayout struct {
	BorderRadius styleprobe.Corner       `json:"border_radius"`
	Padding      styleprobe.PaddingScale `json:"padding"`
	Alignment    string                  `json:"alignment"`
}

// DesignPattern labels the aesthetic family a theme belongs to, with a
// fixed per-slot confidence signalling fidelity to the source brand.
type DesignPattern struct {
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
}

// TemporaryTheme is one generated variation. "Temporary" because themes are
// derived on demand and never stored as canon: the BrandDNA is the source
// of truth.
type TemporaryTheme struct {
	ID          string               `json:"id"`
	Label       string               `json:"label"`
	Category    Category             `json:"category"`
	Colors      ThemeColors          `json:"colors"`
	Typography  ThemeTypography      `json:"typography"`
	Layout      ThemeLayout          `json:"layout"`
	Effects     styleprobe.Effects   `json:"effects"`
	Decoration  Decoration           `json:"decoration"`
	Pattern     DesignPattern        `json:"pattern"`
	Composition dna.CompositionRules `json:"composition"`
}
