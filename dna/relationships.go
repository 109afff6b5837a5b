// CLAUDE:SUMMARY Scheme and contrast classification of the extracted brand colors.
package dna

import (
	"github.com/hueloom/branddna/hue"
	"github.com/hueloom/branddna/styleprobe"
)

// AnalyzeColorRelationships classifies how the named brand colors relate.
// The scheme comes from the primary/accent hue distance when accent is
// distinct, otherwise primary/secondary; contrast is measured between
// background and text, the pair that actually renders together.
func AnalyzeColorRelationships(cs styleprobe.ColorSet) ColorRelationships {
	counterpart := cs.Accent
	if counterpart == "" || counterpart == cs.Primary {
		counterpart = cs.Secondary
	}

	rel := ColorRelationships{
		Scheme:   "monochromatic",
		Contrast: hue.Contrast(cs.Background, cs.Text),
	}
	if cs.Primary != "" && counterpart != "" {
		rel.Scheme = hue.Relationship(cs.Primary, counterpart)
	}
	return rel
}
