// CLAUDE:SUMMARY DNA-pipeline quality scorer; same shape as the style scorer with its own font weights.
package dna

import "github.com/hueloom/branddna/styleprobe"

// AssessExtractionQuality scores a record for the DNA pipeline, in [0,1].
// Same structure as styleprobe.AssessStyleQuality but with the font weights
// swapped (heading 0.15, body 0.10). The two scorers are deliberately
// separate named functions: callers depend on their exact thresholds, and
// unifying them would silently move the vision-fallback cutoff.
func AssessExtractionQuality(rec *styleprobe.StyleRecord) float64 {
	if rec == nil {
		return 0
	}

	var score float64

	nonDefault := 0
	for _, c := range rec.Colors.Palette {
		if !styleprobe.Defaults.IsDefaultColor(c) {
			nonDefault++
		}
	}
	if nonDefault >= 3 {
		score += 0.4
	} else {
		score += float64(nonDefault) / 3 * 0.4
	}

	if !styleprobe.Defaults.IsDefaultColor(rec.Colors.Primary) {
		score += 0.2
	}
	if !styleprobe.Defaults.IsDefaultFont(rec.Typography.HeadingFont) {
		score += 0.15
	}
	if !styleprobe.Defaults.IsDefaultFont(rec.Typography.BodyFont) {
		score += 0.10
	}

	if score > 1 {
		score = 1
	}
	return score
}
