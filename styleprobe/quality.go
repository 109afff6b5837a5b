// CLAUDE:SUMMARY Quality scoring for the style-extraction entrypoint; 0.6 is the vision-fallback threshold.
package styleprobe

// StyleQualityThreshold is the cutoff below which the style pipeline
// escalates to the vision fallback.
const StyleQualityThreshold = 0.6

// AssessStyleQuality scores how much real (non-default) signal a record
// carries, in [0,1]. Additive: three or more non-default palette colors are
// worth 0.4 (linear below three), a non-default primary 0.2, a non-default
// heading font 0.10, a non-default body font 0.15.
//
// The BrandDNA pipeline has its own scorer with slightly different font
// weights; the two are kept as separate named functions on purpose, since
// callers depend on their exact thresholds.
func AssessStyleQuality(rec *StyleRecord) float64 {
	if rec == nil {
		return 0
	}

	var score float64

	nonDefault := 0
	for _, c := range rec.Colors.Palette {
		if !Defaults.IsDefaultColor(c) {
			nonDefault++
		}
	}
	if nonDefault >= 3 {
		score += 0.4
	} else {
		score += float64(nonDefault) / 3 * 0.4
	}

	if !Defaults.IsDefaultColor(rec.Colors.Primary) {
		score += 0.2
	}
	if !Defaults.IsDefaultFont(rec.Typography.HeadingFont) {
		score += 0.10
	}
	if !Defaults.IsDefaultFont(rec.Typography.BodyFont) {
		score += 0.15
	}

	if score > 1 {
		score = 1
	}
	return score
}
