// CLAUDE:SUMMARY Numeric spacing heuristics and boolean effect detection over raw style text.
package styleprobe

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	paddingRe = regexp.MustCompile(`(?i)padding(?:-(?:top|right|bottom|left|inline|block))?\s*:\s*([^;}]+)`)
	radiusRe  = regexp.MustCompile(`(?i)border-radius\s*:\s*([^;}]+)`)
	lengthRe  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)(px|rem|em)?`)

	shadowRe    = regexp.MustCompile(`(?i)box-shadow|text-shadow`)
	gradientRe  = regexp.MustCompile(`(?i)linear-gradient|radial-gradient`)
	animationRe = regexp.MustCompile(`(?i)animation\s*:|@keyframes|transition\s*:`)
	glassRe     = regexp.MustCompile(`(?i)backdrop-filter\s*:\s*[^;}]*(?:blur|saturate)`)
	noiseRe     = regexp.MustCompile(`(?i)\b(?:noise|grain|texture)\b|url\([^)]*noise[^)]*\)`)
)

// ExtractSpacing buckets the site's spacing from the average of all numeric
// padding and border-radius declarations (px-equivalent; rem/em scaled by
// the 16px root size). No declarations at all falls back to the defaults.
func ExtractSpacing(source string) Spacing {
	sp := Spacing{
		Density:      DensityNormal,
		BorderRadius: CornerRounded,
		Padding:      PaddingNormal,
	}

	if avg, ok := averageLength(source, paddingRe); ok {
		switch {
		case avg < 10:
			sp.Density = DensityCompact
			sp.Padding = PaddingTight
		case avg > 24:
			sp.Density = DensitySpacious
			sp.Padding = PaddingLoose
		}
	}

	if avg, ok := averageLength(source, radiusRe); ok {
		switch {
		case avg < 2:
			sp.BorderRadius = CornerSquare
		case avg > 20:
			sp.BorderRadius = CornerPill
		}
	}

	return sp
}

// ExtractEffects runs the five independent effect detections.
func ExtractEffects(source string) Effects {
	return Effects{
		Shadows:       shadowRe.MatchString(source),
		Gradients:     gradientRe.MatchString(source),
		Animations:    animationRe.MatchString(source),
		Glassmorphism: glassRe.MatchString(source),
		Noise:         noiseRe.MatchString(source),
	}
}

// averageLength averages the px-equivalent numeric values captured by re.
// Percentages, keywords, and var() indirections contribute nothing.
func averageLength(source string, re *regexp.Regexp) (float64, bool) {
	var sum float64
	var n int
	for _, m := range re.FindAllStringSubmatch(source, -1) {
		value := m[1]
		if strings.Contains(strings.ToLower(value), "var(") {
			continue
		}
		for _, lm := range lengthRe.FindAllStringSubmatch(value, -1) {
			v, err := strconv.ParseFloat(lm[1], 64)
			if err != nil {
				continue
			}
			switch strings.ToLower(lm[2]) {
			case "rem", "em":
				v *= 16
			}
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
