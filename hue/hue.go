// CLAUDE:SUMMARY Pure color math over 6-digit hex strings: brightness, saturation, hue angle, scheme relationships.
// Package hue provides small, dependency-free color math over hex strings.
//
// Every function operates on normalised 6-digit lowercase "#rrggbb" values.
// Normalize is the single entry point for turning raw CSS color literals
// (3- or 6-digit hex, rgb(), rgba()) into that canonical form.
package hue

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexRe  = regexp.MustCompile(`^#(?:[0-9a-f]{3}|[0-9a-f]{6})$`)
	rgbRe  = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})`)
	findRe = regexp.MustCompile(`(?i)#(?:[0-9a-f]{6}|[0-9a-f]{3})\b|rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}[^)]*\)`)
)

// Normalize converts a raw color literal to canonical "#rrggbb" form.
// Accepts 3- and 6-digit hex (with or without leading '#') and rgb()/rgba()
// literals (alpha ignored). Returns false for anything else.
func Normalize(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}

	if m := rgbRe.FindStringSubmatch(s); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			return "", false
		}
		return FromRGB(r, g, b), true
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if !hexRe.MatchString(s) {
		return "", false
	}
	if len(s) == 4 {
		// Expand #abc to #aabbcc.
		s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}
	return s, true
}

// Literals extracts every hex and rgb()/rgba() color literal from a string,
// normalised. Invalid literals are skipped.
func Literals(s string) []string {
	var out []string
	for _, m := range findRe.FindAllString(s, -1) {
		if h, ok := Normalize(m); ok {
			out = append(out, h)
		}
	}
	return out
}

// RGB decomposes a normalised hex color into its channels.
func RGB(hex string) (r, g, b int, ok bool) {
	h, valid := Normalize(hex)
	if !valid {
		return 0, 0, 0, false
	}
	r64, _ := strconv.ParseInt(h[1:3], 16, 0)
	g64, _ := strconv.ParseInt(h[3:5], 16, 0)
	b64, _ := strconv.ParseInt(h[5:7], 16, 0)
	return int(r64), int(g64), int(b64), true
}

// FromRGB builds a canonical hex string from channel values.
func FromRGB(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Brightness returns the perceived brightness in [0,255] using the
// ITU-R BT.601 luma weights. Invalid input scores 0.
func Brightness(hex string) int {
	r, g, b, ok := RGB(hex)
	if !ok {
		return 0
	}
	return (r*299 + g*587 + b*114) / 1000
}

// IsDark reports whether a color reads as dark (brightness below 128).
func IsDark(hex string) bool {
	return Brightness(hex) < 128
}

// Saturation returns HSV saturation in [0,1]. Greys score 0.
func Saturation(hex string) float64 {
	r, g, b, ok := RGB(hex)
	if !ok {
		return 0
	}
	max := float64(max3(r, g, b))
	if max == 0 {
		return 0
	}
	min := float64(min3(r, g, b))
	return (max - min) / max
}

// Angle returns the HSL hue angle in degrees [0,360). Greys return 0.
func Angle(hex string) float64 {
	ri, gi, bi, ok := RGB(hex)
	if !ok {
		return 0
	}
	r, g, b := float64(ri)/255, float64(gi)/255, float64(bi)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min
	if d == 0 {
		return 0
	}
	var h float64
	switch max {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}

// AngleDistance returns the shortest angular distance between two hues,
// in [0,180].
func AngleDistance(a, b string) float64 {
	d := math.Abs(Angle(a) - Angle(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// IsWarm reports whether a color sits on the warm side of the wheel
// (reds through yellows). Near-greys are never warm.
func IsWarm(hex string) bool {
	if Saturation(hex) < 0.15 {
		return false
	}
	a := Angle(hex)
	return a < 70 || a >= 330
}

// Relationship classifies the scheme relationship between two colors by
// their hue distance. Desaturated pairs are monochromatic regardless of hue.
func Relationship(a, b string) string {
	if Saturation(a) < 0.1 || Saturation(b) < 0.1 {
		return "monochromatic"
	}
	switch d := AngleDistance(a, b); {
	case d < 15:
		return "monochromatic"
	case d < 45:
		return "analogous"
	case d >= 165:
		return "complementary"
	case d >= 135:
		return "split-complementary"
	case d >= 105:
		return "triadic"
	default:
		return "contrasting"
	}
}

// Contrast buckets the brightness separation of two colors into
// "high", "medium", or "low".
func Contrast(a, b string) string {
	switch d := abs(Brightness(a) - Brightness(b)); {
	case d > 125:
		return "high"
	case d < 50:
		return "low"
	default:
		return "medium"
	}
}

// ForegroundFor picks black or white text for a given background.
func ForegroundFor(bg string) string {
	if IsDark(bg) {
		return "#ffffff"
	}
	return "#000000"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
