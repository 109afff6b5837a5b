// CLAUDE:SUMMARY Single source of truth for the default/sentinel style values used by merge and quality scoring.
package styleprobe

// DefaultSet is the named sentinel set: the values a record carries when
// extraction found nothing. Merge rules and both quality scorers compare
// against this one set rather than re-deriving their own.
type DefaultSet struct {
	Primary    string
	Secondary  string
	Background string
	Text       string
	Accent     string

	// FontStack is the exact sentinel string meaning "no font extracted".
	FontStack     string
	HeadingWeight string
	BodyWeight    string
}

// Defaults is the universal fallback palette: indigo/violet brand colors on
// a white page with dark slate text.
var Defaults = DefaultSet{
	Primary:       "#6366f1",
	Secondary:     "#8b5cf6",
	Background:    "#ffffff",
	Text:          "#1f2937",
	Accent:        "#f59e0b",
	FontStack:     "Inter, sans-serif",
	HeadingWeight: "700",
	BodyWeight:    "400",
}

// Colors returns the fixed 5-entry default color set in palette order.
func (d DefaultSet) Colors() []string {
	return []string{d.Primary, d.Secondary, d.Background, d.Text, d.Accent}
}

// IsDefaultColor reports whether hex belongs to the default color set.
// Comparison is case-insensitive via normalisation upstream; callers pass
// already-normalised values.
func (d DefaultSet) IsDefaultColor(hex string) bool {
	for _, c := range d.Colors() {
		if hex == c {
			return true
		}
	}
	return false
}

// IsDefaultFont reports whether a font stack is the extraction sentinel.
func (d DefaultSet) IsDefaultFont(stack string) bool {
	return stack == "" || stack == d.FontStack
}

// DefaultRecord returns the universal fallback StyleRecord. Every field is a
// member of the sentinel set so quality scoring reads it as zero signal.
func DefaultRecord() *StyleRecord {
	return &StyleRecord{
		Colors: ColorSet{
			Primary:    Defaults.Primary,
			Secondary:  Defaults.Secondary,
			Background: Defaults.Background,
			Text:       Defaults.Text,
			Accent:     Defaults.Accent,
			Palette:    Defaults.Colors(),
		},
		Typography: Typography{
			HeadingFont:   Defaults.FontStack,
			BodyFont:      Defaults.FontStack,
			HeadingWeight: Defaults.HeadingWeight,
			BodyWeight:    Defaults.BodyWeight,
		},
		Spacing: Spacing{
			Density:      DensityNormal,
			BorderRadius: CornerRounded,
			Padding:      PaddingNormal,
		},
	}
}
