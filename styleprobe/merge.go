// CLAUDE:SUMMARY Deterministic fusion of HTML-extracted and vision-extracted style records, non-default source wins.
package styleprobe

import "github.com/hueloom/branddna/hue"

// Merge fuses an HTML-derived record with vision-derived data into a new
// record. Per color field the vision value replaces the HTML value only
// when the HTML side still carries a default; background and text are
// additionally replaced when the page looked like the generic white/dark
// shell but the screenshot shows dark mode (script-rendered SPAs serve
// white HTML that never reflects the real theme). Typography keeps the
// HTML name unless it is the sentinel; effects OR across sources; the
// palette unions vision's named colors first, then non-default HTML
// entries, capped at the usual length.
//
// Merging a record against a vision projection of itself returns an equal
// record for every vision-shaped field.
func Merge(htmlRec *StyleRecord, v *VisionStyle) *StyleRecord {
	if htmlRec == nil {
		htmlRec = DefaultRecord()
	}
	out := *htmlRec
	out.Colors.Palette = append([]string(nil), htmlRec.Colors.Palette...)
	if v == nil {
		return &out
	}

	replaceDefault(&out.Colors.Primary, v.Colors.Primary)
	replaceDefault(&out.Colors.Secondary, v.Colors.Secondary)
	replaceDefault(&out.Colors.Accent, v.Colors.Accent)

	replaceShell(&out.Colors.Background, v.Colors.Background, Defaults.Background, v.Effects.DarkMode)
	replaceShell(&out.Colors.Text, v.Colors.Text, Defaults.Text, v.Effects.DarkMode)

	if Defaults.IsDefaultFont(out.Typography.HeadingFont) && v.Typography.HeadingFont != "" {
		out.Typography.HeadingFont = v.Typography.HeadingFont
	}
	if Defaults.IsDefaultFont(out.Typography.BodyFont) && v.Typography.BodyFont != "" {
		out.Typography.BodyFont = v.Typography.BodyFont
	}

	out.Effects.Shadows = out.Effects.Shadows || v.Effects.Shadows
	out.Effects.Gradients = out.Effects.Gradients || v.Effects.Gradients

	out.Colors.Palette = mergePalette(htmlRec.Colors.Palette, v.Colors)
	return &out
}

// replaceDefault swaps in the vision value when the HTML value is a member
// of the default set and the vision value is a usable color.
func replaceDefault(field *string, visionVal string) {
	norm, ok := hue.Normalize(visionVal)
	if !ok {
		return
	}
	if Defaults.IsDefaultColor(*field) {
		*field = norm
	}
}

// replaceShell is replaceDefault plus the dark-shell override: the generic
// default value also yields when the vision model flags dark mode.
func replaceShell(field *string, visionVal, shellDefault string, darkMode bool) {
	norm, ok := hue.Normalize(visionVal)
	if !ok {
		return
	}
	if Defaults.IsDefaultColor(*field) || (*field == shellDefault && darkMode) {
		*field = norm
	}
}

// mergePalette puts vision's named colors first (de-duplicated), then HTML
// palette entries outside the default set, capped at maxPalette.
func mergePalette(htmlPalette []string, vc VisionColors) []string {
	var out []string
	add := func(raw string) {
		hex, ok := hue.Normalize(raw)
		if !ok || contains(out, hex) || len(out) >= maxPalette {
			return
		}
		out = append(out, hex)
	}

	for _, c := range []string{vc.Primary, vc.Secondary, vc.Background, vc.Text, vc.Accent} {
		add(c)
	}
	for _, c := range htmlPalette {
		if Defaults.IsDefaultColor(c) {
			continue
		}
		add(c)
	}
	return out
}
