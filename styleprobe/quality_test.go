package styleprobe

import "testing"

func TestAssessStyleQuality_DefaultRecordBelowThreshold(t *testing.T) {
	// WHY: The default record must always trigger the vision fallback.
	q := AssessStyleQuality(DefaultRecord())
	if q >= StyleQualityThreshold {
		t.Errorf("default record quality = %.2f, want < %.2f", q, StyleQualityThreshold)
	}
	if q != 0 {
		t.Errorf("default record quality = %.2f, want exactly 0", q)
	}
}

func TestAssessStyleQuality_FullRecord(t *testing.T) {
	rec := &StyleRecord{
		Colors: ColorSet{
			Primary: "#112233",
			Palette: []string{"#112233", "#445566", "#778899", "#aabbcc"},
		},
		Typography: Typography{
			HeadingFont: "Playfair Display, serif",
			BodyFont:    "Lato, sans-serif",
		},
	}
	q := AssessStyleQuality(rec)
	if q < 0.84 || q > 0.86 {
		t.Errorf("full record quality = %.2f, want 0.85", q)
	}
}

func TestAssessStyleQuality_PaletteLinearBelowThree(t *testing.T) {
	// WHAT: One or two non-default colors earn proportional credit, not the
	// full palette weight.
	one := &StyleRecord{Colors: ColorSet{Palette: []string{"#112233"}}}
	two := &StyleRecord{Colors: ColorSet{Palette: []string{"#112233", "#445566"}}}
	three := &StyleRecord{Colors: ColorSet{Palette: []string{"#112233", "#445566", "#778899"}}}

	q1, q2, q3 := AssessStyleQuality(one), AssessStyleQuality(two), AssessStyleQuality(three)
	if !(q1 < q2 && q2 < q3) {
		t.Errorf("palette credit not monotonic: %.2f, %.2f, %.2f", q1, q2, q3)
	}
	if q3 < 0.39 || q3 > 0.41 {
		t.Errorf("three-color palette = %.2f, want 0.4", q3)
	}
}

func TestAssessStyleQuality_DefaultColorsEarnNothing(t *testing.T) {
	rec := &StyleRecord{Colors: ColorSet{
		Primary: Defaults.Primary,
		Palette: Defaults.Colors(),
	}}
	if q := AssessStyleQuality(rec); q != 0 {
		t.Errorf("all-default colors = %.2f, want 0", q)
	}
}

func TestAssessStyleQuality_Nil(t *testing.T) {
	if q := AssessStyleQuality(nil); q != 0 {
		t.Errorf("nil record = %.2f, want 0", q)
	}
}
