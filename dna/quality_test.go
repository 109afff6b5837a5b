package dna

import (
	"testing"

	"github.com/hueloom/branddna/styleprobe"
)

func TestAssessExtractionQuality_DefaultRecord(t *testing.T) {
	if q := AssessExtractionQuality(styleprobe.DefaultRecord()); q != 0 {
		t.Errorf("default record = %.2f, want 0", q)
	}
	if q := AssessExtractionQuality(nil); q != 0 {
		t.Errorf("nil record = %.2f, want 0", q)
	}
}

func TestAssessExtractionQuality_FontWeightsDifferFromStyleScorer(t *testing.T) {
	// WHY: The two scorers deliberately weight fonts differently; this test
	// pins the divergence so a well-meaning unification gets caught.
	headingOnly := &styleprobe.StyleRecord{
		Typography: styleprobe.Typography{HeadingFont: "Sora", BodyFont: styleprobe.Defaults.FontStack},
	}
	bodyOnly := &styleprobe.StyleRecord{
		Typography: styleprobe.Typography{HeadingFont: styleprobe.Defaults.FontStack, BodyFont: "Karla"},
	}

	if h, b := AssessExtractionQuality(headingOnly), AssessExtractionQuality(bodyOnly); h <= b {
		t.Errorf("dna scorer: heading %.2f should outweigh body %.2f", h, b)
	}
	if h, b := styleprobe.AssessStyleQuality(headingOnly), styleprobe.AssessStyleQuality(bodyOnly); h >= b {
		t.Errorf("style scorer: body %.2f should outweigh heading %.2f", b, h)
	}
}

func TestAssessExtractionQuality_Monotonic(t *testing.T) {
	rec := styleprobe.DefaultRecord()
	prev := AssessExtractionQuality(rec)
	for _, c := range []string{"#112233", "#445566", "#778899", "#aabbcc"} {
		rec.Colors.Palette = append(rec.Colors.Palette, c)
		q := AssessExtractionQuality(rec)
		if q < prev {
			t.Fatalf("score dropped from %.2f to %.2f after adding %s", prev, q, c)
		}
		prev = q
	}
}
