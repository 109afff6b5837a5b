package dna

import (
	"strings"
	"testing"

	"github.com/hueloom/branddna/styleprobe"
)

func TestInferPersonality_Deterministic(t *testing.T) {
	rec := &styleprobe.StyleRecord{
		Colors: styleprobe.ColorSet{Primary: "#e63946", Background: "#ffffff", Text: "#1d3557"},
		Typography: styleprobe.Typography{
			HeadingFont: "Playfair Display, serif",
			BodyFont:    "Lato, sans-serif",
		},
		Spacing: styleprobe.Spacing{Density: styleprobe.DensitySpacious, BorderRadius: styleprobe.CornerSquare},
	}
	rel := AnalyzeColorRelationships(rec.Colors)

	first := InferPersonality(rec, rel)
	for i := 0; i < 10; i++ {
		if got := InferPersonality(rec, rel); got != first {
			t.Fatalf("inference not deterministic: %+v then %+v", first, got)
		}
	}
}

func TestInferPersonality_SerifReadsClassicAndLuxury(t *testing.T) {
	serif := &styleprobe.StyleRecord{
		Typography: styleprobe.Typography{HeadingFont: "Garamond, serif", BodyFont: "Georgia"},
	}
	sans := &styleprobe.StyleRecord{
		Typography: styleprobe.Typography{HeadingFont: "Inter, sans-serif", BodyFont: "Inter, sans-serif"},
	}
	rel := ColorRelationships{Scheme: "monochromatic", Contrast: "medium"}

	ps, pn := InferPersonality(serif, rel), InferPersonality(sans, rel)
	if ps.ModernClassic <= pn.ModernClassic {
		t.Errorf("serif modernClassic %d should exceed sans %d", ps.ModernClassic, pn.ModernClassic)
	}
	if ps.LuxuryAccessible >= pn.LuxuryAccessible {
		t.Errorf("serif luxuryAccessible %d should sit below sans %d", ps.LuxuryAccessible, pn.LuxuryAccessible)
	}
}

func TestInferPersonality_ContrastDrivesBoldness(t *testing.T) {
	rec := &styleprobe.StyleRecord{Colors: styleprobe.ColorSet{Primary: "#6366f1"}}
	high := InferPersonality(rec, ColorRelationships{Contrast: "high"})
	low := InferPersonality(rec, ColorRelationships{Contrast: "low"})
	if high.BoldSubtle >= low.BoldSubtle {
		t.Errorf("high contrast boldSubtle %d should be bolder (lower) than low contrast %d", high.BoldSubtle, low.BoldSubtle)
	}
}

func TestInferPersonality_WarmCool(t *testing.T) {
	warm := &styleprobe.StyleRecord{Colors: styleprobe.ColorSet{Primary: "#e63922"}}
	cool := &styleprobe.StyleRecord{Colors: styleprobe.ColorSet{Primary: "#2244cc"}}
	grey := &styleprobe.StyleRecord{Colors: styleprobe.ColorSet{Primary: "#888888"}}
	rel := ColorRelationships{}

	if p := InferPersonality(warm, rel); p.WarmCool != 30 {
		t.Errorf("warm primary → warmCool %d, want 30", p.WarmCool)
	}
	if p := InferPersonality(cool, rel); p.WarmCool != 70 {
		t.Errorf("cool primary → warmCool %d, want 70", p.WarmCool)
	}
	if p := InferPersonality(grey, rel); p.WarmCool != 50 {
		t.Errorf("grey primary → warmCool %d, want neutral 50", p.WarmCool)
	}
}

func TestInferPersonality_ClampedRange(t *testing.T) {
	rec := &styleprobe.StyleRecord{
		Colors:     styleprobe.ColorSet{Primary: "#ff0000", Background: "#000000"},
		Typography: styleprobe.Typography{HeadingFont: "Didot", BodyFont: "Bodoni"},
		Spacing:    styleprobe.Spacing{Density: styleprobe.DensitySpacious},
	}
	p := InferPersonality(rec, ColorRelationships{Contrast: "high"})
	for name, v := range map[string]int{
		"seriousPlayful": p.SeriousPlayful, "luxuryAccessible": p.LuxuryAccessible,
		"modernClassic": p.ModernClassic, "boldSubtle": p.BoldSubtle, "warmCool": p.WarmCool,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s = %d, out of [0,100]", name, v)
		}
	}
}

func TestDetectIndustry(t *testing.T) {
	cases := []struct{ digest, want string }{
		{"Open a savings account at our bank today", "finance"},
		{"Browse the fall apparel collection", "fashion"},
		{"REST API reference for developers", "software"},
		{"a page about nothing in particular", "general"},
	}
	for _, c := range cases {
		if got := DetectIndustry(c.digest); got != c.want {
			t.Errorf("DetectIndustry(%q) = %q, want %q", c.digest, got, c.want)
		}
	}
}

func TestBuildDigest(t *testing.T) {
	md := BuildDigest(`<html><head><script>var x = "SECRET";</script></head>
		<body><h1>Acme Coffee</h1><p>Small-batch roasts.</p></body></html>`)
	if !strings.Contains(md, "Acme Coffee") || !strings.Contains(md, "Small-batch roasts") {
		t.Errorf("digest lost content: %q", md)
	}
	if strings.Contains(md, "SECRET") {
		t.Errorf("script body leaked into digest: %q", md)
	}
}

func TestBuildDigest_Bounded(t *testing.T) {
	long := strings.Repeat("<p>lorem ipsum dolor</p>", 2000)
	if md := BuildDigest(long); len(md) > maxDigestLen {
		t.Errorf("digest length %d exceeds cap %d", len(md), maxDigestLen)
	}
}

func TestBuildEmotionalProfile(t *testing.T) {
	bold := Personality{BoldSubtle: 20, WarmCool: 30}
	ep := BuildEmotionalProfile(bold, CompositionRules{Tempo: TempoAllegro})
	if ep.Primary != "confident" || ep.Secondary != "energetic" || ep.Mood != "vibrant" {
		t.Errorf("profile = %+v", ep)
	}

	calm := Personality{BoldSubtle: 50, SeriousPlayful: 50, LuxuryAccessible: 50, WarmCool: 70}
	ep = BuildEmotionalProfile(calm, CompositionRules{Tempo: TempoAdagio})
	if ep.Primary != "calm" || ep.Secondary != "serene" || ep.Mood != "composed" {
		t.Errorf("profile = %+v", ep)
	}
}
