package themegen

import (
	"math/rand"
	"testing"

	"github.com/hueloom/branddna/dna"
	"github.com/hueloom/branddna/styleprobe"
)

func sampleDNA() *dna.BrandDNA {
	rec := styleprobe.StyleRecord{
		Colors: styleprobe.ColorSet{
			Primary:    "#e63946",
			Secondary:  "#457b9d",
			Background: "#ffffff",
			Text:       "#1d3557",
			Accent:     "#f4a261",
			Palette:    []string{"#e63946", "#457b9d", "#f4a261"},
		},
		Typography: styleprobe.Typography{
			HeadingFont: "Fraunces, serif", BodyFont: "Lato, sans-serif",
			HeadingWeight: "700", BodyWeight: "400",
		},
	}
	rel := dna.AnalyzeColorRelationships(rec.Colors)
	pers := dna.InferPersonality(&rec, rel)
	comp := dna.MapPersonalityToComposition(pers, rel)
	return &dna.BrandDNA{
		Style:              rec,
		Personality:        pers,
		ColorRelationships: rel,
		Composition:        comp,
		Layout:             dna.CompositionToLayout(comp),
	}
}

func TestGenerate_ThreeDistinctThemes(t *testing.T) {
	// WHAT: Always exactly three themes, with the three fixed categories
	// and three distinct ids.
	themes := Generate(sampleDNA())
	if len(themes) != 3 {
		t.Fatalf("got %d themes, want 3", len(themes))
	}

	wantCats := []Category{CategoryBrand, CategoryRemix, CategoryDisruptive}
	ids := make(map[string]bool)
	for i, th := range themes {
		if th.Category != wantCats[i] {
			t.Errorf("themes[%d].Category = %s, want %s", i, th.Category, wantCats[i])
		}
		if th.ID == "" || ids[th.ID] {
			t.Errorf("themes[%d] id %q not unique", i, th.ID)
		}
		ids[th.ID] = true
	}
}

func TestGenerate_DistinctForRandomDNA(t *testing.T) {
	// WHY: The three-theme contract must hold for any valid personality,
	// not just the happy-path sample.
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		d := sampleDNA()
		d.Personality = dna.Personality{
			SeriousPlayful:   rng.Intn(101),
			LuxuryAccessible: rng.Intn(101),
			ModernClassic:    rng.Intn(101),
			BoldSubtle:       rng.Intn(101),
			WarmCool:         rng.Intn(101),
		}
		d.Composition = dna.MapPersonalityToComposition(d.Personality, d.ColorRelationships)
		d.Layout = dna.CompositionToLayout(d.Composition)

		themes := Generate(d)
		if len(themes) != 3 {
			t.Fatalf("iteration %d: got %d themes", i, len(themes))
		}
		seen := map[Category]bool{}
		for _, th := range themes {
			seen[th.Category] = true
		}
		if len(seen) != 3 {
			t.Fatalf("iteration %d: categories not distinct: %v", i, seen)
		}
	}
}

func TestBrandFaithful_DirectTranslation(t *testing.T) {
	d := sampleDNA()
	th := buildBrandFaithful(d)

	if th.Colors.Background != d.Style.Colors.Background || th.Colors.Text != d.Style.Colors.Text {
		t.Errorf("colors changed: %+v", th.Colors)
	}
	if th.Colors.Accent != "#f4a261" {
		t.Errorf("accent = %s, want DNA accent", th.Colors.Accent)
	}
	if th.Layout.BorderRadius != d.Layout.BorderRadius || th.Layout.Padding != d.Layout.Padding {
		t.Errorf("layout diverged from DNA: %+v vs %+v", th.Layout, d.Layout)
	}
	if th.Pattern.Confidence != 92 {
		t.Errorf("confidence = %d, want 92", th.Pattern.Confidence)
	}
}

func TestBrandFaithful_HeadingSizeFromDynamics(t *testing.T) {
	cases := []struct {
		dy   dna.Dynamics
		want string
	}{
		{dna.DynamicsForte, "2.5rem"},
		{dna.DynamicsMezzo, "2rem"},
		{dna.DynamicsPiano, "1.75rem"},
	}
	for _, c := range cases {
		d := sampleDNA()
		d.Composition.Dynamics = c.dy
		if th := buildBrandFaithful(d); th.Typography.HeadingSize != c.want {
			t.Errorf("%s: heading size = %s, want %s", c.dy, th.Typography.HeadingSize, c.want)
		}
	}
}

func TestBrandFaithful_GlitchOnSyncopated(t *testing.T) {
	d := sampleDNA()
	d.Composition.Rhythm = dna.RhythmSyncopated
	if th := buildBrandFaithful(d); th.Decoration != DecorationGlitch {
		t.Errorf("decoration = %s, want glitch for syncopated rhythm", th.Decoration)
	}
	d.Composition.Rhythm = dna.RhythmLegato
	if th := buildBrandFaithful(d); th.Decoration != DecorationNone {
		t.Errorf("decoration = %s, want none for legato rhythm", th.Decoration)
	}
}

func TestHarmoniousRemix_ShiftedComposition(t *testing.T) {
	d := sampleDNA()
	d.Composition.Rhythm = dna.RhythmStaccato
	d.Composition.Dynamics = dna.DynamicsForte

	th := buildHarmoniousRemix(d)
	if th.Composition.Rhythm != dna.RhythmLegato {
		t.Errorf("rhythm = %s, want one step along the cycle", th.Composition.Rhythm)
	}
	if th.Composition.Dynamics != dna.DynamicsMezzo {
		t.Errorf("dynamics = %s, want forte flipped to mezzo", th.Composition.Dynamics)
	}
	// Layout comes from the shifted rules: legato reads rounded, not square.
	if th.Layout.BorderRadius != styleprobe.CornerRounded {
		t.Errorf("border radius = %s, want rounded from shifted rhythm", th.Layout.BorderRadius)
	}
	if th.Layout.Alignment != "center" {
		t.Errorf("alignment = %s, want forced center", th.Layout.Alignment)
	}
}

func TestHarmoniousRemix_SecondaryBackgroundOnLightBrand(t *testing.T) {
	d := sampleDNA() // white background
	th := buildHarmoniousRemix(d)
	if th.Colors.Background != "#457b9d" {
		t.Errorf("background = %s, want DNA secondary", th.Colors.Background)
	}
	if th.Colors.Text != "#ffffff" {
		t.Errorf("text = %s, want white over the dark secondary", th.Colors.Text)
	}
}

func TestDisruptiveContrast_DarkBrandInverts(t *testing.T) {
	// WHAT: Dark source backgrounds flip to the light neutral pair.
	d := sampleDNA()
	d.Style.Colors.Background = "#111827"
	th := buildDisruptiveContrast(d)

	if th.Colors.Background != "#f8fafc" || th.Colors.Text != "#0f172a" {
		t.Errorf("colors = %+v, want #f8fafc/#0f172a inversion", th.Colors)
	}
	if th.Colors.Accent != d.Style.Colors.Primary {
		t.Errorf("accent = %s, want original primary", th.Colors.Accent)
	}
	if th.Typography.HeadingSize != "2.75rem" {
		t.Errorf("heading size = %s, want fixed 2.75rem", th.Typography.HeadingSize)
	}
	if th.Layout.BorderRadius != styleprobe.CornerSquare || th.Decoration != DecorationNone {
		t.Errorf("treatment = %+v/%s, want square and undecorated", th.Layout, th.Decoration)
	}
}

func TestDisruptiveContrast_SeriousBrandGoesNearBlack(t *testing.T) {
	d := sampleDNA()
	d.Personality.SeriousPlayful = 20
	th := buildDisruptiveContrast(d)
	if th.Colors.Background != "#0a0a0a" || th.Colors.Text != "#ffffff" {
		t.Errorf("colors = %+v, want near-black stage", th.Colors)
	}
}

func TestDisruptiveContrast_PrimaryAsStage(t *testing.T) {
	d := sampleDNA()
	d.Personality.SeriousPlayful = 60
	th := buildDisruptiveContrast(d)
	if th.Colors.Background != d.Style.Colors.Primary {
		t.Errorf("background = %s, want primary as stage", th.Colors.Background)
	}
	if th.Colors.Text != "#ffffff" {
		// #e63946 reads dark enough for white text.
		t.Errorf("text = %s, want white over primary", th.Colors.Text)
	}
	if th.Composition.Rhythm != dna.RhythmStaccato || th.Composition.Dynamics != dna.DynamicsForte || th.Composition.Tempo != dna.TempoAllegro {
		t.Errorf("composition = %+v, want forced staccato/forte/allegro", th.Composition)
	}
}

func TestInferPattern_NeonThreshold(t *testing.T) {
	p := dna.Personality{BoldSubtle: 20, ModernClassic: 20, LuxuryAccessible: 50, SeriousPlayful: 50}
	if got := inferPattern(p); got != "neon" {
		t.Errorf("pattern = %q, want neon", got)
	}
}
