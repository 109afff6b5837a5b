package dna

import (
	"math/rand"
	"testing"

	"github.com/hueloom/branddna/styleprobe"
)

func TestMapPersonalityToComposition_SeriousBoldClassic(t *testing.T) {
	// WHAT: A serious, bold, classic profile on a high-contrast palette
	// reads staccato / forte / adagio.
	p := Personality{SeriousPlayful: 20, LuxuryAccessible: 40, ModernClassic: 80, BoldSubtle: 20, WarmCool: 50}
	c := MapPersonalityToComposition(p, ColorRelationships{Scheme: "analogous", Contrast: "high"})

	if c.Rhythm != RhythmStaccato {
		t.Errorf("rhythm = %s, want staccato", c.Rhythm)
	}
	if c.Dynamics != DynamicsForte {
		t.Errorf("dynamics = %s, want forte", c.Dynamics)
	}
	if c.Tempo != TempoAdagio {
		t.Errorf("tempo = %s, want adagio", c.Tempo)
	}
	if c.Harmony != HarmonyConsonant {
		t.Errorf("harmony = %s, want consonant for analogous scheme", c.Harmony)
	}
}

func TestMapPersonalityToComposition_HarmonyFromScheme(t *testing.T) {
	p := Personality{SeriousPlayful: 50, LuxuryAccessible: 50, ModernClassic: 50, BoldSubtle: 50, WarmCool: 50}
	cases := []struct {
		scheme string
		want   Harmony
	}{
		{"complementary", HarmonyDissonant},
		{"split-complementary", HarmonyDissonant},
		{"triadic", HarmonyResolved},
		{"monochromatic", HarmonyConsonant},
		{"analogous", HarmonyConsonant},
		{"contrasting", HarmonyConsonant},
	}
	for _, c := range cases {
		got := MapPersonalityToComposition(p, ColorRelationships{Scheme: c.scheme, Contrast: "medium"})
		if got.Harmony != c.want {
			t.Errorf("scheme %s: harmony = %s, want %s", c.scheme, got.Harmony, c.want)
		}
	}
}

func TestMapPersonalityToComposition_Pure(t *testing.T) {
	// WHAT: Identical inputs always produce identical rules.
	// WHY: The mapping is the contract between extraction and theme
	// generation; any hidden state here would make themes irreproducible.
	rng := rand.New(rand.NewSource(7))
	schemes := []string{"monochromatic", "analogous", "triadic", "split-complementary", "complementary", "contrasting"}
	contrasts := []string{"high", "medium", "low"}

	for i := 0; i < 200; i++ {
		p := Personality{
			SeriousPlayful:   rng.Intn(101),
			LuxuryAccessible: rng.Intn(101),
			ModernClassic:    rng.Intn(101),
			BoldSubtle:       rng.Intn(101),
			WarmCool:         rng.Intn(101),
		}
		rel := ColorRelationships{
			Scheme:   schemes[rng.Intn(len(schemes))],
			Contrast: contrasts[rng.Intn(len(contrasts))],
		}
		first := MapPersonalityToComposition(p, rel)
		for j := 0; j < 5; j++ {
			if got := MapPersonalityToComposition(p, rel); got != first {
				t.Fatalf("mapping not pure for %+v / %+v: %+v then %+v", p, rel, first, got)
			}
		}
	}
}

func TestCompositionToLayout(t *testing.T) {
	cases := []struct {
		name string
		comp CompositionRules
		want Layout
	}{
		{
			name: "allegro staccato forte",
			comp: CompositionRules{Rhythm: RhythmStaccato, Dynamics: DynamicsForte, Tempo: TempoAllegro},
			want: Layout{Density: styleprobe.DensityCompact, BorderRadius: styleprobe.CornerSquare, Padding: styleprobe.PaddingTight, Alignment: "left"},
		},
		{
			name: "adagio syncopated piano",
			comp: CompositionRules{Rhythm: RhythmSyncopated, Dynamics: DynamicsPiano, Tempo: TempoAdagio},
			want: Layout{Density: styleprobe.DensitySpacious, BorderRadius: styleprobe.CornerPill, Padding: styleprobe.PaddingLoose, Alignment: "center"},
		},
		{
			name: "andante legato mezzo",
			comp: CompositionRules{Rhythm: RhythmLegato, Dynamics: DynamicsMezzo, Tempo: TempoAndante},
			want: Layout{Density: styleprobe.DensityNormal, BorderRadius: styleprobe.CornerRounded, Padding: styleprobe.PaddingNormal, Alignment: "center"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CompositionToLayout(c.comp); got != c.want {
				t.Errorf("layout = %+v, want %+v", got, c.want)
			}
		})
	}
}
