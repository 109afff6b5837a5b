package styleprobe

import "testing"

func TestSpacing_Buckets(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		density Density
		padding PaddingScale
		radius  Corner
	}{
		{
			name:    "compact",
			src:     `.a { padding: 4px; } .b { padding: 6px 8px; } .c { border-radius: 0; }`,
			density: DensityCompact, padding: PaddingTight, radius: CornerSquare,
		},
		{
			name:    "spacious",
			src:     `.a { padding: 2rem; } .b { padding: 40px; } .c { border-radius: 9999px; }`,
			density: DensitySpacious, padding: PaddingLoose, radius: CornerPill,
		},
		{
			name:    "normal",
			src:     `.a { padding: 16px; } .c { border-radius: 8px; }`,
			density: DensityNormal, padding: PaddingNormal, radius: CornerRounded,
		},
		{
			name:    "no declarations fall back to defaults",
			src:     `<div>plain</div>`,
			density: DensityNormal, padding: PaddingNormal, radius: CornerRounded,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sp := ExtractSpacing(c.src)
			if sp.Density != c.density || sp.Padding != c.padding || sp.BorderRadius != c.radius {
				t.Errorf("got %+v, want %s/%s/%s", sp, c.density, c.radius, c.padding)
			}
		})
	}
}

func TestSpacing_RemScaling(t *testing.T) {
	// WHAT: rem/em values are converted at the 16px root size before averaging.
	sp := ExtractSpacing(`.a { padding: 0.25rem; }`) // 4px equivalent
	if sp.Density != DensityCompact {
		t.Errorf("0.25rem should read compact, got %s", sp.Density)
	}
}

func TestEffects_Detection(t *testing.T) {
	src := `
	.card { box-shadow: 0 1px 2px rgba(0,0,0,0.2); background: linear-gradient(#fff, #eee); }
	.hero { backdrop-filter: blur(12px); }
	@keyframes spin { from { transform: rotate(0) } }
	.bg { background-image: url(/img/noise-overlay.png); }`
	fx := ExtractEffects(src)
	if !fx.Shadows || !fx.Gradients || !fx.Animations || !fx.Glassmorphism || !fx.Noise {
		t.Errorf("effects = %+v, want all true", fx)
	}

	fx = ExtractEffects(`.plain { color: #333; }`)
	if fx.Shadows || fx.Gradients || fx.Animations || fx.Glassmorphism || fx.Noise {
		t.Errorf("effects on plain css = %+v, want all false", fx)
	}
}
