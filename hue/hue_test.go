package hue

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#FFCC00", "#ffcc00", true},
		{"#fc0", "#ffcc00", true},
		{"1f2937", "#1f2937", true},
		{"rgb(255, 204, 0)", "#ffcc00", true},
		{"rgba(17, 34, 51, 0.5)", "#112233", true},
		{"rgb(300,0,0)", "", false},
		{"transparent", "", false},
		{"var(--primary)", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := Normalize(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("Normalize(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestBrightness(t *testing.T) {
	// WHAT: Brightness endpoints and midpoints land where luma says they should.
	// WHY: The classifier's noise gate (<=20, >=235) depends on these exact values.
	if b := Brightness("#000000"); b != 0 {
		t.Errorf("black brightness = %d, want 0", b)
	}
	if b := Brightness("#ffffff"); b != 255 {
		t.Errorf("white brightness = %d, want 255", b)
	}
	if b := Brightness("#1f2937"); b > 50 {
		t.Errorf("dark slate brightness = %d, want < 50", b)
	}
}

func TestSaturation(t *testing.T) {
	if s := Saturation("#808080"); s != 0 {
		t.Errorf("grey saturation = %f, want 0", s)
	}
	if s := Saturation("#ff0000"); s != 1 {
		t.Errorf("red saturation = %f, want 1", s)
	}
}

func TestRelationship(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"#ff0000", "#00ffff", "complementary"}, // 0 vs 180
		{"#ff0000", "#00ff00", "triadic"},       // 0 vs 120
		{"#ff0000", "#ff8800", "analogous"},
		{"#888888", "#ff0000", "monochromatic"}, // grey pairs with anything
	}
	for _, c := range cases {
		if got := Relationship(c.a, c.b); got != c.want {
			t.Errorf("Relationship(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestContrast(t *testing.T) {
	if got := Contrast("#000000", "#ffffff"); got != "high" {
		t.Errorf("black/white contrast = %s, want high", got)
	}
	if got := Contrast("#888888", "#999999"); got != "low" {
		t.Errorf("near-grey contrast = %s, want low", got)
	}
}

func TestForegroundFor(t *testing.T) {
	if got := ForegroundFor("#111111"); got != "#ffffff" {
		t.Errorf("dark bg foreground = %s, want #ffffff", got)
	}
	if got := ForegroundFor("#f8fafc"); got != "#000000" {
		t.Errorf("light bg foreground = %s, want #000000", got)
	}
}
