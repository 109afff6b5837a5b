package vision

import (
	"encoding/json"
	"testing"

	"github.com/hueloom/branddna/styleprobe"
)

func TestExtractJSON(t *testing.T) {
	// WHAT: The parser must survive prose and code fences around the object.
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare", `{"a":1}`, `{"a":1}`, false},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, false},
		{"prose", `Here is the style: {"a":1} Hope that helps!`, `{"a":1}`, false},
		{"nested", `{"a":{"b":2}}`, `{"a":{"b":2}}`, false},
		{"none", `no object here`, "", true},
		{"empty", ``, "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := extractJSON(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestVisionStyleDecode(t *testing.T) {
	// WHAT: The model's camelCase shape maps onto VisionStyle.
	body := `{
		"colors": {"primary": "#0EA5E9", "background": "rgb(15, 23, 42)", "text": "not-a-color"},
		"typography": {"headingFont": "Sora", "bodyFont": "Karla"},
		"spacing": {"density": "compact", "borderRadius": "pill"},
		"effects": {"shadows": true, "darkMode": true}
	}`
	var vs styleprobe.VisionStyle
	if err := json.Unmarshal([]byte(body), &vs); err != nil {
		t.Fatal(err)
	}
	normalizeColors(&vs.Colors)

	if vs.Colors.Primary != "#0ea5e9" {
		t.Errorf("primary = %q, want lowercased hex", vs.Colors.Primary)
	}
	if vs.Colors.Background != "#0f172a" {
		t.Errorf("background = %q, want normalised rgb()", vs.Colors.Background)
	}
	if vs.Colors.Text != "" {
		t.Errorf("text = %q, want blank for unparseable value", vs.Colors.Text)
	}
	if vs.Typography.HeadingFont != "Sora" || !vs.Effects.DarkMode || !vs.Effects.Shadows {
		t.Errorf("decoded = %+v", vs)
	}
}

func TestPersonalityEstimateClamping(t *testing.T) {
	body := `{"seriousPlayful": 140, "boldSubtle": -10, "modernClassic": 55, "industry": "retail", "mood": "warm"}`
	var est PersonalityEstimate
	if err := json.Unmarshal([]byte(body), &est); err != nil {
		t.Fatal(err)
	}
	est.clamp()
	if est.SeriousPlayful != 100 || est.BoldSubtle != 0 || est.ModernClassic != 55 {
		t.Errorf("clamped = %+v", est)
	}
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for missing API key")
	}
	e, err := New(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatal(err)
	}
	if e.cfg.Model != defaultModel || e.cfg.MaxRetries != defaultRetries {
		t.Errorf("defaults not applied: %+v", e.cfg)
	}
}
