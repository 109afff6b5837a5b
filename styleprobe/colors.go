// CLAUDE:SUMMARY Context-scored color extraction: ordered weighted regex rules over raw HTML+CSS, highest signal first.
package styleprobe

import (
	"regexp"
	"sort"

	"github.com/hueloom/branddna/hue"
)

// maxPalette caps the returned palette length.
const maxPalette = 8

// Brightness gate: near-pure black and white are treated as noise, not
// brand signal.
const (
	minBrightness = 20
	maxBrightness = 235
)

// colorRule is one weighted pattern. Rules are applied in order, highest
// signal first; every match adds weight to the same candidate and records
// the rule's contexts.
type colorRule struct {
	pattern  *regexp.Regexp
	weight   int
	contexts []ColorContext
}

var colorRules = []colorRule{
	// 1. Explicit brand meta tags. Both attribute orders occur in the wild.
	{regexp.MustCompile(`(?is)<meta[^>]+name=["'](?:theme-color|msapplication-TileColor)["'][^>]*content=["']([^"']+)["']`), 30, []ColorContext{ContextMeta}},
	{regexp.MustCompile(`(?is)<meta[^>]+content=["']([^"']+)["'][^>]*name=["'](?:theme-color|msapplication-TileColor)["']`), 30, []ColorContext{ContextMeta}},

	// 2. Brand-semantic custom properties.
	{regexp.MustCompile(`(?i)--(?:primary|brand)[\w-]*\s*:\s*([^;}]+)`), 25, []ColorContext{ContextVariable, ContextAccent}},
	{regexp.MustCompile(`(?i)--accent[\w-]*\s*:\s*([^;}]+)`), 25, []ColorContext{ContextVariable, ContextAccent}},
	{regexp.MustCompile(`(?i)--(?:bg|background)[\w-]*\s*:\s*([^;}]+)`), 20, []ColorContext{ContextVariable, ContextBackground}},
	{regexp.MustCompile(`(?i)--(?:text|foreground|fg)[\w-]*\s*:\s*([^;}]+)`), 20, []ColorContext{ContextVariable, ContextText}},
	{regexp.MustCompile(`(?i)--[\w-]*color[\w-]*\s*:\s*([^;}]+)`), 15, []ColorContext{ContextVariable}},

	// 3. Selector-scoped declarations.
	{regexp.MustCompile(`(?is)(?:^|[}\s,])(?:body|html|:root)[^{}]*\{[^}]*?background(?:-color)?\s*:\s*([^;}]+)`), 20, []ColorContext{ContextBackground}},
	{regexp.MustCompile(`(?is)(?:^|[}\s,])(?:body|html)[^{}]*\{(?:[^}]*?[;\s])?color\s*:\s*([^;}]+)`), 20, []ColorContext{ContextText}},
	{regexp.MustCompile(`(?is)(?:^|[}\s,])(?:button|\.btn[\w-]*|\.button[\w-]*|\.cta[\w-]*|\.primary[\w-]*)[^{}]*\{[^}]*?background(?:-color)?\s*:\s*([^;}]+)`), 15, []ColorContext{ContextAccent}},

	// 4. Generic declarations anywhere.
	{regexp.MustCompile(`(?i)background-color\s*:\s*([^;}]+)`), 5, []ColorContext{ContextBackground}},
	{regexp.MustCompile(`(?i)background\s*:\s*([^;}]+)`), 5, []ColorContext{ContextBackground}},
	{regexp.MustCompile(`(?i)[;{\s]color\s*:\s*([^;}]+)`), 3, []ColorContext{ContextText}},
	{regexp.MustCompile(`(?i)border[^:;{}]*:\s*([^;}]+)`), 2, []ColorContext{ContextBorder}},

	// 5. Legacy and data attributes.
	{regexp.MustCompile(`(?i)\bbgcolor=["']?([#\w(),\s]+)["']?`), 5, []ColorContext{ContextBackground}},
	{regexp.MustCompile(`(?i)\bdata-(?:color|bg|accent)=["']([^"']+)["']`), 5, []ColorContext{ContextAccent}},
}

// ScanColors runs every rule over the combined HTML+CSS source and returns
// the candidate map keyed by normalised hex. It never fails: garbage in,
// empty map out.
func ScanColors(source string) map[string]*ColorCandidate {
	cands := make(map[string]*ColorCandidate)

	admit := func(raw string, weight int, contexts []ColorContext) {
		for _, hex := range hue.Literals(raw) {
			if b := hue.Brightness(hex); b <= minBrightness || b >= maxBrightness {
				continue
			}
			c, ok := cands[hex]
			if !ok {
				c = &ColorCandidate{Hex: hex, Contexts: make(map[ColorContext]bool)}
				cands[hex] = c
			}
			c.Score += weight
			for _, ctx := range contexts {
				c.Contexts[ctx] = true
			}
		}
	}

	for _, rule := range colorRules {
		for _, m := range rule.pattern.FindAllStringSubmatch(source, -1) {
			admit(m[1], rule.weight, rule.contexts)
		}
	}

	// 6. Bulk scan of the remaining literals, weight 1, no context. Hexes a
	// rule already scored are left alone.
	for _, hex := range hue.Literals(source) {
		if _, scored := cands[hex]; scored {
			continue
		}
		admit(hex, 1, nil)
	}

	return cands
}

// TopPalette orders candidates by accumulated score (hex ascending on ties,
// for determinism) and returns at most maxPalette entries.
func TopPalette(cands map[string]*ColorCandidate) []string {
	list := make([]*ColorCandidate, 0, len(cands))
	for _, c := range cands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Score != list[j].Score {
			return list[i].Score > list[j].Score
		}
		return list[i].Hex < list[j].Hex
	})
	if len(list) > maxPalette {
		list = list[:maxPalette]
	}
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Hex
	}
	return out
}

// ClassifyColor assigns a role to a palette color. Recorded context wins:
// accent/meta usage marks a brand color, background and text usage mark
// their roles. Without context the call falls back to brightness and
// saturation heuristics. Deterministic for a given hex + context set.
func ClassifyColor(hex string, cand *ColorCandidate) Role {
	if cand != nil {
		switch {
		case cand.Contexts[ContextAccent] || cand.Contexts[ContextMeta]:
			return RoleAccent
		case cand.Contexts[ContextBackground]:
			return RoleBackground
		case cand.Contexts[ContextText]:
			return RoleText
		}
	}
	switch b := hue.Brightness(hex); {
	case b < 50:
		return RoleText
	case b > 200:
		return RoleBackground
	case hue.Saturation(hex) > 0.3:
		return RoleAccent
	default:
		return RoleBackground
	}
}
