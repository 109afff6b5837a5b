// CLAUDE:SUMMARY Three-layer font resolution: semantic selectors, detected web fonts, then site-wide frequency.
package styleprobe

import (
	"regexp"
	"sort"
	"strings"
)

// webFontBoost pre-loads detected web fonts in the frequency tally so a
// family loaded via <link> beats incidental system-font declarations.
const webFontBoost = 50

var (
	headingFamilyRe = regexp.MustCompile(`(?is)(?:^|[}\s,])h[1-3][^{}]*\{[^}]*?font-family\s*:\s*([^;}]+)`)
	bodyFamilyRe    = regexp.MustCompile(`(?is)(?:^|[}\s,])(?:body|p|article|\.content[\w-]*|\.text[\w-]*)[^{}]*\{[^}]*?font-family\s*:\s*([^;}]+)`)
	inlineHeadingRe = regexp.MustCompile(`(?is)<h[1-3][^>]*style=["'][^"']*?font-family\s*:\s*([^;"']+)`)
	anyFamilyRe     = regexp.MustCompile(`(?i)font-family\s*:\s*([^;}]+)`)
	weightRe        = regexp.MustCompile(`(?i)font-weight\s*:\s*(\d{3}|bold|normal)`)
)

// ExtractTypography resolves heading/body fonts from combined style text.
// webFonts are family names already detected from <link> tags, in document
// order. Each layer only fills gaps the previous one left; when every layer
// comes up empty the sentinel default stack is returned.
func ExtractTypography(source string, webFonts []string) Typography {
	var heading, body string

	// Layer 1: semantic selectors and inline heading styles.
	if m := headingFamilyRe.FindStringSubmatch(source); m != nil {
		heading = cleanFamily(m[1])
	}
	if heading == "" {
		if m := inlineHeadingRe.FindStringSubmatch(source); m != nil {
			heading = cleanFamily(m[1])
		}
	}
	if m := bodyFamilyRe.FindStringSubmatch(source); m != nil {
		body = cleanFamily(m[1])
	}

	// Layer 2: detected web fonts fill remaining gaps. First family is the
	// display face; the second (or the same, if only one) covers body copy.
	if heading == "" && len(webFonts) > 0 {
		heading = webFonts[0]
	}
	if body == "" && len(webFonts) > 0 {
		if len(webFonts) > 1 {
			body = webFonts[1]
		} else {
			body = webFonts[0]
		}
	}

	// Layer 3: frequency tally across every declaration.
	if heading == "" || body == "" {
		first, second := familyByFrequency(source, webFonts)
		if body == "" {
			body = first
		}
		if heading == "" {
			heading = second
			if heading == "" {
				heading = first
			}
		}
	}

	if heading == "" {
		heading = Defaults.FontStack
	}
	if body == "" {
		body = Defaults.FontStack
	}

	headingWeight, bodyWeight := resolveWeights(source)

	return Typography{
		HeadingFont:   heading,
		BodyFont:      body,
		HeadingWeight: headingWeight,
		BodyWeight:    bodyWeight,
	}
}

// familyByFrequency tallies every font-family declaration and returns the
// two most frequent distinct families (rank 1 = body, rank 2 = heading).
func familyByFrequency(source string, webFonts []string) (first, second string) {
	counts := make(map[string]int)
	for _, m := range anyFamilyRe.FindAllStringSubmatch(source, -1) {
		fam := cleanFamily(m[1])
		if fam == "" {
			continue
		}
		counts[fam]++
	}
	for _, wf := range webFonts {
		if wf != "" {
			counts[wf] += webFontBoost
		}
	}
	if len(counts) == 0 {
		return "", ""
	}

	type entry struct {
		fam   string
		count int
	}
	list := make([]entry, 0, len(counts))
	for fam, n := range counts {
		list = append(list, entry{fam, n})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].count != list[j].count {
			return list[i].count > list[j].count
		}
		return list[i].fam < list[j].fam
	})

	first = list[0].fam
	if len(list) > 1 {
		second = list[1].fam
	}
	return first, second
}

// resolveWeights picks heading/body weights from explicit declarations,
// defaulting to 700/400.
func resolveWeights(source string) (heading, body string) {
	seen := make(map[string]bool)
	for _, m := range weightRe.FindAllStringSubmatch(source, -1) {
		seen[strings.ToLower(m[1])] = true
	}

	heading = Defaults.HeadingWeight
	switch {
	case seen["700"] || seen["bold"]:
		heading = "700"
	case seen["600"]:
		heading = "600"
	}

	body = Defaults.BodyWeight
	switch {
	case seen["400"] || seen["normal"]:
		body = "400"
	case seen["300"]:
		body = "300"
	}
	return heading, body
}

// cleanFamily normalises a raw font-family value: strips !important, var()
// indirections, wrapping quotes, and collapses whitespace. Returns the full
// declared stack, not just the first family.
func cleanFamily(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "!important", "")
	if strings.Contains(strings.ToLower(s), "var(") {
		return ""
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"'`)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, ", ")
}
