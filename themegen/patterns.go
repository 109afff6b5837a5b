// CLAUDE:SUMMARY Personality-threshold table naming the aesthetic family of a brand.
package themegen

import "github.com/hueloom/branddna/dna"

// inferPattern names the aesthetic family from personality thresholds.
// Checked in order: the louder, more specific reads win.
func inferPattern(p dna.Personality) string {
	switch {
	case p.BoldSubtle < 30 && p.ModernClassic < 30:
		return "neon"
	case p.ModernClassic > 70 && p.LuxuryAccessible < 40:
		return "editorial"
	case p.LuxuryAccessible < 30:
		return "luxe"
	case p.SeriousPlayful > 70:
		return "pop"
	case p.BoldSubtle > 70:
		return "minimal"
	default:
		return "clean"
	}
}
