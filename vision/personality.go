// CLAUDE:SUMMARY Model-assisted brand personality estimation from a page content digest.
package vision

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// PersonalityEstimate is the model's read of a brand's personality from
// page content. Scores run 0-100 along each axis; see the dna package for
// the axis semantics.
type PersonalityEstimate struct {
	SeriousPlayful   int    `json:"seriousPlayful"`
	LuxuryAccessible int    `json:"luxuryAccessible"`
	ModernClassic    int    `json:"modernClassic"`
	BoldSubtle       int    `json:"boldSubtle"`
	WarmCool         int    `json:"warmCool"`
	Industry         string `json:"industry"`
	Mood             string `json:"mood"`
}

const personalityPrompt = `You are scoring a brand's personality from its website content below.
Respond with ONLY a JSON object, no prose:
{
  "seriousPlayful": 0-100 (0 = very serious, 100 = very playful),
  "luxuryAccessible": 0-100 (0 = luxury, 100 = accessible),
  "modernClassic": 0-100 (0 = modern, 100 = classic),
  "boldSubtle": 0-100 (0 = bold, 100 = subtle),
  "warmCool": 0-100 (0 = warm, 100 = cool),
  "industry": "one or two words",
  "mood": "one word"
}

Website content:
`

// AnalyzePersonality asks the model to score brand personality from a
// markdown digest of page content. Scores outside 0-100 are clamped.
func (e *Extractor) AnalyzePersonality(ctx context.Context, digest string) (*PersonalityEstimate, error) {
	if digest == "" {
		return nil, fmt.Errorf("vision: empty content digest")
	}

	raw, err := e.complete(ctx, []anthropic.ContentBlockParamUnion{
		anthropic.NewTextBlock(personalityPrompt + digest),
	})
	if err != nil {
		return nil, err
	}

	body, err := extractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("vision: personality reply: %w", err)
	}

	var est PersonalityEstimate
	if err := json.Unmarshal([]byte(body), &est); err != nil {
		return nil, fmt.Errorf("vision: decode personality: %w", err)
	}
	est.clamp()
	return &est, nil
}

func (e *PersonalityEstimate) clamp() {
	for _, v := range []*int{&e.SeriousPlayful, &e.LuxuryAccessible, &e.ModernClassic, &e.BoldSubtle, &e.WarmCool} {
		if *v < 0 {
			*v = 0
		}
		if *v > 100 {
			*v = 100
		}
	}
}
