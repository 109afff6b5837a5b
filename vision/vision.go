// CLAUDE:SUMMARY Vision-model fallback: screenshot → strict-JSON style record via the Anthropic messages API.
// Package vision extracts visual style information from page screenshots
// using a multimodal model. It is the fallback path for pages whose HTML
// carries too little signal (script-rendered SPAs, canvas-heavy sites).
package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hueloom/branddna/hue"
	"github.com/hueloom/branddna/styleprobe"
)

const (
	defaultModel   = "claude-sonnet-4-20250514"
	defaultRetries = 2
	maxTokens      = 1024
	retryBackoff   = 2 * time.Second
)

// Config configures an Extractor.
type Config struct {
	// APIKey for the Anthropic API. Required.
	APIKey string

	// Model overrides the default multimodal model.
	Model string

	// MaxRetries bounds retry attempts on transient failures.
	MaxRetries int

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultRetries
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Extractor calls the vision model.
type Extractor struct {
	cfg    Config
	client anthropic.Client
	logger *slog.Logger
}

// New creates an Extractor.
func New(cfg Config) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("vision: missing API key")
	}
	cfg.defaults()
	return &Extractor{
		cfg:    cfg,
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		logger: cfg.Logger,
	}, nil
}

const stylePrompt = `Analyze this website screenshot and extract its visual style.
Respond with ONLY a JSON object, no prose, in exactly this shape:
{
  "colors": {"primary": "#hex", "secondary": "#hex", "background": "#hex", "text": "#hex", "accent": "#hex"},
  "typography": {"headingFont": "name", "bodyFont": "name", "headingWeight": "700", "bodyWeight": "400"},
  "spacing": {"density": "compact|normal|spacious", "borderRadius": "square|rounded|pill"},
  "effects": {"shadows": true, "gradients": false, "darkMode": false},
  "aesthetic": "one or two words, e.g. minimal, brutalist, editorial"
}
Use 6-digit lowercase hex. If a value is not visible, make your best estimate from the screenshot.`

// ExtractFromScreenshot sends a PNG screenshot to the model and parses the
// returned JSON into a VisionStyle. Color fields are normalised to 6-digit
// hex; unparseable colors are dropped rather than passed through.
func (e *Extractor) ExtractFromScreenshot(ctx context.Context, png []byte) (*styleprobe.VisionStyle, error) {
	if len(png) == 0 {
		return nil, fmt.Errorf("vision: empty screenshot")
	}

	raw, err := e.complete(ctx, []anthropic.ContentBlockParamUnion{
		anthropic.NewImageBlockBase64("image/png", base64.StdEncoding.EncodeToString(png)),
		anthropic.NewTextBlock(stylePrompt),
	})
	if err != nil {
		return nil, err
	}

	body, err := extractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("vision: model reply: %w", err)
	}

	var vs styleprobe.VisionStyle
	if err := json.Unmarshal([]byte(body), &vs); err != nil {
		return nil, fmt.Errorf("vision: decode reply: %w", err)
	}
	normalizeColors(&vs.Colors)
	return &vs, nil
}

// complete runs one messages call with retries and returns the concatenated
// text blocks of the reply.
func (e *Extractor) complete(ctx context.Context, blocks []anthropic.ContentBlockParamUnion) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.cfg.Model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	}

	var lastErr error
	for attempt := 0; attempt <= e.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			e.logger.Debug("vision: retrying model call", "attempt", attempt)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(retryBackoff):
			}
		}

		msg, err := e.client.Messages.New(ctx, params)
		if err != nil {
			lastErr = err
			continue
		}

		var sb strings.Builder
		for _, block := range msg.Content {
			if block.Type == "text" {
				sb.WriteString(block.Text)
			}
		}
		if sb.Len() == 0 {
			lastErr = fmt.Errorf("empty reply")
			continue
		}
		return sb.String(), nil
	}
	return "", fmt.Errorf("vision: model call failed after %d attempts: %w", e.cfg.MaxRetries+1, lastErr)
}

// extractJSON cuts the first top-level {...} block out of a model reply,
// tolerating prose or code fences around it.
func extractJSON(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object found")
	}
	return s[start : end+1], nil
}

// normalizeColors rewrites every color field to canonical hex, blanking
// values the model got wrong.
func normalizeColors(c *styleprobe.VisionColors) {
	for _, field := range []*string{&c.Primary, &c.Secondary, &c.Background, &c.Text, &c.Accent} {
		if hex, ok := hue.Normalize(*field); ok {
			*field = hex
		} else {
			*field = ""
		}
	}
}
