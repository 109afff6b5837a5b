package dna

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hueloom/branddna/kit"
	"github.com/hueloom/branddna/styleprobe"
)

// RegisterMCP registers brand extraction tools on an MCP server.
func (b *Builder) RegisterMCP(srv *mcp.Server) {
	b.registerBrandExtractTool(srv)
	b.registerStyleExtractTool(srv)
}

// toolLogging records every tool call with its transport and duration.
func (b *Builder) toolLogging(tool string) kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, req any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			b.logger.Debug("tool call", "tool", tool,
				"transport", kit.GetTransport(ctx), "duration", time.Since(start), "error", err)
			return resp, err
		}
	}
}

func enrichMCP(ctx context.Context) context.Context {
	return kit.WithTransport(ctx, "mcp")
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// --- brand_extract ---

type brandExtractReq struct {
	URL string `json:"url"`
}

func (b *Builder) registerBrandExtractTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "brand_extract",
		Description: "Build the full BrandDNA profile for a website: colors, typography, personality, composition, and layout.",
		InputSchema: inputSchema(map[string]any{
			"url": map[string]any{"type": "string", "description": "Website URL to analyse"},
		}, []string{"url"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*brandExtractReq)
		if r.URL == "" {
			return nil, fmt.Errorf("url is required")
		}
		return b.ExtractBrandDNA(ctx, r.URL), nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r brandExtractReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r, EnrichCtx: enrichMCP}, nil
	}

	kit.RegisterMCPTool(srv, tool, kit.Chain(b.toolLogging("brand_extract"))(endpoint), decode)
}

// --- style_extract ---

type styleExtractReq struct {
	URL string `json:"url"`
}

type styleExtractResp struct {
	Style   *styleprobe.StyleRecord `json:"style"`
	Quality float64                 `json:"quality"`
}

func (b *Builder) registerStyleExtractTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "style_extract",
		Description: "Extract raw colors and typography from a website's HTML and CSS, with a quality score.",
		InputSchema: inputSchema(map[string]any{
			"url": map[string]any{"type": "string", "description": "Website URL to probe"},
		}, []string{"url"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*styleExtractReq)
		if r.URL == "" {
			return nil, fmt.Errorf("url is required")
		}
		rec := b.cfg.Probe.ExtractFromURL(ctx, r.URL)
		return &styleExtractResp{Style: rec, Quality: styleprobe.AssessStyleQuality(rec)}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r styleExtractReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r, EnrichCtx: enrichMCP}, nil
	}

	kit.RegisterMCPTool(srv, tool, kit.Chain(b.toolLogging("style_extract"))(endpoint), decode)
}
