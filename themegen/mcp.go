package themegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hueloom/branddna/dna"
	"github.com/hueloom/branddna/kit"
)

// DNASource builds brand profiles. Satisfied by *dna.Builder.
type DNASource interface {
	ExtractBrandDNA(ctx context.Context, url string) *dna.BrandDNA
}

type generateReq struct {
	URL string `json:"url"`
}

type generateResp struct {
	DNA    *dna.BrandDNA    `json:"dna"`
	Themes []TemporaryTheme `json:"themes"`
}

// RegisterMCP registers the theme generation tool on an MCP server.
func RegisterMCP(srv *mcp.Server, src DNASource) {
	tool := &mcp.Tool{
		Name:        "theme_generate",
		Description: "Generate three theme variations (brand faithful, harmonious remix, disruptive contrast) from a website's brand identity.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"url": map[string]any{"type": "string", "description": "Website URL to theme"},
			},
			"required": []string{"url"},
		},
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*generateReq)
		if r.URL == "" {
			return nil, fmt.Errorf("url is required")
		}
		d := src.ExtractBrandDNA(ctx, r.URL)
		return &generateResp{DNA: d, Themes: Generate(d)}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r generateReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
