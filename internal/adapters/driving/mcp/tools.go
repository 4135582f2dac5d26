package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Utterance string `json:"utterance" jsonschema:"the question or command to resolve"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Response    string `json:"response"`
	Intent      int    `json:"intent"`
	Resolved    bool   `json:"resolved"`
	Synthesized bool   `json:"synthesized"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Resolve an utterance against the knowledge base and return the composed response",
	}, s.handleAsk)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	result, err := s.ports.Resolver.Understand(ctx, input.Utterance)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Response:    s.ports.Resolver.Respond(result),
		Intent:      result.Intent,
		Resolved:    result.Resolved(),
		Synthesized: result.Synthesized(),
	}

	return nil, output, nil
}
