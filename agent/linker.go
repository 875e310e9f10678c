package agent

import (
	"context"

	"google.golang.org/genai"
)

const linkerInstruction = `You are the connection assistant of a portfolio
aggregation product. The user links third-party financial platforms (brokers,
banks, retirement plans) and some connections fail. Use the link_status
function to inspect the current connection ledger, explain failures in plain
language, and suggest concrete next steps (retry, provide an OTP or API key,
check the platform's own status page). Be brief.`

// NewLinker creates the expert that assists with platform connections.
// snapshot returns the current connection ledger rendered as text; it is
// called every time the model asks for the link status.
func NewLinker(snapshot func() string) *Expert {
	e := &Expert{
		Name:      "linker",
		ModelName: "gemini-2.5-flash",
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: linkerInstruction}}},
			Tools: []*genai.Tool{{
				FunctionDeclarations: []*genai.FunctionDeclaration{{
					Name:        "link_status",
					Description: "Returns the current platform connection ledger with per-platform statuses and failure reasons.",
					Parameters: &genai.Schema{
						Type:       genai.TypeObject,
						Properties: map[string]*genai.Schema{},
					},
				}},
			}},
		},
	}
	e.Library = func(_ context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		resp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}
		if call.Name != "link_status" {
			resp.Response = map[string]any{"error": "unknown function " + call.Name}
			return resp
		}
		resp.Response = map[string]any{"output": snapshot()}
		return resp
	}
	return e
}
