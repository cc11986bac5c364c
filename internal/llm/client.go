package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Param describes one parameter of a tool. Type is a JSON Schema primitive
// ("string" or "integer").
type Param struct {
	Type        string
	Description string
}

// Tool is a function the model may invoke during a turn. Run receives the
// model-supplied arguments and must not fail: error outcomes are encoded in
// the returned payload, which goes back to the model verbatim. The driver
// never retries a tool call.
type Tool struct {
	Name        string
	Description string
	Params      map[string]Param
	Run         func(ctx context.Context, args map[string]any) any
}

// FunctionCall records one tool invocation and the payload it produced
type FunctionCall struct {
	Name     string
	Args     map[string]any
	Response any
}

// Event is one entry in the ordered record of a turn: either a piece of text
// the model produced or a completed tool invocation. Exactly one field is set.
type Event struct {
	Text string
	Call *FunctionCall
}

// Turn is the full ordered record of one model interaction cycle
type Turn struct {
	Events []Event
}

// ChatRequest describes one turn: system-level instructions, the user
// message, and the tools available to the model.
type ChatRequest struct {
	System  string
	Message string
	Tools   []Tool
}

// Client is an abstraction over LLM providers
type Client interface {
	// Chat runs one tool-enabled conversation turn and returns its ordered
	// event record
	Chat(ctx context.Context, req ChatRequest) (*Turn, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return NewGeminiClient(ctx, config, apiKey)
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Chat runs one conversation turn against Gemini. Function calls coming back
// from the model are dispatched to the matching Tool and their payloads are
// sent back as function responses until the model stops calling tools or the
// round cap is reached. Every text part and tool exchange is appended to the
// turn record in the order the model produced it.
func (c *GeminiClient) Chat(ctx context.Context, req ChatRequest) (*Turn, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)
	model.SetTopP(c.config.TopP)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	handlers := make(map[string]Tool, len(req.Tools))
	for _, tool := range req.Tools {
		handlers[tool.Name] = tool
	}
	model.Tools = declareTools(req.Tools)

	session := model.StartChat()
	turn := &Turn{}

	parts := []genai.Part{genai.Text(req.Message)}
	for round := 0; round <= c.config.MaxToolRounds; round++ {
		resp, err := session.SendMessage(ctx, parts...)
		if err != nil {
			return nil, fmt.Errorf("model call failed: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return nil, fmt.Errorf("no candidates in response")
		}

		var calls []genai.FunctionCall
		for _, part := range resp.Candidates[0].Content.Parts {
			switch p := part.(type) {
			case genai.Text:
				if string(p) != "" {
					turn.Events = append(turn.Events, Event{Text: string(p)})
				}
			case genai.FunctionCall:
				calls = append(calls, p)
			}
		}

		if len(calls) == 0 {
			return turn, nil
		}

		parts = parts[:0]
		for _, fc := range calls {
			tool, ok := handlers[fc.Name]
			if !ok {
				return nil, fmt.Errorf("model invoked unknown tool %q", fc.Name)
			}
			payload := tool.Run(ctx, fc.Args)
			turn.Events = append(turn.Events, Event{Call: &FunctionCall{
				Name:     fc.Name,
				Args:     fc.Args,
				Response: payload,
			}})
			parts = append(parts, genai.FunctionResponse{
				Name:     fc.Name,
				Response: toResponseMap(payload),
			})
		}
	}

	// Round cap hit while the model was still calling tools; return what
	// the turn produced so far.
	return turn, nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// declareTools converts Tool definitions into genai function declarations
func declareTools(tools []Tool) []*genai.Tool {
	if len(tools) == 0 {
		return nil
	}

	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		props := make(map[string]*genai.Schema, len(tool.Params))
		for name, p := range tool.Params {
			props[name] = &genai.Schema{
				Type:        schemaType(p.Type),
				Description: p.Description,
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
			},
		})
	}

	return []*genai.Tool{{FunctionDeclarations: decls}}
}

func schemaType(t string) genai.Type {
	switch t {
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}

// toResponseMap renders a tool payload as the map the genai API requires for
// function responses, via a JSON round trip.
func toResponseMap(payload any) map[string]any {
	data, err := json.Marshal(payload)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("failed to encode tool result: %v", err)}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{"result": string(data)}
	}
	return out
}
