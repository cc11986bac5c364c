package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeclareTools verifies tool definitions convert into genai function
// declarations with typed parameters.
func TestDeclareTools(t *testing.T) {
	tools := []Tool{{
		Name:        "search_jobs",
		Description: "Search job postings",
		Params: map[string]Param{
			"title":      {Type: "string", Description: "Search in job title"},
			"min_salary": {Type: "integer", Description: "Minimum salary filter"},
		},
	}}

	decls := declareTools(tools)
	require.Len(t, decls, 1)
	require.Len(t, decls[0].FunctionDeclarations, 1)

	fd := decls[0].FunctionDeclarations[0]
	assert.Equal(t, "search_jobs", fd.Name)
	assert.Equal(t, genai.TypeObject, fd.Parameters.Type)
	assert.Equal(t, genai.TypeString, fd.Parameters.Properties["title"].Type)
	assert.Equal(t, genai.TypeInteger, fd.Parameters.Properties["min_salary"].Type)
}

// TestDeclareTools_Empty verifies no declarations are emitted without tools
func TestDeclareTools_Empty(t *testing.T) {
	assert.Nil(t, declareTools(nil))
}

func TestSchemaType(t *testing.T) {
	assert.Equal(t, genai.TypeInteger, schemaType("integer"))
	assert.Equal(t, genai.TypeNumber, schemaType("number"))
	assert.Equal(t, genai.TypeBoolean, schemaType("boolean"))
	assert.Equal(t, genai.TypeString, schemaType("string"))
	assert.Equal(t, genai.TypeString, schemaType(""))
}

// TestToResponseMap verifies struct payloads round-trip into the map shape
// the function-response API requires.
func TestToResponseMap(t *testing.T) {
	payload := struct {
		Jobs  []string `json:"jobs"`
		Total int      `json:"total_found"`
	}{Jobs: []string{"a"}, Total: 1}

	out := toResponseMap(payload)
	assert.Equal(t, float64(1), out["total_found"])
	assert.Len(t, out["jobs"], 1)
}

// TestToResponseMap_NonObject verifies non-object payloads are wrapped rather
// than dropped.
func TestToResponseMap_NonObject(t *testing.T) {
	out := toResponseMap("plain text")
	assert.Equal(t, `"plain text"`, out["result"])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.InDelta(t, 0.1, cfg.Temperature, 0.001)
	assert.InDelta(t, 0.95, cfg.TopP, 0.001)
	assert.Equal(t, 4, cfg.MaxToolRounds)
}

func TestConfigWithModel(t *testing.T) {
	cfg := DefaultConfig().WithModel("gemini-2.5-pro")
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "gemini-2.5-flash", DefaultConfig().Model)
}

// TestNewGeminiClient_RequiresKey verifies client creation fails without an
// API key.
func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}
