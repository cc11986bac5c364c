// Package llm provides centralized LLM configuration and client abstractions.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the chat agent
type Config struct {
	Provider Provider
	// Model is the chat model name
	Model string
	// Temperature and TopP are applied to every turn
	Temperature float32
	TopP        float32
	// MaxToolRounds bounds the number of tool-call exchanges in one turn
	MaxToolRounds int
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider:      ProviderGemini,
		Model:         "gemini-2.5-flash",
		Temperature:   0.1,
		TopP:          0.95,
		MaxToolRounds: 4,
	}
}

// WithModel returns a copy of the config using a specific model
func (c *Config) WithModel(model string) *Config {
	out := *c
	out.Model = model
	return &out
}
