package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("chat.json", "system")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "search_jobs")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("chat.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_UserDetails(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet("chat.json", "user-details")
		assert.Contains(t, prompt, "{{.Skills}}")
	})
}

func TestFormat(t *testing.T) {
	template := "Role: {{.Role}}, City: {{.City}}"
	data := map[string]string{
		"Role": "Actor",
		"City": "Los Angeles",
	}

	result := Format(template, data)
	assert.Equal(t, "Role: Actor, City: Los Angeles", result)
}

func TestFormat_MissingKeyLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{})
	assert.Equal(t, "Hello {{.Name}}", result)
}
