package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJobSearchResult_WireShape verifies the payload the model receives:
// echoed filters with the limit, a count, and no error field on success.
func TestJobSearchResult_WireShape(t *testing.T) {
	title := "actor"
	result := JobSearchResult{
		Jobs:           []JobSummary{{Title: "Stage Actor"}},
		TotalFound:     1,
		FiltersApplied: AppliedFilters{JobFilter: JobFilter{Title: &title}, Limit: jobSearchLimit},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, float64(1), decoded["total_found"])
	assert.NotContains(t, decoded, "error")

	filters, ok := decoded["filters_applied"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "actor", filters["title"])
	assert.Equal(t, float64(10), filters["limit"])
	assert.NotContains(t, filters, "min_salary")
}

// TestJobSearchResult_DegradedShape verifies a failed search still serializes
// as a valid result: empty jobs array (not null), zero count, error text.
func TestJobSearchResult_DegradedShape(t *testing.T) {
	result := JobSearchResult{
		Jobs:           []JobSummary{},
		FiltersApplied: AppliedFilters{Limit: jobSearchLimit},
		Error:          "connection refused",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"jobs":[]`)
	assert.Contains(t, string(data), `"total_found":0`)
	assert.Contains(t, string(data), `"error":"connection refused"`)
}

// TestLocationSentinel pins the profile fallback value
func TestLocationSentinel(t *testing.T) {
	assert.Equal(t, "Not specified", locationNotSpecified)
}
