package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{Path: "/chat", Method: "POST", Limit: 3, Window: time.Minute, Burst: 3},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	}
}

// TestAllow_WithinBurst verifies requests inside the burst capacity pass
func TestAllow_WithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/chat", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 3, info.Limit)
	}
}

// TestAllow_ExhaustedBucket verifies the request after the burst is rejected
// with a retry hint.
func TestAllow_ExhaustedBucket(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("1.2.3.4", "/chat", "POST")
	}

	allowed, info := l.Allow("1.2.3.4", "/chat", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

// TestAllow_ClientsIsolated verifies one client exhausting its bucket does
// not affect another.
func TestAllow_ClientsIsolated(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 4; i++ {
		l.Allow("1.2.3.4", "/chat", "POST")
	}

	allowed, _ := l.Allow("5.6.7.8", "/chat", "POST")
	assert.True(t, allowed)
}

// TestAllow_HealthUnlimited verifies the health probe is never limited
func TestAllow_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

// TestAllow_Disabled verifies a disabled limiter passes everything
func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/chat", "POST")
		require.True(t, allowed)
	}
}

// TestAllow_DefaultRule verifies unmatched paths fall back to the default
func TestAllow_DefaultRule(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("1.2.3.4", "/something-else", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

// TestMatchRule_MethodMismatch verifies a rule only applies to its method
func TestMatchRule_MethodMismatch(t *testing.T) {
	cfg := testConfig()

	rule := cfg.matchRule("/chat", "GET")
	assert.Equal(t, cfg.DefaultLimit, rule.Limit)
}

// TestMatchRule_PrefixMatch verifies trailing-slash rules prefix-match
func TestMatchRule_PrefixMatch(t *testing.T) {
	cfg := &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules:         []Rule{{Path: "/admin/", Method: "GET", Limit: 5, Window: time.Minute}},
	}

	rule := cfg.matchRule("/admin/stats", "GET")
	assert.Equal(t, 5, rule.Limit)
}

// TestLoadConfig_Defaults verifies the built-in rules
func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	require.True(t, cfg.Enabled)

	chat := cfg.matchRule("/chat", "POST")
	assert.Equal(t, 30, chat.Limit)
	assert.Equal(t, 5, chat.Burst)

	health := cfg.matchRule("/health", "GET")
	assert.Zero(t, health.Limit)
}

// TestLimiter_ManyClients exercises bucket creation under distinct clients
func TestLimiter_ManyClients(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow(fmt.Sprintf("10.0.0.%d", i), "/chat", "POST")
		require.True(t, allowed)
	}
}
