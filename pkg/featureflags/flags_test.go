package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML_DisabledByDefault(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	// Should be disabled when env var not set
	assert.False(t, manager.IsEnabled(ctx, SanitizeHTML))
}

func TestSanitizeHTML_EnabledWhenFlagSet(t *testing.T) {
	// Set environment variable
	os.Setenv("TEST_FEATURE_SANITIZE_HTML", "true")
	defer os.Unsetenv("TEST_FEATURE_SANITIZE_HTML")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, SanitizeHTML))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"false", "false", false},
		{"0", "0", false},
		{"empty", "", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FLAG", tt.value)
			defer os.Unsetenv("TEST_FLAG")
		
			manager := NewEnvManager("TEST_")
			ctx := context.Background()
		
			assert.Equal(t, tt.expected, manager.IsEnabled(ctx, "FLAG"))
		})
	}
}

func TestEnvManager_SetEnabled(t *testing.T) {
	manager := NewEnvManager("TEST_")
	ctx := context.Background()

	// Initially disabled
	assert.False(t, manager.IsEnabled(ctx, SafeURL))

	// Enable via SetEnabled
	manager.SetEnabled(SafeURL, true)
	assert.True(t, manager.IsEnabled(ctx, SafeURL))

	// Disable via SetEnabled
	manager.SetEnabled(SafeURL, false)
	assert.False(t, manager.IsEnabled(ctx, SafeURL))
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	// Set env var to true
	os.Setenv("TEST_FEATURE_CACHE_ENABLED", "true")
	defer os.Unsetenv("TEST_FEATURE_CACHE_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	// Should be true from env
	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))

	// Override to false
	manager.SetEnabled(CacheEnabled, false)

	// Override should take precedence
	assert.False(t, manager.IsEnabled(ctx, CacheEnabled))
}

func TestStaticManager(t *testing.T) {
	flags := map[FeatureFlag]bool{
		SanitizeHTML: true,
		SafeURL: false,
		DebugSnapshot:  true,
	}

	manager := NewStaticManager(flags)
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, SanitizeHTML))
	assert.False(t, manager.IsEnabled(ctx, SafeURL))
	assert.True(t, manager.IsEnabled(ctx, DebugSnapshot))
	assert.False(t, manager.IsEnabled(ctx, MetricsEnabled)) // Not in initial map
}

func TestStaticManager_SetEnabled(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	// All disabled by default
	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled))

	// Enable flag
	manager.SetEnabled(RateLimitEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))
}

func TestGetAllFlags(t *testing.T) {
	flags := map[FeatureFlag]bool{
		SanitizeHTML:     true,
		SafeURL:          false,
		DebugSnapshot:    true,
		MetricsEnabled:   false,
		RateLimitEnabled: true,
		CacheEnabled:     true,
	}

	manager := NewStaticManager(flags)
	allFlags := manager.GetAllFlags()

	assert.Equal(t, flags, allFlags)
}

func TestConcurrentAccess(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	// Run concurrent reads and writes
	done := make(chan bool)

	// Writers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				manager.SetEnabled(SanitizeHTML, j%2 == 0)
			}
			done <- true
		}()
	}

	// Readers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = manager.IsEnabled(ctx, SanitizeHTML)
			}
			done <- true
		}()
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestFeatureFlagNames(t *testing.T) {
	// Ensure flag names are what we expect
	assert.Equal(t, FeatureFlag("sanitize_html"), SanitizeHTML)
	assert.Equal(t, FeatureFlag("safe_url"), SafeURL)
	assert.Equal(t, FeatureFlag("debug_snapshot"), DebugSnapshot)
	assert.Equal(t, FeatureFlag("metrics_enabled"), MetricsEnabled)
	assert.Equal(t, FeatureFlag("rate_limit_enabled"), RateLimitEnabled)
	assert.Equal(t, FeatureFlag("cache_enabled"), CacheEnabled)
}
func TestEnvManager_Defaults(t *testing.T) {
	manager := NewEnvManagerWithDefaults("TEST_DEFAULTS_", map[FeatureFlag]bool{
		CacheEnabled: true,
	})
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))
	assert.False(t, manager.IsEnabled(ctx, MetricsEnabled))

	os.Setenv("TEST_DEFAULTS_CACHE_ENABLED", "false")
	defer os.Unsetenv("TEST_DEFAULTS_CACHE_ENABLED")

	assert.False(t, manager.IsEnabled(ctx, CacheEnabled))
}
