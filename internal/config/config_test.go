package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Advisor: AdvisorConfig{
			TopRoles:    5,
			WeeklyHours: 8,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
		},
		App: AppConfig{
			LogLevel:         "info",
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown"},
			MaxFileSize:      10 * 1024 * 1024,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:        "zero top roles",
			mutate:      func(c *Config) { c.Advisor.TopRoles = 0 },
			expectError: "topRoles must be positive",
		},
		{
			name:        "negative top roles",
			mutate:      func(c *Config) { c.Advisor.TopRoles = -1 },
			expectError: "topRoles must be positive",
		},
		{
			name:        "negative weekly hours",
			mutate:      func(c *Config) { c.Advisor.WeeklyHours = -1 },
			expectError: "weeklyHours cannot be negative",
		},
		{
			name:        "missing server port",
			mutate:      func(c *Config) { c.Server.Port = "" },
			expectError: "server port is required",
		},
		{
			name:        "default format not in supported list",
			mutate:      func(c *Config) { c.App.DefaultFormat = "xml" },
			expectError: "invalid default format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expectError == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.expectError)
			}
			if !strings.Contains(err.Error(), tt.expectError) {
				t.Errorf("error = %v, want it to contain %q", err, tt.expectError)
			}
		})
	}
}

func TestApplyServerAPIKeyFallbacks(t *testing.T) {
	t.Setenv("SKILLADVISOR_SERVER_APIKEYS", "env-key-1, env-key-2")

	cfg := validConfig()
	cfg.applyFallbacks()

	if len(cfg.Server.APIKeys) != 2 {
		t.Fatalf("expected 2 API keys from environment, got %v", cfg.Server.APIKeys)
	}
	if cfg.Server.APIKeys[0] != "env-key-1" || cfg.Server.APIKeys[1] != "env-key-2" {
		t.Errorf("keys = %v, want trimmed env values", cfg.Server.APIKeys)
	}
}

func TestApplyServerAPIKeyFallbacksKeepsConfigured(t *testing.T) {
	t.Setenv("SKILLADVISOR_SERVER_APIKEYS", "env-key")

	cfg := validConfig()
	cfg.Server.APIKeys = []string{"configured-key"}
	cfg.applyFallbacks()

	if len(cfg.Server.APIKeys) != 1 || cfg.Server.APIKeys[0] != "configured-key" {
		t.Errorf("configured keys should win over environment, got %v", cfg.Server.APIKeys)
	}
}

func TestApplyObservabilityDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Observability.ServiceName = "skilladvisor"
	cfg.applyFallbacks()

	if cfg.Observability.ServiceInstance == "" {
		t.Error("expected a generated service instance ID")
	}
	if !strings.HasPrefix(cfg.Observability.ServiceInstance, "skilladvisor-") {
		t.Errorf("instance = %q, want skilladvisor- prefix", cfg.Observability.ServiceInstance)
	}
}

func TestDebugLogLevelEnablesConsoleOutput(t *testing.T) {
	cfg := validConfig()
	cfg.App.LogLevel = "debug"
	cfg.applyFallbacks()

	if !cfg.Observability.ConsoleOutput {
		t.Error("debug log level should enable observability console output")
	}
}
