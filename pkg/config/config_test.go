package config

import "testing"

func TestLoadReadsDebugFlag(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"enabled", "true", true},
		{"disabled", "false", false},
		{"unset", "", false},
		{"other value", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEBUG", tt.value)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Debug != tt.want {
				t.Errorf("Debug = %v, want %v", cfg.Debug, tt.want)
			}
		})
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isTruthy(tt.value); got != tt.want {
			t.Errorf("isTruthy(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
