package main

import (
	"testing"

	"github.com/debemdeboas/devlog/internal/config"
)

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"Default", "", config.DefaultConfigPath},
		{"From environment", "/etc/devlog/config.yaml", "/etc/devlog/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvConfigPath, tt.env)
			if got := configPath(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
