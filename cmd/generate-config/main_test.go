package main

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/debemdeboas/devlog/internal/config"
)

func TestGenerate(t *testing.T) {
	out, err := generate()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.HasPrefix(string(out), "# Devlog configuration example") {
		t.Error("Expected the header comment first")
	}

	var cfg config.Config
	if err := yaml.Unmarshal(out, &cfg); err != nil {
		t.Fatalf("Generated config does not parse: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000/api/v1" {
		t.Errorf("Unexpected api.base_url %q", cfg.API.BaseURL)
	}
	if len(cfg.API.ForwardCookies) != 1 || cfg.API.ForwardCookies[0] != "token" {
		t.Errorf("Unexpected api.forward_cookies %v", cfg.API.ForwardCookies)
	}
	if cfg.About.Heading != "ABOUT ME" {
		t.Errorf("Unexpected about.heading %q", cfg.About.Heading)
	}
}
