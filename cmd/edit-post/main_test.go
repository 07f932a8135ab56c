package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/debemdeboas/devlog/internal/apiclient"
	"github.com/debemdeboas/devlog/internal/config"
)

func newAPI(t *testing.T, patched *map[string]string) *apiclient.Client {
	t.Helper()
	return newAPIWithCookie(t, patched, "token")
}

func newAPIWithCookie(t *testing.T, patched *map[string]string, cookieName string) *apiclient.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /post/hello-world", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"42","title":"Hello","short_ans":"Intro","description":"# Hi","category":"News"}}`))
	})
	mux.HandleFunc("PATCH /post/42", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(cookieName); err != nil || c.Value != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Please log in"}`))
			return
		}
		json.NewDecoder(r.Body).Decode(patched)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, apiclient.WithHTTPClient(srv.Client()))
}

func TestRun(t *testing.T) {
	t.Run("Applies overrides and submits", func(t *testing.T) {
		var patched map[string]string
		client := newAPI(t, &patched)

		descFile := filepath.Join(t.TempDir(), "post.md")
		os.WriteFile(descFile, []byte("## Updated"), 0o644)

		var out bytes.Buffer
		code := run(context.Background(), client, options{
			Slug:            "hello-world",
			Title:           "Hello again",
			DescriptionFile: descFile,
			Category:        "Technology",
			Token:           "secret",
		}, &out)

		if code != 0 {
			t.Fatalf("Expected exit code 0, got %d: %s", code, out.String())
		}
		if !strings.Contains(out.String(), "Edited success!") {
			t.Errorf("Expected success toast, got %q", out.String())
		}
		want := map[string]string{"title": "Hello again", "short_ans": "Intro", "description": "## Updated", "category": "Technology"}
		for k, v := range want {
			if patched[k] != v {
				t.Errorf("Expected %s=%q, got %q", k, v, patched[k])
			}
		}
	})

	t.Run("Server message on failure", func(t *testing.T) {
		var patched map[string]string
		client := newAPI(t, &patched)

		var out bytes.Buffer
		code := run(context.Background(), client, options{Slug: "hello-world"}, &out)

		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
		if !strings.Contains(out.String(), "Please log in") {
			t.Errorf("Expected server message, got %q", out.String())
		}
	})

	t.Run("Missing post", func(t *testing.T) {
		var patched map[string]string
		client := newAPI(t, &patched)

		var out bytes.Buffer
		code := run(context.Background(), client, options{Slug: "nope"}, &out)

		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
		if !strings.Contains(out.String(), "/dashboard") {
			t.Errorf("Expected the dashboard redirect to be reported, got %q", out.String())
		}
	})

	t.Run("Unknown category", func(t *testing.T) {
		var patched map[string]string
		client := newAPI(t, &patched)

		var out bytes.Buffer
		code := run(context.Background(), client, options{Slug: "hello-world", Category: "Sports", Token: "secret"}, &out)

		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
		if patched != nil {
			t.Error("Expected no update to be sent")
		}
	})
}

func TestRunUsesConfiguredCookie(t *testing.T) {
	saved := config.AppConfig.API.ForwardCookies
	config.AppConfig.API.ForwardCookies = []string{"session", "token"}
	t.Cleanup(func() { config.AppConfig.API.ForwardCookies = saved })

	var patched map[string]string
	client := newAPIWithCookie(t, &patched, "session")

	var out bytes.Buffer
	code := run(context.Background(), client, options{Slug: "hello-world", Token: "secret"}, &out)

	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", code, out.String())
	}
	if patched["title"] != "Hello" {
		t.Errorf("Expected the update to reach the API, got %v", patched)
	}
}

func TestCredential(t *testing.T) {
	saved := config.AppConfig.API.ForwardCookies
	t.Cleanup(func() { config.AppConfig.API.ForwardCookies = saved })

	tests := []struct {
		name     string
		forward  []string
		opts     options
		wantName string
		wantNone bool
	}{
		{"No token", []string{"token"}, options{}, "", true},
		{"First forwarded cookie", []string{"auth", "token"}, options{Token: "t"}, "auth", false},
		{"Explicit cookie name", []string{"token"}, options{Token: "t", CookieName: "jwt"}, "jwt", false},
		{"Nothing forwarded", nil, options{Token: "t"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.AppConfig.API.ForwardCookies = tt.forward

			cookie := credential(tt.opts)
			if tt.wantNone {
				if cookie != nil {
					t.Errorf("Expected no cookie, got %v", cookie)
				}
				return
			}
			if cookie == nil || cookie.Name != tt.wantName || cookie.Value != tt.opts.Token {
				t.Errorf("Expected cookie %s=%s, got %v", tt.wantName, tt.opts.Token, cookie)
			}
		})
	}
}
