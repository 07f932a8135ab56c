package model

import (
	"encoding/json"
	"testing"
)

func TestPostIDUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PostID
		wantErr bool
	}{
		{name: "string id", input: `"42"`, want: "42"},
		{name: "numeric id", input: `42`, want: "42"},
		{name: "opaque id", input: `"65a1f0c2e4b0"`, want: "65a1f0c2e4b0"},
		{name: "null id", input: `null`, want: ""},
		{name: "object id", input: `{"x":1}`, wantErr: true},
		{name: "bool id", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id PostID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if id != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, id)
			}
		})
	}
}

func TestPostDecodesAPIPayload(t *testing.T) {
	payload := `{"id":"42","title":"Hello","short_ans":"Intro","description":"# Hi","category":"News"}`

	var post Post
	if err := json.Unmarshal([]byte(payload), &post); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := Post{ID: "42", Title: "Hello", ShortAns: "Intro", Description: "# Hi", Category: CategoryNews}
	if post != want {
		t.Errorf("Expected %+v, got %+v", want, post)
	}
}

func TestPostUpdateEncoding(t *testing.T) {
	update := PostUpdate{Title: "Hello", ShortAns: "Intro", Description: "# Hi", Category: CategoryNews}

	data, err := json.Marshal(update)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := `{"title":"Hello","short_ans":"Intro","description":"# Hi","category":"News"}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

func TestCategories(t *testing.T) {
	t.Run("Fixed order", func(t *testing.T) {
		want := []Category{"Programming", "Technology", "Lifestyle", "News"}
		got := Categories()
		if len(got) != len(want) {
			t.Fatalf("Expected %d categories, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Expected %q at %d, got %q", want[i], i, got[i])
			}
		}
	})

	t.Run("Returned slice is a copy", func(t *testing.T) {
		got := Categories()
		got[0] = "Mutated"
		if Categories()[0] != CategoryProgramming {
			t.Error("Expected categories to be unaffected by caller mutation")
		}
	})

	t.Run("Parse", func(t *testing.T) {
		if c, err := ParseCategory("Lifestyle"); err != nil || c != CategoryLifestyle {
			t.Errorf("Expected Lifestyle, got %q (%v)", c, err)
		}
		if _, err := ParseCategory("lifestyle"); err == nil {
			t.Error("Expected categories to be case sensitive")
		}
		if _, err := ParseCategory(""); err == nil {
			t.Error("Expected empty category to be rejected")
		}
	})
}
