// Package model defines core data structures and types for the blog application.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PostID is the identifier the API assigns to a post. The API sends it
// either as a JSON string or as a number.
type PostID string

func (id *PostID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PostID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("post id must be a string or a number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("post id must be a string or a number: %w", err)
	}
	*id = PostID(n.String())
	return nil
}

type Category string

const (
	CategoryProgramming Category = "Programming"
	CategoryTechnology  Category = "Technology"
	CategoryLifestyle   Category = "Lifestyle"
	CategoryNews        Category = "News"
)

var categories = []Category{
	CategoryProgramming,
	CategoryTechnology,
	CategoryLifestyle,
	CategoryNews,
}

// Categories returns the selectable categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}

type Post struct {
	ID PostID `json:"id"`

	Slug        string   `json:"slug,omitempty"`
	Title       string   `json:"title"`
	ShortAns    string   `json:"short_ans"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// PostUpdate is the body of a post update. The id travels in the path.
type PostUpdate struct {
	Title       string   `json:"title"`
	ShortAns    string   `json:"short_ans"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}
