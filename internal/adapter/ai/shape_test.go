package ai

import (
	"errors"
	"strings"
	"testing"

	"github.com/teampulse/teampulse-backend/internal/config"
)

func disabledConfig() config.AIConfig {
	return config.AIConfig{Model: "claude-3-5-haiku-latest", MaxTokens: 1024}
}

func TestShape_Decode_AllKinds(t *testing.T) {
	t.Parallel()

	shape := Shape{Fields: []Field{
		{Name: "name", Kind: KindString},
		{Name: "score", Kind: KindNumber},
		{Name: "done", Kind: KindBoolean},
		{Name: "tags", Kind: KindStringArray},
	}}

	out, err := shape.Decode(`{"name":"alice","score":42.5,"done":true,"tags":["a","b"]}`)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if out["name"] != "alice" {
		t.Errorf("name = %v", out["name"])
	}
	if out["score"] != 42.5 {
		t.Errorf("score = %v", out["score"])
	}
	if out["done"] != true {
		t.Errorf("done = %v", out["done"])
	}
	tags, ok := out["tags"].([]string)
	if !ok || len(tags) != 2 || tags[0] != "a" {
		t.Errorf("tags = %v", out["tags"])
	}
}

func TestShape_Decode_MissingField(t *testing.T) {
	t.Parallel()

	shape := Shape{Fields: []Field{{Name: "score", Kind: KindNumber}}}

	_, err := shape.Decode(`{"rating": 5}`)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestShape_Decode_WrongKind(t *testing.T) {
	t.Parallel()

	shape := Shape{Fields: []Field{{Name: "score", Kind: KindNumber}}}

	_, err := shape.Decode(`{"score": "85"}`)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse for string score, got: %v", err)
	}
}

func TestShape_Decode_NotJSON(t *testing.T) {
	t.Parallel()

	shape := Shape{Fields: []Field{{Name: "score", Kind: KindNumber}}}

	_, err := shape.Decode(`the score is 85`)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestShape_Decode_IgnoresExtraFields(t *testing.T) {
	t.Parallel()

	shape := Shape{Fields: []Field{{Name: "score", Kind: KindNumber}}}

	out, err := shape.Decode(`{"score": 70, "reasoning": "looks fine"}`)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := out["reasoning"]; ok {
		t.Error("undeclared fields should not be returned")
	}
	if out["score"] != 70.0 {
		t.Errorf("score = %v", out["score"])
	}
}

func TestShape_PromptBlock_ListsFields(t *testing.T) {
	t.Parallel()

	shape := Shape{Fields: []Field{
		{Name: "sentiment_rating", Kind: KindNumber, Description: "rating out of 100"},
	}}

	block := shape.PromptBlock()
	if !strings.Contains(block, `"sentiment_rating"`) {
		t.Errorf("prompt block missing field name: %s", block)
	}
	if !strings.Contains(block, "number") {
		t.Errorf("prompt block missing kind: %s", block)
	}
	if !strings.Contains(block, "ONLY") {
		t.Errorf("prompt block missing output constraint: %s", block)
	}
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, false},
		{"surrounded by prose", "Here you go:\n{\"a\":1}\nDone.", `{"a":1}`, false},
		{"markdown fence", "```json\n{\"a\":1}\n```", `{"a":1}`, false},
		{"no object", "no json here", "", true},
		{"only close brace", "oops }", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := extractJSON(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractJSON: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_Disabled(t *testing.T) {
	t.Parallel()

	c := New(disabledConfig())

	if c.Available() {
		t.Fatal("client without API key should not be available")
	}

	_, err := c.Generate(t.Context(), "", "hello")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got: %v", err)
	}
}
