package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FieldKind names the JSON type expected for a structured output field.
type FieldKind string

const (
	KindString      FieldKind = "string"
	KindNumber      FieldKind = "number"
	KindBoolean     FieldKind = "boolean"
	KindStringArray FieldKind = "string-array"
)

// Field describes one expected field of a structured response.
type Field struct {
	Name        string
	Kind        FieldKind
	Description string
}

// Shape is a declarative description of the JSON object the model must
// return. It renders the schema into the prompt and validates the reply.
type Shape struct {
	Fields []Field
}

// PromptBlock renders the schema instructions appended to a user prompt.
func (s Shape) PromptBlock() string {
	var b strings.Builder
	b.WriteString("Output ONLY a valid JSON object matching this exact schema:\n{\n")
	for i, f := range s.Fields {
		b.WriteString(fmt.Sprintf("  %q: <%s>", f.Name, f.Kind))
		if i < len(s.Fields)-1 {
			b.WriteString(",")
		}
		if f.Description != "" {
			b.WriteString("  // " + f.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("}\nOutput ONLY the JSON, no markdown, no explanations.")
	return b.String()
}

// Decode parses a JSON object and checks every declared field is present
// with the declared kind. Undeclared fields are ignored.
func (s Shape) Decode(jsonStr string) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		v, ok := raw[f.Name]
		if !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrInvalidResponse, f.Name)
		}

		switch f.Kind {
		case KindString:
			str, ok := v.(string)
			if !ok {
				return nil, kindError(f, v)
			}
			out[f.Name] = str
		case KindNumber:
			n, ok := v.(float64)
			if !ok {
				return nil, kindError(f, v)
			}
			out[f.Name] = n
		case KindBoolean:
			bv, ok := v.(bool)
			if !ok {
				return nil, kindError(f, v)
			}
			out[f.Name] = bv
		case KindStringArray:
			arr, ok := v.([]any)
			if !ok {
				return nil, kindError(f, v)
			}
			strs := make([]string, 0, len(arr))
			for _, item := range arr {
				str, ok := item.(string)
				if !ok {
					return nil, kindError(f, item)
				}
				strs = append(strs, str)
			}
			out[f.Name] = strs
		default:
			return nil, fmt.Errorf("%w: unknown field kind %q", ErrInvalidResponse, f.Kind)
		}
	}

	return out, nil
}

func kindError(f Field, v any) error {
	return fmt.Errorf("%w: field %q is %T, want %s", ErrInvalidResponse, f.Name, v, f.Kind)
}
