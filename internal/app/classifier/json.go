package classifier

import (
	"encoding/json"
	"fmt"

	"github.com/cityhospital/assistant/internal/domain"
)

// wireResult mirrors the JSON shape the remote classifier is instructed to
// produce: a flat entities object with null for absent values.
type wireResult struct {
	Intent   string          `json:"intent"`
	Entities domain.Entities `json:"entities"`
	Reply    string          `json:"reply"`
}

// firstJSONObject returns the first balanced {...} substring of s. The scan
// is a single pass tracking brace depth, string literals, and escapes, which
// is enough to slice a JSON object out of surrounding prose; the real
// validation happens when the slice is unmarshalled.
func firstJSONObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if start < 0 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// parseRemote extracts and validates a classification from free-form model
// output.
func parseRemote(text string) (Result, error) {
	raw, ok := firstJSONObject(text)
	if !ok {
		return Result{}, fmt.Errorf("no JSON object in model response")
	}

	var wire wireResult
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return Result{}, fmt.Errorf("decode model response: %w", err)
	}

	intent := domain.Intent(wire.Intent)
	if !intent.Supported() {
		return Result{}, fmt.Errorf("unsupported intent %q in model response", wire.Intent)
	}

	return Result{
		Intent:   intent,
		Entities: wire.Entities,
		Reply:    wire.Reply,
	}, nil
}
