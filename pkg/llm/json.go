package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSONObject = errors.New("no JSON object in completion")

// Parsed is the outcome of decoding provider output. OK is false when the
// payload was malformed or failed validation; Value then holds the zero value.
type Parsed[T any] struct {
	Value T
	OK    bool
	Err   error
}

// validator is implemented by contracts that check (and may normalize)
// themselves after decoding.
type validator interface {
	Validate() error
}

// ParseJSON decodes a JSON-mode completion into T. It never returns an error
// directly: callers inspect OK and fall back to a default on failure.
func ParseJSON[T any](raw string) Parsed[T] {
	var out Parsed[T]

	body := ExtractJSONObject(raw)
	if body == "" {
		out.Err = ErrNoJSONObject
		return out
	}

	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		out.Err = fmt.Errorf("decode completion: %w", err)
		return out
	}
	if val, ok := any(&v).(validator); ok {
		if err := val.Validate(); err != nil {
			out.Err = fmt.Errorf("validate completion: %w", err)
			return out
		}
	}

	out.Value = v
	out.OK = true
	return out
}

// ExtractJSONObject strips markdown fences and returns the first balanced
// top-level JSON object in s, or "" if there is none.
func ExtractJSONObject(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	end := findMatchingBrace(s, start)
	if end == -1 {
		return ""
	}
	return s[start : end+1]
}

func findMatchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
