// Package jsonextract pulls a single JSON object out of free-form LLM output.
// Model responses routinely wrap the object in Markdown code fences, prepend
// explanatory prose or append trailing commentary; this package tolerates all
// of those while still requiring the object itself to be strictly valid.
package jsonextract

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when no parseable JSON object can be found in the
// input.
var ErrNoJSON = errors.New("no JSON object found in text")

// StripFences removes surrounding Markdown code-fence markers, including an
// optional "json" language tag, and trims whitespace.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
		s = strings.TrimLeft(s, " \t\r\n")
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimRight(s[:len(s)-len("```")], " \t\r\n")
	}
	return strings.TrimSpace(s)
}

// Object extracts the raw bytes of a single JSON object from s.
//
// Strategy, first success wins:
//  1. strip code fences and attempt a strict parse of the whole string
//  2. scan left-to-right for the first balanced {...} substring, tracking
//     brace depth and quoted strings, and attempt a strict parse of it
//
// Object is idempotent: feeding it its own output yields the same bytes.
func Object(s string) ([]byte, error) {
	trimmed := StripFences(s)
	if isObject(trimmed) {
		return []byte(trimmed), nil
	}
	if candidate, ok := balancedObject(trimmed); ok && isObject(candidate) {
		return []byte(candidate), nil
	}
	return nil, ErrNoJSON
}

// Unmarshal extracts a JSON object from s and decodes it into v.
func Unmarshal(s string, v any) error {
	raw, err := Object(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Join(ErrNoJSON, err)
	}
	return nil
}

// isObject reports whether s is exactly one valid JSON object with no
// trailing content.
func isObject(s string) bool {
	if !strings.HasPrefix(strings.TrimSpace(s), "{") {
		return false
	}
	var m map[string]json.RawMessage
	return json.Unmarshal([]byte(s), &m) == nil
}

// balancedObject returns the first balanced {...} substring of s. A small
// explicit state machine (depth counter plus in-string and escape flags)
// avoids backtracking on adversarial input; braces inside quoted string
// literals do not affect the depth.
func balancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
