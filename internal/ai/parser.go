package ai

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// StripCodeFence removes markdown code-fence markers the model tends to
// wrap JSON output in, despite being told not to.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// DecodeJSON strips code fences and unmarshals the completion into v.
// Every caller wraps this in a fallback path; a parse failure must never
// escalate past the component that issued the prompt.
func DecodeJSON(raw string, v any) error {
	s := StripCodeFence(raw)
	if s == "" {
		return errors.New("empty completion")
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return errors.New("invalid model JSON output")
	}
	return nil
}

// ParseInt expects the completion to be a single integer with no unit
// text, per the price-estimation prompt contract.
func ParseInt(raw string) (int, error) {
	s := StripCodeFence(raw)
	s = strings.TrimSpace(strings.Trim(s, `"`))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("completion is not a bare integer")
	}
	return n, nil
}
