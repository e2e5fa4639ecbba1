package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FlexBool is a boolean that accepts the loose representations clients
// send: JSON true/false, numbers (nonzero is true), and strings like
// "true" or "1". Set records whether the field appeared in the payload
// at all, so callers can distinguish missing from explicit false.
type FlexBool struct {
	Value bool
	Set   bool
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch s := strings.TrimSpace(string(data)); s {
	case "null":
		return nil
	case "true":
		b.Value, b.Set = true, true
		return nil
	case "false":
		b.Value, b.Set = false, true
		return nil
	default:
		if len(s) > 0 && s[0] == '"' {
			var str string
			if err := json.Unmarshal(data, &str); err != nil {
				return err
			}
			v, err := ParseBool(str)
			if err != nil {
				return err
			}
			b.Value, b.Set = v, true
			return nil
		}
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid boolean value %s", s)
		}
		b.Value, b.Set = n != 0, true
		return nil
	}
}

// Or returns the field's value, or fallback when it was absent.
func (b FlexBool) Or(fallback bool) bool {
	if !b.Set {
		return fallback
	}
	return b.Value
}

// Flex returns a FlexBool carrying an explicitly set value.
func Flex(v bool) FlexBool {
	return FlexBool{Value: v, Set: true}
}

// ParseBool interprets the loose boolean forms accepted in query
// strings and string-typed JSON fields.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q", s)
}
