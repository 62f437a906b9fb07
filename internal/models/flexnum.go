package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexNumber is a numeric field as it travels through the workout form:
// a JSON number once committed, or a string while being edited ("" for an
// untouched input, partial entries like "6" mid-typing). Keeping the raw
// string preserves in-progress edits; Float coerces at submission time.
type FlexNumber string

// UnmarshalJSON accepts a JSON number, string, or null.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = FlexNumber(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("flex number: %w", err)
	}
	*n = FlexNumber(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// MarshalJSON emits a JSON number when the value parses as one, otherwise
// the raw string (so "" and partial entries survive a round trip).
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if f := n.Float(); f != nil {
		return json.Marshal(*f)
	}
	return json.Marshal(string(n))
}

// IsEmpty reports whether the field holds no entry at all.
func (n FlexNumber) IsEmpty() bool {
	return n == ""
}

// Float returns the numeric value, or nil when empty or not parseable.
func (n FlexNumber) Float() *float64 {
	if n == "" {
		return nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return nil
	}
	return &f
}

// Number builds a FlexNumber from a committed numeric value.
func Number(f float64) FlexNumber {
	return FlexNumber(strconv.FormatFloat(f, 'f', -1, 64))
}
