package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Text is a provider field that may arrive as a string, a number, a bool or
// null. Anything else decodes to the empty string.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case b[0] == '{', b[0] == '[':
		*t = ""
	default:
		*t = Text(b)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Or returns t, or fallback when t is blank.
func (t Text) Or(fallback string) string {
	if strings.TrimSpace(string(t)) == "" {
		return fallback
	}
	return string(t)
}

// Number is a nullable numeric field. Numeric strings are accepted because
// the provider is not consistent about quoting.
type Number struct {
	Value float64
	Valid bool
}

func NumberOf(v float64) Number {
	return Number{Value: v, Valid: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*n = Number{}

	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}

	*n = NumberOf(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// OrZero is the value, or 0 when the field was null or absent.
func (n Number) OrZero() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}
