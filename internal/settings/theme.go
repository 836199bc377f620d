package settings

import (
	"encoding/json"

	"github.com/nikmy/flighthub/pkg/errors"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", errors.Errorf("unknown theme %q", s)
}

func (t Theme) Dark() bool {
	return t == ThemeDark
}

func (t Theme) Toggled() Theme {
	if t.Dark() {
		return ThemeLight
	}
	return ThemeDark
}

func (t *Theme) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	*t, err = ParseTheme(s)
	return err
}
