package view

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/pkg/errors"
)

const Placeholder = "N/A"

func funcMap() template.FuncMap {
	return template.FuncMap{
		"na":    templateOr, // {{na .Airline.Name "Unknown"}}
		"clock": Clock,      // scheduled timestamp as HH:MM
		"num":   templateNum,
		"dict":  templateDict, // {{template "info" dict "Label" "IATA" "Value" .IataCode}}
		"list":  templateList,
	}
}

func templateOr(v any, fallback string) string {
	var s string
	switch x := v.(type) {
	case models.Text:
		return x.Or(fallback)
	case string:
		s = x
	case fmt.Stringer:
		s = x.String()
	case nil:
	default:
		s = fmt.Sprint(x)
	}

	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Clock renders a timestamp as a 24h clock in its own offset. Raw
// text that does not parse is shown as is.
func Clock(raw models.Text) string {
	if raw == "" {
		return Placeholder
	}

	t, ok := models.ParseTimestamp(string(raw))
	if !ok {
		return string(raw)
	}
	return t.Format("15:04")
}

func templateNum(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func templateList(values ...string) []string { return values }

// Args are treated as a sequence of keys and vals, and built into a map.
func templateDict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, errors.Error("invalid dict call")
	}

	dict := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, errors.Error("dict keys must be strings")
		}
		dict[key] = values[i+1]
	}
	return dict, nil
}
