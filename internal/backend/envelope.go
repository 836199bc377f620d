package backend

import (
	"bytes"
	"encoding/json"

	"github.com/nikmy/flighthub/internal/models"
)

type listEnvelope[T any] struct {
	Data  []T             `json:"data"`
	Error json.RawMessage `json:"error"`
}

type liveEnvelope struct {
	Success  bool              `json:"success"`
	Aircraft []models.Position `json:"aircraft"`
	Error    json.RawMessage   `json:"error"`
	Message  models.Text       `json:"message"`
}

// CacheInfo is the collaborator's own cache statistics.
type CacheInfo struct {
	TotalCachedItems models.Number `json:"total_cached_items"`
	APICallsMade     models.Number `json:"api_calls_made"`
}

// errorMessage interprets the "error" member of an envelope. Absent, null and
// false mean no error. An object carries an optional message; any other
// truthy value is an error without one.
func errorMessage(raw json.RawMessage) (msg string, failed bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}

	switch string(raw) {
	case "null", "false", `""`, "0":
		return "", false
	}

	var obj struct {
		Message models.Text `json:"message"`
	}
	if raw[0] == '{' && json.Unmarshal(raw, &obj) == nil {
		return obj.Message.String(), true
	}

	return "", true
}
