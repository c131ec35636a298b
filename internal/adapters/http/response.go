package http

import (
	"encoding/json"
	"strings"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ServerMessage extracts the human readable error from a JSON error body.
// It returns "" when the body carries none.
func ServerMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(parsed.Error); msg != "" {
		return msg
	}
	return strings.TrimSpace(parsed.Message)
}
