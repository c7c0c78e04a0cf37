package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingPayload is returned when a body carries no logical payload.
var ErrMissingPayload = errors.New("missing payload")

// envelopeKeys may sit next to "data" without turning the object into a record.
var envelopeKeys = map[string]bool{
	"success": true,
	"message": true,
	"msg":     true,
	"code":    true,
	"error":   true,
}

// Unwrap returns the logical payload of a decoded response body.
//
// An object holding "data" together with "success" (or only envelope keys) is
// an envelope and its "data" member is the payload. Anything else is the
// payload itself. Only the top level is inspected, so data.data is never
// unwrapped.
func Unwrap(body []byte) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if isNull(body) {
		return nil, ErrMissingPayload
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrMissingPayload)
	}

	top, ok := object(body)
	if !ok || !isEnvelope(top) {
		return json.RawMessage(body), nil
	}

	data := bytes.TrimSpace(top["data"])
	if isNull(data) {
		return nil, ErrMissingPayload
	}
	return json.RawMessage(data), nil
}

// Rejected reports whether body is an envelope whose success flag is false,
// along with the message the backend attached to it.
func Rejected(body []byte) (string, bool) {
	top, ok := object(bytes.TrimSpace(body))
	if !ok {
		return "", false
	}
	raw, ok := top["success"]
	if !ok {
		return "", false
	}
	var success bool
	if err := json.Unmarshal(raw, &success); err != nil || success {
		return "", false
	}

	for _, k := range []string{"message", "msg", "error"} {
		var msg string
		if err := json.Unmarshal(top[k], &msg); err == nil && msg != "" {
			return msg, true
		}
	}
	return "request rejected by backend", true
}

func isEnvelope(top map[string]json.RawMessage) bool {
	if _, ok := top["data"]; !ok {
		return false
	}
	if _, ok := top["success"]; ok {
		return true
	}
	for k := range top {
		if k != "data" && !envelopeKeys[k] {
			return false
		}
	}
	return true
}

// object decodes raw as a JSON object. ok is false for arrays and scalars.
func object(raw []byte) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

func isNull(raw []byte) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
