// Package apierror normalizes the heterogeneous failure shapes that come out
// of the demo services, the real backend and plain Go errors into a single
// user-facing message, and records every failure for operators.
package apierror

import (
	"fmt"
	"sort"
)

// DefaultFallback is used when a failure carries no extractable message and
// the caller supplies no fallback of its own.
const DefaultFallback = "An unexpected error occurred"

// APIError is the normalized failure shape thrown by every transport. Any of
// the fields may be unset; classification walks them in a fixed order.
type APIError struct {
	Status  int                 `json:"status,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Err     string              `json:"error,omitempty"`
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != "":
		return e.Err
	case e.Status != 0:
		return fmt.Sprintf("request failed with status %d", e.Status)
	default:
		return "request failed"
	}
}

// statusMessages holds the fixed per-code texts. Codes ≥500 share one text.
var statusMessages = map[int]string{
	401: "Authentication required. Please log in again.",
	403: "You do not have permission to perform this action.",
	404: "The requested resource was not found.",
	429: "Too many requests. Please try again later.",
}

const serverErrorMessage = "Server error. Please try again later."

// rule is one step of the first-match-wins cascade. Matching both extracts
// the message and decides whether the cascade stops.
type rule struct {
	name  string
	apply func(e *APIError, fallback string) (string, bool)
}

var cascade = []rule{
	{
		// Validation errors: first message of the first key. Keys are sorted
		// so the same input always yields the same message. If the map is
		// present but holds no message, the cascade stops at the fallback.
		name: "validation",
		apply: func(e *APIError, fallback string) (string, bool) {
			if len(e.Errors) == 0 {
				return "", false
			}
			keys := make([]string, 0, len(e.Errors))
			for k := range e.Errors {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			if msgs := e.Errors[keys[0]]; len(msgs) > 0 && msgs[0] != "" {
				return msgs[0], true
			}
			return fallback, true
		},
	},
	{
		name: "message",
		apply: func(e *APIError, _ string) (string, bool) {
			return e.Message, e.Message != ""
		},
	},
	{
		name: "error-string",
		apply: func(e *APIError, _ string) (string, bool) {
			return e.Err, e.Err != ""
		},
	},
	{
		name: "status",
		apply: func(e *APIError, _ string) (string, bool) {
			if msg, ok := statusMessages[e.Status]; ok {
				return msg, true
			}
			if e.Status >= 500 {
				return serverErrorMessage, true
			}
			return "", false
		},
	},
}

// Message resolves any failure value into a user-facing string.
//
// Resolution order: validation-errors map, explicit message, generic error
// string, mapped status code, a plain Go error's message, then the fallback.
// Values that look like an APIError (typed or a decoded-JSON map) run the
// full cascade; anything else only hits the last two steps.
func Message(v any, fallback string) string {
	if fallback == "" {
		fallback = DefaultFallback
	}

	if e := normalize(v); e != nil {
		for _, r := range cascade {
			if msg, ok := r.apply(e, fallback); ok {
				return msg
			}
		}
		return fallback
	}

	if err, ok := v.(error); ok && err != nil {
		return err.Error()
	}

	return fallback
}

// StatusCode extracts an HTTP status from a failure value, or returns def.
func StatusCode(v any, def int) int {
	if e := normalize(v); e != nil && e.Status != 0 {
		return e.Status
	}
	return def
}

// normalize coerces the supported failure shapes into *APIError. Returns nil
// for values with no recognizable structure.
func normalize(v any) *APIError {
	switch e := v.(type) {
	case *APIError:
		return e
	case APIError:
		return &e
	case map[string]any:
		return fromMap(e)
	default:
		return nil
	}
}

// fromMap lifts a decoded-JSON error body into the typed shape. The wire
// layout is {data: {message, errors}, status, error}.
func fromMap(m map[string]any) *APIError {
	e := &APIError{}

	if data, ok := m["data"].(map[string]any); ok {
		if msg, ok := data["message"].(string); ok {
			e.Message = msg
		}
		if errs, ok := data["errors"].(map[string]any); ok {
			e.Errors = make(map[string][]string, len(errs))
			for field, raw := range errs {
				switch vals := raw.(type) {
				case []any:
					for _, val := range vals {
						if s, ok := val.(string); ok {
							e.Errors[field] = append(e.Errors[field], s)
						}
					}
				case []string:
					e.Errors[field] = vals
				case string:
					e.Errors[field] = []string{vals}
				}
			}
		}
	}

	if errStr, ok := m["error"].(string); ok {
		e.Err = errStr
	}

	switch status := m["status"].(type) {
	case int:
		e.Status = status
	case float64:
		e.Status = int(status)
	}

	return e
}
