// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"newsdesk/internal/domain/entity"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers already sent, nothing left to do but log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// ValidationFailed writes the canonical 400 response for schema violations:
// a generic error message plus a per-field map of everything that failed.
func ValidationFailed(w http.ResponseWriter, verrs entity.ValidationErrors) {
	JSON(w, http.StatusBadRequest, map[string]any{
		"error":   "validation failed",
		"details": verrs.Details(),
	})
}

// safeFragments are substrings that mark an error message as client-caused
// and therefore safe to echo back verbatim.
var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"unsupported",
	"must be",
	"cannot be",
	"too long",
	"too short",
	"missing",
}

// SafeError sanitizes error messages before returning them to users.
// Client-caused errors (validation, not-found, bad format names) are returned
// as-is; anything else is returned as a generic "internal server error" with
// the real message logged for debugging. 5xx codes are never echoed.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()

	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeFragments {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", err))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
