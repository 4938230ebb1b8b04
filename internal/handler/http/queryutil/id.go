// Package queryutil provides helpers for reading record identifiers from
// URL query strings.
package queryutil

import (
	"errors"
	"net/url"
	"strconv"
)

var (
	// ErrMissingID is returned when the query string has no id parameter.
	ErrMissingID = errors.New("missing id parameter")
	// ErrInvalidID is returned when the id parameter is not a positive integer.
	ErrInvalidID = errors.New("invalid id")
)

// ExtractID reads the "id" parameter from query values and parses it as a
// positive int64. Returns ErrMissingID when absent, ErrInvalidID when the
// value is not an integer or is <= 0.
func ExtractID(values url.Values) (int64, error) {
	raw := values.Get("id")
	if raw == "" {
		return 0, ErrMissingID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
