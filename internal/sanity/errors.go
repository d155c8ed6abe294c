package sanity

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the query endpoint answers with a non-2xx status.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sanity API error (status %d): %s", e.StatusCode, e.Description)
}

// IsNotFound reports whether err is an APIError with status 404, which the
// store returns for unknown projects or datasets.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// newAPIError extracts the description from an error body of the form
// {"error":{"description":"..."}}, falling back to the raw body.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error struct {
			Description string `json:"description"`
			Message     string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}

	desc := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error.Description != "":
			desc = payload.Error.Description
		case payload.Error.Message != "":
			desc = payload.Error.Message
		case payload.Message != "":
			desc = payload.Message
		}
	}
	if desc == "" {
		desc = string(body)
		if len(desc) > 512 {
			desc = desc[:512]
		}
	}
	if desc == "" {
		desc = http.StatusText(status)
	}

	return &APIError{StatusCode: status, Description: desc}
}
