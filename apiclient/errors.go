package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrNoToken is returned, before any network call, when an authenticated
// call is attempted without a session token.
var ErrNoToken = errors.New("not signed in: missing session token")

const networkErrorMessage = "Network error, please try again later."

// APIError is the uniform failure shape of every call. StatusCode is zero for
// transport failures.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.Err }

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var payload struct {
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		if apiErr.Message == "" {
			apiErr.Message = payload.Error
		}
		var fields map[string]string
		if len(payload.Data) > 0 && json.Unmarshal(payload.Data, &fields) == nil && len(fields) > 0 {
			apiErr.Fields = fields
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fallbackMessage(status)
	}
	return apiErr
}

func fallbackMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return "Request failed: " + text
	}
	return fmt.Sprintf("Request failed with status %d", status)
}

// StatusCode extracts the HTTP status from err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }

// Message returns the user-facing text of err.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return errors.Cause(err).Error()
}
