package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/minsu-cho/sajubook/internal/common"
)

// maxErrorBodySize caps how much of an error response body is read into
// memory for diagnostics.
const maxErrorBodySize = 64 << 10

// APIError is a failure response decoded from the backend's common error
// format: {"status": ..., "error": ..., "message": ..., "timestamp": ...}.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Unwrap maps the HTTP status onto a sentinel so callers can match with
// errors.Is without inspecting status codes themselves.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusForbidden:
		return common.ErrAccessDenied
	case http.StatusNotFound:
		return common.ErrorNotFound
	default:
		return nil
	}
}

// decodeAPIError builds an *APIError from a non-2xx response body. A body
// that does not match the backend error format still yields a usable error
// carrying the raw status.
func decodeAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Status == 0 {
		apiErr.Status = resp.StatusCode
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}
	return apiErr
}

// readErrorBody drains up to maxErrorBodySize bytes of a failed response.
func readErrorBody(resp *http.Response) []byte {
	if resp.Body == nil {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	return body
}
