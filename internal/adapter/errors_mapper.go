package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/cpoint/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewAPIError(resp.StatusCode(), responseMessage(resp))
}

// NewAPIError builds the error for a failure response with the given status.
func NewAPIError(statusCode int, message string) *APIError {
	kind, ok := statusErrors[statusCode]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		kind:       kind,
	}
}

func responseMessage(resp *resty.Response) string {
	var envelope models.Response
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
