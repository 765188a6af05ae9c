package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/samber/lo"

	colterrors "github.com/jrsteele09/go-colten/internal/errors"
	"github.com/jrsteele09/go-colten/internal/utils"
)

// Default messages when the server gives none.
const (
	MessageNetwork      = "Network error. Please check your connection and try again."
	MessageUnauthorized = "Your session has expired. Please log in again."
	MessageForbidden    = "You do not have permission to perform this action."
	MessageNotFound     = "The requested resource was not found."
	MessageServer       = "An unexpected error occurred. Please try again later."
	MessageValidation   = "Please check your input and try again."
	MessageCredentials  = "Invalid email or password."
)

// APIError is a failed API call. It unwraps to one of the sentinel errors in
// internal/errors, and to the transport error for network failures.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
	Kind       error
	Cause      error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
	}
	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() []error {
	return lo.Filter([]error{e.Kind, e.Cause}, func(err error, _ int) bool { return err != nil })
}

// withKind copies e with a different sentinel, keeping status and message.
func (e *APIError) withKind(kind error, message string) *APIError {
	out := *e
	out.Kind = kind
	if message != "" {
		out.Message = message
	}
	return &out
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return colterrors.ErrValidation
	case http.StatusUnauthorized:
		return colterrors.ErrUnauthorized
	case http.StatusForbidden:
		return colterrors.ErrForbidden
	case http.StatusNotFound:
		return colterrors.ErrNotFound
	default:
		return colterrors.ErrServer
	}
}

func defaultMessage(kind error) string {
	switch kind {
	case colterrors.ErrValidation:
		return MessageValidation
	case colterrors.ErrUnauthorized:
		return MessageUnauthorized
	case colterrors.ErrForbidden:
		return MessageForbidden
	case colterrors.ErrNotFound:
		return MessageNotFound
	case colterrors.ErrNetwork:
		return MessageNetwork
	default:
		return MessageServer
	}
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newStatusError(method, path string, status int, body []byte) *APIError {
	kind := kindForStatus(status)
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)
	return &APIError{
		StatusCode: status,
		Method:     method,
		Path:       path,
		Message:    utils.FirstNonEmpty(parsed.Message, parsed.Error, defaultMessage(kind)),
		Kind:       kind,
	}
}

func newNetworkError(method, path string, cause error) *APIError {
	return &APIError{
		Method:  method,
		Path:    path,
		Message: MessageNetwork,
		Kind:    colterrors.ErrNetwork,
		Cause:   cause,
	}
}
