package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Kind classifies failures by what the caller should do about them.
type Kind int

const (
	// KindTransient covers network failures and 5xx responses; safe to retry
	// with backoff.
	KindTransient Kind = iota
	// KindBusiness is a 4xx-class server verdict, surfaced verbatim and never
	// retried.
	KindBusiness
	// KindPrecondition is a client-side gate failure (empty cart, no active
	// booking, invalid coupon); fixing it requires user action.
	KindPrecondition
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Precondition builds a client-side gate failure with a user-facing message.
func Precondition(message string) *Error {
	return &Error{Kind: KindPrecondition, Message: message}
}

func newHTTPError(resp *http.Response) *Error {
	kind := KindBusiness
	if resp.StatusCode >= 500 {
		kind = KindTransient
	}

	// The backend reports failures as {"message": "..."}; fall back to the
	// status text for anything else.
	message := http.StatusText(resp.StatusCode)
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var parsed struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
			message = parsed.Message
		}
	}

	return &Error{Kind: kind, Status: resp.StatusCode, Message: message}
}

func kindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

func IsTransient(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindTransient
}

func IsPrecondition(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindPrecondition
}

func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
