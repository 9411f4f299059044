package intigriti

import (
	"errors"
	"fmt"
)

// ErrMissingToken is returned by New when no bearer token can be resolved.
var ErrMissingToken = errors.New("API token is required. Set " + TokenEnvVar + " environment variable or pass api_token parameter")

// Sentinels matched by *APIError through errors.Is.
var (
	ErrRateLimited   = errors.New("rate limited")
	ErrUnauthorized  = errors.New("authentication failed")
	ErrRequestFailed = errors.New("api request failed")
	ErrNetwork       = errors.New("network error")
)

// ErrorKind classifies a failed API call.
type ErrorKind int

const (
	KindRateLimited ErrorKind = iota + 1
	KindUnauthorized
	KindStatus
	KindNetwork
)

// defaultRetryAfter is reported when a 429 carries no Retry-After header.
const defaultRetryAfter = "60"

// authFailedMessage never includes the response body.
const authFailedMessage = "Authentication failed. Check your API token."

// APIError is a classified failure from the Researcher API. Rate limits are
// reported to the caller and never retried.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	// RetryAfter is the raw Retry-After header value for KindRateLimited.
	RetryAfter string
	// Body is the response body for KindStatus.
	Body string
	// Err is the transport failure for KindNetwork.
	Err error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindRateLimited:
		return fmt.Sprintf("Rate limited. Retry after %s seconds.", e.RetryAfter)
	case KindUnauthorized:
		return authFailedMessage
	case KindNetwork:
		return fmt.Sprintf("Network error: %v", e.Err)
	default:
		return fmt.Sprintf("API request failed: %d - %s", e.StatusCode, e.Body)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrRateLimited:
		return e.Kind == KindRateLimited
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrRequestFailed:
		return e.Kind == KindStatus
	case ErrNetwork:
		return e.Kind == KindNetwork
	}
	return false
}

func newRateLimitError(retryAfter string) *APIError {
	if retryAfter == "" {
		retryAfter = defaultRetryAfter
	}
	return &APIError{Kind: KindRateLimited, StatusCode: 429, RetryAfter: retryAfter}
}

func newStatusError(statusCode int, body []byte) *APIError {
	return &APIError{Kind: KindStatus, StatusCode: statusCode, Body: string(body)}
}

func newNetworkError(err error) *APIError {
	return &APIError{Kind: KindNetwork, Err: err}
}
