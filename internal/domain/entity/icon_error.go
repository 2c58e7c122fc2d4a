package entity

import (
	"errors"
	"fmt"
)

// IconErrorKind describes the category of an icon resolution failure.
type IconErrorKind string

const (
	IconErrorKindInvalidURL               IconErrorKind = "invalid_url"
	IconErrorKindNetwork                  IconErrorKind = "network_error"
	IconErrorKindInvalidResponse          IconErrorKind = "invalid_response"
	IconErrorKindResponseFailedValidation IconErrorKind = "response_failed_validation"
	IconErrorKindResponseDecodingFailed   IconErrorKind = "response_decoding_failed"
)

var (
	// ErrInvalidURL indicates the identifier could not be turned into a request URL.
	ErrInvalidURL = errors.New("invalid icon url")
	// ErrNetwork indicates a transport-level failure (DNS, connect, TLS, read).
	ErrNetwork = errors.New("icon network error")
	// ErrInvalidResponse indicates the response was not a usable HTTP response.
	ErrInvalidResponse = errors.New("invalid icon response")
	// ErrResponseFailedValidation indicates a status code other than 200.
	ErrResponseFailedValidation = errors.New("icon response failed validation")
	// ErrResponseDecodingFailed indicates the body is not a decodable image.
	ErrResponseDecodingFailed = errors.New("icon response decoding failed")
)

var kindSentinels = map[IconErrorKind]error{
	IconErrorKindInvalidURL:               ErrInvalidURL,
	IconErrorKindNetwork:                  ErrNetwork,
	IconErrorKindInvalidResponse:          ErrInvalidResponse,
	IconErrorKindResponseFailedValidation: ErrResponseFailedValidation,
	IconErrorKindResponseDecodingFailed:   ErrResponseDecodingFailed,
}

// IconError is the typed failure returned by icon resolution.
// errors.Is matches it against the sentinel of its Kind; Unwrap exposes the cause.
type IconError struct {
	Kind       IconErrorKind
	Domain     string
	StatusCode int
	Err        error
}

// NewIconError builds an IconError of the given kind.
func NewIconError(kind IconErrorKind, domain string, cause error) *IconError {
	return &IconError{Kind: kind, Domain: domain, Err: cause}
}

// NetworkError wraps a transport failure.
func NetworkError(domain string, cause error) *IconError {
	return NewIconError(IconErrorKindNetwork, domain, cause)
}

func (e *IconError) Error() string {
	if e == nil {
		return "icon error"
	}
	msg := fmt.Sprintf("favicon %s", e.Kind)
	if e.Domain != "" {
		msg += " for " + e.Domain
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *IconError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel error of the same kind.
func (e *IconError) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// ErrorKind returns the taxonomy kind of err, or "" if err is not an icon error.
func ErrorKind(err error) IconErrorKind {
	var iconErr *IconError
	if errors.As(err, &iconErr) {
		return iconErr.Kind
	}
	for kind, sentinel := range kindSentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return ""
}
