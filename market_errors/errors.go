package market_errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so callers can decide how to render it
type Kind int

const (
	// Unknown is returned by KindOf for errors that carry no classification
	Unknown Kind = iota
	// NetworkFailure covers connection errors and timeouts
	NetworkFailure
	// ProviderError is a non-success HTTP status from the data source
	ProviderError
	// MalformedPayload means the response is missing expected structure
	MalformedPayload
	// SymbolNotResolved means history was requested for an unmapped symbol
	SymbolNotResolved
	// DivisionUndefined means market share was requested with zero total market cap
	DivisionUndefined
	// InvalidParameter is non-numeric or out-of-range input
	InvalidParameter
)

func (k Kind) String() string {
	switch k {
	case NetworkFailure:
		return "network_failure"
	case ProviderError:
		return "provider_error"
	case MalformedPayload:
		return "malformed_payload"
	case SymbolNotResolved:
		return "symbol_not_resolved"
	case DivisionUndefined:
		return "division_undefined"
	case InvalidParameter:
		return "invalid_parameter"
	default:
		return "unknown"
	}
}

// Sentinels usable with errors.Is
var (
	ErrNetworkFailure    = &Error{Kind: NetworkFailure}
	ErrProviderError     = &Error{Kind: ProviderError}
	ErrMalformedPayload  = &Error{Kind: MalformedPayload}
	ErrSymbolNotResolved = &Error{Kind: SymbolNotResolved}
	ErrDivisionUndefined = &Error{Kind: DivisionUndefined}
	ErrInvalidParameter  = &Error{Kind: InvalidParameter}
)

// Error is a classified failure value
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int // provider HTTP status, only set for ProviderError
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first classified error in the chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// HTTPStatus maps a failure to the status the presentation layer answers with
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case InvalidParameter:
		return http.StatusBadRequest
	case SymbolNotResolved:
		return http.StatusNotFound
	case DivisionUndefined:
		return http.StatusUnprocessableEntity
	case ProviderError, MalformedPayload:
		return http.StatusBadGateway
	case NetworkFailure:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func NewNetworkFailure(err error) *Error {
	return &Error{Kind: NetworkFailure, Message: "request failed", Err: err}
}

func NewProviderError(statusCode int, body string) *Error {
	return &Error{Kind: ProviderError, Message: "provider returned error: " + body, StatusCode: statusCode}
}

func NewMalformedPayload(format string, args ...interface{}) *Error {
	return &Error{Kind: MalformedPayload, Message: fmt.Sprintf(format, args...)}
}

func NewSymbolNotResolved(symbol string) *Error {
	return &Error{Kind: SymbolNotResolved, Message: "coin id not found for symbol " + symbol}
}

func NewDivisionUndefined(message string) *Error {
	return &Error{Kind: DivisionUndefined, Message: message}
}

func NewInvalidParameter(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidParameter, Message: fmt.Sprintf(format, args...)}
}
