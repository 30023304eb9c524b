package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND_ERROR"
	CodeAuth        = "AUTH_ERROR"
	CodeRateLimit   = "RATE_LIMIT_ERROR"
	CodeUnavailable = "UNAVAILABLE_ERROR"
	CodeExternalAPI = "EXTERNAL_API_ERROR"
	CodeTimeout     = "TIMEOUT_ERROR"
	CodeDatabase    = "DATABASE_ERROR"
	CodeUnknown     = "UNKNOWN_ERROR"
)

// AppContextError is an error annotated with where it happened.
type AppContextError struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`     // rest, usecase, gateway, driver
	Component string                 `json:"component,omitempty"`
	Operation string                 `json:"operation,omitempty"`
	Cause     error                  `json:"-"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAuth:
		return http.StatusUnauthorized
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeExternalAPI:
		return http.StatusBadGateway
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// HTTPContextResponse is the error body sent to clients.
type HTTPContextResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// ToHTTPResponse drops the internal context; it never leaves the process.
func (e *AppContextError) ToHTTPResponse() HTTPContextResponse {
	return HTTPContextResponse{
		Error:     "error",
		Code:      e.Code,
		Message:   e.Message,
		Retryable: e.IsRetryable(),
	}
}

func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case CodeRateLimit, CodeTimeout, CodeExternalAPI, CodeUnavailable:
		return true
	default:
		return false
	}
}

func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]interface{},
) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext relocates err to a new layer and merges extra context.
func EnrichWithContext(
	err *AppContextError,
	layer, component, operation string,
	additionalContext map[string]interface{},
) *AppContextError {
	merged := make(map[string]interface{}, len(err.Context)+len(additionalContext))
	for k, v := range err.Context {
		merged[k] = v
	}
	for k, v := range additionalContext {
		merged[k] = v
	}

	return &AppContextError{
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   merged,
	}
}

func newTyped(code, errorType, message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = errorType
	return NewAppContextError(code, message, layer, component, operation, cause, context)
}

func NewDatabaseContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return newTyped(CodeDatabase, "database", message, layer, component, operation, cause, context)
}

func NewValidationContextError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	return newTyped(CodeValidation, "validation", message, layer, component, operation, nil, context)
}

func NewNotFoundContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return newTyped(CodeNotFound, "not_found", message, layer, component, operation, cause, context)
}

func NewAuthContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return newTyped(CodeAuth, "auth", message, layer, component, operation, cause, context)
}

func NewRateLimitContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return newTyped(CodeRateLimit, "rate_limit", message, layer, component, operation, cause, context)
}

func NewUnavailableContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return newTyped(CodeUnavailable, "unavailable", message, layer, component, operation, cause, context)
}

func NewExternalAPIContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return newTyped(CodeExternalAPI, "external_api", message, layer, component, operation, cause, context)
}

func NewTimeoutContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return newTyped(CodeTimeout, "timeout", message, layer, component, operation, cause, context)
}

func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return newTyped(CodeUnknown, "unknown", message, layer, component, operation, cause, context)
}
