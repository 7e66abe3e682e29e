// internal/types.go - Common types for internal packages
package internal

// Error represents application-specific errors
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new application error
func NewError(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrorCode constants for common error types
const (
	ErrorCodeOpen           = "OPEN_ERROR"
	ErrorCodeRead           = "READ_ERROR"
	ErrorCodeCopy           = "COPY_ERROR"
	ErrorCodeStyleParse     = "STYLE_PARSE_ERROR"
	ErrorCodeNoSourceLayers = "NO_SOURCE_LAYERS"
	ErrorCodeValidation     = "VALIDATION_ERROR"
	ErrorCodeConfig         = "CONFIG_ERROR"
)
