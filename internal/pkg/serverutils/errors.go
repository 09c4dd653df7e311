package serverutils

import "fmt"

// AppError carries an HTTP status alongside a client-facing message. Upstream
// failures keep the underlying error so the handler can expose its text.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message}
}

func NewDuplicateError(message string) *AppError {
	return &AppError{Code: 400, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Code: 500, Message: message, Err: err}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Code: 500, Message: message, Err: err}
}
