package pkg

import "fmt"

// AppError is the error shape returned by HTTP handlers.
//
// Code is a stable machine-readable identifier, Message is safe to show to the
// end user. Err keeps the underlying cause for logging only and is never
// serialized.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error

	// Fields lists the form fields that failed validation, when relevant.
	Fields []string
	// Fallback is the route the client should offer when the action failed
	// (e.g. the direct-contact chat).
	Fallback string
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code     string   `json:"error_code"`
	Message  string   `json:"message"`
	Fields   []string `json:"fields,omitempty"`
	Fallback string   `json:"fallback,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithFields returns a copy carrying the offending field names.
func (e *AppError) WithFields(fields ...string) *AppError {
	cp := *e
	cp.Fields = append([]string(nil), fields...)
	return &cp
}

// WithFallback returns a copy carrying a fallback route for the client.
func (e *AppError) WithFallback(route string) *AppError {
	cp := *e
	cp.Fallback = route
	return &cp
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Code:     e.Code,
		Message:  e.Message,
		Fields:   e.Fields,
		Fallback: e.Fallback,
	}
}
