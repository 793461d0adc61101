package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned by stores when a record or object does not exist.
var ErrNotFound = errors.New("resource not found")

// Type says which side of the request an error belongs to.
type Type int

const (
	TypeServer Type = iota
	TypeBusiness
	TypeValidation
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier that decides the HTTP status of an error.
type Code int

const (
	CodeInternal      Code = iota
	CodeInvalidFormat      // malformed request or file content
	CodeInvalidInput       // well-formed but unacceptable, e.g. mismatched headers
	CodeNotFound
	CodeConflict
	CodeTooLarge // request body over the upload limit
)

//nolint:gochecknoglobals // lookup table
var codes = map[Code]struct {
	name   string
	status int
}{
	CodeInternal:      {"ERROR_CODE_INTERNAL", http.StatusInternalServerError},
	CodeInvalidFormat: {"ERROR_CODE_INVALID_FORMAT", http.StatusBadRequest},
	CodeInvalidInput:  {"ERROR_CODE_INVALID_INPUT", http.StatusUnprocessableEntity},
	CodeNotFound:      {"ERROR_CODE_NOT_FOUND", http.StatusNotFound},
	CodeConflict:      {"ERROR_CODE_CONFLICT", http.StatusConflict},
	CodeTooLarge:      {"ERROR_CODE_TOO_LARGE", http.StatusRequestEntityTooLarge},
}

func (c Code) String() string {
	if info, ok := codes[c]; ok {
		return info.name
	}
	return codes[CodeInternal].name
}

// Status returns the HTTP status for c. Unknown codes map to 500.
func (c Code) Status() int {
	if info, ok := codes[c]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Error is the structured error understood by the HTTP layer.
//
// msg is what clients see; err is the cause kept for logs and errors.Is.
// fields is only set on validation errors.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	fields  map[string]string
}

func (e *Error) Error() string {
	switch {
	case e.err != nil:
		return e.err.Error()
	case e.msg != "":
		return e.msg
	default:
		return e.errType.String()
	}
}

// String is the verbose form used when logging.
func (e *Error) String() string {
	return fmt.Sprintf("type=%s code=%s msg=%q cause=%v", e.errType, e.code, e.msg, e.err)
}

func (e *Error) Msg() string               { return e.msg }
func (e *Error) Type() Type                { return e.errType }
func (e *Error) Code() Code                { return e.code }
func (e *Error) Fields() map[string]string { return e.fields }
func (e *Error) Unwrap() error             { return e.err }

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	return e.code.Status()
}

// NewServer hides err behind a generic 500 message.
func NewServer(err error) error {
	return &Error{err: err, msg: "Internal server error", errType: TypeServer, code: CodeInternal}
}

// NewBusiness creates an error whose message is shown to the client as is.
func NewBusiness(msg string, code Code) error {
	return &Error{msg: msg, errType: TypeBusiness, code: code}
}

// NewInvalidInput wraps err as a 422 validation error.
func NewInvalidInput(err error) error {
	return &Error{err: err, msg: "validation error", errType: TypeValidation, code: CodeInvalidInput}
}

// NewInvalidFormat reports a request body that could not be parsed.
func NewInvalidFormat() error {
	return &Error{msg: "invalid request body", errType: TypeValidation, code: CodeInvalidFormat}
}

// NewValidation creates a validation error carrying one message per offending
// field. Use CodeInvalidInput for missing or inconsistent values and
// CodeInvalidFormat for values in the wrong format.
func NewValidation(code Code, fields map[string]string) error {
	return &Error{msg: "validation error", errType: TypeValidation, code: code, fields: fields}
}
