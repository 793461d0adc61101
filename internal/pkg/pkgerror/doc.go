// Package pkgerror carries the error taxonomy the HTTP layer maps to status
// codes.
//
// Validation errors hold a per-field message map (source_file_error,
// compared_file_error). Business errors hold a single message and a Code
// such as CodeNotFound or CodeTooLarge. Anything else is a server error and
// surfaces as a 500 with a generic message.
package pkgerror
