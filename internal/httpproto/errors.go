package httpproto

import "errors"

// Parser errors, returned by Parse when the byte stream does not match the
// expected HTTP/1.1 request grammar.
var (
	// ErrInvalidHTTPRequest is returned when the stream has no request line,
	// the request line does not split into exactly three space-separated
	// parts, or a query-string segment is missing its "=".
	ErrInvalidHTTPRequest = errors.New("httpproto: invalid http request")

	// ErrInvalidHeaders is returned when a header line has no ":" separator.
	ErrInvalidHeaders = errors.New("httpproto: invalid header line")

	// ErrTooManyHeaders is returned when the 8000-byte request-line+headers
	// cap is exhausted before a blank line terminates the header block.
	ErrTooManyHeaders = errors.New("httpproto: too many headers")
)
