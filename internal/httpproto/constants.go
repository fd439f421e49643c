package httpproto

// MaxHeaderBytes bounds the combined size of the request line and the
// header block a single request may send before the parser gives up with
// ErrTooManyHeaders.
const MaxHeaderBytes = 8000

// Wire-format byte sequences used by the response writer.
const (
	crlf        = "\r\n"
	httpVersion = "HTTP/1.1"
)
