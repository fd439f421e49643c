package httpproto

import (
	"bufio"
	"io"
	"strings"
)

// Request is a parsed HTTP/1.1 request: its request line, a case-insensitive
// header map, and the query parameters parsed out of the request-URI.
type Request struct {
	Method  string
	Path    string
	Version string

	headers     map[string]string
	queryParams map[string]string
}

// NewSynthetic builds a Request carrying only the given headers, used by the
// connection handler to drive the default-handler family when a real
// request could not be parsed.
func NewSynthetic(headers map[string]string) *Request {
	lowered := make(map[string]string, len(headers))
	for k, v := range headers {
		lowered[strings.ToLower(k)] = v
	}
	return &Request{headers: lowered, queryParams: make(map[string]string)}
}

// Header returns the value of the named header, matched case-insensitively,
// and whether it was present.
func (r *Request) Header(name string) (string, bool) {
	v, ok := r.headers[strings.ToLower(name)]
	return v, ok
}

// Headers returns the full case-lowered header map. Callers must not mutate
// the returned map.
func (r *Request) Headers() map[string]string {
	return r.headers
}

// QueryParam returns the value of the named query parameter and whether it
// was present.
func (r *Request) QueryParam(name string) (string, bool) {
	v, ok := r.queryParams[name]
	return v, ok
}

// StatusLine returns the request line as "<method> <path> <version>". The
// query string is not kept on the Request, so it is absent here too and the
// result equals RouteKey.
func (r *Request) StatusLine() string {
	return r.Method + " " + r.Path + " " + r.Version
}

// RouteKey is the normalized "<method> <path> <version>" string used as the
// router dispatch key; it never carries a query string.
func (r *Request) RouteKey() string {
	return r.Method + " " + r.Path + " " + r.Version
}

// Parse reads at most MaxHeaderBytes bytes from src and builds a Request.
// The first line is the request line; subsequent lines up to a blank line
// are headers of the form "Name:Value" (the colon is required). Query
// parameters are parsed from the request-URI's path.
func Parse(src io.Reader) (*Request, error) {
	limited := &io.LimitedReader{R: src, N: MaxHeaderBytes}
	br := bufio.NewReader(limited)

	statusLine, err := readLine(br)
	if err != nil || statusLine == "" {
		return nil, ErrInvalidHTTPRequest
	}

	method, path, rawQuery, version, err := splitRequestLine(statusLine)
	if err != nil {
		return nil, err
	}

	queryParams, err := parseQueryParams(rawQuery)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string)
	for {
		line, err := readLine(br)
		if err != nil {
			return nil, ErrTooManyHeaders
		}
		if line == "" {
			return &Request{
				Method:      method,
				Path:        path,
				Version:     version,
				headers:     headers,
				queryParams: queryParams,
			}, nil
		}

		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			// a line cut short by the byte cap, with nothing left to read,
			// means the header block never terminated within the cap.
			if limited.N == 0 && br.Buffered() == 0 {
				return nil, ErrTooManyHeaders
			}
			return nil, ErrInvalidHeaders
		}
		key := strings.TrimSpace(line[:colon])
		value := strings.TrimSpace(line[colon+1:])
		headers[strings.ToLower(key)] = value
	}
}

// readLine reads one line, stripping its trailing "\r\n" or "\n". It returns
// an error only when no line at all could be read (immediate EOF).
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if line == "" {
			return "", err
		}
		// a final line cut off by the byte cap or EOF without a trailing
		// newline is still usable.
	}
	line = strings.TrimRight(line, "\r\n")
	return line, nil
}

// splitRequestLine splits "<method> <path>[?query] <version>" into its
// parts. The line must split into exactly three space-separated fields.
func splitRequestLine(statusLine string) (method, path, rawQuery, version string, err error) {
	parts := strings.Split(statusLine, " ")
	if len(parts) != 3 {
		return "", "", "", "", ErrInvalidHTTPRequest
	}

	uri := parts[1]
	if q := strings.IndexByte(uri, '?'); q >= 0 {
		path = uri[:q]
		rawQuery = uri[q+1:]
	} else {
		path = uri
	}

	return parts[0], path, rawQuery, parts[2], nil
}

// parseQueryParams parses the portion of the request-URI after the first
// "?". A trailing "#fragment" is dropped. Segments are split on "&"; empty
// segments are skipped; every remaining segment must contain "=".
func parseQueryParams(rawQuery string) (map[string]string, error) {
	params := make(map[string]string)
	if rawQuery == "" {
		return params, nil
	}

	if h := strings.IndexByte(rawQuery, '#'); h >= 0 {
		rawQuery = rawQuery[:h]
	}

	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}
		eq := strings.IndexByte(segment, '=')
		if eq < 0 {
			return nil, ErrInvalidHTTPRequest
		}
		params[segment[:eq]] = segment[eq+1:]
	}

	return params, nil
}
