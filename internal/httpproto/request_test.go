package httpproto

import (
	"errors"
	"strings"
	"testing"
)

func TestParseStatusLine(t *testing.T) {
	req, err := Parse(strings.NewReader("GET / HTTP/1.1\r\n\r\n"))
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if req.StatusLine() != "GET / HTTP/1.1" {
		t.Fatalf("StatusLine() = %q, want %q", req.StatusLine(), "GET / HTTP/1.1")
	}
}

func TestParseHeaders(t *testing.T) {
	req, err := Parse(strings.NewReader("GET / HTTP/1.1\r\nAccept: application/json\r\nX-Custom:value\r\n\r\n"))
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if v, ok := req.Header("Accept"); !ok || v != "application/json" {
		t.Fatalf("Header(Accept) = %q, %v", v, ok)
	}
	if v, ok := req.Header("accept"); !ok || v != "application/json" {
		t.Fatalf("case-insensitive Header(accept) = %q, %v", v, ok)
	}
	if v, ok := req.Header("X-Custom"); !ok || v != "value" {
		t.Fatalf("Header(X-Custom) = %q, %v", v, ok)
	}
}

func TestParseMissingColonInHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("GET / HTTP/1.1\r\nContent-Type bad\r\n\r\n"))
	if !errors.Is(err, ErrInvalidHeaders) {
		t.Fatalf("err = %v, want ErrInvalidHeaders", err)
	}
}

func TestParseEmptyStream(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if !errors.Is(err, ErrInvalidHTTPRequest) {
		t.Fatalf("err = %v, want ErrInvalidHTTPRequest", err)
	}
}

func TestParseNoTerminatingBlankLine(t *testing.T) {
	_, err := Parse(strings.NewReader("GET / HTTP/1.1\r\nAccept: text/plain\r\n"))
	if !errors.Is(err, ErrTooManyHeaders) {
		t.Fatalf("err = %v, want ErrTooManyHeaders", err)
	}
}

func TestParseQueryParams(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		want    map[string]string
		wantErr bool
	}{
		{"no query", "GET /random HTTP/1.1", map[string]string{}, false},
		{"simple query", "GET /random?search=abc HTTP/1.1", map[string]string{"search": "abc"}, false},
		{"multiple params", "GET /random?query=123&search=abc HTTP/1.1", map[string]string{"query": "123", "search": "abc"}, false},
		{"trailing empty segment", "GET /random?search=123& HTTP/1.1", map[string]string{"search": "123"}, false},
		{"fragment stripped", "GET /random?search=abc#frag HTTP/1.1", map[string]string{"search": "abc"}, false},
		{"missing equals", "GET /random?search HTTP/1.1", nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := Parse(strings.NewReader(tc.line + "\r\n\r\n"))
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidHTTPRequest) {
					t.Fatalf("err = %v, want ErrInvalidHTTPRequest", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for k, v := range tc.want {
				got, ok := req.QueryParam(k)
				if !ok || got != v {
					t.Fatalf("QueryParam(%q) = %q, %v, want %q", k, got, ok, v)
				}
			}
		})
	}
}

func TestRouteKeyStripsQuery(t *testing.T) {
	req, err := Parse(strings.NewReader("GET /x?a=1 HTTP/1.1\r\n\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.RouteKey() != "GET /x HTTP/1.1" {
		t.Fatalf("RouteKey() = %q, want %q", req.RouteKey(), "GET /x HTTP/1.1")
	}
	if strings.Contains(req.RouteKey(), "?") {
		t.Fatalf("RouteKey() contains '?': %q", req.RouteKey())
	}
}
