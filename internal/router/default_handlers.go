package router

import (
	"github.com/yourusername/npm-expansions/internal/httpproto"
	"github.com/yourusername/npm-expansions/internal/negotiate"
)

var defaultSupportedTypes = []string{"text/plain", "*/*"}

func negotiateDefaultAccept(req *httpproto.Request) (string, error) {
	return negotiate.BestMatch(defaultSupportedTypes, acceptHeader(req))
}

// negotiatedDefault runs the shared negotiation the three default handlers
// perform: on a match against text/plain or */*, status/reason/body are
// returned as given; on a mismatch, the same request instead gets a 406
// with the generic "Please accept application/json" body.
func negotiatedDefault(req *httpproto.Request, status int, reason, body string) httpproto.Response {
	best, err := negotiateDefaultAccept(req)
	if err != nil || best == "" {
		return notAcceptableResponse()
	}
	return httpproto.Response{Status: status, Reason: reason, Body: []byte(body)}
}

// NotFound is the default 404 handler, called by Router.Dispatch on a route
// miss.
func NotFound(req *httpproto.Request) httpproto.Response {
	return negotiatedDefault(req, 404, "NOT FOUND", "NOT FOUND")
}

// ClientError is the default 400 handler, used as the connection handler's
// fallback for malformed requests.
func ClientError(req *httpproto.Request) httpproto.Response {
	return negotiatedDefault(req, 400, "BAD REQUEST", "BAD REQUEST")
}

// InternalServerError is the default 500 handler, used as the connection
// handler's fallback for internal failures.
func InternalServerError(req *httpproto.Request) httpproto.Response {
	return negotiatedDefault(req, 500, "INTERNAL SERVER ERROR", "INTERNAL SERVER ERROR")
}
