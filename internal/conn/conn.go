// Package conn implements the per-connection request lifecycle: parse,
// route, serialize, write, with a synthetic-request fallback for anything
// that fails before a real Response exists.
package conn

import (
	"errors"
	"log"
	"net"

	"github.com/yourusername/npm-expansions/internal/applog"
	"github.com/yourusername/npm-expansions/internal/httpproto"
	"github.com/yourusername/npm-expansions/internal/router"
)

// syntheticAccept is the Accept header value carried by the synthetic
// request built when a real request could not be parsed.
const syntheticAccept = "text/html,application/json"

// Handler serves one connection to completion and closes it.
type Handler struct {
	router *router.Router
	log    *applog.Logger
}

// New constructs a Handler dispatching through r and logging through log.
func New(r *router.Router, log *applog.Logger) *Handler {
	return &Handler{router: r, log: log}
}

// Serve reads one request from c, dispatches it, writes the response, and
// closes c. It never panics out to the caller: a failure serving this
// connection is logged and the connection is simply closed.
func (h *Handler) Serve(c net.Conn) {
	defer c.Close()

	requestLine := ""
	referer := ""
	userAgent := ""

	req, err := httpproto.Parse(c)
	var resp httpproto.Response

	if err == nil {
		requestLine = req.StatusLine()
		referer, _ = req.Header("Referer")
		userAgent, _ = req.Header("User-Agent")
		resp = h.router.Dispatch(req)
	} else {
		synthetic := httpproto.NewSynthetic(map[string]string{"Accept": syntheticAccept})
		resp = defaultHandlerFor(err)(synthetic)
	}

	n, werr := c.Write(resp.Serialize())
	if werr != nil {
		log.Printf("conn: writing response to %s: %v", c.RemoteAddr(), werr)
	}
	h.log.Request(c.RemoteAddr().String(), requestLine, resp.Status, n, referer, userAgent)
}

// defaultHandlerFor maps a C3 parse error to the default handler the
// connection falls back to, per the error-class table: invalid-headers and
// too-many-headers are client errors, everything else (a missing request
// line, a malformed query string) is treated as internal.
func defaultHandlerFor(err error) router.HandlerFunc {
	switch {
	case errors.Is(err, httpproto.ErrInvalidHeaders), errors.Is(err, httpproto.ErrTooManyHeaders):
		return router.ClientError
	default:
		return router.InternalServerError
	}
}

// AcceptLoop accepts connections from l until it returns an error (notably
// when l is closed for shutdown), handing each one to serve for parallel
// execution.
func AcceptLoop(l net.Listener, serve func(net.Conn)) error {
	for {
		c, err := l.Accept()
		if err != nil {
			return err
		}
		serve(c)
	}
}
