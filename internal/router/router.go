// Package router implements exact route-key dispatch over the three JSON
// endpoints this server exposes, plus the default-handler family used both
// for route misses and as the connection handler's error fallback.
package router

import (
	"github.com/yourusername/npm-expansions/internal/expansions"
	"github.com/yourusername/npm-expansions/internal/httpproto"
)

// HandlerFunc answers one request with a Response.
type HandlerFunc func(req *httpproto.Request) httpproto.Response

// Router holds an immutable route-key-to-handler mapping, built once at
// bootstrap from a read capability to the expansions model.
type Router struct {
	routes map[string]HandlerFunc
}

// New constructs the router wired to the three JSON routes.
func New(store *expansions.Store) *Router {
	return &Router{
		routes: map[string]HandlerFunc{
			"GET /api/random HTTP/1.1": randomHandler(store),
			"GET /api/all HTTP/1.1":    allHandler(store),
			"GET /api/search HTTP/1.1": searchHandler(store),
		},
	}
}

// Dispatch looks up the request's normalized route key and invokes its
// handler; on a miss it invokes NotFound.
func (r *Router) Dispatch(req *httpproto.Request) httpproto.Response {
	if h, ok := r.routes[req.RouteKey()]; ok {
		return h(req)
	}
	return NotFound(req)
}
