package router

import (
	"fmt"
	"strings"

	"github.com/yourusername/npm-expansions/internal/expansions"
	"github.com/yourusername/npm-expansions/internal/httpproto"
	"github.com/yourusername/npm-expansions/internal/negotiate"
)

const jsonContentTypeHeader = "Content-Type: application/json"

// acceptHeader returns the request's Accept header value, or "" if absent.
func acceptHeader(req *httpproto.Request) string {
	v, _ := req.Header("Accept")
	return v
}

// notAcceptableResponse is returned by the JSON handlers when the client's
// Accept header does not admit application/json.
func notAcceptableResponse() httpproto.Response {
	return httpproto.Response{
		Status: 406,
		Reason: "NOT ACCEPTABLE",
		Body:   []byte("Please accept application/json"),
	}
}

func randomHandler(store *expansions.Store) HandlerFunc {
	return func(req *httpproto.Request) httpproto.Response {
		best, err := negotiate.BestMatch([]string{"application/json"}, acceptHeader(req))
		if err != nil || best != "application/json" {
			return notAcceptableResponse()
		}

		expansion, err := store.Random()
		if err != nil {
			return InternalServerError(req)
		}

		body := fmt.Sprintf(`{"npm-expansion": "%s"}`, expansion)
		return httpproto.Response{
			Status:       200,
			Reason:       "OK",
			ExtraHeaders: jsonContentTypeHeader,
			Body:         []byte(body),
		}
	}
}

func allHandler(store *expansions.Store) HandlerFunc {
	return func(req *httpproto.Request) httpproto.Response {
		best, err := negotiate.BestMatch([]string{"application/json"}, acceptHeader(req))
		if err != nil || best != "application/json" {
			return notAcceptableResponse()
		}

		body := "[" + joinQuoted(store.All()) + "]"
		return httpproto.Response{
			Status:       200,
			Reason:       "OK",
			ExtraHeaders: jsonContentTypeHeader,
			Body:         []byte(body),
		}
	}
}

func searchHandler(store *expansions.Store) HandlerFunc {
	return func(req *httpproto.Request) httpproto.Response {
		best, err := negotiate.BestMatch([]string{"application/json"}, acceptHeader(req))
		if err != nil || best != "application/json" {
			return notAcceptableResponse()
		}

		query, ok := req.QueryParam("query")
		if !ok {
			query = " "
		}

		body := "[" + joinQuoted(store.Search(query)) + "]"
		return httpproto.Response{
			Status:       200,
			Reason:       "OK",
			ExtraHeaders: jsonContentTypeHeader,
			Body:         []byte(body),
		}
	}
}

// joinQuoted wraps each entry in double quotes and joins with commas. No
// escaping is performed: entries are trusted not to contain an unescaped
// '"', and the expansions model does not reject such entries on append.
func joinQuoted(entries []string) string {
	quoted := make([]string, len(entries))
	for i, e := range entries {
		quoted[i] = `"` + e + `"`
	}
	return strings.Join(quoted, ",")
}
