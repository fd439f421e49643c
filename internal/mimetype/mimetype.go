// Package mimetype parses media-type tokens such as "application/json" or
// "text/html;q=0.8" into their constituent type, subtype, and parameters.
package mimetype

import (
	"errors"
	"strings"
)

// ErrInvalidMediaType is returned when a media-type token does not match the
// type"/"subtype[;key=value]* grammar.
var ErrInvalidMediaType = errors.New("mimetype: invalid media type")

// MediaType is a parsed type/subtype/parameters triple. Type and Subtype may
// be the wildcard "*". Params is nil when no parameters were present.
type MediaType struct {
	Type    string
	Subtype string
	Params  map[string]string
}

// Parse splits s into a MediaType per the following grammar: trim surrounding
// whitespace, split on ";", the first segment must contain exactly one "/"
// with non-empty type and subtype, and every remaining segment must be of the
// form key=value with a non-empty key. Any violation returns
// ErrInvalidMediaType.
func Parse(s string) (MediaType, error) {
	s = strings.TrimSpace(s)
	segments := strings.Split(s, ";")

	typePart := strings.TrimSpace(segments[0])
	slash := strings.IndexByte(typePart, '/')
	if slash < 0 || strings.Count(typePart, "/") != 1 {
		return MediaType{}, ErrInvalidMediaType
	}
	typ := typePart[:slash]
	subtype := typePart[slash+1:]
	if typ == "" || subtype == "" {
		return MediaType{}, ErrInvalidMediaType
	}

	mt := MediaType{Type: typ, Subtype: subtype}

	for _, raw := range segments[1:] {
		seg := strings.TrimSpace(raw)
		eq := strings.IndexByte(seg, '=')
		if eq <= 0 {
			return MediaType{}, ErrInvalidMediaType
		}
		key := strings.TrimSpace(seg[:eq])
		value := strings.TrimSpace(seg[eq+1:])
		if key == "" {
			return MediaType{}, ErrInvalidMediaType
		}
		if mt.Params == nil {
			mt.Params = make(map[string]string)
		}
		mt.Params[key] = value
	}

	return mt, nil
}

// String formats mt back into a media-type token. Parameter order is not
// guaranteed to match the original input.
func (mt MediaType) String() string {
	var b strings.Builder
	b.WriteString(mt.Type)
	b.WriteByte('/')
	b.WriteString(mt.Subtype)
	for k, v := range mt.Params {
		b.WriteByte(';')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String()
}
