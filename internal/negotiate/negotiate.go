// Package negotiate implements fitness-scored HTTP content negotiation
// against an Accept header, per RFC 7231 §5.3.2 as narrowed by this
// project's media-type grammar.
package negotiate

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/yourusername/npm-expansions/internal/mimetype"
)

// ErrInvalidAcceptHeader is returned when a clause of the client's Accept
// header fails to parse as a media type.
var ErrInvalidAcceptHeader = errors.New("negotiate: invalid accept header")

// ErrInvalidSupportedType is returned when one of the server's own
// candidate media types fails to parse.
var ErrInvalidSupportedType = errors.New("negotiate: invalid supported type")

type clause struct {
	mt mimetype.MediaType
	q  float64
}

// BestMatch returns the entry of supported that best satisfies acceptHeader,
// or "" if none matches (including when acceptHeader is empty). Each
// candidate's fitness against a clause is 100 for an exact type match, plus
// 10 for an exact subtype match, plus the clause's quality; wildcards on the
// clause side match without the exactness bonus. A candidate of "*/*" is
// the one exception: it matches every clause unconditionally, since it
// declares the server willing to produce anything. Across all clauses
// matching a candidate, the quality of the highest-fitness clause is
// retained. Candidates are then compared by retained quality; the last one
// (in supported order) with a positive quality wins ties.
func BestMatch(supported []string, acceptHeader string) (string, error) {
	if strings.TrimSpace(acceptHeader) == "" {
		return "", nil
	}

	var clauses []clause
	for _, raw := range strings.Split(acceptHeader, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		mt, err := mimetype.Parse(raw)
		if err != nil {
			return "", ErrInvalidAcceptHeader
		}
		q := 1.0
		if qs, ok := mt.Params["q"]; ok {
			parsed, err := strconv.ParseFloat(qs, 64)
			if err == nil {
				q = parsed
			}
		}
		if q < 0 {
			q = 0
		}
		if q > 1 {
			q = 1
		}
		clauses = append(clauses, clause{mt: mt, q: q})
	}

	type scored struct {
		candidate string
		q         float64
	}
	var results []scored

	for _, candidateStr := range supported {
		candidate, err := mimetype.Parse(candidateStr)
		if err != nil {
			return "", ErrInvalidSupportedType
		}

		bestFitness := -1.0
		bestQ := 0.0
		matched := false
		candidateIsWildcard := candidate.Type == "*" && candidate.Subtype == "*"

		for _, c := range clauses {
			typeMatch := c.mt.Type == "*" || c.mt.Type == candidate.Type
			subtypeMatch := c.mt.Subtype == "*" || c.mt.Subtype == candidate.Subtype
			if !candidateIsWildcard && (!typeMatch || !subtypeMatch) {
				continue
			}

			fitness := 0.0
			if c.mt.Type == candidate.Type {
				fitness += 100
			}
			if c.mt.Subtype == candidate.Subtype {
				fitness += 10
			}
			fitness += c.q

			if fitness > bestFitness {
				bestFitness = fitness
				bestQ = c.q
				matched = true
			}
		}

		if matched {
			results = append(results, scored{candidate: candidateStr, q: bestQ})
		}
	}

	if len(results) == 0 {
		return "", nil
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].q < results[j].q
	})

	for i := len(results) - 1; i >= 0; i-- {
		if results[i].q > 0 {
			return results[i].candidate, nil
		}
	}
	return "", nil
}
