// Package expansions implements the in-memory, file-backed list of
// npm-expansion phrases: load from disk, random pick, fuzzy top-K search,
// and idempotent append.
package expansions

import (
	"bufio"
	"errors"
	"math/rand"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/xrash/smetrics"
)

// ErrEmpty is returned by Random when the store holds no expansions.
var ErrEmpty = errors.New("expansions: store is empty")

// searchResultLimit bounds the number of entries Search returns.
const searchResultLimit = 10

// jaroWinklerBoostThreshold and jaroWinklerPrefixSize are the standard
// Winkler-boost parameters: strings scoring above the threshold get a bonus
// proportional to their shared prefix, up to prefixSize characters.
const (
	jaroWinklerBoostThreshold = 0.7
	jaroWinklerPrefixSize     = 4
)

// Store is a process-wide, read/write-locked expansion list backed by an
// append-only text file. Handlers hold a read capability (All, Random,
// Search); the updater holds the write capability (Append).
type Store struct {
	mu         sync.RWMutex
	path       string
	expansions []string
}

// Load reads path and constructs a Store. Lines beginning with "#" are
// comments and are not included as expansions.
func Load(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory list with the non-comment lines of the
// backing file.
func (s *Store) Reload() error {
	lines, err := loadExpansionsFile(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.expansions = lines
	s.mu.Unlock()
	return nil
}

func loadExpansionsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// All returns the current ordered list of expansions. The held read lock
// covers the copy, so the result is a stable snapshot.
func (s *Store) All() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.expansions))
	copy(out, s.expansions)
	return out
}

// Random returns one expansion drawn uniformly at random. It fails with
// ErrEmpty if the store holds no expansions.
func (s *Store) Random() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.expansions) == 0 {
		return "", ErrEmpty
	}
	return s.expansions[rand.Intn(len(s.expansions))], nil
}

// Search returns up to searchResultLimit expansions ranked by Jaro-Winkler
// similarity to query, highest first; ties are broken by earliest file
// position.
func (s *Store) Search(query string) []string {
	s.mu.RLock()
	expansions := make([]string, len(s.expansions))
	copy(expansions, s.expansions)
	s.mu.RUnlock()

	type scored struct {
		expansion string
		score     float64
	}
	matches := make([]scored, len(expansions))
	for i, e := range expansions {
		matches[i] = scored{
			expansion: e,
			score:     smetrics.JaroWinkler(e, query, jaroWinklerBoostThreshold, jaroWinklerPrefixSize),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	limit := searchResultLimit
	if len(matches) < limit {
		limit = len(matches)
	}

	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].expansion
	}
	return out
}

// Append writes each of candidates not already present (by exact string
// membership) to the backing file, one per line, and returns the subset
// actually written. The in-memory list is reloaded from disk before
// returning so subsequent reads observe the new entries.
func (s *Store) Append(candidates []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	present := make(map[string]struct{}, len(s.expansions))
	for _, e := range s.expansions {
		present[e] = struct{}{}
	}

	var unique []string
	for _, c := range candidates {
		if _, ok := present[c]; !ok {
			unique = append(unique, c)
		}
	}

	if len(unique) > 0 {
		f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, err
		}
		for _, e := range unique {
			if _, err := f.WriteString(e + "\n"); err != nil {
				f.Close()
				return nil, err
			}
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
	}

	lines, err := loadExpansionsFile(s.path)
	if err != nil {
		return nil, err
	}
	s.expansions = lines

	return unique, nil
}
