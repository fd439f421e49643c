package expansions

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "expansions.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadFiltersComments(t *testing.T) {
	path := writeTempFile(t, "#comment\nalpha\n#another comment\nbeta\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	all := s.All()
	if len(all) != 2 || all[0] != "alpha" || all[1] != "beta" {
		t.Fatalf("All() = %v", all)
	}
}

func TestRandomNonEmpty(t *testing.T) {
	path := writeTempFile(t, "only one\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := s.Random()
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if got != "only one" {
		t.Fatalf("Random() = %q, want %q", got, "only one")
	}
}

func TestRandomEmptyStoreFails(t *testing.T) {
	path := writeTempFile(t, "")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := s.Random(); err != ErrEmpty {
		t.Fatalf("Random() err = %v, want ErrEmpty", err)
	}
}

const searchCorpus = "Nacho Pizza Marinade\nNacho Portion Monitor\nNacho Portmanteau Meltdown\n" +
	"Nacho Printing Machine\nNachos Pillage Milwaukee\nNachos Preventing Motivation\n" +
	"Nadie Programa más\nNagging Penguin Matriarchs\nNahi Pata Mujhe!\n" +
	"Nail Polish Makeover\nNail Polishing Minions\nNaive Pac Man\n" +
	"Naive Props Mutation\nNaive Puppets Marching\n"

func TestSearchExactMatchFirst(t *testing.T) {
	path := writeTempFile(t, searchCorpus)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	results := s.Search("Nachos Pillage Milwaukee")
	if len(results) == 0 || results[0] != "Nachos Pillage Milwaukee" {
		t.Fatalf("Search() first = %v, want %q first", results, "Nachos Pillage Milwaukee")
	}
}

func TestSearchReturnsTopTen(t *testing.T) {
	path := writeTempFile(t, searchCorpus)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	results := s.Search("Nachos Pillage Milwaukee")
	if len(results) != 10 {
		t.Fatalf("Search() returned %d results, want 10", len(results))
	}
}

func TestAppendIdempotence(t *testing.T) {
	path := writeTempFile(t, "")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := s.Append([]string{"a", "b"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := s.Append([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(contents) != "a\nb\nc\n" {
		t.Fatalf("file contents = %q, want %q", contents, "a\nb\nc\n")
	}
}

func TestAppendReturnsOnlyNewlyWritten(t *testing.T) {
	path := writeTempFile(t, "a\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	written, err := s.Append([]string{"a", "b"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(written) != 1 || written[0] != "b" {
		t.Fatalf("Append() returned %v, want [\"b\"]", written)
	}
}

func TestAppendReloadsInMemoryState(t *testing.T) {
	path := writeTempFile(t, "a\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := s.Append([]string{"b"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	all := s.All()
	if len(all) != 2 || all[1] != "b" {
		t.Fatalf("All() after append = %v", all)
	}
}
