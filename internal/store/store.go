// Package store owns the files on disk: one data directory holding
// <name>.json books plus csv/xlsx exports. Loading never mutates a book
// the caller already holds; on any failure the caller keeps what it had.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jeanpaul/rolodex/internal/book"
	"github.com/jeanpaul/rolodex/internal/codec"
)

type Store struct {
	dir string
}

// Open makes sure the data directory exists and returns a store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name, ext string) string {
	return filepath.Join(s.dir, name+ext)
}

// SaveJSON writes the book to <name>.json.
func (s *Store) SaveJSON(name string, ab *book.AddressBook) error {
	data, err := codec.EncodeJSON(ab)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name, ".json"), data, 0o644)
}

// LoadJSON reads <name>.json into a fresh book. The previous in-memory
// book is untouched on failure because a new one is only returned on
// success.
func (s *Store) LoadJSON(name string) (*book.AddressBook, error) {
	data, err := os.ReadFile(s.path(name, ".json"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrNotFound, err)
	}
	return codec.DecodeJSON(data)
}

// ExportCSV writes the book to <name>.csv.
func (s *Store) ExportCSV(name string, ab *book.AddressBook) error {
	data, err := codec.EncodeCSV(ab)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name, ".csv"), data, 0o644)
}

// ImportCSV reads <name>.csv into a fresh book, all-or-nothing.
func (s *Store) ImportCSV(name string) (*book.AddressBook, error) {
	data, err := os.ReadFile(s.path(name, ".csv"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrNotFound, err)
	}
	return codec.DecodeCSV(data)
}

// ExportXLSX writes the book to <name>.xlsx.
func (s *Store) ExportXLSX(name string, ab *book.AddressBook) error {
	f, err := os.Create(s.path(name, ".xlsx"))
	if err != nil {
		return err
	}
	defer f.Close()
	return codec.WriteXLSX(ab, f)
}

// ImportXLSX reads <name>.xlsx into a fresh book, all-or-nothing.
func (s *Store) ImportXLSX(name string) (*book.AddressBook, error) {
	f, err := os.Open(s.path(name, ".xlsx"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrNotFound, err)
	}
	defer f.Close()
	return codec.ReadXLSX(f)
}

// Books lists the saved book names (json files in the data dir, without
// the extension), sorted.
func (s *Store) Books() ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
