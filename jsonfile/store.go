// Package jsonfile provides a file-backed AnimalRepo implementation.
// The whole collection lives in one JSON document with a top-level "animals"
// key. It is loaded once at open, and every append rewrites the file in full
// using an atomic temp-file-and-rename write with two-space indentation.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"menagerie"
)

// envelope is the persisted document layout.
type envelope struct {
	Animals []menagerie.Animal `json:"animals"`
}

// Store is an append-only, write-through animal repository backed by a single
// JSON file. The mutex makes it safe for concurrent use from HTTP handlers,
// though the design assumes a single in-process mutator; concurrent writers
// from multiple processes are not supported.
type Store struct {
	path string

	mu      sync.RWMutex
	animals []menagerie.Animal
}

// Open loads the collection from path. A missing file is treated as an empty
// collection; the file is created by the first successful Append.
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Store{path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var doc envelope
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	return &Store{path: path, animals: doc.Animals}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// All returns a copy of the full ordered collection.
func (s *Store) All(ctx context.Context) ([]menagerie.Animal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]menagerie.Animal, len(s.animals))
	copy(out, s.animals)
	return out, nil
}

// Get returns the record with the given id.
// Returns menagerie.ErrNotFound if the id is absent.
func (s *Store) Get(ctx context.Context, id string) (menagerie.Animal, error) {
	if err := ctx.Err(); err != nil {
		return menagerie.Animal{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.animals {
		if a.ID == id {
			return a, nil
		}
	}
	return menagerie.Animal{}, menagerie.ErrNotFound
}

// Append assigns the next id (the decimal string of the current collection
// length), appends the record, and rewrites the whole file before returning.
// On a failed write the in-memory append is kept, matching the write-through
// contract: the error is fatal for the current operation and the file is
// reconciled on the next successful append.
func (s *Store) Append(ctx context.Context, a menagerie.Animal) (menagerie.Animal, error) {
	if err := ctx.Err(); err != nil {
		return menagerie.Animal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = strconv.Itoa(len(s.animals))
	s.animals = append(s.animals, a)

	if err := s.persist(); err != nil {
		return menagerie.Animal{}, fmt.Errorf("append animal %s: %w", a.ID, err)
	}

	return a, nil
}

// persist rewrites the backing file from the in-memory collection.
// Callers must hold the write lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(envelope{Animals: s.animals}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmpPath := filepath.Join(dir, tmpFileName())

	t, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("could not open temp file: %w", err)
	}

	success := false
	defer func() {
		if closeErr := t.Close(); closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
			slog.Warn("failed to close tmp file", "err", closeErr)
		}
		if !success {
			if rmErr := os.Remove(tmpPath); rmErr != nil {
				slog.Warn("failed to remove tmp file", "err", rmErr)
			}
		}
	}()

	if _, err := t.Write(data); err != nil {
		return fmt.Errorf("could not write collection: %w", err)
	}

	if err := t.Sync(); err != nil {
		return fmt.Errorf("could not sync written file: %w", err)
	}

	if err := t.Close(); err != nil {
		return fmt.Errorf("could not close written file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	success = true
	return nil
}

func tmpFileName() string {
	return fmt.Sprintf(".t%s", uuid.New().String())
}
