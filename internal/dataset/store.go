// Package dataset holds the fixed seed records of a service and answers
// read-only queries over them.
package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate record id")
)

// Record is anything keyed by a unique integer id.
type Record interface {
	RecordID() int
}

// Store is an ordered, immutable sequence of records. It is built once at
// startup and only read afterwards, so it is safe for concurrent use
// without locking.
type Store[T Record] struct {
	records []T
}

func New[T Record](records ...T) (*Store[T], error) {
	seen := make(map[int]struct{}, len(records))
	for _, rec := range records {
		id := rec.RecordID()
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}
	out := make([]T, len(records))
	copy(out, records)
	return &Store[T]{records: out}, nil
}

// MustNew is New for literal seeds, where a bad record is a programming error.
func MustNew[T Record](records ...T) *Store[T] {
	s, err := New(records...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store[T]) Len() int { return len(s.records) }

// List returns every record in insertion order. The slice is a copy.
func (s *Store[T]) List() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the first record with the given id.
func (s *Store[T]) Get(id int) (T, error) {
	for _, rec := range s.records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("id %d: %w", id, ErrNotFound)
}

// Filter returns the records accepted by match, in insertion order. The
// result is never nil so it encodes as [] when nothing matches.
func (s *Store[T]) Filter(match func(T) bool) []T {
	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		if match(rec) {
			out = append(out, rec)
		}
	}
	return out
}
