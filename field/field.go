// Package field stores forest-wide cell data addressed by global index.
//
// Global indices are the bridge between a tree's local addressing and the
// shared data arrays of the whole forest: every entry variant exposes the
// global index of its current cell, and this package holds the arrays that
// index points into. Fields are identified by the xxHash64 of their name,
// so lookups during traversal never compare strings.
package field

import (
	"errors"
	"fmt"

	"github.com/gridforge/htg/internal/hash"
)

// ErrFieldNotFound indicates a field ID with no registered array.
var ErrFieldNotFound = errors.New("field not found")

// ID identifies one field across the forest.
type ID uint64

// NameID computes the field ID for a name.
func NameID(name string) ID {
	return ID(hash.ID(name))
}

// Float64Field is a dense per-cell array indexed by global index, growing
// on assignment. Unset cells read as the field's fill value.
type Float64Field struct {
	name   string
	fill   float64
	values []float64
}

// NewFloat64Field creates a named field whose unset cells read as fill.
func NewFloat64Field(name string, fill float64) *Float64Field {
	return &Float64Field{name: name, fill: fill}
}

// Name returns the field's name.
func (f *Float64Field) Name() string { return f.name }

// ID returns the field's hashed identifier.
func (f *Float64Field) ID() ID { return NameID(f.name) }

// Len returns the highest assigned global index plus one.
func (f *Float64Field) Len() int64 { return int64(len(f.values)) }

// Get returns the value at globalIndex, the fill value when the cell was
// never assigned.
func (f *Float64Field) Get(globalIndex int64) float64 {
	if globalIndex < 0 || globalIndex >= int64(len(f.values)) {
		return f.fill
	}

	return f.values[globalIndex]
}

// Set assigns the value at globalIndex, growing the array as needed with
// the fill value. Negative indices are a programming error and panic.
func (f *Float64Field) Set(globalIndex int64, value float64) {
	if globalIndex < 0 {
		panic(fmt.Sprintf("field: negative global index %d", globalIndex))
	}
	for int64(len(f.values)) <= globalIndex {
		f.values = append(f.values, f.fill)
	}
	f.values[globalIndex] = value
}

// Set is a collection of fields keyed by ID.
type Set struct {
	fields map[ID]*Float64Field
}

// NewSet creates an empty field set.
func NewSet() *Set {
	return &Set{fields: make(map[ID]*Float64Field)}
}

// Add registers a field, replacing any field with the same name.
func (s *Set) Add(f *Float64Field) {
	s.fields[f.ID()] = f
}

// Get resolves a field by ID.
func (s *Set) Get(id ID) (*Float64Field, error) {
	f, ok := s.fields[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %#x", ErrFieldNotFound, uint64(id))
	}

	return f, nil
}

// GetByName resolves a field by name.
func (s *Set) GetByName(name string) (*Float64Field, error) {
	f, err := s.Get(NameID(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}

	return f, nil
}

// Len returns the number of registered fields.
func (s *Set) Len() int { return len(s.fields) }
