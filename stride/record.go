// SPDX-License-Identifier: MIT

// Package stride - persistence record.
//
// A Record is a plain in-memory value with exactly four fields. The package
// chooses no file format: callers encode records however they like. Slot
// implements the encoding/json and gopkg.in/yaml.v3 hooks, so a Record (or
// any value holding slots) can be handed straight to either encoder with the
// empty marker written as null.
//
// Note: for pointer element types a stored nil pointer and the empty marker
// both encode as null and decode as empty.

package stride

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Record is the persistence form of an Array.
type Record[T comparable] struct {
	Offset     int       `json:"offset" yaml:"offset"`
	Dimensions []int     `json:"dimensions" yaml:"dimensions"`
	Strides    []int     `json:"strides" yaml:"strides"`
	Data       []Slot[T] `json:"data" yaml:"data"`
}

var (
	_ json.Marshaler   = Slot[int]{}
	_ json.Unmarshaler = (*Slot[int])(nil)
	_ yaml.Marshaler   = Slot[int]{}
	_ yaml.Unmarshaler = (*Slot[int])(nil)
	_ yaml.Unmarshaler = (*Record[int])(nil)
)

var jsonNull = []byte("null")

const yamlNullTag = "!!null"

// MarshalJSON writes the value, or null for the empty marker.
func (s Slot[T]) MarshalJSON() ([]byte, error) {
	if !s.set {
		return jsonNull, nil
	}

	return json.Marshal(s.value)
}

// UnmarshalJSON reads a value; null becomes the empty marker.
func (s *Slot[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		*s = Slot[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Full(v)

	return nil
}

// MarshalYAML writes the value, or null for the empty marker.
func (s Slot[T]) MarshalYAML() (interface{}, error) {
	if !s.set {
		return nil, nil
	}

	return s.value, nil
}

// UnmarshalYAML reads a value; a null node becomes the empty marker.
//
// yaml.v3 skips null entries of a sequence before any hook runs, so a bare
// []Slot[T] decoded from YAML loses its empty slots. Record decodes its data
// node by node and keeps them.
func (s *Slot[T]) UnmarshalYAML(n *yaml.Node) error {
	if n.ShortTag() == yamlNullTag {
		*s = Slot[T]{}
		return nil
	}
	var v T
	if err := n.Decode(&v); err != nil {
		return err
	}
	*s = Full(v)

	return nil
}

// yamlRecord is the decoding shape of a Record: data stays as raw nodes so
// null entries survive until Slot.UnmarshalYAML sees them.
type yamlRecord struct {
	Offset     int         `yaml:"offset"`
	Dimensions []int       `yaml:"dimensions"`
	Strides    []int       `yaml:"strides"`
	Data       []yaml.Node `yaml:"data"`
}

// UnmarshalYAML reads a record; null data entries become empty slots.
func (r *Record[T]) UnmarshalYAML(n *yaml.Node) error {
	var y yamlRecord
	if err := n.Decode(&y); err != nil {
		return err
	}
	data := make([]Slot[T], len(y.Data))
	for i := range y.Data {
		if err := data[i].UnmarshalYAML(&y.Data[i]); err != nil {
			return fmt.Errorf("data[%d]: %w", i, err)
		}
	}
	*r = Record[T]{
		Offset:     y.Offset,
		Dimensions: y.Dimensions,
		Strides:    y.Strides,
		Data:       data,
	}

	return nil
}

// Snapshot returns the persistence record of a. All four fields are copies.
func (a *Array[T]) Snapshot() Record[T] {
	return Record[T]{
		Offset:     a.offset,
		Dimensions: slices.Clone(a.dims),
		Strides:    slices.Clone(a.strides),
		Data:       slices.Clone(a.data),
	}
}

// Restore replaces all state of a with rec, unconditionally. Nothing is
// recomputed or validated: the caller vouches that the fields agree (see
// Record.Validate). The slices are copied, so rec stays independent of a.
func (a *Array[T]) Restore(rec Record[T]) {
	a.offset = rec.Offset
	a.dims = slices.Clone(rec.Dimensions)
	a.strides = slices.Clone(rec.Strides)
	a.data = slices.Clone(rec.Data)

	a.logger().Debug("stride: state restored",
		"offset", a.offset,
		"dims", a.dims,
		"len", len(a.data),
	)
}

// FromRecord builds an array directly from rec, with Restore semantics.
func FromRecord[T comparable](rec Record[T], opts ...Option) *Array[T] {
	a := &Array[T]{opts: gatherOptions(opts...)}
	a.Restore(rec)

	return a
}

// Validate checks that the record's fields agree with each other.
// Stage 1: offset >= 0.
// Stage 2: dimensions form a valid shape.
// Stage 3: strides follow the recurrence.
// Stage 4: len(Data) == product(Dimensions).
// Errors: ErrBadOffset, ErrBadShape, ErrStrideMismatch, ErrLengthMismatch.
func (r Record[T]) Validate() error {
	if r.Offset < 0 {
		return fmt.Errorf("%s: %w", ctxValidate, ErrBadOffset)
	}
	n, err := validateShape(r.Dimensions)
	if err != nil {
		return fmt.Errorf("%s: dims %v: %w", ctxValidate, r.Dimensions, err)
	}
	if !stridesMatch(r.Dimensions, r.Strides) {
		return fmt.Errorf("%s: strides %v: %w", ctxValidate, r.Strides, ErrStrideMismatch)
	}
	if len(r.Data) != n {
		return fmt.Errorf("%s: %d slots, want %d: %w", ctxValidate, len(r.Data), n, ErrLengthMismatch)
	}

	return nil
}
