// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fixedset

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrFull is returned by Insert when every slot is occupied.
	ErrFull = errors.New("fixedset: set is full")

	// ErrOutOfBounds is returned for a position outside [0, capacity).
	ErrOutOfBounds = errors.New("fixedset: position out of bounds")

	// ErrCapacityMismatch is returned by Union for sets of different
	// capacities.
	ErrCapacityMismatch = errors.New("fixedset: capacities differ")
)

type slot[T any] struct {
	value    T
	occupied bool
}

// Set is a fixed-capacity collection of optional slots.
type Set[T any] struct {
	slots []slot[T]
	count int
}

// New returns an empty set with the given capacity. It panics if
// capacity is negative. A zero-capacity set is always full.
func New[T any](capacity int) *Set[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("fixedset: negative capacity %d", capacity))
	}
	return &Set[T]{slots: make([]slot[T], capacity)}
}

func (s *Set[T]) check(position int) error {
	if position < 0 || position >= len(s.slots) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfBounds, position, len(s.slots))
	}
	return nil
}

// Insert stores value in the lowest free slot and returns its position.
func (s *Set[T]) Insert(value T) (int, error) {
	for position := range s.slots {
		if !s.slots[position].occupied {
			s.slots[position] = slot[T]{value: value, occupied: true}
			s.count++
			return position, nil
		}
	}
	return 0, ErrFull
}

// Set stores value at position, replacing any item already there.
func (s *Set[T]) Set(position int, value T) error {
	if err := s.check(position); err != nil {
		return err
	}
	if !s.slots[position].occupied {
		s.count++
	}
	s.slots[position] = slot[T]{value: value, occupied: true}
	return nil
}

// Get returns the item at position. ok is false for an empty slot.
func (s *Set[T]) Get(position int) (value T, ok bool, err error) {
	if err := s.check(position); err != nil {
		return value, false, err
	}
	entry := s.slots[position]
	return entry.value, entry.occupied, nil
}

// Remove empties the slot at position and returns the item it held.
// ok is false if the slot was already empty.
func (s *Set[T]) Remove(position int) (value T, ok bool, err error) {
	if err := s.check(position); err != nil {
		return value, false, err
	}
	entry := s.slots[position]
	if !entry.occupied {
		return value, false, nil
	}
	s.slots[position] = slot[T]{}
	s.count--
	return entry.value, true, nil
}

// Len returns the number of occupied slots.
func (s *Set[T]) Len() int { return s.count }

// Capacity returns the number of slots.
func (s *Set[T]) Capacity() int { return len(s.slots) }

// IsFull reports whether every slot is occupied.
func (s *Set[T]) IsFull() bool { return s.count == len(s.slots) }

// Index returns the position of the first item matching predicate.
func (s *Set[T]) Index(predicate func(T) bool) (int, bool) {
	for position, entry := range s.slots {
		if entry.occupied && predicate(entry.value) {
			return position, true
		}
	}
	return -1, false
}

// All yields each occupied position and its item in position order.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for position, entry := range s.slots {
			if entry.occupied && !yield(position, entry.value) {
				return
			}
		}
	}
}

// Union returns a new set holding, for each position, the receiver's
// item if it has one and other's item otherwise. Both sets must have
// the same capacity.
func (s *Set[T]) Union(other *Set[T]) (*Set[T], error) {
	if len(s.slots) != len(other.slots) {
		return nil, fmt.Errorf("%w: %d and %d", ErrCapacityMismatch, len(s.slots), len(other.slots))
	}
	result := New[T](len(s.slots))
	for position := range s.slots {
		switch {
		case s.slots[position].occupied:
			result.slots[position] = s.slots[position]
		case other.slots[position].occupied:
			result.slots[position] = other.slots[position]
		default:
			continue
		}
		result.count++
	}
	return result, nil
}
