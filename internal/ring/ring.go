// Package ring implements an insertion-ordered set
// on top of a circular doubly linked list.
package ring

import "iter"

type (
	// element is a member of the ring.
	// The zero element of a [Set] is its sentinel root;
	// root.next is the oldest member and root.prev the newest.
	element[Value comparable] struct {
		next, prev *element[Value]
		value      Value
	}
	// Set is an ordered collection of unique values.
	// Order is the order of insertion; re-inserting a
	// present value does not move it.
	// Concurrent access must be guarded by the caller.
	Set[Value comparable] struct {
		index map[Value]*element[Value]
		root  element[Value]
	}
)

// New creates an empty [Set] with space for sizeHint values.
func New[Value comparable](sizeHint int) *Set[Value] {
	set := &Set[Value]{
		index: make(map[Value]*element[Value], sizeHint),
	}
	set.root.next = &set.root
	set.root.prev = &set.root
	return set
}

// Len returns the number of members.
func (s *Set[_]) Len() int { return len(s.index) }

// Contains reports whether value is a member.
func (s *Set[Value]) Contains(value Value) bool {
	_, ok := s.index[value]
	return ok
}

// PushBack appends value as the newest member.
// Returns false (and leaves the order unchanged)
// if value was already present.
func (s *Set[Value]) PushBack(value Value) bool {
	if s.Contains(value) {
		return false
	}
	elem := &element[Value]{value: value}
	s.link(s.root.prev, elem)
	s.index[value] = elem
	return true
}

// Remove unlinks value, returning false if it was not a member.
func (s *Set[Value]) Remove(value Value) bool {
	elem, ok := s.index[value]
	if !ok {
		return false
	}
	s.unlink(elem)
	return true
}

// Front returns the oldest member.
func (s *Set[Value]) Front() (Value, bool) {
	if s.Len() == 0 {
		var zero Value
		return zero, false
	}
	return s.root.next.value, true
}

// PopFront unlinks and returns the oldest member.
func (s *Set[Value]) PopFront() (Value, bool) {
	value, ok := s.Front()
	if ok {
		s.unlink(s.root.next)
	}
	return value, ok
}

// All returns an iterator over the members, oldest first.
// The behavior of All is undefined if the set
// is modified during iteration.
func (s *Set[Value]) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for elem := s.root.next; elem != &s.root; elem = elem.next {
			if !yield(elem.value) {
				return
			}
		}
	}
}

// link inserts elem after at.
func (s *Set[Value]) link(at, elem *element[Value]) {
	next := at.next
	// Note: Cannot use multiple assignment because
	// evaluation order of LHS is not specified.
	elem.prev = at
	elem.next = next
	at.next = elem
	next.prev = elem
}

func (s *Set[Value]) unlink(elem *element[Value]) {
	elem.prev.next = elem.next
	elem.next.prev = elem.prev
	elem.next = nil
	elem.prev = nil
	delete(s.index, elem.value)
}
