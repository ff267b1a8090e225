package stream

import (
	"iter"
	"slices"

	"github.com/vnykmshr/streamkit/pkg/common/validation"
)

// module is the component name reported in validation errors.
const module = "stream"

// Stream represents a lazily computed, ordered sequence of elements.
// A Stream is a description of how to produce elements, not the elements
// themselves: combinators wrap the upstream view in O(1) and never traverse
// it, and evaluation happens only inside a terminal operation.
//
// Streams are immutable. Every combinator returns a new descriptor that
// borrows the upstream view; the underlying source is never copied and must
// outlive every Stream derived from it. A Stream may be traversed more than
// once as long as its source iterates deterministically.
//
// Precondition violations in combinator arguments (for example a negative
// Take count) are recorded on the returned descriptor and surfaced by the
// first terminal operation, never as silent wrong answers.
type Stream[T any] struct {
	seq iter.Seq[T]
	err error
}

// emptySeq is the view of a stream with no elements.
func emptySeq[T any](func(T) bool) {}

// errStream returns a descriptor carrying a pending error. Terminal
// operations report the error instead of traversing.
func errStream[T any](err error) *Stream[T] {
	return &Stream[T]{seq: emptySeq[T], err: err}
}

// Of creates a Stream over the given values in argument order.
func Of[T any](values ...T) *Stream[T] {
	return FromSlice(values)
}

// FromSlice creates a Stream over an existing slice without copying it.
// Element order equals slice order. The slice must not be mutated while
// any Stream derived from it is still in use.
func FromSlice[T any](slice []T) *Stream[T] {
	return &Stream[T]{seq: slices.Values(slice)}
}

// FromSeq creates a Stream over an iter.Seq view. The sequence must yield
// the same elements in the same order on every traversal.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	return &Stream[T]{seq: seq}
}

// Range creates a Stream of the integers begin, begin+1, ..., end.
//
// The upper bound is INCLUSIVE: Range(1, 3) yields 1, 2, 3. This is a
// deliberate contract, not a convenience, and deviates from Go's usual
// half-open ranges. If end < begin the stream is empty; that is never an
// error.
func Range(begin, end int) *Stream[int] {
	return &Stream[int]{seq: func(yield func(int) bool) {
		for i := begin; i <= end; i++ {
			if !yield(i) {
				return
			}
		}
	}}
}

// Generate creates an infinite Stream whose elements are produced by
// successive calls to generator. Bound it with Take before applying a
// terminal operation that traverses fully.
func Generate[T any](generator func() T) *Stream[T] {
	return &Stream[T]{seq: func(yield func(T) bool) {
		for yield(generator()) {
		}
	}}
}

// Empty creates a Stream with no elements.
func Empty[T any]() *Stream[T] {
	return &Stream[T]{seq: emptySeq[T]}
}

// Seq exposes the stream's view for use with range-over-func. A pending
// precondition error is not observable through the returned sequence; check
// Err or use a terminal operation when that matters.
func (s *Stream[T]) Seq() iter.Seq[T] {
	if s.seq == nil {
		return emptySeq[T]
	}
	return s.seq
}

// Err returns the stream's pending precondition error, if any, without
// traversing it.
func (s *Stream[T]) Err() error {
	return s.err
}

// Map returns a Stream whose elements are the results of applying mapper to
// each upstream element, preserving order and cardinality. For mappings that
// change the element type use the package-level Map function.
func (s *Stream[T]) Map(mapper func(T) T) *Stream[T] {
	return Map(s, mapper)
}

// Filter returns a Stream of the elements for which predicate is true,
// preserving relative order.
func (s *Stream[T]) Filter(predicate func(T) bool) *Stream[T] {
	if s.err != nil {
		return s
	}
	return &Stream[T]{seq: func(yield func(T) bool) {
		for v := range s.Seq() {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}}
}

// Reject returns a Stream of the elements for which predicate is false.
// It is exactly Filter with the predicate negated.
func (s *Stream[T]) Reject(predicate func(T) bool) *Stream[T] {
	return s.Filter(func(v T) bool { return !predicate(v) })
}

// Each returns a Stream that applies action to every element for its side
// effect while passing the element through unchanged. Actions fire in
// traversal order, once per element per traversal, and only when the stream
// is actually evaluated, never at the point Each is called.
func (s *Stream[T]) Each(action func(T)) *Stream[T] {
	if s.err != nil {
		return s
	}
	return &Stream[T]{seq: func(yield func(T) bool) {
		for v := range s.Seq() {
			action(v)
			if !yield(v) {
				return
			}
		}
	}}
}

// Take returns a Stream of the first n upstream elements, or all of them if
// fewer than n exist. n must be non-negative; a negative n is a precondition
// violation surfaced by the first terminal operation.
func (s *Stream[T]) Take(n int) *Stream[T] {
	if s.err != nil {
		return s
	}
	if err := validation.ValidateNonNegative(module, "n", n); err != nil {
		return errStream[T](err)
	}
	return &Stream[T]{seq: func(yield func(T) bool) {
		if n == 0 {
			return
		}
		taken := 0
		for v := range s.Seq() {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}}
}

// Skip returns a Stream of the upstream elements after the first n. If the
// stream holds fewer than n elements the result is empty. n must be
// non-negative.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	if s.err != nil {
		return s
	}
	if err := validation.ValidateNonNegative(module, "n", n); err != nil {
		return errStream[T](err)
	}
	return &Stream[T]{seq: func(yield func(T) bool) {
		skipped := 0
		for v := range s.Seq() {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}}
}
