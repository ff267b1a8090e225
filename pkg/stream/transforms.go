package stream

import (
	"github.com/vnykmshr/streamkit/pkg/common/validation"
)

// Pair is a two-component element used by WithIndex, Keys and Values.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map returns a Stream whose elements are the results of applying mapper to
// each upstream element, preserving order and cardinality. Unlike the Map
// method, it may change the element type.
func Map[T, U any](s *Stream[T], mapper func(T) U) *Stream[U] {
	if s.err != nil {
		return errStream[U](s.err)
	}
	return &Stream[U]{seq: func(yield func(U) bool) {
		for v := range s.Seq() {
			if !yield(mapper(v)) {
				return
			}
		}
	}}
}

// Join flattens a Stream of slices by one level, concatenating each inner
// slice's elements into a single Stream. Order is preserved both across and
// within inner slices.
func Join[T any](s *Stream[[]T]) *Stream[T] {
	if s.err != nil {
		return errStream[T](s.err)
	}
	return &Stream[T]{seq: func(yield func(T) bool) {
		for inner := range s.Seq() {
			for _, v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}}
}

// Keys projects the Key component of every pair, preserving order and
// cardinality.
func Keys[K, V any](s *Stream[Pair[K, V]]) *Stream[K] {
	return Map(s, func(p Pair[K, V]) K { return p.Key })
}

// Values projects the Value component of every pair, preserving order and
// cardinality.
func Values[K, V any](s *Stream[Pair[K, V]]) *Stream[V] {
	return Map(s, func(p Pair[K, V]) V { return p.Value })
}

// WithIndex pairs every element with its zero-based position in the upstream
// sequence: (0, e0), (1, e1), and so on. Positions are assigned during a
// single deterministic traversal, so the upstream must yield the same
// elements in the same order each time it is evaluated.
func WithIndex[T any](s *Stream[T]) *Stream[Pair[int, T]] {
	if s.err != nil {
		return errStream[Pair[int, T]](s.err)
	}
	return &Stream[Pair[int, T]]{seq: func(yield func(Pair[int, T]) bool) {
		i := 0
		for v := range s.Seq() {
			if !yield(Pair[int, T]{Key: i, Value: v}) {
				return
			}
			i++
		}
	}}
}

// Uniq returns a Stream of the first occurrence of every distinct value, in
// order of first appearance, discarding later duplicates. Deduplication is
// hash-based, so each traversal allocates a set proportional to the number
// of distinct values seen.
func Uniq[T comparable](s *Stream[T]) *Stream[T] {
	if s.err != nil {
		return s
	}
	return &Stream[T]{seq: func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range s.Seq() {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}}
}

// ChunkEvery partitions the stream into consecutive slices of exactly size
// elements, except the final slice, which holds the remainder and may be
// shorter. No slice is ever empty unless the input is empty. size must be
// positive; a non-positive size is a precondition violation surfaced by the
// first terminal operation.
func ChunkEvery[T any](s *Stream[T], size int) *Stream[[]T] {
	if s.err != nil {
		return errStream[[]T](s.err)
	}
	if err := validation.ValidatePositive(module, "size", size); err != nil {
		return errStream[[]T](err)
	}
	return &Stream[[]T]{seq: func(yield func([]T) bool) {
		chunk := make([]T, 0, size)
		for v := range s.Seq() {
			chunk = append(chunk, v)
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, size)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}}
}

// SplitBy splits the stream into contiguous groups separated by occurrences
// of token, analogous to splitting a string on a delimiter. The token itself
// appears in no group. A leading or trailing token yields an empty group at
// that edge, and consecutive tokens yield an empty group between them. An
// empty stream yields no groups at all.
func SplitBy[T comparable](s *Stream[T], token T) *Stream[[]T] {
	if s.err != nil {
		return errStream[[]T](s.err)
	}
	return &Stream[[]T]{seq: func(yield func([]T) bool) {
		group := []T{}
		seen := false
		for v := range s.Seq() {
			seen = true
			if v == token {
				if !yield(group) {
					return
				}
				group = []T{}
				continue
			}
			group = append(group, v)
		}
		if seen {
			yield(group)
		}
	}}
}
