package stream

import (
	"cmp"
	"fmt"

	skerrors "github.com/vnykmshr/streamkit/pkg/common/errors"
)

// Number constrains aggregate operations such as Sum to the built-in
// numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Collect forces full evaluation and returns every element in order. It is
// the canonical materialization point: the returned slice is freshly
// allocated and independent of the stream's source.
func (s *Stream[T]) Collect() ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []T
	for v := range s.Seq() {
		result = append(result, v)
	}
	return result, nil
}

// Run forces full evaluation purely for side effects (typically after Each)
// and discards the elements.
func (s *Stream[T]) Run() error {
	if s.err != nil {
		return s.err
	}
	for range s.Seq() {
	}
	return nil
}

// Reduce folds accumulator over the elements left to right, starting from
// initial, and returns the accumulated value wrapped as a single-element
// Stream so chaining can continue. The fold order is strictly left to right;
// accumulator need not be associative or commutative. Reduce evaluates the
// stream immediately.
func (s *Stream[T]) Reduce(initial T, accumulator func(acc, v T) T) *Stream[T] {
	if s.err != nil {
		return s
	}
	result := initial
	for v := range s.Seq() {
		result = accumulator(result, v)
	}
	return Of(result)
}

// Count returns the number of elements, traversing the full stream.
func (s *Stream[T]) Count() (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	count := 0
	for range s.Seq() {
		count++
	}
	return count, nil
}

// All reports whether every element satisfies predicate. It is vacuously
// true on an empty stream. Traversal stops at the first failing element.
func (s *Stream[T]) All(predicate func(T) bool) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for v := range s.Seq() {
		if !predicate(v) {
			return false, nil
		}
	}
	return true, nil
}

// Any reports whether at least one element satisfies predicate. It is false
// on an empty stream and short-circuits at the first match.
func (s *Stream[T]) Any(predicate func(T) bool) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for v := range s.Seq() {
		if predicate(v) {
			return true, nil
		}
	}
	return false, nil
}

// Sum returns the sum of all elements, starting from zero. It is equivalent
// to a left fold with addition.
func Sum[T Number](s *Stream[T]) (T, error) {
	var total T
	if s.err != nil {
		return total, s.err
	}
	for v := range s.Seq() {
		total += v
	}
	return total, nil
}

// Min returns the minimum element under natural ordering. Applying Min to an
// empty stream is a precondition violation reported as ErrEmptyStream.
func Min[T cmp.Ordered](s *Stream[T]) (T, error) {
	var best T
	if s.err != nil {
		return best, s.err
	}
	found := false
	for v := range s.Seq() {
		if !found || v < best {
			best = v
			found = true
		}
	}
	if !found {
		return best, fmt.Errorf("%s: min of empty stream: %w", module, skerrors.ErrEmptyStream)
	}
	return best, nil
}

// Max returns the maximum element under natural ordering. Applying Max to an
// empty stream is a precondition violation reported as ErrEmptyStream.
func Max[T cmp.Ordered](s *Stream[T]) (T, error) {
	var best T
	if s.err != nil {
		return best, s.err
	}
	found := false
	for v := range s.Seq() {
		if !found || v > best {
			best = v
			found = true
		}
	}
	if !found {
		return best, fmt.Errorf("%s: max of empty stream: %w", module, skerrors.ErrEmptyStream)
	}
	return best, nil
}

// CountOf returns the number of elements equal to value, traversing the full
// stream.
func CountOf[T comparable](s *Stream[T], value T) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	count := 0
	for v := range s.Seq() {
		if v == value {
			count++
		}
	}
	return count, nil
}

// Contains reports whether the stream holds at least one element equal to
// value. It short-circuits at the first match.
func Contains[T comparable](s *Stream[T], value T) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for v := range s.Seq() {
		if v == value {
			return true, nil
		}
	}
	return false, nil
}
