/*
Package stream provides a lazy, composable API for transforming ordered
sequences of data in Go.

A Stream is a description of how to produce elements, built as a chain of
deferred combinators over an underlying source. Streams are:
  - Lazy: combinators are O(1) and never touch the source; computation runs
    only when a terminal operation is applied
  - Immutable: every combinator returns a new Stream; the receiver and its
    source are never mutated
  - Synchronous: evaluation is a single-threaded pull over the view, with
    no goroutines, channels or locks

Stream Creation:

	// From explicit values or an existing slice (not copied)
	s := stream.Of(3, 1, 4, 1, 5)
	s := stream.FromSlice(data)

	// Inclusive integer range: yields 1, 2, 3, 4, 5
	s := stream.Range(1, 5)

	// From a range-over-func sequence
	s := stream.FromSeq(seq)

	// Infinite generator; bound with Take before collecting
	n := 0
	s := stream.Generate(func() int { n++; return n }).Take(10)

Combinators:

Same-type transforms are methods and chain fluently:

	evens := stream.Range(1, 10).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * n })

Transforms that change the element type are package-level functions, since Go
methods cannot introduce type parameters:

	words := stream.Map(stream.Range(1, 3), strconv.Itoa) // Stream[string]
	pairs := stream.WithIndex(words)                      // Stream[Pair[int, string]]
	flat := stream.Join(stream.ChunkEvery(nums, 2))       // flatten one level

Terminal Operations:

Collect, Run, Reduce, Count, All and Any are methods; aggregates that need
extra type constraints (Sum, Min, Max, CountOf, Contains) are package-level
functions. Terminals force evaluation and return concrete values:

	total, err := stream.Sum(stream.Range(1, 5)) // 15

Error Handling:

Precondition violations (a negative Take count, a non-positive ChunkEvery
size, Min or Max on an empty stream) surface as explicit errors from the
terminal operation, never as silent wrong answers. Violations detected at
combinator time are recorded on the returned descriptor and reported by the
first terminal; Err inspects them without traversing. Panics raised by
user-supplied functions propagate unchanged to the terminal's caller.

Evaluation Cost:

A Stream may be traversed several times (once per terminal applied to it), so
sources must iterate deterministically. Uniq allocates a set per traversal and
ChunkEvery buffers one chunk at a time; no combinator materializes the whole
upstream. Short-circuiting terminals (Any, Contains) and Take stop the
traversal early.
*/
package stream
