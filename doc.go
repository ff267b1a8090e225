/*
Package streamkit provides a lazy, composable sequence-transformation library
for Go.

Core (pkg/stream):
  - stream: generic lazy Stream combinators (Map, Filter, Take, Uniq,
    ChunkEvery, SplitBy, Join, WithIndex) with terminal operations
    (Collect, Reduce, Sum, Min, Max, Count, Contains, All, Any)

Supporting packages:
  - common/errors: sentinel errors and structured validation errors
  - common/validation: argument validation helpers
  - metrics: Prometheus instrumentation for stream traversals

Example usage:

	import "github.com/vnykmshr/streamkit/pkg/stream"

	evens, err := stream.Range(1, 10).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * n }).
		Collect()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(evens) // [4 16 36 64 100]
*/
package streamkit
