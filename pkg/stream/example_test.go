package stream_test

import (
	"fmt"

	"github.com/vnykmshr/streamkit/pkg/stream"
)

// Example demonstrates basic stream usage.
func Example() {
	result, err := stream.Range(1, 10).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * n }).
		Take(3).
		Collect()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Result: %v\n", result)
	// Output: Result: [4 16 36]
}

// Example_aggregation demonstrates terminal aggregate operations.
func Example_aggregation() {
	scores := stream.Of(72, 95, 61, 88, 95)

	total, _ := stream.Sum(scores)
	highest, _ := stream.Max(scores)
	passing, _ := scores.All(func(s int) bool { return s >= 60 })

	fmt.Printf("total=%d highest=%d all passing=%v\n", total, highest, passing)
	// Output: total=411 highest=95 all passing=true
}

// Example_chunking demonstrates grouping combinators.
func Example_chunking() {
	chunks, err := stream.ChunkEvery(stream.Range(1, 5), 2).Collect()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Chunks: %v\n", chunks)
	// Output: Chunks: [[1 2] [3 4] [5]]
}

// Example_splitBy demonstrates splitting a sequence on a delimiter.
func Example_splitBy() {
	tokens := stream.Of("sh", "-c", "--", "ls", "-la")

	groups, err := stream.SplitBy(tokens, "--").Collect()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Groups: %v\n", groups)
	// Output: Groups: [[sh -c] [ls -la]]
}

// Example_withIndex demonstrates pairing elements with their positions.
func Example_withIndex() {
	indexed, err := stream.WithIndex(stream.Of("a", "b", "c")).Collect()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for _, p := range indexed {
		fmt.Printf("%d:%s ", p.Key, p.Value)
	}
	fmt.Println()
	// Output: 0:a 1:b 2:c
}

// Example_reduce demonstrates that Reduce stays chainable.
func Example_reduce() {
	result, err := stream.Range(1, 5).
		Reduce(0, func(acc, v int) int { return acc + v }).
		Map(func(n int) int { return n * 2 }).
		Collect()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Result: %v\n", result)
	// Output: Result: [30]
}

// Example_preconditionError demonstrates how argument violations surface.
func Example_preconditionError() {
	_, err := stream.ChunkEvery(stream.Range(1, 5), 0).Collect()
	fmt.Println(err)
	// Output: stream: invalid size=0 (must be positive) - value must be greater than 0
}
