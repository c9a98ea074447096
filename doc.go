/*
Package sampler provides a fixed-capacity rolling sample buffer paired with a
registry of identified processes that compute derived values on demand. It is
a convenience container for co-locating "the data" and "the functions that
derive something from the data".

The package is built with Go Generics, providing compile-time type safety: a
Sampler stores samples of one type and its processes produce results of
another, with no type assertions anywhere.

Key Features:

  - Capacity-Bounded Sequence: the sample sequence is reconciled to its
    configured capacity after every structural change, trimming the oldest
    samples from the front and padding zero values at the front. Adding to a
    full sampler drops the oldest sample, classic ring-buffer behavior.

  - Identified Processes: zero-argument callables are registered under
    integer identifiers (enums work well) and invoked by id with RunProcess.
    Missing and undefined processes are reported as typed errors carrying the
    offending identifier.

  - Configurable Bounds Checking: by default, sequence edits at invalid
    indices are clamped or ignored; WithStrictBounds(true) makes them fail
    with IndexOutOfRangeError instead.

A Sampler performs no locking and is not safe for concurrent use. Every
operation runs synchronously on the caller's goroutine; RunProcess blocks for
as long as the registered callable does.

Example: Basic Usage

	// A sampler of float64 readings whose processes report float64 results.
	s := sampler.New[float64, float64](3)

	s.Add(1.0)
	s.Add(2.0)
	s.Add(3.0)
	s.Add(4.0) // evicts 1.0; the sequence is now [2, 3, 4]

	// Processes capture the sampler to derive values from its samples.
	const ProcMean = 0
	s.SetProcess(ProcMean, func() float64 {
		sum := 0.0
		for _, v := range s.Samples() {
			sum += v
		}
		return sum / float64(s.Len())
	})

	mean, err := s.RunProcess(ProcMean)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(mean) // 3

Example: Error Handling

	s := sampler.New[int, int](sampler.DefaultCapacity)

	_, err := s.RunProcess(42) // never registered
	var notFound *sampler.ProcessNotFoundError
	if errors.As(err, &notFound) {
		fmt.Println("missing process:", notFound.ID)
	}

	s.SetProcess(42, nil)     // registered but undefined
	_, err = s.RunProcess(42) // *sampler.ProcessUndefinedError
*/
package sampler
