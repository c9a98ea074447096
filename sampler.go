package sampler

import (
	"slices"

	"github.com/samber/lo"
)

// DefaultCapacity is the sample capacity used when no better value is known.
const DefaultCapacity = 2

// --- Options ---

// options holds the configuration for a Sampler.
type options struct {
	strictBounds bool
}

// Option is a function that configures a Sampler's options.
type Option func(*options)

// WithStrictBounds enables or disables strict index checking for Insert and
// Remove. When disabled (the default), an out-of-range index is clamped or
// ignored; when enabled, it is reported as an IndexOutOfRangeError.
func WithStrictBounds(enabled bool) Option {
	return func(o *options) {
		o.strictBounds = enabled
	}
}

// --- Types ---

// Process is a zero-argument callable registered under an integer identifier
// and invoked by RunProcess to compute a derived value on demand. A nil
// Process is a registered-but-undefined entry.
type Process[Y any] func() Y

// Sampler pairs a fixed-capacity rolling sequence of samples of type T with a
// registry of identified processes producing values of type Y. The sequence
// is kept at capacity by trimming the oldest samples from the front and
// padding zero values at the front after every structural change.
//
// A Sampler is not safe for concurrent use; callers needing shared access
// must synchronize externally.
type Sampler[T any, Y any] struct {
	capacity  int
	samples   []T
	processes map[int]Process[Y]
	opts      options
}

// New creates a Sampler with the given capacity and optional configurations.
// A capacity below 1 is clamped to 1. The sequence starts filled with
// capacity zero values.
func New[T any, Y any](capacity int, opts ...Option) *Sampler[T, Y] {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Sampler[T, Y]{
		capacity:  capacity,
		processes: make(map[int]Process[Y]),
		opts:      cfg,
	}
	s.fit()
	return s
}

// fit reconciles the sample sequence to the current capacity: the capacity is
// clamped to a minimum of 1, then the oldest samples are trimmed from the
// front while over capacity, and zero values are inserted at the front while
// under.
func (s *Sampler[T, Y]) fit() {
	if s.capacity < 1 {
		s.capacity = 1
	}
	if over := len(s.samples) - s.capacity; over > 0 {
		s.samples = slices.Delete(s.samples, 0, over)
	}
	if under := s.capacity - len(s.samples); under > 0 {
		padded := make([]T, under, s.capacity)
		s.samples = append(padded, s.samples...)
	}
}

// --- Sample Sequence ---

// Cap returns the configured capacity of the sample sequence.
func (s *Sampler[T, Y]) Cap() int {
	return s.capacity
}

// SetCap sets the capacity and reconciles the sequence. A capacity below 1 is
// clamped to 1; there is no error path.
func (s *Sampler[T, Y]) SetCap(capacity int) {
	s.capacity = capacity
	s.fit()
}

// Len returns the current number of samples.
func (s *Sampler[T, Y]) Len() int {
	return len(s.samples)
}

// Add appends a sample at the end of the sequence and reconciles. At capacity
// the net effect is ring-buffer rotation: the oldest sample is dropped and v
// becomes the newest.
func (s *Sampler[T, Y]) Add(v T) {
	s.samples = append(s.samples, v)
	s.fit()
}

// Insert places v at index i and reconciles, which may evict the oldest
// sample. By default an out-of-range index is clamped into [0, Len()]; with
// WithStrictBounds(true) it returns an IndexOutOfRangeError instead.
func (s *Sampler[T, Y]) Insert(i int, v T) error {
	if i < 0 || i > len(s.samples) {
		if s.opts.strictBounds {
			return &IndexOutOfRangeError{Index: i, Len: len(s.samples)}
		}
		i = min(max(i, 0), len(s.samples))
	}
	s.samples = slices.Insert(s.samples, i, v)
	s.fit()
	return nil
}

// Remove erases the sample at index i. The sequence is not reconciled
// afterward, so its length stays below capacity until the next reconciling
// mutation. By default an out-of-range index is ignored; with
// WithStrictBounds(true) it returns an IndexOutOfRangeError.
func (s *Sampler[T, Y]) Remove(i int) error {
	if i < 0 || i >= len(s.samples) {
		if s.opts.strictBounds {
			return &IndexOutOfRangeError{Index: i, Len: len(s.samples)}
		}
		return nil
	}
	s.samples = slices.Delete(s.samples, i, i+1)
	return nil
}

// Clear removes all samples without reconciling; the sequence stays empty
// until the next reconciling mutation.
func (s *Sampler[T, Y]) Clear() {
	s.samples = s.samples[:0]
}

// Samples returns the live backing slice for bulk inspection or element
// mutation. Callers that grow or shrink it are responsible for capacity
// consistency; no reconciliation is triggered by external mutation.
func (s *Sampler[T, Y]) Samples() []T {
	return s.samples
}

// SetSamples replaces the backing slice without reconciling. The same caller
// responsibility as Samples applies.
func (s *Sampler[T, Y]) SetSamples(samples []T) {
	s.samples = samples
}

// --- Process Registry ---

// SetProcess binds fn to id, overwriting any previous binding. Binding nil
// registers the id as present but undefined.
func (s *Sampler[T, Y]) SetProcess(id int, fn Process[Y]) {
	s.processes[id] = fn
}

// Process returns the callable bound to id, or a ProcessNotFoundError if id
// is not registered.
func (s *Sampler[T, Y]) Process(id int) (Process[Y], error) {
	fn, ok := s.processes[id]
	if !ok {
		return nil, &ProcessNotFoundError{ID: id}
	}
	return fn, nil
}

// EraseProcess removes the binding for id, returning a ProcessNotFoundError
// if id is not registered.
func (s *Sampler[T, Y]) EraseProcess(id int) error {
	if _, ok := s.processes[id]; !ok {
		return &ProcessNotFoundError{ID: id}
	}
	delete(s.processes, id)
	return nil
}

// ClearProcesses removes all bindings.
func (s *Sampler[T, Y]) ClearProcesses() {
	clear(s.processes)
}

// ProcessMap returns the live registry map for bulk inspection or mutation.
func (s *Sampler[T, Y]) ProcessMap() map[int]Process[Y] {
	return s.processes
}

// ProcessIDs returns the registered identifiers in ascending order.
func (s *Sampler[T, Y]) ProcessIDs() []int {
	ids := lo.Keys(s.processes)
	slices.Sort(ids)
	return ids
}

// RunProcess invokes the callable bound to id on the caller's goroutine and
// returns its result. It returns a ProcessNotFoundError if id is not
// registered and a ProcessUndefinedError if id is bound to nil. A panic
// raised by the callable propagates unmodified.
func (s *Sampler[T, Y]) RunProcess(id int) (Y, error) {
	fn, ok := s.processes[id]
	if !ok {
		var zero Y
		return zero, &ProcessNotFoundError{ID: id}
	}
	if fn == nil {
		var zero Y
		return zero, &ProcessUndefinedError{ID: id}
	}
	return fn(), nil
}

// --- Copying ---

// Clone returns a deep copy of the sampler: the capacity, the sample
// sequence, and the process map are duplicated, so mutating the clone's
// sequence or registry leaves the original untouched. The function values
// themselves are shared; a closure capturing external state by reference
// still shares that state with the original's copy.
func (s *Sampler[T, Y]) Clone() *Sampler[T, Y] {
	return &Sampler[T, Y]{
		capacity:  s.capacity,
		samples:   slices.Clone(s.samples),
		processes: lo.Assign(s.processes),
		opts:      s.opts,
	}
}
