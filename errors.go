package sampler

import "fmt"

// ProcessNotFoundError reports a process id with no entry in the registry.
// It is returned by Process, RunProcess, and EraseProcess.
type ProcessNotFoundError struct {
	ID int
}

func (e *ProcessNotFoundError) Error() string {
	return fmt.Sprintf("process not found: %d", e.ID)
}

// ProcessUndefinedError reports a process id that is registered but bound to
// a nil callable. It is returned only by RunProcess.
type ProcessUndefinedError struct {
	ID int
}

func (e *ProcessUndefinedError) Error() string {
	return fmt.Sprintf("process is undefined: %d", e.ID)
}

// IndexOutOfRangeError reports a sample index outside the current sequence
// bounds. It is returned by Insert and Remove only when the sampler was
// created with WithStrictBounds(true).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("sample index out of range: %d with length %d", e.Index, e.Len)
}
