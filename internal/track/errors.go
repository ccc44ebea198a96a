package track

import "fmt"

// DataIntegrityError reports a parallel-array length mismatch after a
// structural mutation. It indicates either an internal bug or malformed input
// and carries enough context to diagnose which stage broke alignment.
type DataIntegrityError struct {
	Stage    string
	Expected int
	Actual   int
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("track: integrity fault after %s: expected %d entries, got %d",
		e.Stage, e.Expected, e.Actual)
}

// UndefinedSpeedError reports a speed window spanning zero elapsed time, which
// would otherwise divide by zero.
type UndefinedSpeedError struct {
	Frame int
}

func (e *UndefinedSpeedError) Error() string {
	return fmt.Sprintf("track: undefined speed at frame %d: window spans zero elapsed time", e.Frame)
}
