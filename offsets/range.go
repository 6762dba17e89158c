package offsets

import "fmt"

// Range is a half-open byte interval [Start, End).
//
// A node's absolute range is expressed against the start of the whole
// file; its relative range against the start of its immediate parent.
type Range struct {
	Start uint64
	End   uint64
}

// Contains reports whether addr lies within the interval.
// The End bound is exclusive.
func (r Range) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.End
}

// Len returns the number of bytes the interval spans.
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty reports whether the interval covers no bytes.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[0x%x, 0x%x)", r.Start, r.End)
}
