package offsets

import (
	"errors"
	"fmt"
)

var (
	// ErrOutsideScope indicates the queried address is not within the
	// node's absolute range. Expected when querying at the wrong tree
	// level or with an invalid address.
	ErrOutsideScope = errors.New("offsets: address outside current scope")

	// ErrInconsistentStructure indicates the address falls in a gap or
	// overlap between sibling ranges. This signals a malformed tree
	// (a builder bug), not a normal miss.
	ErrInconsistentStructure = errors.New("offsets: inconsistent structure")

	// ErrInconsistentSearch indicates the children returned during a
	// lookup did not match the variant expected for the level.
	ErrInconsistentSearch = errors.New("offsets: inconsistent search")

	// ErrNotFound indicates the address is within the root's range but
	// no registered slice covers it (a coverage gap, not a bounds error).
	ErrNotFound = errors.New("offsets: address not found")

	// ErrSliceBroken indicates a slice lookup succeeded but returned
	// Coordinates without the slice index it is required to set.
	ErrSliceBroken = errors.New("offsets: slice is broken")

	// ErrCommandBroken indicates a command lookup succeeded but returned
	// Coordinates without the command index it is required to set.
	ErrCommandBroken = errors.New("offsets: command is broken")
)

// AddressError reports a lookup failure together with the queried
// address and the range that was being examined. It wraps one of the
// sentinel errors above, so callers match it with errors.Is:
//
//	if errors.Is(err, offsets.ErrOutsideScope) { ... }
type AddressError struct {
	Addr  uint64
	Range Range
	err   error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%v: address 0x%x, range %v", e.err, e.Addr, e.Range)
}

func (e *AddressError) Unwrap() error {
	return e.err
}

func addrErr(sentinel error, addr uint64, r Range) error {
	return &AddressError{Addr: addr, Range: r, err: sentinel}
}
