package offsets

import (
	"errors"
	"sort"
)

// errNoCover reports that the binary search exhausted without a child
// covering the address, with the address outside the span of children
// entirely (before the first or at/after the last). Each level decides
// what that means: the root maps it to ErrNotFound, inner levels return
// the coarse result accumulated so far.
var errNoCover = errors.New("offsets: no child covers address")

// node is the minimal view searchChildren needs of a child.
type node interface {
	AbsoluteRange() Range
}

// searchChildren binary-searches kids (sorted ascending by absolute
// start, non-overlapping) for the child containing addr and returns its
// position.
//
// When no child contains addr:
//   - insertion point strictly between two siblings means addr sits in a
//     gap or overlap the builder left between their ranges; that is a
//     structural defect, reported as ErrInconsistentStructure with the
//     range of the sibling just above addr,
//   - otherwise errNoCover.
func searchChildren[N node](addr uint64, kids []N) (int, error) {
	lo, hi := 0, len(kids)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		r := kids[mid].AbsoluteRange()
		switch {
		case r.Contains(addr):
			return mid, nil
		case addr < r.Start:
			// No lower half exists; guard before mid-1 underflows.
			if mid == 0 {
				return -1, errNoCover
			}
			hi = mid - 1
		default: // addr >= r.End, half-open
			lo = mid + 1
		}
	}
	if lo > 0 && lo < len(kids) {
		return -1, addrErr(ErrInconsistentStructure, addr, kids[lo].AbsoluteRange())
	}
	return -1, errNoCover
}

// sortByStart orders kids ascending by start of absolute range.
// Stable, so repeated lookups observe the same order even if the
// builder registered equal starts.
func sortByStart[N node](kids []N) {
	sort.SliceStable(kids, func(i, j int) bool {
		return kids[i].AbsoluteRange().Start < kids[j].AbsoluteRange().Start
	})
}
