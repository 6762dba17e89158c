package offsets

import "fmt"

// Finalize eagerly sorts every child collection in the tree and checks
// the invariants the builder is expected to uphold:
//
//   - each node's ordinal equals its position in sorted order,
//   - each child's absolute range is contained in its parent's,
//   - sibling ranges do not overlap.
//
// It returns the first violation found, with the path to the offending
// collection. After a successful Finalize, FindAddress performs no
// mutation (sorting is idempotent), so concurrent read-only lookups
// against the tree are safe.
func (f *File) Finalize() error {
	f.SortChildren()
	if err := checkChildren(f.AbsoluteRange(), f.Slices); err != nil {
		return fmt.Errorf("file: %w", err)
	}
	for i, s := range f.Slices {
		s.SortChildren()
		if err := checkChildren(s.AbsoluteRange(), s.Commands); err != nil {
			return fmt.Errorf("slice %d: %w", i, err)
		}
		for j, c := range s.Commands {
			c.SortChildren()
			if err := checkChildren(c.AbsoluteRange(), c.Elements); err != nil {
				return fmt.Errorf("slice %d, command %d: %w", i, j, err)
			}
		}
	}
	return nil
}

// checkChildren validates one sorted sibling collection against its
// parent's absolute range.
func checkChildren[N interface {
	node
	Ordinal() Ordinal
}](parent Range, kids []N) error {
	var prev Range
	for i, k := range kids {
		r := k.AbsoluteRange()
		if ord := k.Ordinal(); ord != Ordinal(i) {
			return fmt.Errorf("offsets: child %v at sorted position %d carries ordinal %v", r, i, ord)
		}
		if r.Start < parent.Start || r.End > parent.End {
			return fmt.Errorf("offsets: child range %v escapes parent %v", r, parent)
		}
		if i > 0 && r.Start < prev.End {
			return fmt.Errorf("offsets: sibling ranges %v and %v overlap", prev, r)
		}
		prev = r
	}
	return nil
}
