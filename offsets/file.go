package offsets

import "errors"

// File is the root of the hierarchy, spanning the whole file. There is
// exactly one File per indexed structure; its relative range equals its
// absolute range and its ordinal is always 0.
type File struct {
	span

	// Slices are the top-level regions of the file, owned exclusively.
	// Appended by the builder; sorted lazily by lookups.
	Slices []*Slice
}

// NewFile returns a root spanning [0, size).
func NewFile(size uint64) *File {
	f := &File{}
	f.PopulateValues(0, size, 0, size, 0)
	return f
}

// AddSlice appends a top-level region to the file.
func (f *File) AddSlice(s *Slice) {
	f.Slices = append(f.Slices, s)
}

// HasChildren reports whether the file owns at least one slice.
func (f *File) HasChildren() bool { return len(f.Slices) > 0 }

// Children sorts the slices by ascending absolute start and returns
// them in a KindSlices set. ok is false when the file is empty.
func (f *File) Children() (ChildSet, bool) {
	if !f.HasChildren() {
		return ChildSet{}, false
	}
	f.SortChildren()
	return ChildSet{Kind: KindSlices, Slices: f.Slices}, true
}

// SortChildren sorts the slices in place by absolute start.
func (f *File) SortChildren() {
	sortByStart(f.Slices)
}

// FindAddress is the reverse-lookup entry point: it resolves an
// absolute byte offset to the full (slice, command, element) path.
//
// Failure modes:
//   - addr outside the file's range: ErrOutsideScope,
//   - addr in range but no slice covers it: ErrNotFound,
//   - addr in a gap between sibling ranges: ErrInconsistentStructure,
//   - a slice resolving addr without its own index: ErrSliceBroken.
//
// A file with no slices cannot answer any in-range query and reports
// ErrInconsistentStructure against its own range.
func (f *File) FindAddress(addr uint64) (Coordinates, error) {
	r := f.AbsoluteRange()
	if !r.Contains(addr) {
		return Coordinates{}, addrErr(ErrOutsideScope, addr, r)
	}
	if !f.HasChildren() {
		return Coordinates{}, addrErr(ErrInconsistentStructure, addr, r)
	}

	kids, ok := f.Children()
	if !ok || kids.Kind != KindSlices {
		return Coordinates{}, ErrInconsistentSearch
	}
	i, err := searchChildren(addr, kids.Slices)
	if err != nil {
		if errors.Is(err, errNoCover) {
			return Coordinates{}, addrErr(ErrNotFound, addr, r)
		}
		return Coordinates{}, err
	}

	sub, err := kids.Slices[i].FindAddress(addr)
	if err != nil {
		return Coordinates{}, err
	}
	if !sub.Slice.IsSet() {
		return Coordinates{}, ErrSliceBroken
	}

	coords := NewCoordinates()
	coords.SetSlice(sub.Slice)
	if sub.Command.IsSet() {
		coords.SetCommand(sub.Command)
	}
	if sub.Element.IsSet() {
		coords.SetElement(sub.Element)
	}
	return coords, nil
}
