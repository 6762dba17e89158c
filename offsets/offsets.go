package offsets

// DiskOffsets is the capability every level of the hierarchy implements
// identically: range and ordinal bookkeeping plus the recursive reverse
// lookup. File, Slice, Command and Element all satisfy it; they differ
// only in which kind of children collection (if any) they own.
type DiskOffsets interface {
	// SetAbsolute sets the absolute addresses and recomputes the
	// absolute range from them.
	SetAbsolute(start, end uint64)
	// SetRelative sets the parent-relative addresses and recomputes
	// the relative range from them.
	SetRelative(start, end uint64)
	// SetAbsoluteRange sets the absolute range explicitly.
	SetAbsoluteRange(r Range)
	// SetRelativeRange sets the relative range explicitly.
	SetRelativeRange(r Range)

	AbsoluteRange() Range
	RelativeRange() Range

	SetOrdinal(o Ordinal)
	Ordinal() Ordinal

	// PopulateValues sets both ranges and the ordinal in one call.
	// Builders call this exactly once per node, after parsing the raw
	// bytes the node describes.
	PopulateValues(startAbs, endAbs, startRel, endRel uint64, ord Ordinal)

	// Contains reports whether addr lies in the absolute range.
	Contains(addr uint64) bool

	// MinAddr and MaxAddr are the bounds of the absolute range.
	// MaxAddr is exclusive.
	MinAddr() uint64
	MaxAddr() uint64

	// HasChildren reports whether a non-empty children collection exists.
	HasChildren() bool

	// Children sorts the children by ascending absolute start and
	// returns them wrapped in the variant matching this level.
	// ok is false for leaves and empty containers.
	Children() (cs ChildSet, ok bool)

	// SortChildren sorts the children in place by ascending absolute
	// start. A no-op for leaves.
	SortChildren()

	// FindAddress resolves an absolute byte offset to the path of
	// structures containing it. See the package documentation for the
	// per-level semantics.
	FindAddress(addr uint64) (Coordinates, error)
}

var (
	_ DiskOffsets = (*File)(nil)
	_ DiskOffsets = (*Slice)(nil)
	_ DiskOffsets = (*Command)(nil)
	_ DiskOffsets = (*Element)(nil)
)

// ChildKind discriminates which level a ChildSet holds.
type ChildKind uint8

const (
	// KindSlices marks a set of Slice children (owned by a File).
	KindSlices ChildKind = iota + 1
	// KindCommands marks a set of Command children (owned by a Slice).
	KindCommands
	// KindElements marks a set of Element children (owned by a Command).
	KindElements
)

func (k ChildKind) String() string {
	switch k {
	case KindSlices:
		return "slices"
	case KindCommands:
		return "commands"
	case KindElements:
		return "elements"
	}
	return "invalid"
}

// ChildSet is a tagged union over the three possible child collections.
// Exactly the collection matching Kind is non-nil. The union keeps the
// type of heterogeneous children visible to callers of Children; it is
// never erased to an untyped slice because each level's merge logic
// depends on knowing which indices it may set.
type ChildSet struct {
	Kind     ChildKind
	Slices   []*Slice
	Commands []*Command
	Elements []*Element
}

// span carries the byte ranges and ordinal every node shares. The four
// level types embed it so the range/ordinal surface of DiskOffsets is
// written once.
type span struct {
	abs Range
	rel Range
	ord Ordinal
}

func (s *span) SetAbsolute(start, end uint64) {
	s.abs = Range{Start: start, End: end}
}

func (s *span) SetRelative(start, end uint64) {
	s.rel = Range{Start: start, End: end}
}

func (s *span) SetAbsoluteRange(r Range) { s.abs = r }

func (s *span) SetRelativeRange(r Range) { s.rel = r }

func (s *span) AbsoluteRange() Range { return s.abs }

func (s *span) RelativeRange() Range { return s.rel }

func (s *span) SetOrdinal(o Ordinal) { s.ord = o }

func (s *span) Ordinal() Ordinal { return s.ord }

func (s *span) PopulateValues(startAbs, endAbs, startRel, endRel uint64, ord Ordinal) {
	s.SetAbsolute(startAbs, endAbs)
	s.SetRelative(startRel, endRel)
	s.SetOrdinal(ord)
}

func (s *span) Contains(addr uint64) bool { return s.abs.Contains(addr) }

func (s *span) MinAddr() uint64 { return s.abs.Start }

func (s *span) MaxAddr() uint64 { return s.abs.End }
