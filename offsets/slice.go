package offsets

import "errors"

// Slice is the second level of the hierarchy: a top-level region of the
// file (for example one architecture slice of a universal binary),
// owning zero or more commands.
type Slice struct {
	span

	// Commands are the regions within this slice, owned exclusively.
	// Appended by the builder; sorted lazily by lookups.
	Commands []*Command
}

// AddCommand appends a command region to the slice.
func (s *Slice) AddCommand(c *Command) {
	s.Commands = append(s.Commands, c)
}

// HasChildren reports whether the slice owns at least one command.
func (s *Slice) HasChildren() bool { return len(s.Commands) > 0 }

// Children sorts the commands by ascending absolute start and returns
// them in a KindCommands set. ok is false when the slice is empty.
func (s *Slice) Children() (ChildSet, bool) {
	if !s.HasChildren() {
		return ChildSet{}, false
	}
	s.SortChildren()
	return ChildSet{Kind: KindCommands, Commands: s.Commands}, true
}

// SortChildren sorts the commands in place by absolute start.
func (s *Slice) SortChildren() {
	sortByStart(s.Commands)
}

// FindAddress resolves addr within this slice. The result always
// carries the slice's own index; command and element indices are merged
// in when a command covers addr. An in-range address no command covers
// is still answered, coarsely, with the slice index alone.
//
// A command that resolves addr without reporting its own index violates
// the level contract and surfaces as ErrCommandBroken.
func (s *Slice) FindAddress(addr uint64) (Coordinates, error) {
	r := s.AbsoluteRange()
	if !r.Contains(addr) {
		return Coordinates{}, addrErr(ErrOutsideScope, addr, r)
	}

	coords := NewCoordinates()
	coords.SetSlice(s.Ordinal())
	if !s.HasChildren() {
		return coords, nil
	}

	kids, ok := s.Children()
	if !ok || kids.Kind != KindCommands {
		return Coordinates{}, ErrInconsistentSearch
	}
	i, err := searchChildren(addr, kids.Commands)
	if err != nil {
		if errors.Is(err, errNoCover) {
			return coords, nil
		}
		return Coordinates{}, err
	}

	sub, err := kids.Commands[i].FindAddress(addr)
	if err != nil {
		return Coordinates{}, err
	}
	if !sub.Command.IsSet() {
		return Coordinates{}, ErrCommandBroken
	}
	coords.SetCommand(sub.Command)
	if sub.Element.IsSet() {
		coords.SetElement(sub.Element)
	}
	return coords, nil
}
