package offsets

import "errors"

// Command is the third level of the hierarchy: a region within a slice
// (for example a single load command), owning zero or more elements.
type Command struct {
	span

	// Elements are the leaf regions of this command, owned exclusively.
	// Appended by the builder; sorted lazily by lookups.
	Elements []*Element
}

// AddElement appends a leaf region to the command.
func (c *Command) AddElement(e *Element) {
	c.Elements = append(c.Elements, e)
}

// HasChildren reports whether the command owns at least one element.
func (c *Command) HasChildren() bool { return len(c.Elements) > 0 }

// Children sorts the elements by ascending absolute start and returns
// them in a KindElements set. ok is false when the command is empty.
func (c *Command) Children() (ChildSet, bool) {
	if !c.HasChildren() {
		return ChildSet{}, false
	}
	c.SortChildren()
	return ChildSet{Kind: KindElements, Elements: c.Elements}, true
}

// SortChildren sorts the elements in place by absolute start.
func (c *Command) SortChildren() {
	sortByStart(c.Elements)
}

// FindAddress resolves addr within this command. The result always
// carries the command's own index; when an element covers addr its
// index is merged in as well. An in-range address no element covers is
// still answered, coarsely, with the command index alone.
func (c *Command) FindAddress(addr uint64) (Coordinates, error) {
	r := c.AbsoluteRange()
	if !r.Contains(addr) {
		return Coordinates{}, addrErr(ErrOutsideScope, addr, r)
	}

	coords := NewCoordinates()
	coords.SetCommand(c.Ordinal())
	if !c.HasChildren() {
		return coords, nil
	}

	kids, ok := c.Children()
	if !ok || kids.Kind != KindElements {
		return Coordinates{}, ErrInconsistentSearch
	}
	i, err := searchChildren(addr, kids.Elements)
	if err != nil {
		if errors.Is(err, errNoCover) {
			return coords, nil
		}
		return Coordinates{}, err
	}

	sub, err := kids.Elements[i].FindAddress(addr)
	if err != nil {
		return Coordinates{}, err
	}
	if sub.Element.IsSet() {
		coords.SetElement(sub.Element)
	}
	return coords, nil
}
