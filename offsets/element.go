package offsets

// Element is the leaf level of the hierarchy: a single region inside a
// command (for example one field of a load command). Elements never own
// children.
type Element struct {
	span
}

// HasChildren always reports false; elements are leaves by construction.
func (e *Element) HasChildren() bool { return false }

// Children always reports no children.
func (e *Element) Children() (ChildSet, bool) { return ChildSet{}, false }

// SortChildren is a no-op; an element has no children.
func (e *Element) SortChildren() {}

// FindAddress resolves addr against this element alone. If addr lies in
// the element's absolute range the result carries only the element
// index; otherwise the address is outside the current scope.
func (e *Element) FindAddress(addr uint64) (Coordinates, error) {
	r := e.AbsoluteRange()
	if !r.Contains(addr) {
		return Coordinates{}, addrErr(ErrOutsideScope, addr, r)
	}
	coords := NewCoordinates()
	coords.SetElement(e.Ordinal())
	return coords, nil
}
