package offsets

import "fmt"

// Ordinal is a node's index among its siblings, assigned by the builder.
// None marks an index a lookup did not resolve.
type Ordinal int

// None is the unset Ordinal.
const None Ordinal = -1

// IsSet reports whether the ordinal carries a real index.
func (o Ordinal) IsSet() bool {
	return o >= 0
}

func (o Ordinal) String() string {
	if !o.IsSet() {
		return "-"
	}
	return fmt.Sprintf("%d", int(o))
}

// Coordinates is the result of a reverse lookup: the (slice, command,
// element) index triple identifying the path from the root to the
// finest structure containing the queried address.
//
// A lookup that resolves only down to a command leaves Element as None;
// the indices that are set can be used for direct O(1) navigation into
// the tree (file.Slices[c.Slice].Commands[c.Command]...).
type Coordinates struct {
	Slice   Ordinal
	Command Ordinal
	Element Ordinal
}

// NewCoordinates returns Coordinates with all three indices unset.
func NewCoordinates() Coordinates {
	return Coordinates{Slice: None, Command: None, Element: None}
}

// SetSlice records the slice index.
func (c *Coordinates) SetSlice(o Ordinal) { c.Slice = o }

// SetCommand records the command index.
func (c *Coordinates) SetCommand(o Ordinal) { c.Command = o }

// SetElement records the element index.
func (c *Coordinates) SetElement(o Ordinal) { c.Element = o }

func (c Coordinates) String() string {
	return fmt.Sprintf("slice=%s command=%s element=%s", c.Slice, c.Command, c.Element)
}
