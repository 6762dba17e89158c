package offsets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newElement(start, end uint64, ord Ordinal) *Element {
	e := &Element{}
	e.PopulateValues(start, end, start, end, ord)
	return e
}

func TestCommand_FindAddress_HitsElement(t *testing.T) {
	c := &Command{}
	c.PopulateValues(100, 200, 100, 200, 2)
	c.AddElement(newElement(110, 130, 0))
	c.AddElement(newElement(130, 160, 1))
	c.AddElement(newElement(160, 190, 2))

	coords, err := c.FindAddress(135)
	require.NoError(t, err)
	require.Equal(t, Ordinal(2), coords.Command)
	require.Equal(t, Ordinal(1), coords.Element)
	require.Equal(t, None, coords.Slice)
}

func TestCommand_FindAddress_CoarseWhenNoElementCovers(t *testing.T) {
	c := &Command{}
	c.PopulateValues(100, 200, 100, 200, 0)
	c.AddElement(newElement(150, 180, 0))

	// Inside the command, past the only element.
	coords, err := c.FindAddress(190)
	require.NoError(t, err)
	require.Equal(t, Ordinal(0), coords.Command)
	require.Equal(t, None, coords.Element)

	// Inside the command, before the only element.
	coords, err = c.FindAddress(120)
	require.NoError(t, err)
	require.Equal(t, Ordinal(0), coords.Command)
	require.Equal(t, None, coords.Element)
}

func TestCommand_FindAddress_GapBetweenElements(t *testing.T) {
	c := &Command{}
	c.PopulateValues(0, 100, 0, 100, 0)
	c.AddElement(newElement(0, 20, 0))
	c.AddElement(newElement(40, 60, 1))

	_, err := c.FindAddress(30)
	require.ErrorIs(t, err, ErrInconsistentStructure)
}

func TestCommand_FindAddress_OutsideScope(t *testing.T) {
	c := &Command{}
	c.PopulateValues(100, 200, 100, 200, 0)

	_, err := c.FindAddress(200)
	require.ErrorIs(t, err, ErrOutsideScope)
	_, err = c.FindAddress(99)
	require.ErrorIs(t, err, ErrOutsideScope)
}

func TestCommand_FindAddress_NoChildren(t *testing.T) {
	c := &Command{}
	c.PopulateValues(100, 200, 100, 200, 7)

	coords, err := c.FindAddress(150)
	require.NoError(t, err)
	require.Equal(t, Ordinal(7), coords.Command)
	require.Equal(t, None, coords.Element)
}

func TestCommand_Children_SortedAndTagged(t *testing.T) {
	c := &Command{}
	c.PopulateValues(0, 100, 0, 100, 0)
	c.AddElement(newElement(60, 80, 2))
	c.AddElement(newElement(0, 20, 0))
	c.AddElement(newElement(30, 50, 1))

	kids, ok := c.Children()
	require.True(t, ok)
	require.Equal(t, KindElements, kids.Kind)
	require.Nil(t, kids.Slices)
	require.Nil(t, kids.Commands)
	require.Len(t, kids.Elements, 3)
	for i := 1; i < len(kids.Elements); i++ {
		require.LessOrEqual(t,
			kids.Elements[i-1].AbsoluteRange().Start,
			kids.Elements[i].AbsoluteRange().Start)
	}
}
