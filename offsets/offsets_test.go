package offsets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Every level exposes the same capability surface; exercise it once
// through the interface.
func TestDiskOffsets_SharedContract(t *testing.T) {
	levels := []DiskOffsets{&File{}, &Slice{}, &Command{}, &Element{}}

	for _, lvl := range levels {
		lvl.PopulateValues(100, 200, 10, 110, 3)

		require.Equal(t, Range{Start: 100, End: 200}, lvl.AbsoluteRange())
		require.Equal(t, Range{Start: 10, End: 110}, lvl.RelativeRange())
		require.Equal(t, Ordinal(3), lvl.Ordinal())
		require.Equal(t, uint64(100), lvl.MinAddr())
		require.Equal(t, uint64(200), lvl.MaxAddr())
		require.True(t, lvl.Contains(100))
		require.False(t, lvl.Contains(200))

		// Explicit range setters override without touching the other range.
		lvl.SetAbsoluteRange(Range{Start: 0, End: 50})
		require.Equal(t, Range{Start: 0, End: 50}, lvl.AbsoluteRange())
		require.Equal(t, Range{Start: 10, End: 110}, lvl.RelativeRange())
		lvl.SetRelativeRange(Range{Start: 0, End: 50})
		require.Equal(t, Range{Start: 0, End: 50}, lvl.RelativeRange())

		// Fresh nodes report no children; empty sets never enter a search.
		require.False(t, lvl.HasChildren())
		_, ok := lvl.Children()
		require.False(t, ok)
	}
}

func TestChildKind_String(t *testing.T) {
	require.Equal(t, "slices", KindSlices.String())
	require.Equal(t, "commands", KindCommands.String())
	require.Equal(t, "elements", KindElements.String())
	require.Equal(t, "invalid", ChildKind(0).String())
}

func TestEmptyChildrenEquivalentToNone(t *testing.T) {
	// A present-but-empty collection behaves exactly like an absent one.
	c := &Command{Elements: []*Element{}}
	c.PopulateValues(0, 100, 0, 100, 0)

	require.False(t, c.HasChildren())
	_, ok := c.Children()
	require.False(t, ok)

	coords, err := c.FindAddress(50)
	require.NoError(t, err)
	require.Equal(t, Ordinal(0), coords.Command)
	require.Equal(t, None, coords.Element)
}
