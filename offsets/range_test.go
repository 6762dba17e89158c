package offsets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRange_ContainsHalfOpen(t *testing.T) {
	r := Range{Start: 100, End: 200}

	require.True(t, r.Contains(100))
	require.True(t, r.Contains(199))
	require.False(t, r.Contains(200), "End is exclusive")
	require.False(t, r.Contains(99))
}

func TestRange_Empty(t *testing.T) {
	require.True(t, Range{}.IsEmpty())
	require.True(t, Range{Start: 5, End: 5}.IsEmpty())
	require.False(t, Range{}.Contains(0))
	require.Equal(t, uint64(0), Range{Start: 9, End: 3}.Len())
}

func TestRange_String(t *testing.T) {
	require.Equal(t, "[0x64, 0xc8)", Range{Start: 100, End: 200}.String())
}
