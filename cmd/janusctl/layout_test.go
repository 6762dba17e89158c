package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gb-at-r3/janus-array/offsets"
	"github.com/stretchr/testify/require"
)

const demoLayout = `size: 1024
slices:
  - start: 0
    end: 512
    commands:
      - start: 100
        end: 200
        rel: {start: 100, end: 200}
        elements:
          - {start: 150, end: 180}
`

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLayout_Demo(t *testing.T) {
	f, err := loadLayout(writeLayout(t, demoLayout))
	require.NoError(t, err)

	require.Equal(t, offsets.Range{Start: 0, End: 1024}, f.AbsoluteRange())
	require.Len(t, f.Slices, 1)
	require.Len(t, f.Slices[0].Commands, 1)
	require.Len(t, f.Slices[0].Commands[0].Elements, 1)

	// Explicit rel honored on the command, derived on the element.
	c := f.Slices[0].Commands[0]
	require.Equal(t, offsets.Range{Start: 100, End: 200}, c.RelativeRange())
	e := c.Elements[0]
	require.Equal(t, offsets.Range{Start: 50, End: 80}, e.RelativeRange())

	require.NoError(t, f.Finalize())

	coords, err := f.FindAddress(175)
	require.NoError(t, err)
	require.Equal(t, offsets.Ordinal(0), coords.Slice)
	require.Equal(t, offsets.Ordinal(0), coords.Command)
	require.Equal(t, offsets.Ordinal(0), coords.Element)
}

func TestLoadLayout_RejectsInvertedRange(t *testing.T) {
	_, err := loadLayout(writeLayout(t, "size: 100\nslices:\n  - start: 50\n    end: 10\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "inverted")
}

func TestLoadLayout_RejectsChildBeforeParent(t *testing.T) {
	layout := `size: 100
slices:
  - start: 50
    end: 100
    commands:
      - start: 10
        end: 20
`
	_, err := loadLayout(writeLayout(t, layout))
	require.Error(t, err)
	require.Contains(t, err.Error(), "before its parent")
}

func TestOrdinalPtr(t *testing.T) {
	require.Nil(t, ordinalPtr(offsets.None))
	p := ordinalPtr(offsets.Ordinal(2))
	require.NotNil(t, p)
	require.Equal(t, 2, *p)
}
