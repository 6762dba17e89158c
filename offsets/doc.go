// Package offsets indexes nested binary-file layouts for dual access:
// O(1) hierarchical navigation when the path is known, and O(log n)
// reverse lookup from a raw byte offset to the path of structures that
// contain it.
//
// # Overview
//
// Binary formats with nested regions (executable load commands,
// filesystem metadata, protocol frames) need two access patterns:
//
//  1. Direct navigation: file.Slices[i].Commands[j].Elements[k]
//  2. Reverse lookup: "which structure contains byte offset 0x47382?"
//
// This package keeps both efficient in a single structure. The hierarchy
// itself is the search index; no auxiliary maps are maintained.
//
// # Hierarchy
//
// The tree has exactly four levels:
//
//	File          the root, spanning the whole file; exactly one per structure
//	Slice         a top-level region of the file (e.g. a fat/universal slice)
//	Command       a region within a slice (e.g. a load command)
//	Element       a leaf region within a command (e.g. a command field)
//
// Every node carries an absolute byte range (position in the whole file),
// a relative byte range (position within its immediate parent) and an
// ordinal (its index among siblings, assigned by the builder). All ranges
// are half-open: [Start, End).
//
// # Building a tree
//
// An external parser constructs the tree bottom-up and populates each
// node once:
//
//	f := offsets.NewFile(1024)
//
//	s := &offsets.Slice{}
//	s.PopulateValues(0, 512, 0, 512, 0)
//
//	c := &offsets.Command{}
//	c.PopulateValues(100, 200, 100, 200, 0)
//
//	e := &offsets.Element{}
//	e.PopulateValues(150, 180, 50, 80, 0)
//
//	c.AddElement(e)
//	s.AddCommand(c)
//	f.AddSlice(s)
//
// # Reverse lookup
//
// FindAddress on the root walks the tree with a binary search per level
// and reports the containing path as a Coordinates value:
//
//	coords, err := f.FindAddress(175)
//	// coords.Slice == 0, coords.Command == 0, coords.Element == 0
//
// An address inside a command but outside any element yields Coordinates
// with Element left as None; the coarser levels are still reported.
//
// # Thread safety
//
// FindAddress sorts child collections lazily on first access, so it
// mutates the tree as a side effect and requires exclusive access.
// Call Finalize once the tree is built to sort eagerly and verify the
// builder invariants; after a successful Finalize, lookups perform no
// mutation and concurrent readers are safe.
package offsets
