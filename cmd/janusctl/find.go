package main

import (
	"fmt"
	"strconv"

	"github.com/gb-at-r3/janus-array/offsets"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newFindCmd())
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <layout.yaml> <offset>",
		Short: "Reverse-lookup a byte offset in a layout",
		Long: `The find command builds the offset tree described by the layout file
and reports the path of structures containing the given byte offset.
Offsets may be decimal or hex (0x-prefixed).

Example:
  janusctl find layout.yaml 175
  janusctl find layout.yaml 0xaf --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
}

// findResult is the JSON shape of a lookup answer. Unresolved levels
// are null.
type findResult struct {
	Offset  uint64 `json:"offset"`
	Slice   *int   `json:"slice"`
	Command *int   `json:"command"`
	Element *int   `json:"element"`
}

func runFind(args []string) error {
	layoutPath := args[0]
	addr, err := strconv.ParseUint(args[1], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[1], err)
	}

	printVerbose("Loading layout: %s\n", layoutPath)
	f, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}

	coords, err := f.FindAddress(addr)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if jsonOut {
		return printJSON(findResult{
			Offset:  addr,
			Slice:   ordinalPtr(coords.Slice),
			Command: ordinalPtr(coords.Command),
			Element: ordinalPtr(coords.Element),
		})
	}
	printInfo("offset 0x%x: %s\n", addr, coords)
	return nil
}

func ordinalPtr(o offsets.Ordinal) *int {
	if !o.IsSet() {
		return nil
	}
	n := int(o)
	return &n
}
