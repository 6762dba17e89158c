package main

import (
	"fmt"

	"github.com/gb-at-r3/janus-array/offsets"
	"github.com/spf13/cobra"
)

var validateAgainst string

func init() {
	cmd := newValidateCmd()
	cmd.Flags().
		StringVar(&validateAgainst, "file", "", "Binary file to validate the layout against")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <layout.yaml>",
		Short: "Check the builder invariants of a layout",
		Long: `The validate command builds the offset tree described by the layout
file and verifies the invariants lookups rely on: children sorted by
range, ordinals matching sorted order, ranges contained in their
parents, and no overlapping siblings.

With --file, the layout is additionally checked against the actual size
of the given binary.

Example:
  janusctl validate layout.yaml
  janusctl validate layout.yaml --file app.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(layoutPath string) error {
	f, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}
	if err := f.Finalize(); err != nil {
		return fmt.Errorf("layout invalid: %w", err)
	}

	if validateAgainst != "" {
		printVerbose("Mapping binary: %s\n", validateAgainst)
		m, err := offsets.OpenFile(validateAgainst)
		if err != nil {
			return fmt.Errorf("failed to open binary: %w", err)
		}
		defer m.Close()

		declared := f.AbsoluteRange().Len()
		actual := m.Root.AbsoluteRange().Len()
		if declared > actual {
			return fmt.Errorf("layout declares %d bytes but %s has only %d",
				declared, validateAgainst, actual)
		}
		if declared < actual {
			printInfo("note: layout covers %d of %d bytes\n", declared, actual)
		}
	}

	printInfo("layout OK\n")
	return nil
}
