package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTreeCmd())
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <layout.yaml>",
		Short: "Print the hierarchy described by a layout",
		Long: `The tree command builds the offset tree described by the layout file
and prints every level with its absolute range.

Example:
  janusctl tree layout.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args[0])
		},
	}
}

func runTree(layoutPath string) error {
	f, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}

	w := os.Stdout
	fmt.Fprintf(w, "file %s\n", f.AbsoluteRange())
	for i, s := range f.Slices {
		fmt.Fprintf(w, "  slice %d %s\n", i, s.AbsoluteRange())
		for j, c := range s.Commands {
			fmt.Fprintf(w, "    command %d %s\n", j, c.AbsoluteRange())
			for k, e := range c.Elements {
				fmt.Fprintf(w, "      element %d %s\n", k, e.AbsoluteRange())
			}
		}
	}
	return nil
}
