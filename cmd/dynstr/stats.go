package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	statsDescription = "Report size and representation statistics for each input: byte, " +
		"rune, and grapheme cluster counts, plus the number of buffer windows " +
		"and the depth of the share tree."
	_statsCommand = &cobra.Command{
		Use:   "stats FILE [FILE...]",
		Short: "Show content and representation statistics",
		Long:  statsDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE:  statsCmd,
		Example: `  dynstr stats README.md
  dynstr stats *.txt`,
	}
)

func statsCmd(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		v, err := loadInput(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", path)
		fmt.Printf("  bytes:     %d\n", v.Len())
		fmt.Printf("  runes:     %d\n", v.RuneCount())
		fmt.Printf("  graphemes: %d\n", v.GraphemeCount())
		fmt.Printf("  windows:   %d\n", v.LeafCount())
		fmt.Printf("  depth:     %d\n", v.Depth())
	}
	return nil
}
