package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	sliceDescription = `Print the byte range [START, END) of the input.

The range is checked against the input length and never clamped; bounds
outside the input are an error.`
	_sliceCommand = &cobra.Command{
		Use:   "slice FILE START END",
		Short: "Print a byte range of a file",
		Long:  sliceDescription,
		Args:  cobra.ExactArgs(3),
		RunE:  sliceCmd,
		Example: `  dynstr slice notes.txt 0 100
  cat notes.txt | dynstr slice - 16 32`,
	}

	sliceNewline bool
)

func init() {
	flags := _sliceCommand.Flags()
	flags.BoolVarP(&sliceNewline, "newline", "n", false, "Append a trailing newline to the output")
}

func sliceCmd(cmd *cobra.Command, args []string) error {
	start, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid start %q: %w", args[1], err)
	}
	end, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid end %q: %w", args[2], err)
	}

	v, err := loadInput(args[0])
	if err != nil {
		return err
	}
	out, err := v.Slice(start, end)
	if err != nil {
		return err
	}
	if _, err := out.WriteTo(os.Stdout); err != nil {
		return err
	}
	if sliceNewline {
		fmt.Println()
	}
	return nil
}
