package main

import (
	"fmt"
	"os"

	"github.com/dshills/dynstr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	splitDescription = `Split the input around every occurrence of SEP and print one piece
per line. Pieces are windows into the input's buffers; nothing is copied.`
	_splitCommand = &cobra.Command{
		Use:   "split FILE SEP",
		Short: "Split a file around a separator",
		Long:  splitDescription,
		Args:  cobra.ExactArgs(2),
		RunE:  splitCmd,
		Example: `  dynstr split data.csv ,
  dynstr split records.txt "#-;" --limit 3`,
	}

	splitLimit int
)

func init() {
	flags := _splitCommand.Flags()
	flags.IntVarP(&splitLimit, "limit", "l", -1, "Maximum number of pieces (-1 for all)")
}

func splitCmd(cmd *cobra.Command, args []string) error {
	v, err := loadInput(args[0])
	if err != nil {
		return err
	}
	pieces := v.SplitN(dynstr.FromString(args[1]), splitLimit)
	logrus.Debugf("%d pieces", len(pieces))
	for _, piece := range pieces {
		if _, err := piece.WriteTo(os.Stdout); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}
