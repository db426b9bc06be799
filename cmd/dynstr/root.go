package main

import (
	"fmt"
	"os"

	"github.com/dshills/dynstr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootDescription = `Inspect and transform text using shared string values.

Files are loaded once; slicing, searching, and splitting then operate on
windows into shared buffers instead of copying the content around.`
	rootCmd = &cobra.Command{
		Use:   "dynstr",
		Short: "Shared string toolbox",
		Long:  rootDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return before(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	logLevel string
)

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log messages above specified level: debug, info, warn, error, fatal or panic")
	rootCmd.AddCommand(
		_findCommand,
		_sliceCommand,
		_splitCommand,
		_statsCommand,
	)
}

func before(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}

// loadInput reads a file, or standard input when path is "-", into a value.
func loadInput(path string) (dynstr.String, error) {
	if path == "-" {
		v, err := dynstr.FromReader(os.Stdin)
		if err != nil {
			return dynstr.String{}, fmt.Errorf("reading standard input: %w", err)
		}
		return v, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return dynstr.String{}, err
	}
	defer f.Close()
	v, err := dynstr.FromReader(f)
	if err != nil {
		return dynstr.String{}, fmt.Errorf("reading %s: %w", path, err)
	}
	logrus.Debugf("loaded %d bytes from %s in %d windows", v.Len(), path, v.LeafCount())
	return v, nil
}
