package main

import (
	"fmt"

	"github.com/dshills/dynstr"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// colorMode selects when match highlighting is emitted.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

var _ pflag.Value = (*colorMode)(nil)

func (m *colorMode) String() string { return string(*m) }

func (m *colorMode) Set(v string) error {
	switch colorMode(v) {
	case colorAuto, colorAlways, colorNever:
		*m = colorMode(v)
		return nil
	}
	return fmt.Errorf("invalid color mode %q (must be auto, always, or never)", v)
}

func (*colorMode) Type() string { return "mode" }

// findContextBytes is how much text is shown on each side of a match.
const findContextBytes = 20

var (
	findDescription = `Search for every occurrence of PATTERN in the input.

Each match is reported with its byte offset and surrounding context.
Overlapping occurrences are all reported.`
	_findCommand = &cobra.Command{
		Use:   "find FILE PATTERN",
		Short: "Find occurrences of a pattern",
		Long:  findDescription,
		Args:  cobra.ExactArgs(2),
		RunE:  findCmd,
		Example: `  dynstr find access.log "status=500"
  dynstr find - needle --count < haystack.txt`,
	}

	findCount bool
	findColor = colorAuto
)

func init() {
	flags := _findCommand.Flags()
	flags.BoolVarP(&findCount, "count", "c", false, "Print only the number of matches")
	flags.Var(&findColor, "color", "Highlight matches: auto, always, or never")
}

func findCmd(cmd *cobra.Command, args []string) error {
	switch findColor {
	case colorAlways:
		color.NoColor = false
	case colorNever:
		color.NoColor = true
	}

	v, err := loadInput(args[0])
	if err != nil {
		return err
	}
	pattern := dynstr.FromString(args[1])
	if pattern.IsEmpty() {
		return fmt.Errorf("pattern must not be empty")
	}

	highlight := color.New(color.FgRed, color.Bold).SprintFunc()

	matches := 0
	f := v.Find(pattern)
	for {
		at, ok := f.Next()
		if !ok {
			break
		}
		matches++
		if findCount {
			continue
		}
		line, err := findContext(v, at, pattern.Len(), highlight)
		if err != nil {
			return err
		}
		fmt.Printf("%d: %s\n", at, line)
	}
	if findCount {
		fmt.Println(matches)
	} else {
		logrus.Infof("%d matches", matches)
	}
	return nil
}

// findContext renders the matched bytes with up to findContextBytes of
// context on each side.
func findContext(v dynstr.String, at, n int, highlight func(...interface{}) string) (string, error) {
	lo := at - findContextBytes
	if lo < 0 {
		lo = 0
	}
	hi := at + n + findContextBytes
	if hi > v.Len() {
		hi = v.Len()
	}
	before, err := v.Slice(lo, at)
	if err != nil {
		return "", err
	}
	match, err := v.Slice(at, at+n)
	if err != nil {
		return "", err
	}
	after, err := v.Slice(at+n, hi)
	if err != nil {
		return "", err
	}
	return before.String() + highlight(match.String()) + after.String(), nil
}
