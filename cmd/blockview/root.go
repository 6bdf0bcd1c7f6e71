package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dacapoday/blocks"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// Global flags
	verbose          bool
	jsonOut          bool
	blockSize        int
	growthName       string
	initial          int
	initialBlockSize int
)

var rootCmd = &cobra.Command{
	Use:   "blockview",
	Short: "Inspect the block layout of growable block arrays",
	Long: `blockview builds block arrays with a chosen block size and growth policy
and shows how their blocks are laid out as they grow.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	flags.IntVarP(&blockSize, "block-size", "b", 1024, "Capacity of a full block")
	flags.StringVarP(&growthName, "growth", "g", blocks.GrowFirst.String(),
		"Growth policy: fixed, grow-first or grow")
	flags.IntVar(&initial, "initial", 16, "Initial allocation")
	flags.IntVar(&initialBlockSize, "initial-block-size", 0,
		"Base of the append slack (0 keeps the default)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// newValues builds the array described by the global flags.
func newValues() (*blocks.Int64s, error) {
	growth, err := blocks.ParseGrowth(growthName)
	if err != nil {
		return nil, err
	}
	values, err := blocks.NewInt64s(initial, blockSize, growth)
	if err != nil {
		return nil, fmt.Errorf("block-size %d, initial %d: %w", blockSize, initial, err)
	}
	if initialBlockSize > 0 {
		if err = values.SetInitialBlockSize(initialBlockSize); err != nil {
			return nil, fmt.Errorf("initial-block-size %d: %w", initialBlockSize, err)
		}
	}
	return values, nil
}

// printer formats counts with digit grouping.
var printer = message.NewPrinter(language.English)

// terminalWidth returns the width of stdout, or 80 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !jsonOut {
		printer.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
