package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dacapoday/blocks"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

func init() {
	rootCmd.AddCommand(newLayoutCmd())
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout <size>...",
		Short: "Resize an array step by step and show its blocks",
		Long: `The layout command resizes one array to each given size in turn and
prints the length of every block after each step, together with the
capacity and whether the structure obeys the growth policy.

Example:
  blockview layout -b 10 -g grow 5 25 26 31
  blockview layout -b 10 -g grow-first 5 7 11 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(args)
		},
	}
}

type layoutStep struct {
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
	Blocks   []int  `json:"blocks"`
	Valid    bool   `json:"valid"`
	Growth   string `json:"growth"`
	Block    int    `json:"block_size"`
}

func runLayout(args []string) error {
	sizes, err := parseSizes(args)
	if err != nil {
		return err
	}
	values, err := newValues()
	if err != nil {
		return err
	}
	steps, err := buildLayout(values, sizes)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(steps)
	}
	width := terminalWidth()
	for _, step := range steps {
		renderLayout(os.Stdout, printer, step, width)
	}
	return nil
}

func parseSizes(args []string) ([]int, error) {
	sizes := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(strings.ReplaceAll(arg, "_", ""))
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", arg, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("size %q: %w", arg, blocks.ErrNegativeSize)
		}
		sizes[i] = n
	}
	return sizes, nil
}

// buildLayout resizes values to every size and records the layout after each step.
func buildLayout(values *blocks.Int64s, sizes []int) ([]layoutStep, error) {
	steps := make([]layoutStep, 0, len(sizes))
	for _, size := range sizes {
		if err := values.Resize(size); err != nil {
			return nil, err
		}
		lengths := make([]int, values.NumBlocks())
		for i := range lengths {
			lengths[i] = len(values.Block(i))
		}
		printVerbose("resize %d: %d blocks\n", size, len(lengths))
		steps = append(steps, layoutStep{
			Size:     values.Len(),
			Capacity: values.Cap(),
			Blocks:   lengths,
			Valid:    values.IsValidStructure(),
			Growth:   values.Growth().String(),
			Block:    values.BlockSize(),
		})
	}
	return steps, nil
}

// renderLayout prints one step with a bar per block scaled to width columns.
func renderLayout(w io.Writer, p *message.Printer, step layoutStep, width int) {
	p.Fprintf(w, "size %d  capacity %d  blocks %d  %s/%d",
		step.Size, step.Capacity, len(step.Blocks), step.Growth, step.Block)
	if !step.Valid {
		fmt.Fprint(w, "  INVALID")
	}
	fmt.Fprintln(w)

	label := len(strconv.Itoa(len(step.Blocks)))
	digits := len(strconv.Itoa(step.Block))
	bar := max(10, width-label-2*digits-8)
	used := step.Size
	for i, length := range step.Blocks {
		filled := used
		if filled > length {
			filled = length
		}
		used -= filled

		cells := length * bar / step.Block
		full := filled * bar / step.Block
		fmt.Fprintf(w, "  %*d %*d/%-*d |%s%s%s|\n",
			label, i, digits, length, digits, step.Block,
			strings.Repeat("#", full),
			strings.Repeat(".", cells-full),
			strings.Repeat(" ", bar-cells))
	}
}
