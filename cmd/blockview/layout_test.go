package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dacapoday/blocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes([]string{"5", "1_000", "0"})
	require.NoError(t, err)
	require.Equal(t, []int{5, 1000, 0}, sizes)

	_, err = parseSizes([]string{"-3"})
	require.ErrorIs(t, err, blocks.ErrNegativeSize)

	_, err = parseSizes([]string{"ten"})
	require.Error(t, err)
}

func TestBuildLayout(t *testing.T) {
	values, err := blocks.NewInt64s(5, 10, blocks.Grow)
	require.NoError(t, err)

	steps, err := buildLayout(values, []int{5, 25, 26, 31, 3})
	require.NoError(t, err)
	require.Len(t, steps, 5)

	require.Equal(t, []int{5}, steps[0].Blocks)
	require.Equal(t, []int{10, 10, 5}, steps[1].Blocks)
	require.Equal(t, []int{10, 10, 6}, steps[2].Blocks)
	require.Equal(t, []int{10, 10, 10, 1}, steps[3].Blocks)
	require.Equal(t, []int{10, 10, 10, 1}, steps[4].Blocks)
	require.Equal(t, 3, steps[4].Size)
	require.Equal(t, 31, steps[4].Capacity)
	for _, step := range steps {
		require.True(t, step.Valid)
		require.Equal(t, "grow", step.Growth)
	}
}

func TestRenderLayout(t *testing.T) {
	step := layoutStep{
		Size:     2500,
		Capacity: 3000,
		Blocks:   []int{1000, 1000, 1000},
		Valid:    true,
		Growth:   "fixed",
		Block:    1000,
	}
	var out bytes.Buffer
	renderLayout(&out, message.NewPrinter(language.English), step, 40)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "size 2,500  capacity 3,000  blocks 3  fixed/1,000", lines[0])

	// 40 columns leave a 23 cell bar
	require.Equal(t, "  0 1000/1000 |#######################|", lines[1])
	require.Equal(t, "  2 1000/1000 |###########............|", lines[3])
	for _, line := range lines[1:] {
		require.Len(t, line, 39)
	}
}

func TestRenderLayoutPartialBlock(t *testing.T) {
	step := layoutStep{Size: 3, Capacity: 5, Blocks: []int{5}, Valid: false, Growth: "grow", Block: 10}
	var out bytes.Buffer
	renderLayout(&out, message.NewPrinter(language.English), step, 0)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Equal(t, "size 3  capacity 5  blocks 1  grow/10  INVALID", lines[0])
	require.Equal(t, "  0  5/10 |###..     |", lines[1])
}

func TestMeasureAppend(t *testing.T) {
	values, err := blocks.NewInt64s(1, 64, blocks.GrowFirst)
	require.NoError(t, err)

	report := measureAppend(values, 1000)
	require.Equal(t, 1000, report.Count)
	require.Equal(t, 1000, report.Metrics.Size)
	require.Equal(t, 16, report.Metrics.NumBlocks)
	require.EqualValues(t, 999, values.GetTail(0))
}
