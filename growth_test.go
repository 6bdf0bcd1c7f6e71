package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrowthString(t *testing.T) {
	for _, growth := range []Growth{Fixed, GrowFirst, Grow} {
		parsed, err := ParseGrowth(growth.String())
		require.NoError(t, err)
		require.Equal(t, growth, parsed)
	}
	require.Equal(t, "Growth(7)", Growth(7).String())

	_, err := ParseGrowth("doubling")
	require.ErrorIs(t, err, ErrInvalidGrowth)
}
