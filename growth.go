package blocks

import "fmt"

// Growth decides which block of an array may be shorter than the block size.
type Growth uint8

const (
	// Fixed allocates every block at the full block size.
	Fixed Growth = iota
	// GrowFirst lets the first block stay small while it is the only block.
	// Once a second block exists all blocks are full sized.
	GrowFirst
	// Grow lets only the last block be partial.
	Grow
)

func (growth Growth) String() string {
	switch growth {
	case Fixed:
		return "fixed"
	case GrowFirst:
		return "grow-first"
	case Grow:
		return "grow"
	default:
		return fmt.Sprintf("Growth(%d)", uint8(growth))
	}
}

func (growth Growth) valid() bool {
	return growth <= Grow
}

// ParseGrowth is the inverse of Growth.String.
func ParseGrowth(s string) (Growth, error) {
	switch s {
	case "fixed":
		return Fixed, nil
	case "grow-first":
		return GrowFirst, nil
	case "grow":
		return Grow, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGrowth, s)
}
