package blocks

import "errors"

var (
	ErrInvalidAllocation = errors.New("invalid initial allocation")
	ErrInvalidBlockSize  = errors.New("invalid block size")
	ErrInvalidGrowth     = errors.New("invalid growth policy")
	ErrNegativeSize      = errors.New("negative size")
	ErrOutOfRange        = errors.New("out of range")
)
