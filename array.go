// Copyright 2026 dacapoday
// SPDX-License-Identifier: Apache-2.0

package blocks

// DefaultInitialBlockSize bounds the slack added to a block that is grown
// by appends, unless SetInitialBlockSize overrides it.
const DefaultInitialBlockSize = 256

// Array is the block-management core shared by Values and Objects.
// It owns an ordered list of blocks; every block except the one designated
// by the Growth policy holds exactly BlockSize elements.
// Not thread-safe.
//
// Blocks are only ever appended. Shrinking the logical size keeps them,
// so a later Resize back to a previously reached size does not allocate.
type Array[T any] struct {
	blocks           [][]T
	blockSize        int
	growth           Growth
	size             int
	initialBlockSize int
}

// New creates an Array with room for initialAllocation elements.
// Both initialAllocation and blockSize must be positive.
func New[T any](initialAllocation, blockSize int, growth Growth) (array *Array[T], err error) {
	array = new(Array[T])
	if err = array.init(initialAllocation, blockSize, growth); err != nil {
		array = nil
	}
	return
}

func (array *Array[T]) init(initialAllocation, blockSize int, growth Growth) error {
	if blockSize <= 0 {
		return ErrInvalidBlockSize
	}
	if initialAllocation <= 0 {
		return ErrInvalidAllocation
	}
	if !growth.valid() {
		return ErrInvalidGrowth
	}
	array.blockSize = blockSize
	array.growth = growth
	array.initialBlockSize = min(DefaultInitialBlockSize, blockSize)
	array.blocks = make([][]T, 0, ceilDiv(initialAllocation, blockSize))
	array.allocate(initialAllocation, false, false)
	return nil
}

// Len returns the number of logically valid elements.
func (array *Array[T]) Len() int {
	return array.size
}

// Cap returns the number of elements the allocated blocks can hold.
func (array *Array[T]) Cap() int {
	n := len(array.blocks)
	if n == 0 {
		return 0
	}
	return (n-1)*array.blockSize + len(array.blocks[n-1])
}

func (array *Array[T]) BlockSize() int {
	return array.blockSize
}

func (array *Array[T]) Growth() Growth {
	return array.growth
}

func (array *Array[T]) NumBlocks() int {
	return len(array.blocks)
}

// Block returns the backing storage of block i, including elements past Len.
func (array *Array[T]) Block(i int) []T {
	return array.blocks[i]
}

func (array *Array[T]) InitialBlockSize() int {
	return array.initialBlockSize
}

// SetInitialBlockSize sets the base of the slack added when a block grows
// because of an append. It must be within [1, BlockSize].
func (array *Array[T]) SetInitialBlockSize(n int) error {
	if n < 1 || n > array.blockSize {
		return ErrOutOfRange
	}
	array.initialBlockSize = n
	return nil
}

// Reset sets the size to zero. Allocated blocks are kept for reuse.
func (array *Array[T]) Reset() {
	array.size = 0
}

// Reserve makes sure the capacity is at least desiredSize.
// The size and the stored values are left unchanged.
func (array *Array[T]) Reserve(desiredSize int) error {
	return array.Allocate(desiredSize, true, false)
}

// Resize reserves desiredSize elements and makes them the logical content.
// Elements past the previous size hold whatever was stored there before.
func (array *Array[T]) Resize(desiredSize int) error {
	if err := array.Reserve(desiredSize); err != nil {
		return err
	}
	array.size = desiredSize
	assertStructure("Resize", array)
	return nil
}

// Allocate grows the blocks so that desiredSize elements fit. Capacity is
// never reduced. When saveValues is false the content of a block that has
// to be resized is discarded. When addExtra is true the resized or new last
// block receives slack for future appends.
//
// A negative desiredSize is a programming error, usually an overflow in
// the caller, and yields ErrNegativeSize.
func (array *Array[T]) Allocate(desiredSize int, saveValues, addExtra bool) error {
	if desiredSize < 0 {
		return ErrNegativeSize
	}
	array.allocate(desiredSize, saveValues, addExtra)
	assertStructure("Allocate", array)
	return nil
}

func (array *Array[T]) allocate(desiredSize int, saveValues, addExtra bool) {
	blockSize := array.blockSize
	desiredNumBlocks := ceilDiv(desiredSize, blockSize)
	numBlocks := len(array.blocks)
	if numBlocks > desiredNumBlocks {
		return
	}

	if numBlocks == desiredNumBlocks {
		// the last block is grown in place
		last := numBlocks - 1
		length := len(array.blocks[last])
		lastBlockSize := array.lastBlockSize(desiredSize, desiredNumBlocks)
		if length >= lastBlockSize {
			return
		}
		if addExtra {
			lastBlockSize = min(blockSize, array.initialBlockSize+2*length+lastBlockSize)
		}
		array.blocks[last] = resizeBlock(array.blocks[last], lastBlockSize, saveValues)
		return
	}

	// every block that stops being the last one must be full sized
	if numBlocks > 0 {
		last := numBlocks - 1
		if len(array.blocks[last]) < blockSize {
			array.blocks[last] = resizeBlock(array.blocks[last], blockSize, saveValues)
		}
	}
	for range desiredNumBlocks - numBlocks - 1 {
		array.blocks = append(array.blocks, make([]T, blockSize))
	}
	lastBlockSize := array.lastBlockSize(desiredSize, desiredNumBlocks)
	if addExtra {
		lastBlockSize = min(blockSize, array.initialBlockSize+2*lastBlockSize)
	}
	array.blocks = append(array.blocks, make([]T, lastBlockSize))
}

// lastBlockSize returns the length the last block needs to hold desiredSize
// elements spread over numBlocks blocks, without slack.
func (array *Array[T]) lastBlockSize(desiredSize, numBlocks int) int {
	switch {
	case array.growth == Fixed:
		return array.blockSize
	case array.growth == GrowFirst && numBlocks > 1:
		return array.blockSize
	}
	if r := desiredSize % array.blockSize; r != 0 {
		return r
	}
	return array.blockSize
}

func resizeBlock[T any](block []T, length int, saveValues bool) []T {
	resized := make([]T, length)
	if saveValues {
		copy(resized, block)
	}
	return resized
}

// AppendSlice adds the elements of src after the current end.
func (array *Array[T]) AppendSlice(src []T) {
	if len(src) == 0 {
		return
	}
	location := array.size
	array.allocate(location+len(src), true, true)
	array.size += len(src)
	array.SetArray(location, src)
	assertStructure("AppendSlice", array)
}

// SetArray copies src into the elements starting at location.
// The range must lie within the capacity.
func (array *Array[T]) SetArray(location int, src []T) {
	array.ProcessByBlock(location, location+len(src), func(block []T, start, end, offset int) {
		copy(block[start:end], src[offset:])
	})
}

// ProcessByBlock calls fn once for each block segment of [idx0, idx1):
// a partial head segment, whole blocks, then a partial tail segment.
// Nothing is called when idx0 == idx1.
func (array *Array[T]) ProcessByBlock(idx0, idx1 int, fn BlockFunc[T]) {
	blockSize := array.blockSize
	offset := 0
	for idx := idx0; idx < idx1; {
		b := idx / blockSize
		start := idx - b*blockSize
		end := min(blockSize, start+idx1-idx)
		fn(array.blocks[b], start, end, offset)
		n := end - start
		idx += n
		offset += n
	}
}

// RemoveSwap removes the element at index by moving the last element into
// its slot. The order of the remaining elements is not preserved.
func (array *Array[T]) RemoveSwap(index int) {
	blockSize := array.blockSize
	tail := array.size - 1
	array.blocks[index/blockSize][index%blockSize] = array.blocks[tail/blockSize][tail%blockSize]
	array.size = tail
	assertStructure("RemoveSwap", array)
}

// IsValidStructure reports whether the block lengths obey the growth policy
// and the size fits into the allocated blocks. It never panics and is meant
// for tests and debugging.
func (array *Array[T]) IsValidStructure() bool {
	n := len(array.blocks)
	if n == 0 || array.blockSize <= 0 {
		return false
	}
	if array.size < 0 || array.size > array.Cap() {
		return false
	}
	for i, block := range array.blocks {
		length := len(block)
		if length > array.blockSize {
			return false
		}
		if length == array.blockSize {
			continue
		}
		switch array.growth {
		case Fixed:
			return false
		case GrowFirst:
			if i != 0 || n > 1 {
				return false
			}
		case Grow:
			if i != n-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
