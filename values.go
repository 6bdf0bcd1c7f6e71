// Copyright 2026 dacapoday
// SPDX-License-Identifier: Apache-2.0

package blocks

import "slices"

// Values is a block array of primitive elements.
//
// Get, Set, GetTail and SetTail do no bounds checking beyond what the
// runtime does for the backing block: an index in [Len, Cap) silently
// reads or writes unused storage. Use At and Put when the index comes from
// untrusted input.
//
// Example usage:
//
//	values, _ := NewInt32s(10, 1024, Grow)
//	values.Append(7)
//	values.ResizeFill(100, -1)
//	v := values.Get(0) // 7
type Values[T Primitive] struct {
	Array[T]
}

// NewValues creates a Values with room for initialAllocation elements.
func NewValues[T Primitive](initialAllocation, blockSize int, growth Growth) (values *Values[T], err error) {
	values = new(Values[T])
	if err = values.init(initialAllocation, blockSize, growth); err != nil {
		values = nil
	}
	return
}

// Append adds value after the current end, growing the last block with
// slack when it is full.
func (values *Values[T]) Append(value T) {
	blockSize := values.blockSize
	b, off := values.size/blockSize, values.size%blockSize
	if b == len(values.blocks) || off >= len(values.blocks[b]) {
		values.allocate(values.size+1, true, true)
	}
	values.blocks[b][off] = value
	values.size++
	assertStructure("Append", &values.Array)
}

// Get returns the element at index without checking it against Len.
func (values *Values[T]) Get(index int) T {
	return values.blocks[index/values.blockSize][index%values.blockSize]
}

// Set stores value at index without checking it against Len.
func (values *Values[T]) Set(index int, value T) {
	values.blocks[index/values.blockSize][index%values.blockSize] = value
}

// GetTail returns the element i positions before the last one.
// GetTail(0) is the last element.
func (values *Values[T]) GetTail(i int) T {
	return values.Get(values.size - 1 - i)
}

// SetTail stores value i positions before the last element.
func (values *Values[T]) SetTail(i int, value T) {
	values.Set(values.size-1-i, value)
}

// At is the bounds checked variant of Get.
func (values *Values[T]) At(index int) (value T, err error) {
	if index < 0 || index >= values.size {
		err = ErrOutOfRange
		return
	}
	return values.Get(index), nil
}

// Put is the bounds checked variant of Set.
func (values *Values[T]) Put(index int, value T) error {
	if index < 0 || index >= values.size {
		return ErrOutOfRange
	}
	values.Set(index, value)
	return nil
}

// Fill sets every element in [idx0, idx1) to value.
func (values *Values[T]) Fill(idx0, idx1 int, value T) {
	values.ProcessByBlock(idx0, idx1, func(block []T, start, end, _ int) {
		for i := start; i < end; i++ {
			block[i] = value
		}
	})
}

// ResizeFill resizes to n elements and sets the newly exposed ones to value.
func (values *Values[T]) ResizeFill(n int, value T) error {
	old := values.size
	if err := values.Resize(n); err != nil {
		return err
	}
	if n > old {
		values.Fill(old, n, value)
	}
	return nil
}

// GetArray copies len(dst) elements starting at index into dst.
func (values *Values[T]) GetArray(index int, dst []T) {
	values.ProcessByBlock(index, index+len(dst), func(block []T, start, end, offset int) {
		copy(dst[offset:], block[start:end])
	})
}

// AppendTo appends all elements to dst and returns the extended slice.
func (values *Values[T]) AppendTo(dst []T) []T {
	dst = slices.Grow(dst, values.size)
	values.ProcessByBlock(0, values.size, func(block []T, start, end, _ int) {
		dst = append(dst, block[start:end]...)
	})
	return dst
}

// ForEach calls fn for every element in [idx0, idx1).
func (values *Values[T]) ForEach(idx0, idx1 int, fn func(value T)) {
	values.ProcessByBlock(idx0, idx1, func(block []T, start, end, _ int) {
		for _, v := range block[start:end] {
			fn(v)
		}
	})
}

// ForIdx calls fn with the index and value of every element in [idx0, idx1).
func (values *Values[T]) ForIdx(idx0, idx1 int, fn func(index int, value T)) {
	values.ProcessByBlock(idx0, idx1, func(block []T, start, end, offset int) {
		base := idx0 + offset - start
		for i := start; i < end; i++ {
			fn(base+i, block[i])
		}
	})
}

// ApplyIdx replaces every element in [idx0, idx1) with the result of fn.
func (values *Values[T]) ApplyIdx(idx0, idx1 int, fn func(index int, value T) T) {
	values.ProcessByBlock(idx0, idx1, func(block []T, start, end, offset int) {
		base := idx0 + offset - start
		for i := start; i < end; i++ {
			block[i] = fn(base+i, block[i])
		}
	})
}

// Items implements iter.Seq2[int, T], iterating all elements in order.
func (values *Values[T]) Items(yield func(index int, value T) bool) {
	idx := 0
	for _, block := range values.blocks {
		n := min(len(block), values.size-idx)
		for _, v := range block[:n] {
			if !yield(idx, v) {
				return
			}
			idx++
		}
		if idx == values.size {
			return
		}
	}
}
