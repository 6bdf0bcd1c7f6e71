// Package blocks provides growable arrays that keep their elements in
// fixed-capacity blocks instead of one contiguous buffer.
//
// Growing a block array never copies the existing content: new blocks are
// appended and, depending on the Growth policy, only one designated block
// may be smaller than the block size. This makes the containers suitable
// for hot loops that accumulate millions of values.
//
// Three layers are exposed:
//   - Array is the block-management core: allocation, resizing, cross-block
//     copies and block-wise iteration.
//   - Values is the front-end for primitive element kinds (Int32s, Float64s,
//     Bools, ...), with fast unchecked accessors and bulk operations.
//   - Objects is the front-end for recyclable records; it constructs each
//     instance once and resets it every time its slot is reused.
//
// None of the containers are safe for concurrent use.
//
// Example usage:
//
//	values, _ := blocks.NewFloat64s(16, 1024, blocks.GrowFirst)
//	for i := range 10_000 {
//		values.Append(float64(i))
//	}
//	sum := 0.0
//	values.ForEach(0, values.Len(), func(v float64) { sum += v })
package blocks

// BlockFunc receives one segment of a block-wise traversal: block[start:end]
// covers the next elements of the requested range, and offset is the number
// of elements already visited before this segment.
type BlockFunc[T any] func(block []T, start, end, offset int)

// Primitive is the set of element kinds served by Values.
type Primitive interface {
	~bool |
		~int8 | ~uint8 |
		~int16 | ~uint16 |
		~int32 | ~uint32 |
		~int64 | ~uint64 |
		~int | ~uint |
		~float32 | ~float64
}
