// Copyright 2026 dacapoday
// SPDX-License-Identifier: Apache-2.0

package blocks

// Lifecycle describes how Objects creates and recycles its elements.
type Lifecycle[T any] struct {
	// New constructs an instance. Defaults to new(T).
	New func() *T
	// Init runs once on every constructed instance, before its first Reset.
	Init func(*T)
	// Reset returns an instance to its canonical state. It runs every time
	// a slot becomes part of the logical content.
	Reset func(*T)
}

// Objects is a block array of recyclable records.
//
// Each slot owns one instance for its whole lifetime. The instance is built
// the first time the slot is exposed (New, Init, then Reset); later
// exposures after a shrink only call Reset, so repeated grow/shrink cycles
// do not allocate. Pointers returned by Grow and Get stay valid while the
// array grows.
// Not thread-safe.
//
// Example usage:
//
//	points, _ := NewObjects(16, 1024, GrowFirst, Lifecycle[Point]{
//		Reset: func(p *Point) { *p = Point{} },
//	})
//	p := points.Grow()
//	p.X, p.Y = 1, 2
//	points.Reset() // instances are kept for the next pass
type Objects[T any] struct {
	array     Array[*T]
	lifecycle Lifecycle[T]
}

// NewObjects creates an Objects with room for initialAllocation elements.
// No instance is constructed until a slot is exposed.
func NewObjects[T any](initialAllocation, blockSize int, growth Growth, lifecycle Lifecycle[T]) (objects *Objects[T], err error) {
	objects = new(Objects[T])
	if err = objects.array.init(initialAllocation, blockSize, growth); err != nil {
		objects = nil
		return
	}
	if lifecycle.New == nil {
		lifecycle.New = func() *T { return new(T) }
	}
	objects.lifecycle = lifecycle
	return
}

func (objects *Objects[T]) Len() int {
	return objects.array.size
}

func (objects *Objects[T]) Cap() int {
	return objects.array.Cap()
}

func (objects *Objects[T]) BlockSize() int {
	return objects.array.blockSize
}

func (objects *Objects[T]) Growth() Growth {
	return objects.array.growth
}

func (objects *Objects[T]) NumBlocks() int {
	return len(objects.array.blocks)
}

func (objects *Objects[T]) InitialBlockSize() int {
	return objects.array.initialBlockSize
}

func (objects *Objects[T]) SetInitialBlockSize(n int) error {
	return objects.array.SetInitialBlockSize(n)
}

func (objects *Objects[T]) IsValidStructure() bool {
	return objects.array.IsValidStructure()
}

func (objects *Objects[T]) Metrics() Metrics {
	return objects.array.Metrics()
}

// Reset sets the size to zero. Blocks and instances are kept for reuse.
func (objects *Objects[T]) Reset() {
	objects.array.Reset()
}

// Reserve makes room for desiredSize elements without constructing any.
func (objects *Objects[T]) Reserve(desiredSize int) error {
	return objects.array.Reserve(desiredSize)
}

// Resize changes the size to desiredSize. Every newly exposed slot is
// reset, and constructed first if it never held an instance.
func (objects *Objects[T]) Resize(desiredSize int) error {
	old := objects.array.size
	if err := objects.array.Resize(desiredSize); err != nil {
		return err
	}
	if desiredSize > old {
		objects.array.ProcessByBlock(old, desiredSize, func(block []*T, start, end, _ int) {
			for i := start; i < end; i++ {
				objects.expose(&block[i])
			}
		})
	}
	return nil
}

// Grow adds one element and returns it, already reset.
func (objects *Objects[T]) Grow() *T {
	array := &objects.array
	blockSize := array.blockSize
	b, off := array.size/blockSize, array.size%blockSize
	if b == len(array.blocks) || off >= len(array.blocks[b]) {
		array.allocate(array.size+1, true, true)
	}
	slot := &array.blocks[b][off]
	objects.expose(slot)
	array.size++
	assertStructure("Grow", array)
	return *slot
}

func (objects *Objects[T]) expose(slot **T) {
	if *slot == nil {
		obj := objects.lifecycle.New()
		if objects.lifecycle.Init != nil {
			objects.lifecycle.Init(obj)
		}
		*slot = obj
	}
	if objects.lifecycle.Reset != nil {
		objects.lifecycle.Reset(*slot)
	}
}

// Get returns the element at index without checking it against Len.
func (objects *Objects[T]) Get(index int) *T {
	blockSize := objects.array.blockSize
	return objects.array.blocks[index/blockSize][index%blockSize]
}

// GetTail returns the element i positions before the last one.
func (objects *Objects[T]) GetTail(i int) *T {
	return objects.Get(objects.array.size - 1 - i)
}

// At is the bounds checked variant of Get.
func (objects *Objects[T]) At(index int) (*T, error) {
	if index < 0 || index >= objects.array.size {
		return nil, ErrOutOfRange
	}
	return objects.Get(index), nil
}

// RemoveSwap removes the element at index by swapping it with the last
// element and shrinking the size. The removed instance stays owned by the
// array and is recycled by a later Grow or Resize.
func (objects *Objects[T]) RemoveSwap(index int) {
	array := &objects.array
	blockSize := array.blockSize
	tail := array.size - 1
	a := &array.blocks[index/blockSize][index%blockSize]
	b := &array.blocks[tail/blockSize][tail%blockSize]
	*a, *b = *b, *a
	array.size = tail
	assertStructure("RemoveSwap", array)
}

// ForEach calls fn for every element in [idx0, idx1).
func (objects *Objects[T]) ForEach(idx0, idx1 int, fn func(obj *T)) {
	objects.array.ProcessByBlock(idx0, idx1, func(block []*T, start, end, _ int) {
		for _, obj := range block[start:end] {
			fn(obj)
		}
	})
}

// ForIdx calls fn with the index of every element in [idx0, idx1).
func (objects *Objects[T]) ForIdx(idx0, idx1 int, fn func(index int, obj *T)) {
	objects.array.ProcessByBlock(idx0, idx1, func(block []*T, start, end, offset int) {
		base := idx0 + offset - start
		for i := start; i < end; i++ {
			fn(base+i, block[i])
		}
	})
}

// Items implements iter.Seq2[int, *T], iterating all elements in order.
func (objects *Objects[T]) Items(yield func(index int, obj *T) bool) {
	size := objects.array.size
	idx := 0
	for _, block := range objects.array.blocks {
		if idx == size {
			return
		}
		n := min(len(block), size-idx)
		for _, obj := range block[:n] {
			if !yield(idx, obj) {
				return
			}
			idx++
		}
	}
}
