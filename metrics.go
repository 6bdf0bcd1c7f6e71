package blocks

// Metrics contains statistical information about an array.
type Metrics struct {
	Size        int     // Logical number of elements
	Capacity    int     // Elements the allocated blocks can hold
	NumBlocks   int     // Number of blocks
	BlockSize   int     // Capacity of a full block
	Utilization float64 // Ratio of size to capacity (0.0-1.0)
}

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
func (array *Array[T]) Utilization() float64 {
	capacity := array.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(array.size) / float64(capacity)
}

// Metrics returns a snapshot of array statistics.
func (array *Array[T]) Metrics() Metrics {
	return Metrics{
		Size:        array.size,
		Capacity:    array.Cap(),
		NumBlocks:   len(array.blocks),
		BlockSize:   array.blockSize,
		Utilization: array.Utilization(),
	}
}
