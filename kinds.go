package blocks

// Typed front-ends, one per primitive element kind.
type (
	Int8s    = Values[int8]
	Uint8s   = Values[uint8]
	Int16s   = Values[int16]
	Int32s   = Values[int32]
	Int64s   = Values[int64]
	Float32s = Values[float32]
	Float64s = Values[float64]
	Bools    = Values[bool]
)

func NewInt8s(initialAllocation, blockSize int, growth Growth) (*Int8s, error) {
	return NewValues[int8](initialAllocation, blockSize, growth)
}

// NewUint8s creates a byte array, as used by mem.File.
func NewUint8s(initialAllocation, blockSize int, growth Growth) (*Uint8s, error) {
	return NewValues[uint8](initialAllocation, blockSize, growth)
}

func NewInt16s(initialAllocation, blockSize int, growth Growth) (*Int16s, error) {
	return NewValues[int16](initialAllocation, blockSize, growth)
}

func NewInt32s(initialAllocation, blockSize int, growth Growth) (*Int32s, error) {
	return NewValues[int32](initialAllocation, blockSize, growth)
}

func NewInt64s(initialAllocation, blockSize int, growth Growth) (*Int64s, error) {
	return NewValues[int64](initialAllocation, blockSize, growth)
}

func NewFloat32s(initialAllocation, blockSize int, growth Growth) (*Float32s, error) {
	return NewValues[float32](initialAllocation, blockSize, growth)
}

func NewFloat64s(initialAllocation, blockSize int, growth Growth) (*Float64s, error) {
	return NewValues[float64](initialAllocation, blockSize, growth)
}

func NewBools(initialAllocation, blockSize int, growth Growth) (*Bools, error) {
	return NewValues[bool](initialAllocation, blockSize, growth)
}
