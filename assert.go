//go:build debug

package blocks

import "fmt"

// assertStructure panics if array violates its growth policy.
// Only enabled with -tags debug.
func assertStructure[T any](method string, array *Array[T]) {
	if !array.IsValidStructure() {
		panic(fmt.Sprintf("%s: invalid structure (size %d, blocks %d, growth %s)",
			method, array.size, len(array.blocks), array.growth))
	}
}
