//go:build !debug

package blocks

// assertStructure is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertStructure[T any](string, *Array[T]) {}
