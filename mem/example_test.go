package mem_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/dacapoday/blocks/mem"
)

func Example() {
	var f mem.File

	f.ReadFrom(strings.NewReader("block arrays"))
	f.WriteAt([]byte("!"), 14)

	buf := make([]byte, 6)
	n, _ := f.ReadAt(buf, 6)
	fmt.Printf("%q\n", buf[:n])
	fmt.Println("Size:", f.Size())

	f.Truncate(5)
	f.WriteTo(os.Stdout)
	fmt.Println()

	// Output:
	// "arrays"
	// Size: 15
	// block
}
