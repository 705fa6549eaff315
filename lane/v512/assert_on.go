//go:build lanedebug

package v512

import (
	"fmt"
	"unsafe"

	"github.com/govec/go-lanes/lane"
)

// Checked builds verify the preconditions that release builds only
// document: register alignment for Load/Store, shift counts below the lane
// width, and permute indices within range.

func assertAligned[T lane.Lanes](src []T) {
	if len(src) == 0 {
		return
	}
	if addr := uintptr(unsafe.Pointer(&src[0])); addr%64 != 0 {
		panic(fmt.Sprintf("v512: base address %#x is not 64-byte aligned", addr))
	}
}

func assertShiftCount[T lane.Lanes](count int) {
	bits := 8 * lane.SizeOf[T]()
	if count < 0 || count >= bits {
		panic(fmt.Sprintf("v512: shift count %d outside [0, %d)", count, bits))
	}
}

func assertTableIndices[T lane.Lanes](ix Indices[T]) {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	for i := range n {
		if idx := getLaneBits(&ix.b, size, i); idx >= uint64(n) {
			panic(fmt.Sprintf("v512: table index %d in lane %d outside [0, %d)", idx, i, n))
		}
	}
}
