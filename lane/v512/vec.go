// Package v512 implements the 512-bit vector backend.
//
// A Vec is a value type wrapping one 64-byte register, laid out as four
// 128-bit blocks. Lane 0 occupies the lowest byte offset and multi-byte
// lanes are little-endian, so the byte image of a vector is identical to
// the memory it was loaded from. Unlike the 128-bit backend, masks here
// are compact bit sets: bit i of a Mask is lane i, and bits above the
// lane count stay zero.
//
// Operations that shuffle bytes (Broadcast, TableLookupBytes, the byte
// shifts, InterleaveLower/Upper and the Zip forms) work within each
// 128-bit block independently, mirroring how 512-bit shuffle hardware
// behaves. TableLookupLanes and the Reverse family cross blocks.
//
// All functions are pure and all types have value semantics; the package
// is safe for concurrent use without synchronization.
package v512

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/govec/go-lanes/lane"
)

// blockBytes is the size of one shuffle block.
const blockBytes = 16

// numBlocks is how many 128-bit blocks a register holds.
const numBlocks = 4

// Vec is one 512-bit register of T lanes.
//
// The zero value equals Zero[T]().
type Vec[T lane.Lanes] struct {
	b [64]byte
}

// Mask is the result of a comparison, stored as packed bits: bit i is
// lane i. Bits at or above NumLanes are always zero.
//
// The zero value equals MaskFalse[T]().
type Mask[T lane.Lanes] struct {
	bits uint64
}

// Indices selects source lanes for TableLookupLanes. Each lane holds the
// index of the source lane to copy, stored at lane width.
type Indices[T lane.Lanes] struct {
	b [64]byte
}

// Desc describes the register shape for T at this width.
type Desc[T lane.Lanes] struct{}

// NumLanes returns the lane count of a 512-bit register of T.
func (Desc[T]) NumLanes() int { return NumLanes[T]() }

// LaneBytes returns the width of one lane in bytes.
func (Desc[T]) LaneBytes() int { return lane.SizeOf[T]() }

// Width returns the backend width.
func (Desc[T]) Width() lane.Width { return lane.Width512 }

// NumLanes returns the number of lanes a 512-bit register holds for T:
// 64 for 8-bit types down to 8 for 64-bit types.
func NumLanes[T lane.Lanes]() int {
	return 64 / lane.SizeOf[T]()
}

// laneMask returns the set of valid mask bits for T: NumLanes low bits.
func laneMask[T lane.Lanes]() uint64 {
	return ^uint64(0) >> (64 - NumLanes[T]())
}

// getLane returns lane i. The two little-endian accessors below are the
// only code that touches the byte layout; everything else goes through
// them.
func getLane[T lane.Lanes](b *[64]byte, i int) T {
	var z T
	switch any(z).(type) {
	case uint8:
		return T(b[i])
	case int8:
		return T(int8(b[i]))
	case uint16:
		return T(binary.LittleEndian.Uint16(b[2*i:]))
	case int16:
		return T(int16(binary.LittleEndian.Uint16(b[2*i:])))
	case uint32:
		return T(binary.LittleEndian.Uint32(b[4*i:]))
	case int32:
		return T(int32(binary.LittleEndian.Uint32(b[4*i:])))
	case uint64:
		return T(binary.LittleEndian.Uint64(b[8*i:]))
	case int64:
		return T(int64(binary.LittleEndian.Uint64(b[8*i:])))
	case float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:])))
	default:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(b[8*i:])))
	}
}

// getLaneBits returns lane i as raw bits for the given lane size in bytes.
func getLaneBits(b *[64]byte, size, i int) uint64 {
	switch size {
	case 1:
		return uint64(b[i])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b[2*i:]))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b[4*i:]))
	default:
		return binary.LittleEndian.Uint64(b[8*i:])
	}
}

// putLaneBits stores raw bits into lane i for the given lane size in bytes.
func putLaneBits(b *[64]byte, size, i int, bits uint64) {
	switch size {
	case 1:
		b[i] = byte(bits)
	case 2:
		binary.LittleEndian.PutUint16(b[2*i:], uint16(bits))
	case 4:
		binary.LittleEndian.PutUint32(b[4*i:], uint32(bits))
	default:
		binary.LittleEndian.PutUint64(b[8*i:], bits)
	}
}

// putLane stores v into lane i.
func putLane[T lane.Lanes](b *[64]byte, i int, v T) {
	switch any(v).(type) {
	case uint8, int8:
		b[i] = byte(v)
	case uint16, int16:
		binary.LittleEndian.PutUint16(b[2*i:], uint16(v))
	case uint32, int32:
		binary.LittleEndian.PutUint32(b[4*i:], uint32(v))
	case uint64, int64:
		binary.LittleEndian.PutUint64(b[8*i:], uint64(v))
	case float32:
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(float32(v)))
	default:
		binary.LittleEndian.PutUint64(b[8*i:], math.Float64bits(float64(v)))
	}
}

// Zero returns a vector with every lane zero.
func Zero[T lane.Lanes]() Vec[T] {
	return Vec[T]{}
}

// Set returns a vector with every lane equal to value.
func Set[T lane.Lanes](value T) Vec[T] {
	var v Vec[T]
	for i := range NumLanes[T]() {
		putLane(&v.b, i, value)
	}
	return v
}

// Undefined returns a vector whose contents may be anything. The Go
// rendition returns zeros; callers must not rely on that.
func Undefined[T lane.Lanes]() Vec[T] {
	return Vec[T]{}
}

// Iota returns a vector with lane i set to start + i.
// For example, Iota[uint32](5) -> [5,6,...,20]
func Iota[T lane.Lanes](start T) Vec[T] {
	var v Vec[T]
	for i := range NumLanes[T]() {
		putLane(&v.b, i, start+T(i))
	}
	return v
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return NumLanes[T]()
}

// Lane returns lane i. It is meant for tests and diagnostics, not for
// lane-at-a-time loops over vector data.
func (v Vec[T]) Lane(i int) T {
	return getLane[T](&v.b, i)
}

// Lanes returns the vector as a freshly allocated slice.
// Like Lane, this is a diagnostic accessor.
func (v Vec[T]) Lanes() []T {
	n := NumLanes[T]()
	out := make([]T, n)
	for i := range n {
		out[i] = getLane[T](&v.b, i)
	}
	return out
}

// Bytes returns the register's byte image, lane 0 first, little-endian.
func (v Vec[T]) Bytes() [64]byte {
	return v.b
}

// VecFromBytes builds a vector directly from a register byte image.
func VecFromBytes[T lane.Lanes](b [64]byte) Vec[T] {
	return Vec[T]{b: b}
}

// String formats the vector's lanes for debugging.
func (v Vec[T]) String() string {
	return fmt.Sprintf("v512%v", v.Lanes())
}

// maskLane reports whether mask lane i is set.
func maskLane[T lane.Lanes](m *Mask[T], i int) bool {
	return m.bits>>i&1 != 0
}

// setMaskLane sets or clears mask bit i.
func setMaskLane[T lane.Lanes](m *Mask[T], i int, on bool) {
	if on {
		m.bits |= 1 << i
	} else {
		m.bits &^= 1 << i
	}
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return NumLanes[T]()
}

// Lane reports whether mask lane i is set.
func (m Mask[T]) Lane(i int) bool {
	return maskLane(&m, i)
}

// Bits returns the mask as packed bits, bit i = lane i.
func (m Mask[T]) Bits() uint64 {
	return m.bits
}

// MaskFromBits builds a mask from packed bits, bit i = lane i. Bits at
// or above NumLanes are dropped.
func MaskFromBits[T lane.Lanes](bits uint64) Mask[T] {
	return Mask[T]{bits: bits & laneMask[T]()}
}

// String formats the mask's lanes for debugging.
func (m Mask[T]) String() string {
	n := NumLanes[T]()
	out := make([]bool, n)
	for i := range n {
		out[i] = maskLane(&m, i)
	}
	return fmt.Sprintf("v512.mask%v", out)
}
