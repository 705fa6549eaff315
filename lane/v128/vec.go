// Package v128 implements the 128-bit vector backend.
//
// A Vec is a value type wrapping one 16-byte register. Lane 0 occupies the
// lowest byte offset and multi-byte lanes are little-endian, so the byte
// image of a vector is identical to the memory it was loaded from. Masks
// are vector-shaped: each lane of a Mask is either all-zero or all-one
// bits, which makes MaskFromVec and VecFromMask free.
//
// All functions are pure and all types have value semantics; the package
// is safe for concurrent use without synchronization.
//
// Basic usage:
//
//	a := v128.LoadU(data1)
//	b := v128.LoadU(data2)
//	v128.StoreU(v128.Add(a, b), out)
package v128

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/govec/go-lanes/lane"
)

// Vec is one 128-bit register of T lanes.
//
// The zero value equals Zero[T]().
type Vec[T lane.Lanes] struct {
	b [16]byte
}

// Mask is the result of a comparison: one 128-bit register in which every
// lane is either all-zero (false) or all-one (true) bits.
//
// The zero value equals MaskFalse[T]().
type Mask[T lane.Lanes] struct {
	b [16]byte
}

// Indices selects source lanes for TableLookupLanes. Each lane holds the
// index of the source lane to copy, stored at lane width.
type Indices[T lane.Lanes] struct {
	b [16]byte
}

// Desc describes the register shape for T at this width. The type
// parameter does the compile-time work; Desc hands the derived counts to
// code that needs them as values.
type Desc[T lane.Lanes] struct{}

// NumLanes returns the lane count of a 128-bit register of T.
func (Desc[T]) NumLanes() int { return NumLanes[T]() }

// LaneBytes returns the width of one lane in bytes.
func (Desc[T]) LaneBytes() int { return lane.SizeOf[T]() }

// Width returns the backend width.
func (Desc[T]) Width() lane.Width { return lane.Width128 }

// NumLanes returns the number of lanes a 128-bit register holds for T:
// 16 for 8-bit types down to 2 for 64-bit types.
func NumLanes[T lane.Lanes]() int {
	return 16 / lane.SizeOf[T]()
}

// getLane returns lane i. The two little-endian accessors below are the
// only code that touches the byte layout; everything else goes through
// them.
func getLane[T lane.Lanes](b *[16]byte, i int) T {
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
// Bit-domain operations (logical ops, masks, permute indices) use this form
// so they need not care about the lane's nominal type.
func getLaneBits(b *[16]byte, size, i int) uint64 {
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
func putLaneBits(b *[16]byte, size, i int, bits uint64) {
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
func putLane[T lane.Lanes](b *[16]byte, i int, v T) {
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
// For example, Iota[uint32](5) -> [5,6,7,8]
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
func (v Vec[T]) Bytes() [16]byte {
	return v.b
}

// VecFromBytes builds a vector directly from a register byte image.
func VecFromBytes[T lane.Lanes](b [16]byte) Vec[T] {
	return Vec[T]{b: b}
}

// String formats the vector's lanes for debugging.
func (v Vec[T]) String() string {
	return fmt.Sprintf("v128%v", v.Lanes())
}

// maskLane reports whether mask lane i is set.
func maskLane[T lane.Lanes](m *Mask[T], i int) bool {
	return m.b[i*lane.SizeOf[T]()] != 0
}

// setMaskLane fills mask lane i with all-one or all-zero bytes.
func setMaskLane[T lane.Lanes](m *Mask[T], i int, on bool) {
	size := lane.SizeOf[T]()
	var fill byte
	if on {
		fill = 0xFF
	}
	for j := i * size; j < (i+1)*size; j++ {
		m.b[j] = fill
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

// String formats the mask's lanes for debugging.
func (m Mask[T]) String() string {
	n := NumLanes[T]()
	out := make([]bool, n)
	for i := range n {
		out[i] = maskLane(&m, i)
	}
	return fmt.Sprintf("v128.mask%v", out)
}
