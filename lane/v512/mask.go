package v512

import (
	"math/bits"

	"github.com/govec/go-lanes/lane"
)

// This file provides mask constructors, mask logic, and the packed bit
// interchange format. Masks store one bit per lane, so most of these are
// single integer operations; the unused high bits of the word stay zero
// as an invariant. The wire format for N lanes is ceil(N/8) bytes,
// little-endian: bit i of byte 0 holds lane i.

// MaskFromVec extracts each lane's sign bit into a mask. Lanes of v are
// expected to be all-zero or all-one bits (for example the output of
// VecFromMask or BroadcastSignBit); only the top bit is examined.
func MaskFromVec[T lane.Lanes](v Vec[T]) Mask[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	sign := signBit(size)
	var m Mask[T]
	for i := range n {
		setMaskLane(&m, i, getLaneBits(&v.b, size, i)&sign != 0)
	}
	return m
}

// VecFromMask returns a vector with all-one lanes where m is true and
// zero lanes elsewhere.
func VecFromMask[T lane.Lanes](m Mask[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	var v Vec[T]
	for i := range n {
		if maskLane(&m, i) {
			putLaneBits(&v.b, size, i, ^uint64(0))
		}
	}
	return v
}

// MaskFalse returns a mask with every lane false.
func MaskFalse[T lane.Lanes]() Mask[T] {
	return Mask[T]{}
}

// FirstN returns a mask with the first n lanes true. n at or above
// NumLanes sets every lane.
func FirstN[T lane.Lanes](n int) Mask[T] {
	if n < 0 {
		n = 0
	}
	if total := NumLanes[T](); n > total {
		n = total
	}
	return Mask[T]{bits: uint64(1)<<n - 1}
}

// And returns a mask true where both m and o are true.
func (m Mask[T]) And(o Mask[T]) Mask[T] {
	m.bits &= o.bits
	return m
}

// Or returns a mask true where either m or o is true.
func (m Mask[T]) Or(o Mask[T]) Mask[T] {
	m.bits |= o.bits
	return m
}

// Xor returns a mask true where exactly one of m and o is true.
func (m Mask[T]) Xor(o Mask[T]) Mask[T] {
	m.bits ^= o.bits
	return m
}

// Not returns the complement of m.
func (m Mask[T]) Not() Mask[T] {
	m.bits = ^m.bits & laneMask[T]()
	return m
}

// AndNot returns a mask true where m is false and o is true.
func (m Mask[T]) AndNot(o Mask[T]) Mask[T] {
	m.bits = ^m.bits & o.bits
	return m
}

// LoadMaskBits loads a mask from its packed form: ceil(NumLanes/8) bytes,
// bit i of byte 0 = lane i. Padding bits beyond NumLanes are ignored.
func LoadMaskBits[T lane.Lanes](src []byte) Mask[T] {
	n := NumLanes[T]()
	nbytes := (n + 7) / 8
	_ = src[nbytes-1]
	var packed uint64
	for i := range nbytes {
		packed |= uint64(src[i]) << (8 * i)
	}
	return Mask[T]{bits: packed & laneMask[T]()}
}

// StoreMaskBits stores the mask in packed form and returns the number of
// bytes written: ceil(NumLanes/8).
// For example: lanes [T,F,T,F,F,F,F,F,...] -> dst[0] = 0b00000101
func StoreMaskBits[T lane.Lanes](m Mask[T], dst []byte) int {
	n := NumLanes[T]()
	nbytes := (n + 7) / 8
	_ = dst[nbytes-1]
	for i := range nbytes {
		dst[i] = byte(m.bits >> (8 * i))
	}
	return nbytes
}

// CountTrue returns the number of true lanes.
func CountTrue[T lane.Lanes](m Mask[T]) int {
	return bits.OnesCount64(m.bits)
}

// AllTrue reports whether every lane is true.
func AllTrue[T lane.Lanes](m Mask[T]) bool {
	return m.bits == laneMask[T]()
}

// AllFalse reports whether every lane is false.
func AllFalse[T lane.Lanes](m Mask[T]) bool {
	return m.bits == 0
}

// FindFirstTrue returns the index of the first true lane, or -1 if the
// mask is all false.
func FindFirstTrue[T lane.Lanes](m Mask[T]) int {
	if m.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(m.bits)
}

// FindKnownFirstTrue returns the index of the first true lane. The mask
// must have at least one true lane.
func FindKnownFirstTrue[T lane.Lanes](m Mask[T]) int {
	return bits.TrailingZeros64(m.bits)
}
