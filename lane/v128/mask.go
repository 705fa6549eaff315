package v128

import (
	"math/bits"

	"github.com/govec/go-lanes/lane"
)

// This file provides mask constructors, mask logic, and the packed bit
// interchange format. The wire format for N lanes is ceil(N/8) bytes,
// little-endian: bit i of byte 0 holds lane i.

// MaskFromVec reinterprets a vector as a mask. Every lane of v must
// already be all-zero or all-one bits (for example the output of
// VecFromMask or BroadcastSignBit).
func MaskFromVec[T lane.Lanes](v Vec[T]) Mask[T] {
	return Mask[T]{b: v.b}
}

// VecFromMask returns a vector with all-one lanes where m is true and
// zero lanes elsewhere.
func VecFromMask[T lane.Lanes](m Mask[T]) Vec[T] {
	return Vec[T]{b: m.b}
}

// MaskFalse returns a mask with every lane false.
func MaskFalse[T lane.Lanes]() Mask[T] {
	return Mask[T]{}
}

// FirstN returns a mask with the first n lanes true. n at or above
// NumLanes sets every lane.
func FirstN[T lane.Lanes](n int) Mask[T] {
	var m Mask[T]
	total := NumLanes[T]()
	for i := range total {
		setMaskLane(&m, i, i < n)
	}
	return m
}

// And returns a mask true where both m and o are true.
func (m Mask[T]) And(o Mask[T]) Mask[T] {
	for i := range m.b {
		m.b[i] &= o.b[i]
	}
	return m
}

// Or returns a mask true where either m or o is true.
func (m Mask[T]) Or(o Mask[T]) Mask[T] {
	for i := range m.b {
		m.b[i] |= o.b[i]
	}
	return m
}

// Xor returns a mask true where exactly one of m and o is true.
func (m Mask[T]) Xor(o Mask[T]) Mask[T] {
	for i := range m.b {
		m.b[i] ^= o.b[i]
	}
	return m
}

// Not returns the complement of m.
func (m Mask[T]) Not() Mask[T] {
	for i := range m.b {
		m.b[i] = ^m.b[i]
	}
	return m
}

// AndNot returns a mask true where m is false and o is true.
func (m Mask[T]) AndNot(o Mask[T]) Mask[T] {
	for i := range m.b {
		m.b[i] = ^m.b[i] & o.b[i]
	}
	return m
}

// bitsFromMask packs the mask into a uint64 with bit i = lane i.
func bitsFromMask[T lane.Lanes](m *Mask[T]) uint64 {
	n := NumLanes[T]()
	var out uint64
	for i := range n {
		if maskLane(m, i) {
			out |= 1 << i
		}
	}
	return out
}

// maskFromBits expands packed bits (bit i = lane i) into a mask.
func maskFromBits[T lane.Lanes](bits uint64) Mask[T] {
	var m Mask[T]
	n := NumLanes[T]()
	for i := range n {
		setMaskLane(&m, i, bits&(1<<i) != 0)
	}
	return m
}

// LoadMaskBits loads a mask from its packed form: ceil(NumLanes/8) bytes,
// bit i of byte 0 = lane i.
func LoadMaskBits[T lane.Lanes](src []byte) Mask[T] {
	n := NumLanes[T]()
	nbytes := (n + 7) / 8
	_ = src[nbytes-1]
	var packed uint64
	for i := range nbytes {
		packed |= uint64(src[i]) << (8 * i)
	}
	return maskFromBits[T](packed)
}

// StoreMaskBits stores the mask in packed form and returns the number of
// bytes written: ceil(NumLanes/8).
// For example: lanes [T,F,T,F,F,F,F,F] -> dst[0] = 0b00000101
func StoreMaskBits[T lane.Lanes](m Mask[T], dst []byte) int {
	n := NumLanes[T]()
	nbytes := (n + 7) / 8
	_ = dst[nbytes-1]
	packed := bitsFromMask(&m)
	for i := range nbytes {
		dst[i] = byte(packed >> (8 * i))
	}
	return nbytes
}

// CountTrue returns the number of true lanes.
func CountTrue[T lane.Lanes](m Mask[T]) int {
	return bits.OnesCount64(bitsFromMask(&m))
}

// AllTrue reports whether every lane is true.
func AllTrue[T lane.Lanes](m Mask[T]) bool {
	n := NumLanes[T]()
	return bitsFromMask(&m) == (uint64(1)<<n)-1
}

// AllFalse reports whether every lane is false.
func AllFalse[T lane.Lanes](m Mask[T]) bool {
	return bitsFromMask(&m) == 0
}

// FindFirstTrue returns the index of the first true lane, or -1 if the
// mask is all false.
func FindFirstTrue[T lane.Lanes](m Mask[T]) int {
	packed := bitsFromMask(&m)
	if packed == 0 {
		return -1
	}
	return bits.TrailingZeros64(packed)
}

// FindKnownFirstTrue returns the index of the first true lane. The mask
// must have at least one true lane.
func FindKnownFirstTrue[T lane.Lanes](m Mask[T]) int {
	return bits.TrailingZeros64(bitsFromMask(&m))
}
