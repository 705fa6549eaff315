package v128

import "github.com/govec/go-lanes/lane"

// This file provides bitwise logical operations and bit-select blends.
// All of them work in the bit domain: lane types only matter for the
// signatures, so float vectors get the same treatment as their same-width
// unsigned views.

// And returns a & b.
func And[T lane.Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.b {
		a.b[i] &= b.b[i]
	}
	return a
}

// Or returns a | b.
func Or[T lane.Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.b {
		a.b[i] |= b.b[i]
	}
	return a
}

// Xor returns a ^ b.
func Xor[T lane.Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.b {
		a.b[i] ^= b.b[i]
	}
	return a
}

// Not returns ^v.
func Not[T lane.Lanes](v Vec[T]) Vec[T] {
	for i := range v.b {
		v.b[i] = ^v.b[i]
	}
	return v
}

// AndNot returns ^a & b.
func AndNot[T lane.Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.b {
		a.b[i] = ^a.b[i] & b.b[i]
	}
	return a
}

// Or3 returns a | b | c.
func Or3[T lane.Lanes](a, b, c Vec[T]) Vec[T] {
	for i := range a.b {
		a.b[i] |= b.b[i] | c.b[i]
	}
	return a
}

// Xor3 returns a ^ b ^ c.
func Xor3[T lane.Lanes](a, b, c Vec[T]) Vec[T] {
	for i := range a.b {
		a.b[i] ^= b.b[i] ^ c.b[i]
	}
	return a
}

// OrAnd returns o | (a & b).
func OrAnd[T lane.Lanes](o, a, b Vec[T]) Vec[T] {
	for i := range o.b {
		o.b[i] |= a.b[i] & b.b[i]
	}
	return o
}

// IfThenElse blends lanes: yes where mask is true, no elsewhere.
func IfThenElse[T lane.Lanes](mask Mask[T], yes, no Vec[T]) Vec[T] {
	var v Vec[T]
	for i := range v.b {
		v.b[i] = (mask.b[i] & yes.b[i]) | (^mask.b[i] & no.b[i])
	}
	return v
}

// IfThenElseZero returns yes where mask is true and zero elsewhere.
func IfThenElseZero[T lane.Lanes](mask Mask[T], yes Vec[T]) Vec[T] {
	for i := range yes.b {
		yes.b[i] &= mask.b[i]
	}
	return yes
}

// IfThenZeroElse returns zero where mask is true and no elsewhere.
func IfThenZeroElse[T lane.Lanes](mask Mask[T], no Vec[T]) Vec[T] {
	for i := range no.b {
		no.b[i] &^= mask.b[i]
	}
	return no
}

// IfVecThenElse is a bit-granular select: each result bit comes from yes
// where the corresponding bit of v is set, else from no. Unlike IfThenElse
// the selector is an arbitrary vector, not a mask.
func IfVecThenElse[T lane.Lanes](v, yes, no Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.b {
		r.b[i] = (v.b[i] & yes.b[i]) | (^v.b[i] & no.b[i])
	}
	return r
}

// signBit returns the MSB mask for a lane of the given byte size.
func signBit(size int) uint64 {
	return 1 << (8*size - 1)
}

// BroadcastSignBit fills each lane with copies of its sign bit:
// non-negative lanes become 0 and negative lanes become all ones (-1).
func BroadcastSignBit[T lane.SignedInts](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	sign := signBit(size)
	var r Vec[T]
	for i := range n {
		if getLaneBits(&v.b, size, i)&sign != 0 {
			putLaneBits(&r.b, size, i, ^uint64(0))
		}
	}
	return r
}

// IfNegativeThenElse blends on the sign bit of v: lanes whose sign bit is
// set (including -0.0 for floats) take yes, the rest take no.
func IfNegativeThenElse[T lane.Lanes](v, yes, no Vec[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	sign := signBit(size)
	var r Vec[T]
	for i := range n {
		if getLaneBits(&v.b, size, i)&sign != 0 {
			putLaneBits(&r.b, size, i, getLaneBits(&yes.b, size, i))
		} else {
			putLaneBits(&r.b, size, i, getLaneBits(&no.b, size, i))
		}
	}
	return r
}

// ZeroIfNegative zeroes lanes whose sign bit is set.
func ZeroIfNegative[T lane.Lanes](v Vec[T]) Vec[T] {
	return IfNegativeThenElse(v, Zero[T](), v)
}

// CopySign returns lanes with the magnitude of magn and the sign of sign.
func CopySign[T lane.Floats](magn, sign Vec[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	msb := signBit(size)
	var r Vec[T]
	for i := range n {
		m := getLaneBits(&magn.b, size, i) &^ msb
		s := getLaneBits(&sign.b, size, i) & msb
		putLaneBits(&r.b, size, i, m|s)
	}
	return r
}

// CopySignToAbs is CopySign for magn known to be non-negative; it only ORs
// in the sign bit.
func CopySignToAbs[T lane.Floats](abs, sign Vec[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	msb := signBit(size)
	for i := range n {
		s := getLaneBits(&sign.b, size, i) & msb
		putLaneBits(&abs.b, size, i, getLaneBits(&abs.b, size, i)|s)
	}
	return abs
}
