package v128

import "github.com/govec/go-lanes/lane"

// This file provides shifts and rotates. Lane-wise shifts are logical for
// unsigned types and arithmetic for signed types. Counts at or above the
// lane width give the shifted-out result (zeros, or all sign bits for
// arithmetic right shifts); lanedebug builds treat them as errors.

// ShiftLeft shifts each lane left by count bits, inserting zeros.
func ShiftLeft[T lane.Integers](v Vec[T], count int) Vec[T] {
	assertShiftCount[T](count)
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, getLane[T](&v.b, i)<<count)
	}
	return r
}

// ShiftRight shifts each lane right by count bits: logical for unsigned
// types, arithmetic (sign-propagating) for signed types.
func ShiftRight[T lane.Integers](v Vec[T], count int) Vec[T] {
	assertShiftCount[T](count)
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, getLane[T](&v.b, i)>>count)
	}
	return r
}

// Shl shifts each lane of v left by the count in the matching lane of
// counts.
func Shl[T lane.Integers](v, counts Vec[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	var r Vec[T]
	for i := range n {
		c := getLaneBits(&counts.b, size, i)
		putLane(&r.b, i, getLane[T](&v.b, i)<<c)
	}
	return r
}

// Shr shifts each lane of v right by the count in the matching lane of
// counts; arithmetic for signed types.
func Shr[T lane.Integers](v, counts Vec[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	var r Vec[T]
	for i := range n {
		c := getLaneBits(&counts.b, size, i)
		putLane(&r.b, i, getLane[T](&v.b, i)>>c)
	}
	return r
}

// RotateRight rotates each lane right by count bits.
func RotateRight[T lane.Integers](v Vec[T], count int) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	width := uint(8 * size)
	c := uint(count) % width
	var r Vec[T]
	for i := range n {
		x := getLaneBits(&v.b, size, i)
		rot := x>>c | x<<(width-c)
		putLaneBits(&r.b, size, i, rot)
	}
	return r
}

// ShiftLeftBytes shifts the whole register left by n bytes toward higher
// lane indices, inserting zeros at the bottom.
// For example, bytes [b0,b1,...,b15] -> [0,...,0,b0,...,b15-n]
func ShiftLeftBytes[T lane.Lanes](v Vec[T], n int) Vec[T] {
	var r Vec[T]
	for i := 15; i >= n; i-- {
		r.b[i] = v.b[i-n]
	}
	return r
}

// ShiftRightBytes shifts the whole register right by n bytes toward lower
// lane indices, inserting zeros at the top.
func ShiftRightBytes[T lane.Lanes](v Vec[T], n int) Vec[T] {
	var r Vec[T]
	for i := 0; i+n < 16; i++ {
		r.b[i] = v.b[i+n]
	}
	return r
}

// ShiftLeftLanes shifts the register left by n whole lanes.
func ShiftLeftLanes[T lane.Lanes](v Vec[T], n int) Vec[T] {
	return ShiftLeftBytes(v, n*lane.SizeOf[T]())
}

// ShiftRightLanes shifts the register right by n whole lanes.
func ShiftRightLanes[T lane.Lanes](v Vec[T], n int) Vec[T] {
	return ShiftRightBytes(v, n*lane.SizeOf[T]())
}

// CombineShiftRightBytes treats hi:lo as one 32-byte value and returns the
// 16 bytes starting n bytes up from the bottom of lo.
// For example, n=4: [lo4..lo15, hi0..hi3]
func CombineShiftRightBytes[T lane.Lanes](hi, lo Vec[T], n int) Vec[T] {
	var r Vec[T]
	for i := range 16 {
		src := i + n
		if src < 16 {
			r.b[i] = lo.b[src]
		} else if src < 32 {
			r.b[i] = hi.b[src-16]
		}
	}
	return r
}

// CombineShiftRightLanes is CombineShiftRightBytes counted in lanes.
func CombineShiftRightLanes[T lane.Lanes](hi, lo Vec[T], n int) Vec[T] {
	return CombineShiftRightBytes(hi, lo, n*lane.SizeOf[T]())
}
