package v512

import "github.com/govec/go-lanes/lane"

// This file provides shifts and rotates. Lane-wise shifts are logical for
// unsigned types and arithmetic for signed types. Counts at or above the
// lane width give the shifted-out result (zeros, or all sign bits for
// arithmetic right shifts); lanedebug builds treat them as errors. The
// byte-granular shifts operate within each 128-bit block independently.

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

// ShiftLeftBytes shifts each 128-bit block left by n bytes toward higher
// lane indices, inserting zeros at the bottom of the block.
// For example, block bytes [b0,b1,...,b15] -> [0,...,0,b0,...,b15-n]
func ShiftLeftBytes[T lane.Lanes](v Vec[T], n int) Vec[T] {
	var r Vec[T]
	for blk := range numBlocks {
		base := blk * blockBytes
		for i := blockBytes - 1; i >= n; i-- {
			r.b[base+i] = v.b[base+i-n]
		}
	}
	return r
}

// ShiftRightBytes shifts each 128-bit block right by n bytes toward lower
// lane indices, inserting zeros at the top of the block.
func ShiftRightBytes[T lane.Lanes](v Vec[T], n int) Vec[T] {
	var r Vec[T]
	for blk := range numBlocks {
		base := blk * blockBytes
		for i := 0; i+n < blockBytes; i++ {
			r.b[base+i] = v.b[base+i+n]
		}
	}
	return r
}

// ShiftLeftLanes shifts each 128-bit block left by n whole lanes.
func ShiftLeftLanes[T lane.Lanes](v Vec[T], n int) Vec[T] {
	return ShiftLeftBytes(v, n*lane.SizeOf[T]())
}

// ShiftRightLanes shifts each 128-bit block right by n whole lanes.
func ShiftRightLanes[T lane.Lanes](v Vec[T], n int) Vec[T] {
	return ShiftRightBytes(v, n*lane.SizeOf[T]())
}

// CombineShiftRightBytes treats each hi:lo block pair as one 32-byte
// value and returns per block the 16 bytes starting n bytes up from the
// bottom of lo's block.
// For example, n=4: [lo4..lo15, hi0..hi3] within every block
func CombineShiftRightBytes[T lane.Lanes](hi, lo Vec[T], n int) Vec[T] {
	var r Vec[T]
	for blk := range numBlocks {
		base := blk * blockBytes
		for i := range blockBytes {
			src := i + n
			if src < blockBytes {
				r.b[base+i] = lo.b[base+src]
			} else if src < 2*blockBytes {
				r.b[base+i] = hi.b[base+src-blockBytes]
			}
		}
	}
	return r
}

// CombineShiftRightLanes is CombineShiftRightBytes counted in lanes.
func CombineShiftRightLanes[T lane.Lanes](hi, lo Vec[T], n int) Vec[T] {
	return CombineShiftRightBytes(hi, lo, n*lane.SizeOf[T]())
}
