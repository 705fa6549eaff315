package v512

import "github.com/govec/go-lanes/lane"

// This file provides loads and stores between registers and slices.
// Every form moves exactly one register's worth of lanes: slices shorter
// than NumLanes elements panic. Load and Store additionally require the
// base address to be 64-byte aligned, verified under the lanedebug tag.

// Load loads NumLanes elements from an aligned slice.
// Alignment is checked in lanedebug builds; use LoadU when the base
// address is arbitrary.
func Load[T lane.Lanes](src []T) Vec[T] {
	assertAligned(src)
	return LoadU(src)
}

// LoadU loads NumLanes elements from src without an alignment requirement.
func LoadU[T lane.Lanes](src []T) Vec[T] {
	n := NumLanes[T]()
	_ = src[n-1]
	var v Vec[T]
	for i := range n {
		putLane(&v.b, i, src[i])
	}
	return v
}

// Store stores the vector to an aligned slice.
// Alignment is checked in lanedebug builds; use StoreU otherwise.
func Store[T lane.Lanes](v Vec[T], dst []T) {
	assertAligned(dst)
	StoreU(v, dst)
}

// StoreU stores the vector to dst without an alignment requirement.
func StoreU[T lane.Lanes](v Vec[T], dst []T) {
	n := NumLanes[T]()
	_ = dst[n-1]
	for i := range n {
		dst[i] = getLane[T](&v.b, i)
	}
}

// Stream stores the vector with a non-temporal hint: the data is assumed
// not to be re-read soon, so implementations may bypass caches. That makes
// the write's visibility to other goroutines undefined until a
// synchronizing operation; the Go rendition is an ordinary aligned store
// but callers must keep the weaker contract.
func Stream[T lane.Lanes](v Vec[T], dst []T) {
	Store(v, dst)
}

// MaskedLoad loads lanes where mask is true and zeroes the rest.
func MaskedLoad[T lane.Lanes](mask Mask[T], src []T) Vec[T] {
	n := NumLanes[T]()
	_ = src[n-1]
	var v Vec[T]
	for i := range n {
		if maskLane(&mask, i) {
			putLane(&v.b, i, src[i])
		}
		// else: leave as zero
	}
	return v
}

// BlendedStore stores lanes where mask is true and leaves the rest of dst
// untouched.
func BlendedStore[T lane.Lanes](v Vec[T], mask Mask[T], dst []T) {
	n := NumLanes[T]()
	_ = dst[n-1]
	for i := range n {
		if maskLane(&mask, i) {
			dst[i] = getLane[T](&v.b, i)
		}
		// else: dst[i] unchanged
	}
}

// LoadDup128 loads one 128-bit block of elements and repeats it in all
// four blocks of the register.
// For example: src=[1,2] (uint64) -> [1,2,1,2,1,2,1,2]
func LoadDup128[T lane.Lanes](src []T) Vec[T] {
	perBlock := blockBytes / lane.SizeOf[T]()
	_ = src[perBlock-1]
	var v Vec[T]
	for blk := range numBlocks {
		for i := range perBlock {
			putLane(&v.b, blk*perBlock+i, src[i])
		}
	}
	return v
}

// GatherIndex loads base[index[i]] into lane i, reading the first
// NumLanes index lanes. Only 4- and 8-byte lane types can gather;
// indices must be within base, and out-of-range indices panic.
func GatherIndex[T lane.Lanes](base []T, index Vec[int32]) Vec[T] {
	if lane.SizeOf[T]() < 4 {
		panic("v512: gather needs 4- or 8-byte lanes")
	}
	n := NumLanes[T]()
	var v Vec[T]
	for i := range n {
		putLane(&v.b, i, base[getLane[int32](&index.b, i)])
	}
	return v
}

// ScatterIndex stores lane i to base[index[i]]. Only 4- and 8-byte lane
// types can scatter; indices must be within base, and out-of-range
// indices panic. If two lanes share an index the higher lane wins,
// matching a left-to-right scatter.
func ScatterIndex[T lane.Lanes](v Vec[T], base []T, index Vec[int32]) {
	if lane.SizeOf[T]() < 4 {
		panic("v512: scatter needs 4- or 8-byte lanes")
	}
	n := NumLanes[T]()
	for i := range n {
		base[getLane[int32](&index.b, i)] = getLane[T](&v.b, i)
	}
}

// LoadInterleaved2 loads 2*NumLanes elements of interleaved pairs
// [a0,b0,a1,b1,...] and deinterleaves them into two vectors.
func LoadInterleaved2[T lane.Lanes](src []T) (Vec[T], Vec[T]) {
	n := NumLanes[T]()
	_ = src[2*n-1]
	var a, b Vec[T]
	for i := range n {
		putLane(&a.b, i, src[2*i])
		putLane(&b.b, i, src[2*i+1])
	}
	return a, b
}

// LoadInterleaved3 loads 3*NumLanes elements of interleaved triples
// [a0,b0,c0,a1,...] and deinterleaves them into three vectors.
func LoadInterleaved3[T lane.Lanes](src []T) (Vec[T], Vec[T], Vec[T]) {
	n := NumLanes[T]()
	_ = src[3*n-1]
	var a, b, c Vec[T]
	for i := range n {
		putLane(&a.b, i, src[3*i])
		putLane(&b.b, i, src[3*i+1])
		putLane(&c.b, i, src[3*i+2])
	}
	return a, b, c
}

// LoadInterleaved4 loads 4*NumLanes elements of interleaved quads
// [a0,b0,c0,d0,a1,...] and deinterleaves them into four vectors.
func LoadInterleaved4[T lane.Lanes](src []T) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	n := NumLanes[T]()
	_ = src[4*n-1]
	var a, b, c, d Vec[T]
	for i := range n {
		putLane(&a.b, i, src[4*i])
		putLane(&b.b, i, src[4*i+1])
		putLane(&c.b, i, src[4*i+2])
		putLane(&d.b, i, src[4*i+3])
	}
	return a, b, c, d
}

// StoreInterleaved2 stores two vectors as interleaved pairs
// [a0,b0,a1,b1,...]; the inverse of LoadInterleaved2.
func StoreInterleaved2[T lane.Lanes](a, b Vec[T], dst []T) {
	n := NumLanes[T]()
	_ = dst[2*n-1]
	for i := range n {
		dst[2*i] = getLane[T](&a.b, i)
		dst[2*i+1] = getLane[T](&b.b, i)
	}
}

// StoreInterleaved3 stores three vectors as interleaved triples;
// the inverse of LoadInterleaved3.
func StoreInterleaved3[T lane.Lanes](a, b, c Vec[T], dst []T) {
	n := NumLanes[T]()
	_ = dst[3*n-1]
	for i := range n {
		dst[3*i] = getLane[T](&a.b, i)
		dst[3*i+1] = getLane[T](&b.b, i)
		dst[3*i+2] = getLane[T](&c.b, i)
	}
}

// StoreInterleaved4 stores four vectors as interleaved quads;
// the inverse of LoadInterleaved4.
func StoreInterleaved4[T lane.Lanes](a, b, c, d Vec[T], dst []T) {
	n := NumLanes[T]()
	_ = dst[4*n-1]
	for i := range n {
		dst[4*i] = getLane[T](&a.b, i)
		dst[4*i+1] = getLane[T](&b.b, i)
		dst[4*i+2] = getLane[T](&c.b, i)
		dst[4*i+3] = getLane[T](&d.b, i)
	}
}
