package v512

import (
	"fmt"

	"github.com/govec/go-lanes/lane"
)

// This file provides lane rearrangement: broadcasts, reversals,
// interleaves, half concatenations and table-driven permutes. Broadcast,
// the interleaves and the byte tables operate within each 128-bit block;
// the reversals, half concatenations and lane permutes span the whole
// register. Group operations (Reverse2/4/8) require at least that many
// lanes and panic otherwise; the same policy applies to Broadcast's lane
// index.

// lanesPerBlock returns the number of T lanes in one 128-bit block.
func lanesPerBlock[T lane.Lanes]() int {
	return blockBytes / lane.SizeOf[T]()
}

// Broadcast returns a vector where every lane of each 128-bit block
// equals lane k of that block. k must be below the block's lane count.
// For example: v=[a,b,c,d|e,f,g,h|...], k=2 -> [c,c,c,c|g,g,g,g|...]
func Broadcast[T lane.Lanes](v Vec[T], k int) Vec[T] {
	per := lanesPerBlock[T]()
	if k < 0 || k >= per {
		panic(fmt.Sprintf("v512: broadcast lane %d outside [0, %d)", k, per))
	}
	var r Vec[T]
	for blk := range numBlocks {
		base := blk * per
		x := getLane[T](&v.b, base+k)
		for i := range per {
			putLane(&r.b, base+i, x)
		}
	}
	return r
}

// Reverse returns the lanes in reverse order across the whole register.
// For example: [a,b,...,z] -> [z,...,b,a]
func Reverse[T lane.Lanes](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, getLane[T](&v.b, n-1-i))
	}
	return r
}

// Reverse2 reverses each adjacent pair of lanes.
// For example: [a,b,c,d,...] -> [b,a,d,c,...]
func Reverse2[T lane.Lanes](v Vec[T]) Vec[T] {
	return reverseGroups(v, 2)
}

// Reverse4 reverses each group of 4 lanes.
// For example: [a,b,c,d,e,f,g,h,...] -> [d,c,b,a,h,g,f,e,...]
func Reverse4[T lane.Lanes](v Vec[T]) Vec[T] {
	return reverseGroups(v, 4)
}

// Reverse8 reverses each group of 8 lanes.
func Reverse8[T lane.Lanes](v Vec[T]) Vec[T] {
	return reverseGroups(v, 8)
}

func reverseGroups[T lane.Lanes](v Vec[T], group int) Vec[T] {
	n := NumLanes[T]()
	if n < group {
		panic(fmt.Sprintf("v512: reverse group %d needs %d lanes, have %d", group, group, n))
	}
	var r Vec[T]
	for g := 0; g < n; g += group {
		for i := range group {
			putLane(&r.b, g+i, getLane[T](&v.b, g+group-1-i))
		}
	}
	return r
}

// InterleaveLower interleaves the lower halves of each 128-bit block of
// a and b.
// For example per block: a=[a0,a1,a2,a3], b=[b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T lane.Lanes](a, b Vec[T]) Vec[T] {
	per := lanesPerBlock[T]()
	var r Vec[T]
	for blk := range numBlocks {
		base := blk * per
		for i := range per / 2 {
			putLane(&r.b, base+2*i, getLane[T](&a.b, base+i))
			putLane(&r.b, base+2*i+1, getLane[T](&b.b, base+i))
		}
	}
	return r
}

// InterleaveUpper interleaves the upper halves of each 128-bit block of
// a and b.
// For example per block: a=[a0,a1,a2,a3], b=[b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T lane.Lanes](a, b Vec[T]) Vec[T] {
	per := lanesPerBlock[T]()
	var r Vec[T]
	for blk := range numBlocks {
		base := blk * per
		for i := range per / 2 {
			putLane(&r.b, base+2*i, getLane[T](&a.b, base+per/2+i))
			putLane(&r.b, base+2*i+1, getLane[T](&b.b, base+per/2+i))
		}
	}
	return r
}

// ZipLowerU8ToU16 interleaves the lower block halves of a and b and reads
// the result as double-width lanes: lane i = a[i] | b[i]<<8.
func ZipLowerU8ToU16(a, b Vec[uint8]) Vec[uint16] {
	return BitCast[uint16](InterleaveLower(a, b))
}

// ZipUpperU8ToU16 is ZipLowerU8ToU16 for the upper block halves.
func ZipUpperU8ToU16(a, b Vec[uint8]) Vec[uint16] {
	return BitCast[uint16](InterleaveUpper(a, b))
}

// ZipLowerU16ToU32 interleaves the lower block halves into 32-bit lanes.
func ZipLowerU16ToU32(a, b Vec[uint16]) Vec[uint32] {
	return BitCast[uint32](InterleaveLower(a, b))
}

// ZipUpperU16ToU32 is ZipLowerU16ToU32 for the upper block halves.
func ZipUpperU16ToU32(a, b Vec[uint16]) Vec[uint32] {
	return BitCast[uint32](InterleaveUpper(a, b))
}

// ZipLowerU32ToU64 interleaves the lower block halves into 64-bit lanes.
func ZipLowerU32ToU64(a, b Vec[uint32]) Vec[uint64] {
	return BitCast[uint64](InterleaveLower(a, b))
}

// ZipUpperU32ToU64 is ZipLowerU32ToU64 for the upper block halves.
func ZipUpperU32ToU64(a, b Vec[uint32]) Vec[uint64] {
	return BitCast[uint64](InterleaveUpper(a, b))
}

// ConcatLowerLower returns the lower half of lo below the lower half of
// hi: [lo.lower, hi.lower]. Halves are 256 bits.
func ConcatLowerLower[T lane.Lanes](hi, lo Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n / 2 {
		putLane(&r.b, i, getLane[T](&lo.b, i))
		putLane(&r.b, n/2+i, getLane[T](&hi.b, i))
	}
	return r
}

// ConcatUpperUpper returns [lo.upper, hi.upper].
func ConcatUpperUpper[T lane.Lanes](hi, lo Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n / 2 {
		putLane(&r.b, i, getLane[T](&lo.b, n/2+i))
		putLane(&r.b, n/2+i, getLane[T](&hi.b, n/2+i))
	}
	return r
}

// ConcatLowerUpper returns [lo.upper, hi.lower].
func ConcatLowerUpper[T lane.Lanes](hi, lo Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n / 2 {
		putLane(&r.b, i, getLane[T](&lo.b, n/2+i))
		putLane(&r.b, n/2+i, getLane[T](&hi.b, i))
	}
	return r
}

// ConcatUpperLower returns [lo.lower, hi.upper]: the halves kept in
// place, lower from lo and upper from hi.
func ConcatUpperLower[T lane.Lanes](hi, lo Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n / 2 {
		putLane(&r.b, i, getLane[T](&lo.b, i))
		putLane(&r.b, n/2+i, getLane[T](&hi.b, n/2+i))
	}
	return r
}

// ConcatOdd returns the odd lanes of lo then the odd lanes of hi.
// For example: hi=[h0..h7], lo=[l0..l7] -> [l1,l3,l5,l7,h1,h3,h5,h7]
func ConcatOdd[T lane.Lanes](hi, lo Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n / 2 {
		putLane(&r.b, i, getLane[T](&lo.b, 2*i+1))
		putLane(&r.b, n/2+i, getLane[T](&hi.b, 2*i+1))
	}
	return r
}

// ConcatEven returns the even lanes of lo then the even lanes of hi.
// For example: hi=[h0..h7], lo=[l0..l7] -> [l0,l2,l4,l6,h0,h2,h4,h6]
func ConcatEven[T lane.Lanes](hi, lo Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n / 2 {
		putLane(&r.b, i, getLane[T](&lo.b, 2*i))
		putLane(&r.b, n/2+i, getLane[T](&hi.b, 2*i))
	}
	return r
}

// OddEven returns the odd lanes of a and the even lanes of b, each in
// place.
// For example: a=[a0,a1,a2,a3,...], b=[b0,b1,b2,b3,...] -> [b0,a1,b2,a3,...]
func OddEven[T lane.Lanes](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		if i%2 == 0 {
			putLane(&r.b, i, getLane[T](&b.b, i))
		} else {
			putLane(&r.b, i, getLane[T](&a.b, i))
		}
	}
	return r
}

// DupEven copies each even lane over the odd lane above it.
// For example: [a0,a1,a2,a3,...] -> [a0,a0,a2,a2,...]
func DupEven[T lane.Lanes](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := 0; i < n; i += 2 {
		x := getLane[T](&v.b, i)
		putLane(&r.b, i, x)
		putLane(&r.b, i+1, x)
	}
	return r
}

// DupOdd copies each odd lane over the even lane below it.
// For example: [a0,a1,a2,a3,...] -> [a1,a1,a3,a3,...]
func DupOdd[T lane.Lanes](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := 0; i < n; i += 2 {
		x := getLane[T](&v.b, i+1)
		putLane(&r.b, i, x)
		putLane(&r.b, i+1, x)
	}
	return r
}

// SwapAdjacentBlocks swaps each pair of adjacent 128-bit blocks:
// [B0,B1,B2,B3] -> [B1,B0,B3,B2].
func SwapAdjacentBlocks[T lane.Lanes](v Vec[T]) Vec[T] {
	var r Vec[T]
	for blk := range numBlocks {
		src := (blk ^ 1) * blockBytes
		copy(r.b[blk*blockBytes:(blk+1)*blockBytes], v.b[src:src+blockBytes])
	}
	return r
}

// TableLookupBytes permutes the bytes of each 128-bit block of v: result
// byte i of a block is the byte of the same block selected by the low 4
// bits of idx byte i. Indices outside [0,16) behave as their low 4 bits.
func TableLookupBytes[T lane.Lanes](v Vec[T], idx Vec[uint8]) Vec[T] {
	var r Vec[T]
	for blk := range numBlocks {
		base := blk * blockBytes
		for i := range blockBytes {
			r.b[base+i] = v.b[base+int(idx.b[base+i]&15)]
		}
	}
	return r
}

// TableLookupBytesOr0 is TableLookupBytes except index bytes with the high
// bit set select zero instead.
func TableLookupBytesOr0[T lane.Lanes](v Vec[T], idx Vec[uint8]) Vec[T] {
	var r Vec[T]
	for blk := range numBlocks {
		base := blk * blockBytes
		for i := range blockBytes {
			if idx.b[base+i]&0x80 == 0 {
				r.b[base+i] = v.b[base+int(idx.b[base+i]&15)]
			}
			// else: leave as zero
		}
	}
	return r
}

// SetTableIndices builds lane indices for TableLookupLanes from a slice
// holding at least NumLanes entries in [0, NumLanes).
func SetTableIndices[T lane.Lanes](idx []int) Indices[T] {
	n := NumLanes[T]()
	_ = idx[n-1]
	size := lane.SizeOf[T]()
	var ix Indices[T]
	for i := range n {
		putLaneBits(&ix.b, size, i, uint64(idx[i]))
	}
	return ix
}

// IndicesFromVec reuses a vector's lanes as permute indices. The values
// must be in [0, NumLanes).
func IndicesFromVec[T lane.Lanes](v Vec[T]) Indices[T] {
	return Indices[T]{b: v.b}
}

// TableLookupLanes returns lanes of v selected by idx across the whole
// register: result lane i is v's lane idx[i].
// For example: v=[a,b,c,d,...], idx=[3,0,3,1,...] -> [d,a,d,b,...]
func TableLookupLanes[T lane.Lanes](v Vec[T], idx Indices[T]) Vec[T] {
	assertTableIndices(idx)
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	var r Vec[T]
	for i := range n {
		src := int(getLaneBits(&idx.b, size, i)) % n
		putLane(&r.b, i, getLane[T](&v.b, src))
	}
	return r
}
