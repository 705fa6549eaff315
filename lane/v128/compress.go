// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package v128

//go:generate go run ../../cmd/lanegen -width v128 -out .

import (
	"math/bits"

	"github.com/govec/go-lanes/lane"
)

// This file provides mask-driven packing and its inverse. Compress moves
// selected lanes to the front and the rest after them, both groups in
// their original order, so the result is a permutation of the input. The
// lane moves for 16-bit and 32-bit lanes come from tables emitted by
// lanegen; 64-bit lanes need only a conditional swap.

// Compress moves lanes selected by m to the front, with the unselected
// lanes following, both in their original order.
// For example: v=[10,20,30,40], m=[T,F,T,F] -> [10,30,20,40]
func Compress[T lane.Lanes](v Vec[T], m Mask[T]) Vec[T] {
	switch lane.SizeOf[T]() {
	case 1:
		return compress8(v, m)
	case 2:
		return compress16(v, m)
	case 4:
		return compress32(v, m)
	default:
		return compress64(v, m)
	}
}

// CompressNot moves lanes not selected by m to the front; equivalent to
// Compress with the complemented mask.
func CompressNot[T lane.Lanes](v Vec[T], m Mask[T]) Vec[T] {
	return Compress(v, m.Not())
}

// CompressBits is Compress with the mask given as packed bits, as
// written by StoreMaskBits.
func CompressBits[T lane.Lanes](v Vec[T], maskBits []byte) Vec[T] {
	return Compress(v, LoadMaskBits[T](maskBits))
}

// CompressStore stores only the selected lanes of v to dst, in their
// original order, and returns how many were written. Elements of dst
// past that count are left untouched.
func CompressStore[T lane.Lanes](v Vec[T], m Mask[T], dst []T) int {
	c := Compress(v, m)
	count := CountTrue(m)
	for i := range count {
		dst[i] = getLane[T](&c.b, i)
	}
	return count
}

// CompressBlendedStore is CompressStore: the store is blended in the
// sense that elements past the returned count keep their prior values.
func CompressBlendedStore[T lane.Lanes](v Vec[T], m Mask[T], dst []T) int {
	return CompressStore(v, m, dst)
}

// Expand distributes the leading lanes of v to the positions selected by
// m, in order. Unselected lanes are zero; Expand inverts Compress on the
// selected lanes.
// For example: v=[1,2,3,4], m=[F,T,F,T] -> [0,1,0,2]
func Expand[T lane.Lanes](v Vec[T], m Mask[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	k := 0
	for i := range n {
		if maskLane(&m, i) {
			putLane(&r.b, i, getLane[T](&v.b, k))
			k++
		}
		// else: leave as zero
	}
	return r
}

// LoadExpand loads CountTrue lanes from src and distributes them to the
// positions selected by m. src must hold at least NumLanes elements.
func LoadExpand[T lane.Lanes](m Mask[T], src []T) Vec[T] {
	return Expand(LoadU(src), m)
}

// Two halves of eight bytes each, packed with the 16-bit table at byte
// granularity, then spliced so the whole vector stays a partition.
func compress8[T lane.Lanes](v Vec[T], m Mask[T]) Vec[T] {
	maskBits := bitsFromMask(&m)
	loBits := maskBits & 0xff
	hiBits := maskBits >> 8
	rowL := compress16Indices[8*loBits : 8*loBits+8]
	rowH := compress16Indices[8*hiBits : 8*hiBits+8]
	var lo, hi [8]byte
	for j := range 8 {
		lo[j] = v.b[rowL[j]>>1]
		hi[j] = v.b[8+(rowH[j]>>1)]
	}
	cL := bits.OnesCount64(loBits)
	cH := bits.OnesCount64(hiBits)
	var r Vec[T]
	k := 0
	k += copy(r.b[k:], lo[:cL])
	k += copy(r.b[k:], hi[:cH])
	k += copy(r.b[k:], lo[cL:])
	copy(r.b[k:], hi[cH:])
	return r
}

func compress16[T lane.Lanes](v Vec[T], m Mask[T]) Vec[T] {
	maskBits := bitsFromMask(&m)
	row := compress16Indices[8*maskBits : 8*maskBits+8]
	var idx Vec[uint8]
	for j := range 8 {
		idx.b[2*j] = row[j]
		idx.b[2*j+1] = row[j] + 1
	}
	return TableLookupBytes(v, idx)
}

func compress32[T lane.Lanes](v Vec[T], m Mask[T]) Vec[T] {
	maskBits := bitsFromMask(&m)
	row := compress32Indices[16*maskBits : 16*maskBits+16]
	var idx Vec[uint8]
	copy(idx.b[:], row)
	return TableLookupBytes(v, idx)
}

// Swap the two lanes iff lane 1 is selected and lane 0 is not.
func compress64[T lane.Lanes](v Vec[T], m Mask[T]) Vec[T] {
	mv := VecFromMask(m)
	maskL := DupEven(mv)
	maskH := DupOdd(mv)
	swap := AndNot(maskL, maskH)
	return IfVecThenElse(swap, Reverse2(v), v)
}
