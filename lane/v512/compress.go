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

package v512

//go:generate go run ../../cmd/lanegen -width v512 -out .

import "github.com/govec/go-lanes/lane"

// This file provides mask-driven packing and its inverse. Compress moves
// selected lanes to the front in their original order. 64-bit lanes use
// the packed-nibble permutation table from lanegen, so the unselected
// lanes follow the selected ones; narrower lanes zero-fill the tail,
// matching the hardware compaction this backend models.

// Compress moves lanes selected by m to the front in their original
// order. For 64-bit lanes the unselected lanes follow, also in order;
// for narrower lanes the tail is zero.
// For example (32-bit): v=[10,20,30,40,...], m=[T,F,T,F,...] -> [10,30,0,...]
func Compress[T lane.Lanes](v Vec[T], m Mask[T]) Vec[T] {
	if lane.SizeOf[T]() == 8 {
		return compress64(v, m)
	}
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	var r Vec[T]
	k := 0
	for i := range n {
		if maskLane(&m, i) {
			putLaneBits(&r.b, size, k, getLaneBits(&v.b, size, i))
			k++
		}
		// else: leave as zero
	}
	return r
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
// For example: v=[1,2,3,4,...], m=[F,T,F,T,...] -> [0,1,0,2,...]
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

// Permute the eight lanes by the nibble-packed row for this mask: the
// result is a partition of the input.
func compress64[T lane.Lanes](v Vec[T], m Mask[T]) Vec[T] {
	packed := compress64Packed[m.bits]
	var idx Indices[T]
	for i := range 8 {
		putLaneBits(&idx.b, 8, i, packed>>(4*i)&0xF)
	}
	return TableLookupLanes(v, idx)
}
