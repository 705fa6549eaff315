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

import (
	"math/bits"

	"github.com/govec/go-lanes/lane"
)

// This file provides per-lane bit counting.

// PopulationCount returns the number of set bits in each lane.
// For example: [0b1011, 0b0000, ...] -> [3, 0, ...]
func PopulationCount[T lane.Integers](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	var r Vec[T]
	for i := range n {
		x := getLaneBits(&v.b, size, i)
		putLaneBits(&r.b, size, i, uint64(bits.OnesCount64(x)))
	}
	return r
}

// LeadingZeroCount returns the number of leading zero bits in each lane.
// Zero lanes yield the lane width in bits.
func LeadingZeroCount[T lane.Integers](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	width := 8 * size
	var r Vec[T]
	for i := range n {
		x := getLaneBits(&v.b, size, i)
		lz := bits.LeadingZeros64(x) - (64 - width)
		if x == 0 {
			lz = width
		}
		putLaneBits(&r.b, size, i, uint64(lz))
	}
	return r
}

// TrailingZeroCount returns the number of trailing zero bits in each
// lane. Zero lanes yield the lane width in bits.
func TrailingZeroCount[T lane.Integers](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	width := 8 * size
	var r Vec[T]
	for i := range n {
		x := getLaneBits(&v.b, size, i)
		tz := bits.TrailingZeros64(x)
		if x == 0 {
			tz = width
		}
		putLaneBits(&r.b, size, i, uint64(tz))
	}
	return r
}

// HighestSetBitIndex returns the bit index of the highest set bit in
// each lane. Zero lanes yield the all-ones pattern (-1 in signed terms).
// For example: [0b1000, 0b0001, ...] -> [3, 0, ...]
func HighestSetBitIndex[T lane.Integers](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	size := lane.SizeOf[T]()
	width := 8 * size
	var r Vec[T]
	for i := range n {
		x := getLaneBits(&v.b, size, i)
		lz := bits.LeadingZeros64(x) - (64 - width)
		putLaneBits(&r.b, size, i, uint64(int64(width-1-lz)))
	}
	return r
}
