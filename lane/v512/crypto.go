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

import "github.com/govec/go-lanes/lane"

// This file provides the AES round and carryless multiply operations,
// applied to each of the four 128-bit blocks independently.

// AESRound applies one AES encryption round (SubBytes, ShiftRows,
// MixColumns, AddRoundKey) to each block.
func AESRound(state, roundKey Vec[uint8]) Vec[uint8] {
	var r Vec[uint8]
	for blk := range numBlocks {
		base := blk * blockBytes
		var s, k [16]byte
		copy(s[:], state.b[base:])
		copy(k[:], roundKey.b[base:])
		out := lane.AESRoundBlock(&s, &k)
		copy(r.b[base:], out[:])
	}
	return r
}

// AESLastRound applies the final AES encryption round, which skips
// MixColumns, to each block.
func AESLastRound(state, roundKey Vec[uint8]) Vec[uint8] {
	var r Vec[uint8]
	for blk := range numBlocks {
		base := blk * blockBytes
		var s, k [16]byte
		copy(s[:], state.b[base:])
		copy(k[:], roundKey.b[base:])
		out := lane.AESLastRoundBlock(&s, &k)
		copy(r.b[base:], out[:])
	}
	return r
}

// CLMulLower returns per block the 128-bit carryless product of the even
// 64-bit lanes of a and b, as {low, high} lane pairs.
func CLMulLower(a, b Vec[uint64]) Vec[uint64] {
	var r Vec[uint64]
	for blk := range numBlocks {
		lo, hi := lane.CLMul64(getLane[uint64](&a.b, 2*blk), getLane[uint64](&b.b, 2*blk))
		putLane(&r.b, 2*blk, lo)
		putLane(&r.b, 2*blk+1, hi)
	}
	return r
}

// CLMulUpper returns per block the 128-bit carryless product of the odd
// 64-bit lanes of a and b.
func CLMulUpper(a, b Vec[uint64]) Vec[uint64] {
	var r Vec[uint64]
	for blk := range numBlocks {
		lo, hi := lane.CLMul64(getLane[uint64](&a.b, 2*blk+1), getLane[uint64](&b.b, 2*blk+1))
		putLane(&r.b, 2*blk, lo)
		putLane(&r.b, 2*blk+1, hi)
	}
	return r
}
