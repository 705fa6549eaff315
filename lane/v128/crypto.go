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

import "github.com/govec/go-lanes/lane"

// This file provides the AES round and carryless multiply operations
// over the single 128-bit block of a vector.

// AESRound applies one AES encryption round (SubBytes, ShiftRows,
// MixColumns, AddRoundKey) to the block.
func AESRound(state, roundKey Vec[uint8]) Vec[uint8] {
	return Vec[uint8]{b: lane.AESRoundBlock(&state.b, &roundKey.b)}
}

// AESLastRound applies the final AES encryption round, which skips
// MixColumns.
func AESLastRound(state, roundKey Vec[uint8]) Vec[uint8] {
	return Vec[uint8]{b: lane.AESLastRoundBlock(&state.b, &roundKey.b)}
}

// CLMulLower returns the 128-bit carryless product of lane 0 of a and
// lane 0 of b, as {low, high} lanes.
func CLMulLower(a, b Vec[uint64]) Vec[uint64] {
	lo, hi := lane.CLMul64(getLane[uint64](&a.b, 0), getLane[uint64](&b.b, 0))
	var r Vec[uint64]
	putLane(&r.b, 0, lo)
	putLane(&r.b, 1, hi)
	return r
}

// CLMulUpper returns the 128-bit carryless product of lane 1 of a and
// lane 1 of b.
func CLMulUpper(a, b Vec[uint64]) Vec[uint64] {
	lo, hi := lane.CLMul64(getLane[uint64](&a.b, 1), getLane[uint64](&b.b, 1))
	var r Vec[uint64]
	putLane(&r.b, 0, lo)
	putLane(&r.b, 1, hi)
	return r
}
