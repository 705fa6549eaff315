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

// This file provides lane type conversions. Promote reads half the input
// lanes and doubles their width; Demote halves the width with signed or
// unsigned saturation and leaves the upper half of the result zero;
// Truncate drops high bits instead of saturating. The DemoteTwo forms
// interleave their operands per 128-bit block, the hardware pack order.
// Half-float lanes travel as uint16 bit patterns (see lane.Float16).

// PromoteLowerI8ToI16 sign-extends the lower 32 lanes.
func PromoteLowerI8ToI16(v Vec[int8]) Vec[int16] {
	var r Vec[int16]
	for i := range 32 {
		putLane(&r.b, i, int16(getLane[int8](&v.b, i)))
	}
	return r
}

// PromoteUpperI8ToI16 sign-extends the upper 32 lanes.
func PromoteUpperI8ToI16(v Vec[int8]) Vec[int16] {
	var r Vec[int16]
	for i := range 32 {
		putLane(&r.b, i, int16(getLane[int8](&v.b, 32+i)))
	}
	return r
}

// PromoteLowerU8ToU16 zero-extends the lower 32 lanes.
func PromoteLowerU8ToU16(v Vec[uint8]) Vec[uint16] {
	var r Vec[uint16]
	for i := range 32 {
		putLane(&r.b, i, uint16(getLane[uint8](&v.b, i)))
	}
	return r
}

// PromoteUpperU8ToU16 zero-extends the upper 32 lanes.
func PromoteUpperU8ToU16(v Vec[uint8]) Vec[uint16] {
	var r Vec[uint16]
	for i := range 32 {
		putLane(&r.b, i, uint16(getLane[uint8](&v.b, 32+i)))
	}
	return r
}

// PromoteLowerU8ToU32 zero-extends the lowest 16 lanes across two width
// doublings.
func PromoteLowerU8ToU32(v Vec[uint8]) Vec[uint32] {
	var r Vec[uint32]
	for i := range 16 {
		putLane(&r.b, i, uint32(getLane[uint8](&v.b, i)))
	}
	return r
}

// PromoteUpperU8ToU32 zero-extends lanes 16..31, the 16 lanes above
// those PromoteLowerU8ToU32 reads.
func PromoteUpperU8ToU32(v Vec[uint8]) Vec[uint32] {
	var r Vec[uint32]
	for i := range 16 {
		putLane(&r.b, i, uint32(getLane[uint8](&v.b, 16+i)))
	}
	return r
}

// PromoteLowerI16ToI32 sign-extends the lower 16 lanes.
func PromoteLowerI16ToI32(v Vec[int16]) Vec[int32] {
	var r Vec[int32]
	for i := range 16 {
		putLane(&r.b, i, int32(getLane[int16](&v.b, i)))
	}
	return r
}

// PromoteUpperI16ToI32 sign-extends the upper 16 lanes.
func PromoteUpperI16ToI32(v Vec[int16]) Vec[int32] {
	var r Vec[int32]
	for i := range 16 {
		putLane(&r.b, i, int32(getLane[int16](&v.b, 16+i)))
	}
	return r
}

// PromoteLowerU16ToU32 zero-extends the lower 16 lanes.
func PromoteLowerU16ToU32(v Vec[uint16]) Vec[uint32] {
	var r Vec[uint32]
	for i := range 16 {
		putLane(&r.b, i, uint32(getLane[uint16](&v.b, i)))
	}
	return r
}

// PromoteUpperU16ToU32 zero-extends the upper 16 lanes.
func PromoteUpperU16ToU32(v Vec[uint16]) Vec[uint32] {
	var r Vec[uint32]
	for i := range 16 {
		putLane(&r.b, i, uint32(getLane[uint16](&v.b, 16+i)))
	}
	return r
}

// PromoteLowerI32ToI64 sign-extends the lower 8 lanes.
func PromoteLowerI32ToI64(v Vec[int32]) Vec[int64] {
	var r Vec[int64]
	for i := range 8 {
		putLane(&r.b, i, int64(getLane[int32](&v.b, i)))
	}
	return r
}

// PromoteUpperI32ToI64 sign-extends the upper 8 lanes.
func PromoteUpperI32ToI64(v Vec[int32]) Vec[int64] {
	var r Vec[int64]
	for i := range 8 {
		putLane(&r.b, i, int64(getLane[int32](&v.b, 8+i)))
	}
	return r
}

// PromoteLowerU32ToU64 zero-extends the lower 8 lanes.
func PromoteLowerU32ToU64(v Vec[uint32]) Vec[uint64] {
	var r Vec[uint64]
	for i := range 8 {
		putLane(&r.b, i, uint64(getLane[uint32](&v.b, i)))
	}
	return r
}

// PromoteUpperU32ToU64 zero-extends the upper 8 lanes.
func PromoteUpperU32ToU64(v Vec[uint32]) Vec[uint64] {
	var r Vec[uint64]
	for i := range 8 {
		putLane(&r.b, i, uint64(getLane[uint32](&v.b, 8+i)))
	}
	return r
}

// PromoteLowerF32ToF64 widens the lower 8 lanes.
func PromoteLowerF32ToF64(v Vec[float32]) Vec[float64] {
	var r Vec[float64]
	for i := range 8 {
		putLane(&r.b, i, float64(getLane[float32](&v.b, i)))
	}
	return r
}

// PromoteUpperF32ToF64 widens the upper 8 lanes.
func PromoteUpperF32ToF64(v Vec[float32]) Vec[float64] {
	var r Vec[float64]
	for i := range 8 {
		putLane(&r.b, i, float64(getLane[float32](&v.b, 8+i)))
	}
	return r
}

// PromoteLowerI32ToF64 converts the lower 8 lanes exactly.
func PromoteLowerI32ToF64(v Vec[int32]) Vec[float64] {
	var r Vec[float64]
	for i := range 8 {
		putLane(&r.b, i, float64(getLane[int32](&v.b, i)))
	}
	return r
}

// PromoteUpperI32ToF64 converts the upper 8 lanes exactly.
func PromoteUpperI32ToF64(v Vec[int32]) Vec[float64] {
	var r Vec[float64]
	for i := range 8 {
		putLane(&r.b, i, float64(getLane[int32](&v.b, 8+i)))
	}
	return r
}

// PromoteLowerF16ToF32 widens the lower 16 half-float lanes. The input
// lanes hold Float16 bit patterns.
func PromoteLowerF16ToF32(v Vec[uint16]) Vec[float32] {
	var r Vec[float32]
	for i := range 16 {
		f := lane.Float16ToFloat32(lane.Float16(getLane[uint16](&v.b, i)))
		putLane(&r.b, i, f)
	}
	return r
}

// PromoteUpperF16ToF32 widens the upper 16 half-float lanes.
func PromoteUpperF16ToF32(v Vec[uint16]) Vec[float32] {
	var r Vec[float32]
	for i := range 16 {
		f := lane.Float16ToFloat32(lane.Float16(getLane[uint16](&v.b, 16+i)))
		putLane(&r.b, i, f)
	}
	return r
}

// DemoteI16ToI8 narrows with signed saturation into the lower 32 lanes;
// the upper 32 lanes are zero.
// For example: [300, -200, 5, ...] -> [127, -128, 5, ...]
func DemoteI16ToI8(v Vec[int16]) Vec[int8] {
	var r Vec[int8]
	for i := range 32 {
		putLane(&r.b, i, lane.DemoteI16ToI8(getLane[int16](&v.b, i)))
	}
	return r
}

// DemoteI16ToU8 narrows with unsigned saturation into the lower 32 lanes.
func DemoteI16ToU8(v Vec[int16]) Vec[uint8] {
	var r Vec[uint8]
	for i := range 32 {
		putLane(&r.b, i, lane.DemoteI16ToU8(getLane[int16](&v.b, i)))
	}
	return r
}

// DemoteU16ToU8 narrows with unsigned saturation into the lower 32 lanes.
func DemoteU16ToU8(v Vec[uint16]) Vec[uint8] {
	var r Vec[uint8]
	for i := range 32 {
		putLane(&r.b, i, lane.DemoteU16ToU8(getLane[uint16](&v.b, i)))
	}
	return r
}

// DemoteI32ToI16 narrows with signed saturation into the lower 16 lanes.
func DemoteI32ToI16(v Vec[int32]) Vec[int16] {
	var r Vec[int16]
	for i := range 16 {
		putLane(&r.b, i, lane.DemoteI32ToI16(getLane[int32](&v.b, i)))
	}
	return r
}

// DemoteI32ToU16 narrows with unsigned saturation into the lower 16 lanes.
func DemoteI32ToU16(v Vec[int32]) Vec[uint16] {
	var r Vec[uint16]
	for i := range 16 {
		putLane(&r.b, i, lane.DemoteI32ToU16(getLane[int32](&v.b, i)))
	}
	return r
}

// DemoteU32ToU16 narrows with unsigned saturation into the lower 16 lanes.
func DemoteU32ToU16(v Vec[uint32]) Vec[uint16] {
	var r Vec[uint16]
	for i := range 16 {
		putLane(&r.b, i, lane.DemoteU32ToU16(getLane[uint32](&v.b, i)))
	}
	return r
}

// DemoteI64ToI32 narrows with signed saturation into the lower 8 lanes.
func DemoteI64ToI32(v Vec[int64]) Vec[int32] {
	var r Vec[int32]
	for i := range 8 {
		putLane(&r.b, i, lane.DemoteI64ToI32(getLane[int64](&v.b, i)))
	}
	return r
}

// DemoteU64ToU32 narrows with unsigned saturation into the lower 8 lanes.
func DemoteU64ToU32(v Vec[uint64]) Vec[uint32] {
	var r Vec[uint32]
	for i := range 8 {
		putLane(&r.b, i, lane.DemoteU64ToU32(getLane[uint64](&v.b, i)))
	}
	return r
}

// DemoteF64ToF32 narrows the 8 lanes into the lower 8 result lanes,
// rounding to nearest even.
func DemoteF64ToF32(v Vec[float64]) Vec[float32] {
	var r Vec[float32]
	for i := range 8 {
		putLane(&r.b, i, float32(getLane[float64](&v.b, i)))
	}
	return r
}

// DemoteF64ToI32 truncates toward zero with saturation into the lower 8
// lanes. NaN converts to 0.
func DemoteF64ToI32(v Vec[float64]) Vec[int32] {
	var r Vec[int32]
	for i := range 8 {
		putLane(&r.b, i, lane.ConvertF64ToI32(getLane[float64](&v.b, i)))
	}
	return r
}

// DemoteF32ToF16 narrows the 16 lanes to half-float bit patterns in the
// lower 16 result lanes, rounding to nearest even.
func DemoteF32ToF16(v Vec[float32]) Vec[uint16] {
	var r Vec[uint16]
	for i := range 16 {
		h := lane.Float32ToFloat16(getLane[float32](&v.b, i))
		putLane(&r.b, i, uint16(h))
	}
	return r
}

// DemoteTwoI16ToI8 narrows a and b with signed saturation, interleaved
// per 128-bit block: each result block holds a's block then b's block.
func DemoteTwoI16ToI8(a, b Vec[int16]) Vec[int8] {
	var r Vec[int8]
	for blk := range numBlocks {
		for i := range 8 {
			putLane(&r.b, 16*blk+i, lane.DemoteI16ToI8(getLane[int16](&a.b, 8*blk+i)))
			putLane(&r.b, 16*blk+8+i, lane.DemoteI16ToI8(getLane[int16](&b.b, 8*blk+i)))
		}
	}
	return r
}

// DemoteTwoI16ToU8 narrows per block with unsigned saturation.
func DemoteTwoI16ToU8(a, b Vec[int16]) Vec[uint8] {
	var r Vec[uint8]
	for blk := range numBlocks {
		for i := range 8 {
			putLane(&r.b, 16*blk+i, lane.DemoteI16ToU8(getLane[int16](&a.b, 8*blk+i)))
			putLane(&r.b, 16*blk+8+i, lane.DemoteI16ToU8(getLane[int16](&b.b, 8*blk+i)))
		}
	}
	return r
}

// DemoteTwoU16ToU8 narrows per block with unsigned saturation.
func DemoteTwoU16ToU8(a, b Vec[uint16]) Vec[uint8] {
	var r Vec[uint8]
	for blk := range numBlocks {
		for i := range 8 {
			putLane(&r.b, 16*blk+i, lane.DemoteU16ToU8(getLane[uint16](&a.b, 8*blk+i)))
			putLane(&r.b, 16*blk+8+i, lane.DemoteU16ToU8(getLane[uint16](&b.b, 8*blk+i)))
		}
	}
	return r
}

// DemoteTwoI32ToI16 narrows per block with signed saturation.
func DemoteTwoI32ToI16(a, b Vec[int32]) Vec[int16] {
	var r Vec[int16]
	for blk := range numBlocks {
		for i := range 4 {
			putLane(&r.b, 8*blk+i, lane.DemoteI32ToI16(getLane[int32](&a.b, 4*blk+i)))
			putLane(&r.b, 8*blk+4+i, lane.DemoteI32ToI16(getLane[int32](&b.b, 4*blk+i)))
		}
	}
	return r
}

// DemoteTwoU32ToU16 narrows per block with unsigned saturation.
func DemoteTwoU32ToU16(a, b Vec[uint32]) Vec[uint16] {
	var r Vec[uint16]
	for blk := range numBlocks {
		for i := range 4 {
			putLane(&r.b, 8*blk+i, lane.DemoteU32ToU16(getLane[uint32](&a.b, 4*blk+i)))
			putLane(&r.b, 8*blk+4+i, lane.DemoteU32ToU16(getLane[uint32](&b.b, 4*blk+i)))
		}
	}
	return r
}

// ConvertF32ToI32 truncates each lane toward zero, saturating to the
// int32 range. NaN converts to 0.
// For example: [1.9, -2.7, 3e10, ...] -> [1, -2, 2147483647, ...]
func ConvertF32ToI32(v Vec[float32]) Vec[int32] {
	var r Vec[int32]
	for i := range 16 {
		putLane(&r.b, i, lane.ConvertF32ToI32(getLane[float32](&v.b, i)))
	}
	return r
}

// ConvertI32ToF32 converts each lane, rounding to nearest even.
func ConvertI32ToF32(v Vec[int32]) Vec[float32] {
	var r Vec[float32]
	for i := range 16 {
		putLane(&r.b, i, float32(getLane[int32](&v.b, i)))
	}
	return r
}

// ConvertU32ToF32 converts each lane, rounding to nearest even.
func ConvertU32ToF32(v Vec[uint32]) Vec[float32] {
	var r Vec[float32]
	for i := range 16 {
		putLane(&r.b, i, float32(getLane[uint32](&v.b, i)))
	}
	return r
}

// ConvertF64ToI64 truncates each lane toward zero, saturating to the
// int64 range. NaN converts to 0.
func ConvertF64ToI64(v Vec[float64]) Vec[int64] {
	var r Vec[int64]
	for i := range 8 {
		putLane(&r.b, i, lane.ConvertF64ToI64(getLane[float64](&v.b, i)))
	}
	return r
}

// ConvertI64ToF64 converts each lane, rounding to nearest even.
func ConvertI64ToF64(v Vec[int64]) Vec[float64] {
	var r Vec[float64]
	for i := range 8 {
		putLane(&r.b, i, float64(getLane[int64](&v.b, i)))
	}
	return r
}

// TruncateU16ToU8 keeps the low byte of each lane in the lower 32 result
// lanes; the upper 32 lanes are zero.
func TruncateU16ToU8(v Vec[uint16]) Vec[uint8] {
	var r Vec[uint8]
	for i := range 32 {
		putLane(&r.b, i, uint8(getLane[uint16](&v.b, i)))
	}
	return r
}

// TruncateU32ToU16 keeps the low 16 bits of each lane.
func TruncateU32ToU16(v Vec[uint32]) Vec[uint16] {
	var r Vec[uint16]
	for i := range 16 {
		putLane(&r.b, i, uint16(getLane[uint32](&v.b, i)))
	}
	return r
}

// TruncateU32ToU8 keeps the low byte of each lane.
func TruncateU32ToU8(v Vec[uint32]) Vec[uint8] {
	var r Vec[uint8]
	for i := range 16 {
		putLane(&r.b, i, uint8(getLane[uint32](&v.b, i)))
	}
	return r
}

// TruncateU64ToU32 keeps the low 32 bits of each lane.
func TruncateU64ToU32(v Vec[uint64]) Vec[uint32] {
	var r Vec[uint32]
	for i := range 8 {
		putLane(&r.b, i, uint32(getLane[uint64](&v.b, i)))
	}
	return r
}

// TruncateU64ToU16 keeps the low 16 bits of each lane.
func TruncateU64ToU16(v Vec[uint64]) Vec[uint16] {
	var r Vec[uint16]
	for i := range 8 {
		putLane(&r.b, i, uint16(getLane[uint64](&v.b, i)))
	}
	return r
}

// TruncateU64ToU8 keeps the low byte of each lane.
func TruncateU64ToU8(v Vec[uint64]) Vec[uint8] {
	var r Vec[uint8]
	for i := range 8 {
		putLane(&r.b, i, uint8(getLane[uint64](&v.b, i)))
	}
	return r
}
