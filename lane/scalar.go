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

package lane

import "math/bits"

// This file provides the scalar kernels behind the per-lane vector
// operations. Both backends loop over their registers and delegate the
// element math here so the two widths cannot drift apart.

// SaturatedAdd returns a + b clamped to the range of T instead of wrapping.
// For example, uint8: 200 + 100 = 255 (not 44).
func SaturatedAdd[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		return T(clampToI8(int32(av) + int32(any(b).(int8))))
	case int16:
		return T(clampToI16(int32(av) + int32(any(b).(int16))))
	case int32:
		return T(clampToI32(int64(av) + int64(any(b).(int32))))
	case int64:
		bv := any(b).(int64)
		sum := av + bv
		// Overflow iff both operands share a sign the sum does not.
		if (av >= 0) == (bv >= 0) && (sum >= 0) != (av >= 0) {
			if av >= 0 {
				maxI64 := int64(1<<63 - 1)
				return T(maxI64)
			}
			minI64 := int64(-1 << 63)
			return T(minI64)
		}
		return T(sum)
	case uint8:
		return T(clampToU8(uint32(av) + uint32(any(b).(uint8))))
	case uint16:
		return T(clampToU16(uint32(av) + uint32(any(b).(uint16))))
	case uint32:
		return T(clampToU32(uint64(av) + uint64(any(b).(uint32))))
	default:
		av64 := any(a).(uint64)
		bv64 := any(b).(uint64)
		sum := av64 + bv64
		if sum < av64 {
			maxU64 := uint64(1<<64 - 1)
			return T(maxU64)
		}
		return T(sum)
	}
}

// SaturatedSub returns a - b clamped to the range of T instead of wrapping.
// For example, uint8: 5 - 9 = 0 (not 252).
func SaturatedSub[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		return T(clampToI8(int32(av) - int32(any(b).(int8))))
	case int16:
		return T(clampToI16(int32(av) - int32(any(b).(int16))))
	case int32:
		return T(clampToI32(int64(av) - int64(any(b).(int32))))
	case int64:
		bv := any(b).(int64)
		diff := av - bv
		if (av >= 0) != (bv >= 0) && (diff >= 0) != (av >= 0) {
			if av >= 0 {
				maxI64 := int64(1<<63 - 1)
				return T(maxI64)
			}
			minI64 := int64(-1 << 63)
			return T(minI64)
		}
		return T(diff)
	case uint8:
		bv := any(b).(uint8)
		if bv > av {
			return T(uint8(0))
		}
		return T(av - bv)
	case uint16:
		bv := any(b).(uint16)
		if bv > av {
			return T(uint16(0))
		}
		return T(av - bv)
	case uint32:
		bv := any(b).(uint32)
		if bv > av {
			return T(uint32(0))
		}
		return T(av - bv)
	default:
		av64 := any(a).(uint64)
		bv64 := any(b).(uint64)
		if bv64 > av64 {
			return T(uint64(0))
		}
		return T(av64 - bv64)
	}
}

// AverageRound returns (a + b + 1) / 2 without intermediate overflow.
func AverageRound[T UnsignedInts](a, b T) T {
	return (a >> 1) + (b >> 1) + ((a | b) & 1)
}

// AbsDiff returns |a - b|. For unsigned types this is max(a,b) - min(a,b).
func AbsDiff[T Lanes](a, b T) T {
	if a >= b {
		return a - b
	}
	return b - a
}

// MulHigh returns the upper half of the double-width product a * b.
func MulHigh[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		return T(int8(int16(av) * int16(any(b).(int8)) >> 8))
	case int16:
		return T(int16(int32(av) * int32(any(b).(int16)) >> 16))
	case int32:
		return T(int32(int64(av) * int64(any(b).(int32)) >> 32))
	case int64:
		bv := any(b).(int64)
		hi, _ := bits.Mul64(uint64(av), uint64(bv))
		// Adjust the unsigned product for negative operands.
		if av < 0 {
			hi -= uint64(bv)
		}
		if bv < 0 {
			hi -= uint64(av)
		}
		return T(int64(hi))
	case uint8:
		return T(uint8(uint16(av) * uint16(any(b).(uint8)) >> 8))
	case uint16:
		return T(uint16(uint32(av) * uint32(any(b).(uint16)) >> 16))
	case uint32:
		return T(uint32(uint64(av) * uint64(any(b).(uint32)) >> 32))
	default:
		hi, _ := bits.Mul64(any(a).(uint64), any(b).(uint64))
		return T(hi)
	}
}

func clampToI8(v int32) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}

func clampToI16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

func clampToI32(v int64) int32 {
	if v > 2147483647 {
		return 2147483647
	}
	if v < -2147483648 {
		return -2147483648
	}
	return int32(v)
}

func clampToU8(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampToU16(v uint32) uint16 {
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

func clampToU32(v uint64) uint32 {
	if v > 4294967295 {
		return 4294967295
	}
	return uint32(v)
}

// DemoteI16ToI8 narrows with signed saturation.
func DemoteI16ToI8(v int16) int8 { return clampToI8(int32(v)) }

// DemoteI16ToU8 narrows with unsigned saturation; negatives become 0.
func DemoteI16ToU8(v int16) uint8 {
	if v < 0 {
		return 0
	}
	return clampToU8(uint32(v))
}

// DemoteI32ToI16 narrows with signed saturation.
func DemoteI32ToI16(v int32) int16 { return clampToI16(v) }

// DemoteI32ToU16 narrows with unsigned saturation; negatives become 0.
func DemoteI32ToU16(v int32) uint16 {
	if v < 0 {
		return 0
	}
	return clampToU16(uint32(v))
}

// DemoteI64ToI32 narrows with signed saturation.
func DemoteI64ToI32(v int64) int32 { return clampToI32(v) }

// DemoteU16ToU8 narrows with unsigned saturation.
func DemoteU16ToU8(v uint16) uint8 { return clampToU8(uint32(v)) }

// DemoteU32ToU16 narrows with unsigned saturation.
func DemoteU32ToU16(v uint32) uint16 { return clampToU16(v) }

// DemoteU64ToU32 narrows with unsigned saturation.
func DemoteU64ToU32(v uint64) uint32 { return clampToU32(v) }
