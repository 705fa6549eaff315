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

import "math"

// Float16 is an IEEE 754 half-precision (binary16) value stored as its bit
// pattern. It is a storage format: vectors hold Float16 lanes as uint16 bit
// patterns and the backends provide promote/demote to float32 rather than
// half-precision arithmetic.
//
// Layout: sign (1 bit) | exponent (5 bits, bias 15) | mantissa (10 bits).
type Float16 uint16

// Special Float16 bit patterns.
const (
	Float16Zero     Float16 = 0x0000
	Float16NegZero  Float16 = 0x8000
	Float16One      Float16 = 0x3C00
	Float16MaxValue Float16 = 0x7BFF // 65504, largest finite value
	Float16MinValue Float16 = 0x0001 // smallest subnormal (~5.96e-8)
	Float16Inf      Float16 = 0x7C00
	Float16NegInf   Float16 = 0xFC00
	Float16NaN      Float16 = 0x7E00 // canonical quiet NaN
)

// Float16ToFloat32 converts one half-precision value to float32.
// Zero, subnormal, infinity and NaN inputs are all handled; the conversion
// is exact because every Float16 is representable in float32.
func Float16ToFloat32(h Float16) float32 {
	bits := uint32(h)
	sign := bits >> 15
	exp := (bits >> 10) & 0x1F
	mant := bits & 0x3FF

	switch {
	case exp == 0:
		if mant == 0 {
			return math.Float32frombits(sign << 31)
		}
		// Subnormal: shift the mantissa up until the implicit 1 appears,
		// tracking how far the exponent moves.
		exp = 1
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3FF
		exp = uint32(int32(exp) + 127 - 15)
	case exp == 31:
		if mant == 0 {
			return math.Float32frombits((sign << 31) | 0x7F800000)
		}
		// NaN: keep the sign and payload, force the quiet bit.
		return math.Float32frombits((sign << 31) | 0x7FC00000 | (mant << 13))
	default:
		exp = exp + 127 - 15
	}

	return math.Float32frombits((sign << 31) | (exp << 23) | (mant << 13))
}

// Float32ToFloat16 converts a float32 to half precision with round to
// nearest even. Values beyond the Float16 range become infinity; values too
// small for a subnormal become zero.
func Float32ToFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int((bits>>23)&0xFF) - 127 + 15
	mant := bits & 0x7FFFFF

	switch {
	case exp <= 0:
		if exp < -10 {
			// Below the smallest subnormal.
			return Float16(sign)
		}
		// Subnormal result: restore the implicit 1, then shift into place.
		mant = (mant | 0x800000) >> uint(1-exp)
		if mant&0x1000 != 0 && mant&0x2FFF != 0 {
			mant += 0x2000
		}
		return Float16(sign | uint16(mant>>13))
	case exp == 0xFF-127+15:
		if mant != 0 {
			return Float16(sign | 0x7E00 | uint16(mant>>13))
		}
		return Float16(sign | 0x7C00)
	case exp >= 31:
		return Float16(sign | 0x7C00)
	}

	// Round to nearest even: bit 12 is the round bit, bit 13 the lowest
	// kept bit, bits 0-11 the sticky bits.
	if mant&0x1000 != 0 && mant&0x2FFF != 0 {
		mant += 0x2000
		if mant&0x800000 != 0 {
			mant = 0
			exp++
			if exp >= 31 {
				return Float16(sign | 0x7C00)
			}
		}
	}

	return Float16(sign | uint16(exp<<10) | uint16(mant>>13))
}

// IsNaN reports whether h is a NaN value.
func (h Float16) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x3FF != 0
}

// IsInf reports whether h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&0x7FFF == 0x7C00
}

// Float32 converts h to float32.
func (h Float16) Float32() float32 {
	return Float16ToFloat32(h)
}

// Bits returns the raw bit pattern.
func (h Float16) Bits() uint16 {
	return uint16(h)
}
