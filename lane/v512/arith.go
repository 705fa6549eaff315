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
	"math"
	"math/bits"

	"github.com/govec/go-lanes/lane"
)

// This file provides elementwise arithmetic. Integer Add/Sub/Mul wrap
// modulo the lane width; the Saturated forms clamp instead. Abs follows
// two's complement, so Abs of the minimum value is itself.

// Add performs element-wise addition. Integers wrap on overflow.
func Add[T lane.Lanes](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, getLane[T](&a.b, i)+getLane[T](&b.b, i))
	}
	return r
}

// Sub performs element-wise subtraction. Integers wrap on overflow.
func Sub[T lane.Lanes](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, getLane[T](&a.b, i)-getLane[T](&b.b, i))
	}
	return r
}

// Neg negates each lane. The minimum signed value negates to itself.
func Neg[T lane.Signed](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, -getLane[T](&v.b, i))
	}
	return r
}

// Abs computes the absolute value of each lane. For signed integers this
// is two's complement: Abs of the minimum value is the minimum value. For
// floats only the sign bit is cleared, so NaN payloads survive.
func Abs[T lane.Signed](v Vec[T]) Vec[T] {
	if lane.IsFloat[T]() {
		size := lane.SizeOf[T]()
		msb := signBit(size)
		for i := range NumLanes[T]() {
			putLaneBits(&v.b, size, i, getLaneBits(&v.b, size, i)&^msb)
		}
		return v
	}
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		x := getLane[T](&v.b, i)
		if x < 0 {
			x = -x
		}
		putLane(&r.b, i, x)
	}
	return r
}

// Min returns the element-wise minimum. If either lane is NaN the result
// lane is that NaN.
func Min[T lane.Lanes](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		av := getLane[T](&a.b, i)
		bv := getLane[T](&b.b, i)
		switch {
		case av != av:
			putLane(&r.b, i, av)
		case bv != bv || bv < av:
			putLane(&r.b, i, bv)
		default:
			putLane(&r.b, i, av)
		}
	}
	return r
}

// Max returns the element-wise maximum. If either lane is NaN the result
// lane is that NaN.
func Max[T lane.Lanes](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		av := getLane[T](&a.b, i)
		bv := getLane[T](&b.b, i)
		switch {
		case av != av:
			putLane(&r.b, i, av)
		case bv != bv || bv > av:
			putLane(&r.b, i, bv)
		default:
			putLane(&r.b, i, av)
		}
	}
	return r
}

// Clamp clamps each lane to the range [lo, hi].
func Clamp[T lane.Lanes](v, lo, hi Vec[T]) Vec[T] {
	return Min(Max(v, lo), hi)
}

// Mul performs element-wise multiplication. Integers keep the low half of
// the product; MulHigh returns the upper half.
func Mul[T lane.Lanes](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, getLane[T](&a.b, i)*getLane[T](&b.b, i))
	}
	return r
}

// MulHigh returns the upper half of the double-width product of each lane.
func MulHigh[T lane.Integers](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, lane.MulHigh(getLane[T](&a.b, i), getLane[T](&b.b, i)))
	}
	return r
}

// Div performs element-wise division.
func Div[T lane.Floats](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, getLane[T](&a.b, i)/getLane[T](&b.b, i))
	}
	return r
}

// SaturatedAdd performs element-wise addition clamped to the lane range.
// For example, uint8: 200 + 100 = 255 (not 44).
func SaturatedAdd[T lane.Integers](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, lane.SaturatedAdd(getLane[T](&a.b, i), getLane[T](&b.b, i)))
	}
	return r
}

// SaturatedSub performs element-wise subtraction clamped to the lane range.
// For example, uint8: 5 - 9 = 0 (not 252).
func SaturatedSub[T lane.Integers](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, lane.SaturatedSub(getLane[T](&a.b, i), getLane[T](&b.b, i)))
	}
	return r
}

// AverageRound returns (a + b + 1) / 2 per lane without overflow.
func AverageRound[T lane.UnsignedInts](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, lane.AverageRound(getLane[T](&a.b, i), getLane[T](&b.b, i)))
	}
	return r
}

// AbsDiff computes |a - b| per lane.
func AbsDiff[T lane.Lanes](a, b Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, lane.AbsDiff(getLane[T](&a.b, i), getLane[T](&b.b, i)))
	}
	return r
}

// SumsOf8 sums each aligned group of 8 bytes into a 64-bit lane:
// lane g holds bytes 8g..8g+7.
func SumsOf8(v Vec[uint8]) Vec[uint64] {
	var r Vec[uint64]
	for g := range 8 {
		var sum uint64
		for i := range 8 {
			sum += uint64(v.b[8*g+i])
		}
		putLane(&r.b, g, sum)
	}
	return r
}

// Sqrt computes the square root of each lane.
func Sqrt[T lane.Floats](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, T(math.Sqrt(float64(getLane[T](&v.b, i)))))
	}
	return r
}

// ApproximateReciprocal returns 1/x per lane. The Go rendition computes
// the exact quotient, which satisfies any approximation tolerance.
func ApproximateReciprocal[T lane.Floats](v Vec[T]) Vec[T] {
	return Div(Set[T](1), v)
}

// ApproximateReciprocalSqrt returns 1/sqrt(x) per lane, again computed
// exactly.
func ApproximateReciprocalSqrt[T lane.Floats](v Vec[T]) Vec[T] {
	return Div(Set[T](1), Sqrt(v))
}

// MulAdd returns a*b + c per lane, fused via math.FMA.
func MulAdd[T lane.Floats](a, b, c Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		f := math.FMA(float64(getLane[T](&a.b, i)), float64(getLane[T](&b.b, i)), float64(getLane[T](&c.b, i)))
		putLane(&r.b, i, T(f))
	}
	return r
}

// NegMulAdd returns -a*b + c per lane.
func NegMulAdd[T lane.Floats](a, b, c Vec[T]) Vec[T] {
	return MulAdd(Neg(a), b, c)
}

// MulSub returns a*b - c per lane.
func MulSub[T lane.Floats](a, b, c Vec[T]) Vec[T] {
	return MulAdd(a, b, Neg(c))
}

// NegMulSub returns -a*b - c per lane.
func NegMulSub[T lane.Floats](a, b, c Vec[T]) Vec[T] {
	return Neg(MulAdd(a, b, c))
}

// Round rounds each lane to the nearest integer, ties to even.
func Round[T lane.Floats](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, T(math.RoundToEven(float64(getLane[T](&v.b, i)))))
	}
	return r
}

// Trunc rounds each lane toward zero.
func Trunc[T lane.Floats](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, T(math.Trunc(float64(getLane[T](&v.b, i)))))
	}
	return r
}

// Ceil rounds each lane toward positive infinity.
func Ceil[T lane.Floats](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, T(math.Ceil(float64(getLane[T](&v.b, i)))))
	}
	return r
}

// Floor rounds each lane toward negative infinity.
func Floor[T lane.Floats](v Vec[T]) Vec[T] {
	n := NumLanes[T]()
	var r Vec[T]
	for i := range n {
		putLane(&r.b, i, T(math.Floor(float64(getLane[T](&v.b, i)))))
	}
	return r
}

// MulEvenI16ToI32 multiplies the even lanes (0,2,...,30) into full-width
// 32-bit products.
// For example: a=[1,_,3,_,...], b=[10,_,30,_,...] -> [10,90,...]
func MulEvenI16ToI32(a, b Vec[int16]) Vec[int32] {
	var r Vec[int32]
	for i := range 16 {
		p := int32(getLane[int16](&a.b, 2*i)) * int32(getLane[int16](&b.b, 2*i))
		putLane(&r.b, i, p)
	}
	return r
}

// MulEvenU16ToU32 multiplies the even lanes into 32-bit products.
func MulEvenU16ToU32(a, b Vec[uint16]) Vec[uint32] {
	var r Vec[uint32]
	for i := range 16 {
		p := uint32(getLane[uint16](&a.b, 2*i)) * uint32(getLane[uint16](&b.b, 2*i))
		putLane(&r.b, i, p)
	}
	return r
}

// MulEvenI32ToI64 multiplies the even lanes (0,2,...,14) into 64-bit
// products.
func MulEvenI32ToI64(a, b Vec[int32]) Vec[int64] {
	var r Vec[int64]
	for i := range 8 {
		p := int64(getLane[int32](&a.b, 2*i)) * int64(getLane[int32](&b.b, 2*i))
		putLane(&r.b, i, p)
	}
	return r
}

// MulEvenU32ToU64 multiplies the even lanes into 64-bit products.
func MulEvenU32ToU64(a, b Vec[uint32]) Vec[uint64] {
	var r Vec[uint64]
	for i := range 8 {
		p := uint64(getLane[uint32](&a.b, 2*i)) * uint64(getLane[uint32](&b.b, 2*i))
		putLane(&r.b, i, p)
	}
	return r
}

// MulEvenU64 multiplies each even lane pair (0,2,4,6) of a and b into a
// full 128-bit product, low half in the even lane and high half in the
// odd lane above it.
func MulEvenU64(a, b Vec[uint64]) Vec[uint64] {
	var r Vec[uint64]
	for p := range 4 {
		hi, lo := bits.Mul64(getLane[uint64](&a.b, 2*p), getLane[uint64](&b.b, 2*p))
		putLane(&r.b, 2*p, lo)
		putLane(&r.b, 2*p+1, hi)
	}
	return r
}

// MulOddI16ToI32 multiplies the odd lanes (1,3,...,31) into 32-bit
// products.
func MulOddI16ToI32(a, b Vec[int16]) Vec[int32] {
	var r Vec[int32]
	for i := range 16 {
		p := int32(getLane[int16](&a.b, 2*i+1)) * int32(getLane[int16](&b.b, 2*i+1))
		putLane(&r.b, i, p)
	}
	return r
}

// MulOddU16ToU32 multiplies the odd lanes into 32-bit products.
func MulOddU16ToU32(a, b Vec[uint16]) Vec[uint32] {
	var r Vec[uint32]
	for i := range 16 {
		p := uint32(getLane[uint16](&a.b, 2*i+1)) * uint32(getLane[uint16](&b.b, 2*i+1))
		putLane(&r.b, i, p)
	}
	return r
}

// MulOddI32ToI64 multiplies the odd lanes (1,3,...,15) into 64-bit
// products.
func MulOddI32ToI64(a, b Vec[int32]) Vec[int64] {
	var r Vec[int64]
	for i := range 8 {
		p := int64(getLane[int32](&a.b, 2*i+1)) * int64(getLane[int32](&b.b, 2*i+1))
		putLane(&r.b, i, p)
	}
	return r
}

// MulOddU32ToU64 multiplies the odd lanes into 64-bit products.
func MulOddU32ToU64(a, b Vec[uint32]) Vec[uint64] {
	var r Vec[uint64]
	for i := range 8 {
		p := uint64(getLane[uint32](&a.b, 2*i+1)) * uint64(getLane[uint32](&b.b, 2*i+1))
		putLane(&r.b, i, p)
	}
	return r
}

// MulOddU64 multiplies each odd lane pair (1,3,5,7) of a and b into a
// full 128-bit product, low half in the even lane and high half in the
// odd lane.
func MulOddU64(a, b Vec[uint64]) Vec[uint64] {
	var r Vec[uint64]
	for p := range 4 {
		hi, lo := bits.Mul64(getLane[uint64](&a.b, 2*p+1), getLane[uint64](&b.b, 2*p+1))
		putLane(&r.b, 2*p, lo)
		putLane(&r.b, 2*p+1, hi)
	}
	return r
}
