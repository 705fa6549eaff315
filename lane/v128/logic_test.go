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

import (
	"math"
	"reflect"
	"testing"
)

func TestBitwise_U32(t *testing.T) {
	a := LoadU([]uint32{0xF0F0F0F0, 0xFFFF0000, 0, 0xDEADBEEF})
	b := LoadU([]uint32{0x0FF00FF0, 0x0000FFFF, 0xFFFFFFFF, 0xDEADBEEF})

	if got := And(a, b).Lanes(); !reflect.DeepEqual(got, []uint32{0x00F000F0, 0, 0, 0xDEADBEEF}) {
		t.Errorf("And() = %x", got)
	}
	if got := Or(a, b).Lanes(); !reflect.DeepEqual(got, []uint32{0xFFF0FFF0, 0xFFFFFFFF, 0xFFFFFFFF, 0xDEADBEEF}) {
		t.Errorf("Or() = %x", got)
	}
	if got := Xor(a, b).Lanes(); !reflect.DeepEqual(got, []uint32{0xFF00FF00, 0xFFFFFFFF, 0xFFFFFFFF, 0}) {
		t.Errorf("Xor() = %x", got)
	}
	if got := AndNot(a, b).Lanes(); !reflect.DeepEqual(got, []uint32{0x0F000F00, 0x0000FFFF, 0xFFFFFFFF, 0}) {
		t.Errorf("AndNot() = %x", got)
	}
	if got := Not(a).Lanes(); !reflect.DeepEqual(got, []uint32{0x0F0F0F0F, 0x0000FFFF, 0xFFFFFFFF, 0x21524110}) {
		t.Errorf("Not() = %x", got)
	}
}

func TestBitwise_Floats(t *testing.T) {
	// Logical ops work on the bit patterns of float lanes.
	v := LoadU([]float32{1.5, -1.5, 0, -0})
	signMask := BitCast[float32](Set(uint32(0x80000000)))
	got := AndNot(signMask, v).Lanes()
	want := []float32{1.5, 1.5, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AndNot sign clear = %v, want %v", got, want)
	}
}

func TestTernaryLogic(t *testing.T) {
	a := LoadU([]uint8{0xF0, 0x0F, 0xAA, 0x00, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	b := LoadU([]uint8{0x0F, 0xF0, 0x55, 0x00, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	c := LoadU([]uint8{0xFF, 0x00, 0xFF, 0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	if got := Or3(a, b, c).Lane(0); got != 0xFF {
		t.Errorf("Or3 lane 0 = %#x, want 0xFF", got)
	}
	if got := Xor3(a, b, c).Lane(2); got != 0x00 {
		t.Errorf("Xor3 lane 2 = %#x, want 0", got)
	}
	if got := OrAnd(c, a, b).Lane(3); got != 0x01 {
		t.Errorf("OrAnd lane 3 = %#x, want 1", got)
	}
}

func TestIfThenElse(t *testing.T) {
	yes := LoadU([]int32{1, 2, 3, 4})
	no := LoadU([]int32{-1, -2, -3, -4})
	m := Gt(LoadU([]int32{5, 0, 5, 0}), Set(int32(1)))

	got := IfThenElse(m, yes, no).Lanes()
	want := []int32{1, -2, 3, -4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IfThenElse() = %v, want %v", got, want)
	}

	got = IfThenElseZero(m, yes).Lanes()
	want = []int32{1, 0, 3, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IfThenElseZero() = %v, want %v", got, want)
	}

	got = IfThenZeroElse(m, no).Lanes()
	want = []int32{0, -2, 0, -4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IfThenZeroElse() = %v, want %v", got, want)
	}
}

func TestBroadcastSignBit(t *testing.T) {
	v := LoadU([]int16{-1, 1, math.MinInt16, 0, -32000, 5, 6, 7})
	got := BroadcastSignBit(v).Lanes()
	want := []int16{-1, 0, -1, 0, -1, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BroadcastSignBit() = %v, want %v", got, want)
	}
}

func TestIfNegativeThenElse(t *testing.T) {
	v := LoadU([]float32{-1, 1, float32(math.Copysign(0, -1)), 0})
	yes := Set(float32(100))
	no := Set(float32(200))
	got := IfNegativeThenElse(v, yes, no).Lanes()
	// Negative zero selects yes: only the sign bit is consulted.
	want := []float32{100, 200, 100, 200}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IfNegativeThenElse() = %v, want %v", got, want)
	}
}

func TestZeroIfNegative(t *testing.T) {
	v := LoadU([]float32{-3, 4, -0.5, 0})
	got := ZeroIfNegative(v).Lanes()
	want := []float32{0, 4, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ZeroIfNegative() = %v, want %v", got, want)
	}
}

func TestCopySign(t *testing.T) {
	mag := LoadU([]float64{3, -4})
	sign := LoadU([]float64{-1, 1})
	got := CopySign(mag, sign).Lanes()
	want := []float64{-3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CopySign() = %v, want %v", got, want)
	}
}
