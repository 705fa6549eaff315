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
	"reflect"
	"testing"
)

func TestBitwiseOps(t *testing.T) {
	a := Set(uint32(0b1100))
	b := Set(uint32(0b1010))

	checks := []struct {
		name string
		got  Vec[uint32]
		want uint32
	}{
		{name: "And", got: And(a, b), want: 0b1000},
		{name: "Or", got: Or(a, b), want: 0b1110},
		{name: "Xor", got: Xor(a, b), want: 0b0110},
		{name: "AndNot", got: AndNot(a, b), want: 0b0010},
		{name: "Not", got: Not(a), want: ^uint32(0b1100)},
		{name: "Or3", got: Or3(a, b, Set(uint32(1))), want: 0b1111},
		{name: "Xor3", got: Xor3(a, b, Set(uint32(0b0110))), want: 0},
		{name: "OrAnd", got: OrAnd(Set(uint32(0b0001)), a, b), want: 0b1001},
	}

	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			for i, got := range tt.got.Lanes() {
				if got != tt.want {
					t.Fatalf("lane %d: got %#b, want %#b", i, got, tt.want)
				}
			}
		})
	}
}

func TestIfThenElse(t *testing.T) {
	yes := Iota(int32(0))
	no := Set(int32(-1))
	m := MaskFromBits[int32](0b0101_0101_0101_0101)

	got := IfThenElse(m, yes, no).Lanes()
	for i := range got {
		want := int32(-1)
		if i%2 == 0 {
			want = int32(i)
		}
		if got[i] != want {
			t.Errorf("lane %d: got %d, want %d", i, got[i], want)
		}
	}

	zeroed := IfThenElseZero(m, yes).Lanes()
	for i := range zeroed {
		want := int32(0)
		if i%2 == 0 {
			want = int32(i)
		}
		if zeroed[i] != want {
			t.Errorf("IfThenElseZero lane %d: got %d, want %d", i, zeroed[i], want)
		}
	}

	kept := IfThenZeroElse(m, no).Lanes()
	for i := range kept {
		want := int32(-1)
		if i%2 == 0 {
			want = 0
		}
		if kept[i] != want {
			t.Errorf("IfThenZeroElse lane %d: got %d, want %d", i, kept[i], want)
		}
	}
}

func TestIfVecThenElse_BitGranular(t *testing.T) {
	sel := Set(uint16(0x0F0F))
	yes := Set(uint16(0xAAAA))
	no := Set(uint16(0x5555))
	got := IfVecThenElse(sel, yes, no).Lanes()
	want := uint16(0xAAAA&0x0F0F | 0x5555&^0x0F0F)
	for i, x := range got {
		if x != want {
			t.Errorf("lane %d: got %#x, want %#x", i, x, want)
		}
	}
}

func TestBroadcastSignBit(t *testing.T) {
	v := Iota(int8(-32))
	got := BroadcastSignBit(v).Lanes()
	for i := range got {
		want := int8(0)
		if -32+i < 0 {
			want = -1
		}
		if got[i] != want {
			t.Errorf("lane %d: got %d, want %d", i, got[i], want)
		}
	}
}

func TestIfNegativeThenElse(t *testing.T) {
	// -0.0 has the sign bit set and must take the yes branch.
	src := make([]float32, 16)
	src[0] = -1
	src[1] = 1
	src[2] = float32(math.Copysign(0, -1))
	v := LoadU(src)
	yes := Set(float32(100))
	no := Set(float32(-100))
	got := IfNegativeThenElse(v, yes, no).Lanes()
	if got[0] != 100 || got[1] != -100 || got[2] != 100 {
		t.Errorf("IfNegativeThenElse() = %v", got[:3])
	}

	z := ZeroIfNegative(v).Lanes()
	if z[0] != 0 || z[1] != 1 {
		t.Errorf("ZeroIfNegative() = %v", z[:2])
	}
}

func TestCopySign(t *testing.T) {
	magn := Set(float64(3.5))
	sign := Set(float64(-1))
	got := CopySign(magn, sign).Lanes()
	want := make([]float64, 8)
	for i := range want {
		want[i] = -3.5
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CopySign() = %v, want %v", got, want)
	}

	abs := CopySignToAbs(Set(float64(2)), sign).Lanes()
	if abs[0] != -2 || abs[7] != -2 {
		t.Errorf("CopySignToAbs() = %v", abs)
	}
}

func TestFloatLogicClearsSign(t *testing.T) {
	v := Set(float32(-1.5))
	mask := BitCast[float32](Set(uint32(0x7FFFFFFF)))
	got := And(v, mask).Lanes()
	if got[0] != 1.5 || got[15] != 1.5 {
		t.Errorf("And sign clear = %v", got[:2])
	}
}
