package v128

import (
	"reflect"
	"testing"
)

func TestAESRound_ZeroState(t *testing.T) {
	// SubBytes maps 0x00 to 0x63; ShiftRows and MixColumns keep a
	// uniform block uniform, and the zero key changes nothing.
	got := AESRound(Zero[uint8](), Zero[uint8]()).Lanes()
	want := make([]uint8, 16)
	for i := range want {
		want[i] = 0x63
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AESRound(0, 0) = %x, want all 0x63", got)
	}
}

func TestAESLastRound_SubBytesShiftRows(t *testing.T) {
	src := make([]uint8, 16)
	for i := range src {
		src[i] = uint8(i)
	}
	got := AESLastRound(LoadU(src), Zero[uint8]()).Lanes()
	// S-box of the iota block, rows rotated left by their row index.
	want := []uint8{
		0x63, 0x6B, 0x67, 0x76,
		0xF2, 0x01, 0xAB, 0x7B,
		0x30, 0xD7, 0x77, 0xC5,
		0xFE, 0x7C, 0x6F, 0x2B,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AESLastRound(iota, 0) = %x, want %x", got, want)
	}
}

func TestAESRound_KeyXor(t *testing.T) {
	key := Set(uint8(0xA5))
	got := AESLastRound(Zero[uint8](), key).Lanes()
	for i, b := range got {
		if b != 0x63^0xA5 {
			t.Errorf("lane %d: got %#x, want %#x", i, b, 0x63^0xA5)
		}
	}
}

func TestAESRound_UniformInput(t *testing.T) {
	// All bytes 0x53 substitute to 0xED; shifting rows of a uniform
	// block is a no-op and MixColumns of equal bytes keeps them.
	got := AESRound(Set(uint8(0x53)), Zero[uint8]()).Lanes()
	for i, b := range got {
		if b != 0xED {
			t.Errorf("lane %d: got %#x, want 0xED", i, b)
		}
	}
}

func TestCLMul(t *testing.T) {
	tests := []struct {
		name   string
		a, b   uint64
		wantLo uint64
		wantHi uint64
	}{
		{name: "small", a: 3, b: 3, wantLo: 5},
		{name: "all byte bits", a: 0xFF, b: 0xFF, wantLo: 0x5555},
		{name: "crosses into high", a: 1 << 63, b: 2, wantLo: 0, wantHi: 1},
		{name: "identity", a: 0x123456789ABCDEF0, b: 1, wantLo: 0x123456789ABCDEF0},
		{name: "zero", a: 0xFFFFFFFFFFFFFFFF, b: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := LoadU([]uint64{tt.a, tt.a})
			b := LoadU([]uint64{tt.b, tt.b})

			lower := CLMulLower(a, b).Lanes()
			if lower[0] != tt.wantLo || lower[1] != tt.wantHi {
				t.Errorf("CLMulLower = {%#x, %#x}, want {%#x, %#x}",
					lower[0], lower[1], tt.wantLo, tt.wantHi)
			}

			upper := CLMulUpper(a, b).Lanes()
			if !reflect.DeepEqual(upper, lower) {
				t.Errorf("CLMulUpper differs for equal operand lanes")
			}
		})
	}
}

func TestCLMul_DistinctLanes(t *testing.T) {
	a := LoadU([]uint64{3, 0xFF})
	b := LoadU([]uint64{3, 0xFF})
	if got := CLMulLower(a, b).Lane(0); got != 5 {
		t.Errorf("CLMulLower lane0 = %#x, want 5", got)
	}
	if got := CLMulUpper(a, b).Lane(0); got != 0x5555 {
		t.Errorf("CLMulUpper lane0 = %#x, want 0x5555", got)
	}
}
