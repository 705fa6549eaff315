package v128

import (
	"reflect"
	"testing"
)

func TestShiftLeft_U16(t *testing.T) {
	v := LoadU([]uint16{1, 2, 0x8000, 0xFFFF, 0, 1, 1, 1})
	got := ShiftLeft(v, 1).Lanes()
	want := []uint16{2, 4, 0, 0xFFFE, 0, 2, 2, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShiftLeft(1) = %v, want %v", got, want)
	}
}

func TestShiftRight_Arithmetic(t *testing.T) {
	v := LoadU([]int32{-8, 8, -1, 0x40000000})
	got := ShiftRight(v, 2).Lanes()
	want := []int32{-2, 2, -1, 0x10000000}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShiftRight(2) = %v, want %v", got, want)
	}
}

func TestShiftRight_Logical(t *testing.T) {
	v := LoadU([]uint32{0x80000000, 8, 0xFFFFFFFF, 1})
	got := ShiftRight(v, 4).Lanes()
	want := []uint32{0x08000000, 0, 0x0FFFFFFF, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShiftRight(4) = %v, want %v", got, want)
	}
}

func TestShlShr_PerLaneCounts(t *testing.T) {
	v := LoadU([]uint32{1, 1, 1, 1})
	counts := LoadU([]uint32{0, 5, 31, 32})
	got := Shl(v, counts).Lanes()
	// Counts at or above the lane width shift out to zero.
	want := []uint32{1, 32, 0x80000000, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Shl() = %v, want %v", got, want)
	}
}

func TestShr_SignFill(t *testing.T) {
	v := LoadU([]int16{-2, -2, 16, -1, 0, 0, 0, 0})
	counts := LoadU([]int16{1, 16, 2, 100, 0, 0, 0, 0})
	got := Shr(v, counts).Lanes()
	// Signed lanes fill with the sign bit once the count reaches the
	// lane width.
	want := []int16{-1, -1, 4, -1, 0, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Shr() = %v, want %v", got, want)
	}
}

func TestShr_ZeroFill_U16(t *testing.T) {
	v := LoadU([]uint16{0xFFFF, 0xFFFF, 0x8000, 0, 0, 0, 0, 0})
	counts := LoadU([]uint16{4, 16, 15, 0, 0, 0, 0, 0})
	got := Shr(v, counts).Lanes()
	want := []uint16{0x0FFF, 0, 1, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Shr() = %v, want %v", got, want)
	}
}

func TestRotateRight_U32(t *testing.T) {
	tests := []struct {
		name  string
		v     uint32
		count int
		want  uint32
	}{
		{name: "by 8", v: 0x12345678, count: 8, want: 0x78123456},
		{name: "by 0", v: 0x12345678, count: 0, want: 0x12345678},
		{name: "by width", v: 0x12345678, count: 32, want: 0x12345678},
		{name: "wraps bit", v: 1, count: 1, want: 0x80000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateRight(Set(tt.v), tt.count).Lane(0)
			if got != tt.want {
				t.Errorf("RotateRight(%#x, %d) = %#x, want %#x", tt.v, tt.count, got, tt.want)
			}
		})
	}
}

func TestShiftBytes(t *testing.T) {
	src := make([]uint8, 16)
	for i := range src {
		src[i] = uint8(i + 1)
	}
	v := LoadU(src)

	left := ShiftLeftBytes(v, 2).Lanes()
	if left[0] != 0 || left[1] != 0 || left[2] != 1 || left[15] != 14 {
		t.Errorf("ShiftLeftBytes(2) = %v", left)
	}

	right := ShiftRightBytes(v, 2).Lanes()
	if right[0] != 3 || right[13] != 16 || right[14] != 0 || right[15] != 0 {
		t.Errorf("ShiftRightBytes(2) = %v", right)
	}
}

func TestShiftLanes_I32(t *testing.T) {
	v := LoadU([]int32{1, 2, 3, 4})
	got := ShiftLeftLanes(v, 1).Lanes()
	want := []int32{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShiftLeftLanes(1) = %v, want %v", got, want)
	}
	got = ShiftRightLanes(v, 1).Lanes()
	want = []int32{2, 3, 4, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShiftRightLanes(1) = %v, want %v", got, want)
	}
}

func TestCombineShiftRightBytes(t *testing.T) {
	lo := make([]uint8, 16)
	hi := make([]uint8, 16)
	for i := range lo {
		lo[i] = uint8(i)
		hi[i] = uint8(16 + i)
	}
	// A 16-byte window starting 4 bytes into lo.
	got := CombineShiftRightBytes(LoadU(hi), LoadU(lo), 4).Lanes()
	want := make([]uint8, 16)
	for i := range want {
		want[i] = uint8(4 + i)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CombineShiftRightBytes(4) = %v, want %v", got, want)
	}
}
