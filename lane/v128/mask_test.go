package v128

import (
	"reflect"
	"testing"

	"github.com/govec/go-lanes/lane"
)

func maskFromBools[T lane.Lanes](bools []bool) Mask[T] {
	var m Mask[T]
	for i, on := range bools {
		setMaskLane(&m, i, on)
	}
	return m
}

func TestStoreMaskBits(t *testing.T) {
	tests := []struct {
		name string
		mask []bool
		want []byte
	}{
		{
			name: "alternating",
			mask: []bool{true, false, true, false, false, false, false, false},
			want: []byte{0b00000101},
		},
		{
			name: "all true",
			mask: []bool{true, true, true, true, true, true, true, true},
			want: []byte{0xFF},
		},
		{
			name: "none",
			mask: []bool{false, false, false, false, false, false, false, false},
			want: []byte{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := maskFromBools[uint16](tt.mask)
			dst := make([]byte, 1)
			n := StoreMaskBits(m, dst)
			if n != 1 {
				t.Errorf("StoreMaskBits wrote %d bytes, want 1", n)
			}
			if !reflect.DeepEqual(dst, tt.want) {
				t.Errorf("StoreMaskBits() = %08b, want %08b", dst, tt.want)
			}
		})
	}
}

func TestStoreMaskBits_16Lanes(t *testing.T) {
	bools := make([]bool, 16)
	bools[0] = true
	bools[9] = true
	bools[15] = true
	m := maskFromBools[uint8](bools)
	dst := make([]byte, 2)
	if n := StoreMaskBits(m, dst); n != 2 {
		t.Errorf("StoreMaskBits wrote %d bytes, want 2", n)
	}
	// Little endian: lane 9 lands in bit 1 of the second byte.
	want := []byte{0x01, 0x82}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("StoreMaskBits() = %x, want %x", dst, want)
	}
}

func TestLoadMaskBits_RoundTrip(t *testing.T) {
	src := []byte{0xA5, 0x81}
	m := LoadMaskBits[uint8](src)
	dst := make([]byte, 2)
	StoreMaskBits(m, dst)
	if !reflect.DeepEqual(dst, src) {
		t.Errorf("mask bits round trip: got %x, want %x", dst, src)
	}
}

func TestLoadMaskBits_IgnoresPadding(t *testing.T) {
	// 4 lanes of int32 use only the low 4 bits; the rest of the byte
	// must be ignored.
	m := LoadMaskBits[int32]([]byte{0xF6})
	want := []bool{false, true, true, false}
	for i := range want {
		if m.Lane(i) != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, m.Lane(i), want[i])
		}
	}
	if CountTrue(m) != 2 {
		t.Errorf("CountTrue = %d, want 2", CountTrue(m))
	}
}

func TestMaskCounts(t *testing.T) {
	tests := []struct {
		name      string
		mask      []bool
		count     int
		allTrue   bool
		allFalse  bool
		firstTrue int
	}{
		{
			name:      "mixed",
			mask:      []bool{false, true, false, true},
			count:     2,
			firstTrue: 1,
		},
		{
			name:      "all true",
			mask:      []bool{true, true, true, true},
			count:     4,
			allTrue:   true,
			firstTrue: 0,
		},
		{
			name:      "all false",
			mask:      []bool{false, false, false, false},
			count:     0,
			allFalse:  true,
			firstTrue: -1,
		},
		{
			name:      "only last",
			mask:      []bool{false, false, false, true},
			count:     1,
			firstTrue: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := maskFromBools[float32](tt.mask)
			if got := CountTrue(m); got != tt.count {
				t.Errorf("CountTrue = %d, want %d", got, tt.count)
			}
			if got := AllTrue(m); got != tt.allTrue {
				t.Errorf("AllTrue = %v, want %v", got, tt.allTrue)
			}
			if got := AllFalse(m); got != tt.allFalse {
				t.Errorf("AllFalse = %v, want %v", got, tt.allFalse)
			}
			if got := FindFirstTrue(m); got != tt.firstTrue {
				t.Errorf("FindFirstTrue = %d, want %d", got, tt.firstTrue)
			}
			if tt.count > 0 {
				if got := FindKnownFirstTrue(m); got != tt.firstTrue {
					t.Errorf("FindKnownFirstTrue = %d, want %d", got, tt.firstTrue)
				}
			}
		})
	}
}

func TestFirstN(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []bool
	}{
		{name: "zero", n: 0, want: []bool{false, false, false, false}},
		{name: "two", n: 2, want: []bool{true, true, false, false}},
		{name: "all", n: 4, want: []bool{true, true, true, true}},
		{name: "beyond", n: 9, want: []bool{true, true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FirstN[int32](tt.n)
			for i := range tt.want {
				if m.Lane(i) != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, m.Lane(i), tt.want[i])
				}
			}
		})
	}
}

func TestMaskLogic(t *testing.T) {
	a := maskFromBools[int16]([]bool{true, true, false, false, true, false, true, false})
	b := maskFromBools[int16]([]bool{true, false, true, false, false, true, true, false})

	checks := []struct {
		name string
		m    Mask[int16]
		want []bool
	}{
		{name: "And", m: a.And(b), want: []bool{true, false, false, false, false, false, true, false}},
		{name: "Or", m: a.Or(b), want: []bool{true, true, true, false, true, true, true, false}},
		{name: "Xor", m: a.Xor(b), want: []bool{false, true, true, false, true, true, false, false}},
		{name: "Not", m: a.Not(), want: []bool{false, false, true, true, false, true, false, true}},
		{name: "AndNot", m: a.AndNot(b), want: []bool{false, false, true, false, false, true, false, false}},
	}

	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.want {
				if tt.m.Lane(i) != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, tt.m.Lane(i), tt.want[i])
				}
			}
		})
	}
}

func TestMaskVecRoundTrip(t *testing.T) {
	m := maskFromBools[int32]([]bool{true, false, false, true})
	v := VecFromMask(m)
	want := []int32{-1, 0, 0, -1}
	if !reflect.DeepEqual(v.Lanes(), want) {
		t.Errorf("VecFromMask() = %v, want %v", v.Lanes(), want)
	}
	back := MaskFromVec(v)
	for i := range 4 {
		if back.Lane(i) != m.Lane(i) {
			t.Errorf("round trip lane %d differs", i)
		}
	}
}
