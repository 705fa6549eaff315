package v512

import (
	"reflect"
	"testing"
)

func TestShiftLeftRight(t *testing.T) {
	v := Set(uint16(0x00F1))
	if got := ShiftLeft(v, 4).Lane(0); got != 0x0F10 {
		t.Errorf("ShiftLeft = %#x, want 0x0F10", got)
	}
	if got := ShiftRight(v, 4).Lane(31); got != 0x000F {
		t.Errorf("ShiftRight = %#x, want 0x000F", got)
	}
}

func TestShiftRight_SignFill(t *testing.T) {
	v := Set(int32(-16))
	if got := ShiftRight(v, 2).Lane(0); got != -4 {
		t.Errorf("arithmetic ShiftRight = %d, want -4", got)
	}
	// Counts at or above the width keep only sign bits.
	if got := ShiftRight(v, 32).Lane(0); got != -1 {
		t.Errorf("ShiftRight(32) = %d, want -1", got)
	}
	if got := ShiftLeft(Set(uint32(1)), 32).Lane(0); got != 0 {
		t.Errorf("ShiftLeft(32) = %d, want 0", got)
	}
}

func TestShlShr_PerLaneCounts(t *testing.T) {
	v := Set(uint32(1))
	counts := Iota(uint32(0))
	got := Shl(v, counts).Lanes()
	for i := range 16 {
		if got[i] != 1<<i {
			t.Errorf("Shl lane %d = %#x, want %#x", i, got[i], uint32(1)<<i)
		}
	}
	back := Shr(Shl(v, counts), counts).Lanes()
	for i := range 16 {
		if back[i] != 1 {
			t.Errorf("Shr(Shl) lane %d = %d, want 1", i, back[i])
		}
	}
}

func TestRotateRight(t *testing.T) {
	v := Set(uint8(0b1000_0001))
	if got := RotateRight(v, 1).Lane(0); got != 0b1100_0000 {
		t.Errorf("RotateRight(1) = %#b", got)
	}
	if got := RotateRight(v, 0).Lane(0); got != 0b1000_0001 {
		t.Errorf("RotateRight(0) = %#b", got)
	}
	if got := RotateRight(v, 8).Lane(63); got != 0b1000_0001 {
		t.Errorf("RotateRight(8) = %#b", got)
	}
}

func TestShiftBytes_PerBlock(t *testing.T) {
	v := Iota(uint8(0))
	left := ShiftLeftBytes(v, 3).Lanes()
	for blk := range 4 {
		base := 16 * blk
		for i := range 3 {
			if left[base+i] != 0 {
				t.Errorf("block %d byte %d = %d, want 0", blk, i, left[base+i])
			}
		}
		for i := 3; i < 16; i++ {
			if left[base+i] != uint8(base+i-3) {
				t.Errorf("block %d byte %d = %d, want %d", blk, i, left[base+i], base+i-3)
			}
		}
	}

	right := ShiftRightBytes(v, 3).Lanes()
	for blk := range 4 {
		base := 16 * blk
		for i := 0; i < 13; i++ {
			if right[base+i] != uint8(base+i+3) {
				t.Errorf("block %d byte %d = %d, want %d", blk, i, right[base+i], base+i+3)
			}
		}
		for i := 13; i < 16; i++ {
			if right[base+i] != 0 {
				t.Errorf("block %d byte %d = %d, want 0", blk, i, right[base+i])
			}
		}
	}
}

func TestShiftLanes(t *testing.T) {
	v := Iota(uint32(0))
	got := ShiftLeftLanes(v, 1).Lanes()
	// One 32-bit lane is 4 bytes; each block keeps 4 lanes.
	want := []uint32{0, 0, 1, 2, 0, 4, 5, 6, 0, 8, 9, 10, 0, 12, 13, 14}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShiftLeftLanes = %v, want %v", got, want)
	}
}

func TestCombineShiftRightBytes_PerBlock(t *testing.T) {
	lo := Set(uint8(0x11))
	hi := Set(uint8(0x22))
	got := CombineShiftRightBytes(hi, lo, 4).Lanes()
	for blk := range 4 {
		base := 16 * blk
		for i := range 12 {
			if got[base+i] != 0x11 {
				t.Errorf("block %d byte %d = %#x, want lo", blk, i, got[base+i])
			}
		}
		for i := 12; i < 16; i++ {
			if got[base+i] != 0x22 {
				t.Errorf("block %d byte %d = %#x, want hi", blk, i, got[base+i])
			}
		}
	}
}

func TestCombineShiftRightLanes(t *testing.T) {
	lo := Iota(uint32(0))
	hi := Iota(uint32(100))
	got := CombineShiftRightLanes(hi, lo, 1).Lanes()
	// Per block: [lo1,lo2,lo3,hi0].
	want := []uint32{1, 2, 3, 100, 5, 6, 7, 104, 9, 10, 11, 108, 13, 14, 15, 112}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CombineShiftRightLanes = %v, want %v", got, want)
	}
}
