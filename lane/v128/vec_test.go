package v128

import (
	"reflect"
	"strings"
	"testing"

	"github.com/govec/go-lanes/lane"
)

func TestNumLanes(t *testing.T) {
	if n := NumLanes[uint8](); n != 16 {
		t.Errorf("NumLanes[uint8] = %d, want 16", n)
	}
	if n := NumLanes[int16](); n != 8 {
		t.Errorf("NumLanes[int16] = %d, want 8", n)
	}
	if n := NumLanes[float32](); n != 4 {
		t.Errorf("NumLanes[float32] = %d, want 4", n)
	}
	if n := NumLanes[float64](); n != 2 {
		t.Errorf("NumLanes[float64] = %d, want 2", n)
	}
}

func TestDesc(t *testing.T) {
	var d Desc[int32]
	if d.NumLanes() != 4 || d.LaneBytes() != 4 {
		t.Errorf("Desc[int32] = %d lanes of %d bytes", d.NumLanes(), d.LaneBytes())
	}
	if d.Width() != lane.Width128 {
		t.Errorf("Desc width = %v, want %v", d.Width(), lane.Width128)
	}
}

func TestSetZeroIota(t *testing.T) {
	if got := Set(int8(-7)).Lanes(); got[0] != -7 || got[15] != -7 {
		t.Errorf("Set(-7) = %v", got)
	}
	if got := Zero[uint64]().Lanes(); got[0] != 0 || got[1] != 0 {
		t.Errorf("Zero() = %v", got)
	}
	got := Iota(int16(3)).Lanes()
	want := []int16{3, 4, 5, 6, 7, 8, 9, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Iota(3) = %v, want %v", got, want)
	}
}

func TestIota_Float(t *testing.T) {
	got := Iota(float32(0.5)).Lanes()
	want := []float32{0.5, 1.5, 2.5, 3.5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Iota(0.5) = %v, want %v", got, want)
	}
}

func TestLaneAccess(t *testing.T) {
	v := LoadU([]int32{10, 20, 30, 40})
	if v.NumLanes() != 4 {
		t.Errorf("NumLanes = %d, want 4", v.NumLanes())
	}
	if v.Lane(2) != 30 {
		t.Errorf("Lane(2) = %d, want 30", v.Lane(2))
	}
	if got := v.Lanes(); len(got) != 4 || got[3] != 40 {
		t.Errorf("Lanes() = %v", got)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	v := Iota(uint8(0))
	b := v.Bytes()
	back := VecFromBytes[uint8](b)
	if !reflect.DeepEqual(back.Lanes(), v.Lanes()) {
		t.Errorf("VecFromBytes(Bytes()) differs")
	}
	if b[5] != 5 {
		t.Errorf("Bytes()[5] = %d, want 5", b[5])
	}
}

func TestString(t *testing.T) {
	s := LoadU([]int32{1, 2, 3, 4}).String()
	if !strings.Contains(s, "1") || !strings.Contains(s, "4") {
		t.Errorf("String() = %q, want lane values", s)
	}
}

func TestUndefined(t *testing.T) {
	// Undefined only promises a usable vector.
	v := Undefined[uint16]()
	if v.NumLanes() != 8 {
		t.Errorf("Undefined NumLanes = %d, want 8", v.NumLanes())
	}
}
