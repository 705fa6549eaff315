package v128

import (
	"math"
	"testing"

	"github.com/govec/go-lanes/lane"
)

func maskBools[T lane.Lanes](m Mask[T]) []bool {
	out := make([]bool, m.NumLanes())
	for i := range out {
		out[i] = m.Lane(i)
	}
	return out
}

func TestCompare_I32(t *testing.T) {
	a := LoadU([]int32{1, 5, -3, 7})
	b := LoadU([]int32{2, 5, -4, 3})

	tests := []struct {
		name string
		got  Mask[int32]
		want []bool
	}{
		{name: "Eq", got: Eq(a, b), want: []bool{false, true, false, false}},
		{name: "Ne", got: Ne(a, b), want: []bool{true, false, true, true}},
		{name: "Lt", got: Lt(a, b), want: []bool{true, false, false, false}},
		{name: "Le", got: Le(a, b), want: []bool{true, true, false, false}},
		{name: "Gt", got: Gt(a, b), want: []bool{false, false, true, true}},
		{name: "Ge", got: Ge(a, b), want: []bool{false, true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := maskBools(tt.got)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("%s lane %d: got %v, want %v", tt.name, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCompare_UnsignedOrder(t *testing.T) {
	a := LoadU([]uint8{0xFF, 1, 0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	b := LoadU([]uint8{1, 0xFF, 0x7F, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	got := Gt(a, b)
	if !got.Lane(0) || got.Lane(1) || !got.Lane(2) {
		t.Errorf("Gt unsigned: got %v", maskBools(got))
	}
}

func TestCompare_NaN(t *testing.T) {
	nan := math.NaN()
	a := LoadU([]float64{nan, 1})
	b := LoadU([]float64{nan, nan})

	// Every ordered comparison with a NaN operand is false.
	if m := Eq(a, b); m.Lane(0) || m.Lane(1) {
		t.Errorf("Eq with NaN: got %v", maskBools(m))
	}
	if m := Lt(a, b); m.Lane(0) || m.Lane(1) {
		t.Errorf("Lt with NaN: got %v", maskBools(m))
	}
	if m := Ge(a, b); m.Lane(0) || m.Lane(1) {
		t.Errorf("Ge with NaN: got %v", maskBools(m))
	}
	// Ne is the complement of Eq, so NaN lanes compare not-equal.
	if m := Ne(a, b); !m.Lane(0) || !m.Lane(1) {
		t.Errorf("Ne with NaN: got %v", maskBools(m))
	}
}

func TestIsNaN(t *testing.T) {
	v := LoadU([]float32{float32(math.NaN()), 1, float32(math.Inf(1)), 0})
	m := IsNaN(v)
	want := []bool{true, false, false, false}
	for i := range want {
		if m.Lane(i) != want[i] {
			t.Errorf("IsNaN lane %d: got %v, want %v", i, m.Lane(i), want[i])
		}
	}
}
