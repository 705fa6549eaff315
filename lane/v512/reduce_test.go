package v512

import (
	"math"
	"testing"
)

func TestReduceSum(t *testing.T) {
	if got := ReduceSum(Iota(int32(1))); got != 136 {
		t.Errorf("ReduceSum = %d, want 136", got)
	}
	if got := ReduceSum(Set(float64(1.5))); got != 12 {
		t.Errorf("ReduceSum = %v, want 12", got)
	}
	// Integer sums wrap: 0+1+...+63 = 2016 = 7*256 + 224.
	if got := ReduceSum(Iota(uint8(0))); got != 224 {
		t.Errorf("ReduceSum wrap = %d, want 224", got)
	}
}

func TestReduceMinMax(t *testing.T) {
	data := make([]int16, 32)
	for i := range data {
		data[i] = int16(5 * i)
	}
	data[13] = -3
	data[27] = 1000
	v := LoadU(data)
	if got := ReduceMin(v); got != -3 {
		t.Errorf("ReduceMin = %d, want -3", got)
	}
	if got := ReduceMax(v); got != 1000 {
		t.Errorf("ReduceMax = %d, want 1000", got)
	}
}

func TestReduceMinMax_NaN(t *testing.T) {
	data := make([]float32, 16)
	for i := range data {
		data[i] = float32(i)
	}
	data[11] = float32(math.NaN())
	v := LoadU(data)
	if got := ReduceMin(v); got == got {
		t.Errorf("ReduceMin with NaN = %v, want NaN", got)
	}
	if got := ReduceMax(v); got == got {
		t.Errorf("ReduceMax with NaN = %v, want NaN", got)
	}
}

func TestOfLanesBroadcast(t *testing.T) {
	data := make([]uint32, 16)
	for i := range data {
		data[i] = uint32(i + 1)
	}
	data[5] = 99
	v := LoadU(data)

	sum := SumOfLanes(v).Lanes()
	min := MinOfLanes(v).Lanes()
	max := MaxOfLanes(v).Lanes()
	for i := range 16 {
		if sum[i] != 229 {
			t.Errorf("SumOfLanes lane %d = %d, want 229", i, sum[i])
		}
		if min[i] != 1 {
			t.Errorf("MinOfLanes lane %d = %d, want 1", i, min[i])
		}
		if max[i] != 99 {
			t.Errorf("MaxOfLanes lane %d = %d, want 99", i, max[i])
		}
	}
}
