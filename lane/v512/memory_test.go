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
	"reflect"
	"testing"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	src := make([]int16, 32)
	for i := range src {
		src[i] = int16(i + 1)
		if i%2 == 1 {
			src[i] = -src[i]
		}
	}
	dst := make([]int16, 32)
	StoreU(LoadU(src), dst)
	if !reflect.DeepEqual(dst, src) {
		t.Errorf("round trip = %v, want %v", dst, src)
	}
}

func TestLoadU_ShortSlice(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("LoadU on short slice did not panic")
		}
	}()
	LoadU(make([]int32, 15))
}

func TestStoreU_ShortSlice(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("StoreU on short slice did not panic")
		}
	}()
	StoreU(Zero[int32](), make([]int32, 15))
}

func TestLoadU_LongSliceReadsPrefix(t *testing.T) {
	src := make([]uint8, 66)
	for i := range src {
		src[i] = uint8(i + 1)
	}
	got := LoadU(src).Lanes()
	if !reflect.DeepEqual(got, src[:64]) {
		t.Errorf("LoadU prefix = %v", got)
	}
}

func TestMaskedLoad(t *testing.T) {
	src := make([]uint32, 16)
	for i := range src {
		src[i] = uint32(10 * (i + 1))
	}
	got := MaskedLoad(MaskFromBits[uint32](0x8421), src).Lanes()
	want := make([]uint32, 16)
	want[0], want[5], want[10], want[15] = 10, 60, 110, 160
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MaskedLoad() = %v, want %v", got, want)
	}
}

func TestBlendedStore(t *testing.T) {
	dst := make([]int32, 16)
	for i := range dst {
		dst[i] = -int32(i + 1)
	}
	BlendedStore(Iota(int32(0)), MaskFromBits[int32](0x0F0F), dst)
	want := []int32{0, 1, 2, 3, -5, -6, -7, -8, 8, 9, 10, 11, -13, -14, -15, -16}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("BlendedStore dst = %v, want %v", dst, want)
	}
}

func TestGatherIndex(t *testing.T) {
	base := make([]float32, 16)
	for i := range base {
		base[i] = float32(10 * i)
	}
	idx := LoadU([]int32{15, 0, 3, 3, 7, 1, 2, 14, 9, 9, 9, 0, 12, 5, 6, 8})
	got := GatherIndex(base, idx).Lanes()
	want := []float32{150, 0, 30, 30, 70, 10, 20, 140, 90, 90, 90, 0, 120, 50, 60, 80}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GatherIndex() = %v, want %v", got, want)
	}
}

func TestGatherIndex_U64(t *testing.T) {
	base := []uint64{0, 11, 22, 33, 44, 55, 66, 77}
	// Only the first 8 index lanes are read for 8-byte lanes.
	idx := LoadU([]int32{7, 6, 5, 4, 3, 2, 1, 0, 99, 99, 99, 99, 99, 99, 99, 99})
	got := GatherIndex(base, idx).Lanes()
	want := []uint64{77, 66, 55, 44, 33, 22, 11, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GatherIndex() = %v, want %v", got, want)
	}
}

func TestGatherIndex_NarrowLanes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("GatherIndex on 2-byte lanes did not panic")
		}
	}()
	GatherIndex(make([]uint16, 32), Zero[int32]())
}

func TestScatterIndex(t *testing.T) {
	base := make([]float32, 20)
	idx := LoadU([]int32{1, 4, 2, 7, 19, 0, 3, 5, 6, 8, 9, 10, 11, 12, 13, 18})
	ScatterIndex(Iota(float32(100)), base, idx)
	want := make([]float32, 20)
	for i, ix := range []int32{1, 4, 2, 7, 19, 0, 3, 5, 6, 8, 9, 10, 11, 12, 13, 18} {
		want[ix] = float32(100 + i)
	}
	if !reflect.DeepEqual(base, want) {
		t.Errorf("ScatterIndex base = %v, want %v", base, want)
	}
}

func TestScatterIndex_HigherLaneWins(t *testing.T) {
	base := make([]int64, 8)
	idx := LoadU([]int32{3, 3, 3, 3, 0, 1, 2, 4, 0, 0, 0, 0, 0, 0, 0, 0})
	ScatterIndex(Iota(int64(1)), base, idx)
	if base[3] != 4 {
		t.Errorf("base[3] = %d, want 4 (lane 3 stores last)", base[3])
	}
}

func TestInterleaved2(t *testing.T) {
	src := make([]uint16, 64)
	for i := range 32 {
		src[2*i] = uint16(i)
		src[2*i+1] = uint16(100 + i)
	}
	a, b := LoadInterleaved2(src)
	for i := range 32 {
		if a.Lane(i) != uint16(i) || b.Lane(i) != uint16(100+i) {
			t.Errorf("LoadInterleaved2 lane %d = %d,%d", i, a.Lane(i), b.Lane(i))
		}
	}

	dst := make([]uint16, 64)
	StoreInterleaved2(a, b, dst)
	if !reflect.DeepEqual(dst, src) {
		t.Errorf("StoreInterleaved2 = %v, want %v", dst, src)
	}
}

func TestInterleaved3(t *testing.T) {
	src := make([]uint8, 192)
	for i := range 64 {
		src[3*i] = uint8(i)
		src[3*i+1] = uint8(64 + i)
		src[3*i+2] = uint8(128 + i)
	}
	r, g, b := LoadInterleaved3(src)
	if r.Lane(5) != 5 || g.Lane(5) != 69 || b.Lane(5) != 133 {
		t.Errorf("LoadInterleaved3 lane 5 = %d,%d,%d", r.Lane(5), g.Lane(5), b.Lane(5))
	}
	if r.Lane(63) != 63 || g.Lane(63) != 127 || b.Lane(63) != 191 {
		t.Errorf("LoadInterleaved3 lane 63 = %d,%d,%d", r.Lane(63), g.Lane(63), b.Lane(63))
	}

	dst := make([]uint8, 192)
	StoreInterleaved3(r, g, b, dst)
	if !reflect.DeepEqual(dst, src) {
		t.Errorf("StoreInterleaved3 differs from source")
	}
}

func TestInterleaved4(t *testing.T) {
	src := make([]int32, 64)
	for i := range 16 {
		src[4*i] = int32(i)
		src[4*i+1] = int32(100 + i)
		src[4*i+2] = int32(200 + i)
		src[4*i+3] = int32(300 + i)
	}
	a, b, c, d := LoadInterleaved4(src)
	for i := range 16 {
		if a.Lane(i) != int32(i) || d.Lane(i) != int32(300+i) {
			t.Errorf("LoadInterleaved4 lane %d = %d,...,%d", i, a.Lane(i), d.Lane(i))
		}
	}

	dst := make([]int32, 64)
	StoreInterleaved4(a, b, c, d, dst)
	if !reflect.DeepEqual(dst, src) {
		t.Errorf("StoreInterleaved4 differs from source")
	}
}

func TestLoadDup128(t *testing.T) {
	got := LoadDup128([]uint64{5, 6}).Lanes()
	want := []uint64{5, 6, 5, 6, 5, 6, 5, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadDup128() = %v, want %v", got, want)
	}

	got32 := LoadDup128([]uint32{1, 2, 3, 4}).Lanes()
	want32 := []uint32{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4}
	if !reflect.DeepEqual(got32, want32) {
		t.Errorf("LoadDup128() = %v, want %v", got32, want32)
	}
}
