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
	"reflect"
	"testing"

	"github.com/govec/go-lanes/lane"
)

func TestCompress_I32(t *testing.T) {
	tests := []struct {
		name string
		data []int32
		mask []bool
		want []int32
	}{
		{
			name: "alternating",
			data: []int32{10, 20, 30, 40},
			mask: []bool{true, false, true, false},
			want: []int32{10, 30, 20, 40},
		},
		{
			name: "all true",
			data: []int32{1, 2, 3, 4},
			mask: []bool{true, true, true, true},
			want: []int32{1, 2, 3, 4},
		},
		{
			name: "all false",
			data: []int32{1, 2, 3, 4},
			mask: []bool{false, false, false, false},
			want: []int32{1, 2, 3, 4},
		},
		{
			name: "only last",
			data: []int32{1, 2, 3, 4},
			mask: []bool{false, false, false, true},
			want: []int32{4, 1, 2, 3},
		},
		{
			name: "tail pair",
			data: []int32{1, 2, 3, 4},
			mask: []bool{false, true, true, false},
			want: []int32{2, 3, 1, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compress(LoadU(tt.data), maskFromBools[int32](tt.mask)).Lanes()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compress() = %v, want %v", got, tt.want)
			}
		})
	}
}

// compressRef packs selected lanes first and the rest after, both in
// original order.
func compressRef[T lane.Lanes](data []T, bits int) []T {
	var sel, unsel []T
	for i, x := range data {
		if bits>>i&1 != 0 {
			sel = append(sel, x)
		} else {
			unsel = append(unsel, x)
		}
	}
	return append(sel, unsel...)
}

func TestCompress_AllMasks_U16(t *testing.T) {
	data := []uint16{100, 101, 102, 103, 104, 105, 106, 107}
	v := LoadU(data)
	for bits := 0; bits < 256; bits++ {
		m := maskFromBits[uint16](uint64(bits))
		got := Compress(v, m).Lanes()
		want := compressRef(data, bits)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("mask %#02x: Compress() = %v, want %v", bits, got, want)
		}
	}
}

func TestCompress_AllMasks_U8(t *testing.T) {
	data := make([]uint8, 16)
	for i := range data {
		data[i] = uint8(200 + i)
	}
	v := LoadU(data)
	// Sampling every 8-bit pattern in both halves covers the table and
	// the splice.
	for bits := 0; bits < 1<<16; bits += 257 {
		m := maskFromBits[uint8](uint64(bits))
		got := Compress(v, m).Lanes()
		want := compressRef(data, bits)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("mask %#04x: Compress() = %v, want %v", bits, got, want)
		}
	}
}

func TestCompress_I64(t *testing.T) {
	tests := []struct {
		name string
		data []int64
		mask []bool
		want []int64
	}{
		{name: "keep", data: []int64{7, 8}, mask: []bool{true, false}, want: []int64{7, 8}},
		{name: "swap", data: []int64{7, 8}, mask: []bool{false, true}, want: []int64{8, 7}},
		{name: "both", data: []int64{7, 8}, mask: []bool{true, true}, want: []int64{7, 8}},
		{name: "neither", data: []int64{7, 8}, mask: []bool{false, false}, want: []int64{7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compress(LoadU(tt.data), maskFromBools[int64](tt.mask)).Lanes()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompressNot(t *testing.T) {
	data := []float32{1.5, 2.5, 3.5, 4.5}
	v := LoadU(data)
	for bits := 0; bits < 16; bits++ {
		m := maskFromBits[float32](uint64(bits))
		got := CompressNot(v, m).Lanes()
		want := Compress(v, m.Not()).Lanes()
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("mask %#x: CompressNot() = %v, want %v", bits, got, want)
		}
	}
}

func TestCompressBits(t *testing.T) {
	v := LoadU([]int32{10, 20, 30, 40})
	got := CompressBits(v, []byte{0b0101}).Lanes()
	want := []int32{10, 30, 20, 40}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CompressBits() = %v, want %v", got, want)
	}
}

func TestCompressStore(t *testing.T) {
	v := LoadU([]int32{10, 20, 30, 40})
	m := maskFromBools[int32]([]bool{true, false, true, false})
	dst := []int32{-1, -2, -3, -4}
	n := CompressStore(v, m, dst)
	if n != 2 {
		t.Errorf("CompressStore count = %d, want 2", n)
	}
	want := []int32{10, 30, -3, -4}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("CompressStore dst = %v, want %v", dst, want)
	}
}

func TestCompressBlendedStore(t *testing.T) {
	v := LoadU([]int32{10, 20, 30, 40})
	m := maskFromBools[int32]([]bool{false, true, false, true})
	dst := []int32{-1, -2, -3, -4}
	n := CompressBlendedStore(v, m, dst)
	if n != 2 {
		t.Errorf("CompressBlendedStore count = %d, want 2", n)
	}
	want := []int32{20, 40, -3, -4}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("CompressBlendedStore dst = %v, want %v", dst, want)
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		data []int16
		mask []bool
		want []int16
	}{
		{
			name: "alternating",
			data: []int16{1, 2, 3, 4, 0, 0, 0, 0},
			mask: []bool{true, false, true, false, true, false, true, false},
			want: []int16{1, 0, 2, 0, 3, 0, 4, 0},
		},
		{
			name: "all true",
			data: []int16{1, 2, 3, 4, 5, 6, 7, 8},
			mask: []bool{true, true, true, true, true, true, true, true},
			want: []int16{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			name: "all false",
			data: []int16{1, 2, 3, 4, 5, 6, 7, 8},
			mask: []bool{false, false, false, false, false, false, false, false},
			want: []int16{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "tail only",
			data: []int16{9, 8, 0, 0, 0, 0, 0, 0},
			mask: []bool{false, false, false, false, false, false, true, true},
			want: []int16{0, 0, 0, 0, 0, 0, 9, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(LoadU(tt.data), maskFromBools[int16](tt.mask)).Lanes()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpand_InvertsCompress(t *testing.T) {
	data := []uint32{11, 22, 33, 44}
	v := LoadU(data)
	for bits := 0; bits < 16; bits++ {
		m := maskFromBits[uint32](uint64(bits))
		round := Expand(Compress(v, m), m)
		for i := range 4 {
			if !m.Lane(i) {
				continue
			}
			if got := round.Lane(i); got != data[i] {
				t.Fatalf("mask %#x lane %d: got %d, want %d", bits, i, got, data[i])
			}
		}
	}
}

func TestLoadExpand(t *testing.T) {
	src := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	mask := make([]bool, 16)
	mask[2] = true
	mask[3] = true
	mask[10] = true
	got := LoadExpand(maskFromBools[uint8](mask), src).Lanes()
	want := make([]uint8, 16)
	want[2] = 1
	want[3] = 2
	want[10] = 3
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadExpand() = %v, want %v", got, want)
	}
}
