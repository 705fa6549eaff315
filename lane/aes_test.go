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

package lane

import "testing"

func TestAESSbox(t *testing.T) {
	// Spot values from the FIPS 197 S-box table.
	tests := []struct {
		in, out byte
	}{
		{0x00, 0x63},
		{0x01, 0x7C},
		{0x53, 0xED},
		{0x9A, 0xB8},
		{0xFF, 0x16},
	}
	for _, tt := range tests {
		if got := aesSbox[tt.in]; got != tt.out {
			t.Errorf("sbox[0x%02X]: got 0x%02X, want 0x%02X", tt.in, got, tt.out)
		}
	}
}

func TestAESSboxBijective(t *testing.T) {
	var seen [256]bool
	for _, v := range aesSbox {
		if seen[v] {
			t.Fatalf("sbox value 0x%02X repeats", v)
		}
		seen[v] = true
	}
}

func TestAESRoundBlock_ZeroState(t *testing.T) {
	// SubBytes maps 0x00 to 0x63 in every position; a uniform state is a
	// fixed point of ShiftRows and MixColumns, and the zero key keeps it.
	var state, key [16]byte
	got := AESRoundBlock(&state, &key)
	for i, b := range got {
		if b != 0x63 {
			t.Errorf("byte %d: got 0x%02X, want 0x63", i, b)
		}
	}
}

func TestAESRoundBlock_FIPS197(t *testing.T) {
	// Round 1 of the appendix B example: plaintext 00112233445566778899aabbccddeeff
	// under key 000102030405060708090a0b0c0d0e0f.
	state := [16]byte{
		0x00, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70,
		0x80, 0x90, 0xA0, 0xB0, 0xC0, 0xD0, 0xE0, 0xF0,
	}
	roundKey := [16]byte{
		0xD6, 0xAA, 0x74, 0xFD, 0xD2, 0xAF, 0x72, 0xFA,
		0xDA, 0xA6, 0x78, 0xF1, 0xD6, 0xAB, 0x76, 0xFE,
	}
	want := [16]byte{
		0x89, 0xD8, 0x10, 0xE8, 0x85, 0x5A, 0xCE, 0x68,
		0x2D, 0x18, 0x43, 0xD8, 0xCB, 0x12, 0x8F, 0xE4,
	}
	got := AESRoundBlock(&state, &roundKey)
	if got != want {
		t.Errorf("round output:\n got %x\nwant %x", got, want)
	}
}

func TestAESLastRoundBlock(t *testing.T) {
	// No MixColumns: 0,1,...,15 becomes SubBytes values routed by ShiftRows.
	var state [16]byte
	for i := range state {
		state[i] = byte(i)
	}
	var key [16]byte
	want := [16]byte{
		0x63, 0x6B, 0x67, 0x76, 0xF2, 0x01, 0xAB, 0x7B,
		0x30, 0xD7, 0x77, 0xC5, 0xFE, 0x7C, 0x6F, 0x2B,
	}
	got := AESLastRoundBlock(&state, &key)
	if got != want {
		t.Errorf("last round:\n got %x\nwant %x", got, want)
	}
}

func TestAESRoundBlock_KeyXor(t *testing.T) {
	// The round key enters by XOR after the permutation, so changing only
	// the key flips exactly those bits.
	var state [16]byte
	key1 := [16]byte{0x00}
	key2 := [16]byte{0xA5}
	a := AESRoundBlock(&state, &key1)
	b := AESRoundBlock(&state, &key2)
	if a[0]^b[0] != 0xA5 {
		t.Errorf("byte 0 difference: got 0x%02X, want 0xA5", a[0]^b[0])
	}
	for i := 1; i < 16; i++ {
		if a[i] != b[i] {
			t.Errorf("byte %d changed without a key difference", i)
		}
	}
}
