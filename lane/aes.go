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

// This file provides one AES-128 encryption round over a 16-byte block, the
// scalar kernel behind the backends' AESRound and AESLastRound. The block
// layout follows FIPS 197 as the AES instructions see it: byte i of the
// register holds state row i%4, column i/4.

var aesSbox [256]byte

func init() {
	// Walk the nonzero field elements as powers of the generator 3 while q
	// tracks the matching inverse, then apply the affine transform.
	p, q := byte(1), byte(1)
	for {
		p = p ^ (p << 1) ^ (byte(int8(p)>>7) & 0x1B)
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		q ^= byte(int8(q)>>7) & 0x09
		aesSbox[p] = q ^ rotl8(q, 1) ^ rotl8(q, 2) ^ rotl8(q, 3) ^ rotl8(q, 4) ^ 0x63
		if p == 1 {
			break
		}
	}
	// Zero has no inverse; the affine constant stands alone.
	aesSbox[0] = 0x63
}

func rotl8(x byte, n uint) byte {
	return x<<n | x>>(8-n)
}

// xtime multiplies by 2 in GF(2^8) with the AES reduction polynomial.
func xtime(x byte) byte {
	return x<<1 ^ (byte(int8(x)>>7) & 0x1B)
}

// AESRoundBlock applies SubBytes, ShiftRows, MixColumns and AddRoundKey to
// one 16-byte block.
func AESRoundBlock(block, roundKey *[16]byte) [16]byte {
	s := subShift(block)
	var out [16]byte
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		out[4*c] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3
		out[4*c+1] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3
		out[4*c+2] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3
		out[4*c+3] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3)
	}
	for i := range out {
		out[i] ^= roundKey[i]
	}
	return out
}

// AESLastRoundBlock is AESRoundBlock without MixColumns, matching the final
// round of the cipher.
func AESLastRoundBlock(block, roundKey *[16]byte) [16]byte {
	out := subShift(block)
	for i := range out {
		out[i] ^= roundKey[i]
	}
	return out
}

// subShift performs SubBytes then ShiftRows. Row r of the state is bytes
// r, r+4, r+8, r+12; ShiftRows rotates it left by r columns.
func subShift(block *[16]byte) [16]byte {
	var s [16]byte
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r+4*c] = aesSbox[block[r+4*((c+r)%4)]]
		}
	}
	return s
}
