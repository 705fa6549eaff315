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

//go:build amd64

package lane

import "golang.org/x/sys/cpu"

func init() {
	// AVX-512F is the baseline for every 512-bit x86 target; the wider
	// advisory only makes sense where a 512-bit register file exists.
	if cpu.X86.HasAVX512F {
		preferredWidth = Width512
	}
}

// HasAVX512 reports whether the host exposes the AVX-512 foundation set.
func HasAVX512() bool {
	return cpu.X86.HasAVX512F
}

// HasVectorAES reports whether the host could run the crypto vocabulary
// (AESRound, CLMul) natively. The Go implementation is always available.
func HasVectorAES() bool {
	return cpu.X86.HasAES && cpu.X86.HasPCLMULQDQ
}
