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

//go:build arm64

package lane

import "golang.org/x/sys/cpu"

func init() {
	// NEON registers are 128-bit; scalable SVE widths are out of scope,
	// so arm64 always prefers the 128-bit backend.
	preferredWidth = Width128
}

// HasVectorAES reports whether the host could run the crypto vocabulary
// (AESRound, CLMul) natively. The Go implementation is always available.
func HasVectorAES() bool {
	return cpu.ARM64.HasAES && cpu.ARM64.HasPMULL
}

// HasAVX512 reports false on arm64.
func HasAVX512() bool {
	return false
}
