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

package main

import "golang.org/x/sys/cpu"

func features() []feature {
	// Linux exposes these through HWCAP; other OSes may report false
	// even where the silicon has them.
	return []feature{
		{"ASIMD", cpu.ARM64.HasASIMD},
		{"FP", cpu.ARM64.HasFP},
		{"AES", cpu.ARM64.HasAES},
		{"PMULL", cpu.ARM64.HasPMULL},
		{"SHA2", cpu.ARM64.HasSHA2},
		{"CRC32", cpu.ARM64.HasCRC32},
		{"SVE", cpu.ARM64.HasSVE},
	}
}
