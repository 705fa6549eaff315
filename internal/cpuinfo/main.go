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

// Command cpuinfo reports the host capabilities that feed the width
// advisory: the platform, the width lane.PreferredWidth picks, whether
// LANES_FORCE_WIDTH overrides it, and the raw CPU feature bits behind
// the decision. Run it on a target machine to see which backend a
// width-dispatching caller would get there.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/govec/go-lanes/lane"
)

// A feature is one host capability row in the report.
type feature struct {
	name string
	have bool
}

func main() {
	w := lane.PreferredWidth()
	fmt.Printf("platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("preferred:  %s (%d-byte registers, %d float32 lanes)\n",
		w, w.Bytes(), w.Bytes()/4)
	if val := os.Getenv(lane.ForceWidthEnv); val != "" {
		fmt.Printf("forced:     %s=%s\n", lane.ForceWidthEnv, val)
	}
	fmt.Printf("avx512:     %v\n", lane.HasAVX512())
	fmt.Printf("vector aes: %v\n", lane.HasVectorAES())

	fs := features()
	if len(fs) == 0 {
		fmt.Println("\nno per-feature detail for this architecture")
		return
	}
	fmt.Println("\nhost features:")
	for _, f := range fs {
		fmt.Printf("  %-12s %v\n", f.name, f.have)
	}
}
