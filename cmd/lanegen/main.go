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

// Command lanegen generates the compress permutation tables the backend
// packages embed as tables_gen.go.
//
// Usage:
//
//	lanegen -width v128 -out lane/v128
//	lanegen -width v512 -out lane/v512
//	lanegen -width v128 -out lane/v128 -check   # verify instead of write
//
// Or via go:generate from inside a backend package:
//
//	//go:generate go run ../../cmd/lanegen -width v128 -out .
//
// The tables map every lane mask to the permutation that packs selected
// lanes in front of the rest; Compress looks its mask up instead of
// branching per lane. Table contents depend only on the mask width and
// lane count, so regeneration is deterministic.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var (
	width  = flag.String("width", "", "Backend to generate tables for: v128 or v512 (required)")
	outDir = flag.String("out", ".", "Directory receiving tables_gen.go")
	check  = flag.Bool("check", false, "Verify the existing file is current instead of writing")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lanegen: ")
	flag.Parse()

	if *width == "" {
		fmt.Fprintf(os.Stderr, "Error: -width flag is required\n\n")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*width, *outDir, *check); err != nil {
		log.Fatal(err)
	}
}

func run(width, outDir string, check bool) error {
	var render func() []byte
	switch width {
	case "v128":
		render = renderV128
	case "v512":
		render = renderV512
	default:
		return fmt.Errorf("unknown width %q (want v128 or v512)", width)
	}

	path := filepath.Join(outDir, "tables_gen.go")
	src, err := formatSource(path, render())
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}

	if check {
		existing, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("check %s: %w", path, err)
		}
		if !bytes.Equal(existing, src) {
			return fmt.Errorf("%s is stale; rerun lanegen -width %s", path, width)
		}
		log.Printf("%s is current", path)
		return nil
	}

	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("wrote %s", path)
	return nil
}
