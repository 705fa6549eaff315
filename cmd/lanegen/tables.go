package main

import (
	"bytes"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const generatedHeader = "// Code generated by lanegen. DO NOT EDIT."

var titler = cases.Title(language.English)

// tableName builds the generated identifier for a table, e.g.
// tableName(16, "indices") -> "compress16Indices".
func tableName(bits int, kind string) string {
	return fmt.Sprintf("compress%d%s", bits, titler.String(kind))
}

// compressOrder returns the source lane of each packed result lane for
// one mask: lanes with a set mask bit first, the rest following, both in
// ascending lane order.
func compressOrder(mask, lanes int) []int {
	order := make([]int, 0, lanes)
	for i := range lanes {
		if mask>>i&1 != 0 {
			order = append(order, i)
		}
	}
	for i := range lanes {
		if mask>>i&1 == 0 {
			order = append(order, i)
		}
	}
	return order
}

// compress16Rows returns the 256 rows of byte offsets for packing eight
// 16-bit lanes, eight bytes per row.
func compress16Rows() [][]uint8 {
	rows := make([][]uint8, 256)
	for mask := range 256 {
		row := make([]uint8, 0, 8)
		for _, l := range compressOrder(mask, 8) {
			row = append(row, uint8(2*l))
		}
		rows[mask] = row
	}
	return rows
}

// compress32Rows returns the 16 rows of byte offsets for packing four
// 32-bit lanes, sixteen bytes per row.
func compress32Rows() [][]uint8 {
	rows := make([][]uint8, 16)
	for mask := range 16 {
		row := make([]uint8, 0, 16)
		for _, l := range compressOrder(mask, 4) {
			for k := range 4 {
				row = append(row, uint8(4*l+k))
			}
		}
		rows[mask] = row
	}
	return rows
}

// compress64Rows returns, for each 8-bit mask, the packing permutation of
// eight 64-bit lanes with the source of result lane i in nibble i.
func compress64Rows() []uint64 {
	rows := make([]uint64, 256)
	for mask := range 256 {
		var packed uint64
		for i, l := range compressOrder(mask, 8) {
			packed |= uint64(l) << (4 * i)
		}
		rows[mask] = packed
	}
	return rows
}

func renderV128() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n\npackage v128\n\n", generatedHeader)

	name := tableName(16, "indices")
	fmt.Fprintf(&b, "// %s holds, for each 8-bit mask, the byte offsets of the\n", name)
	b.WriteString("// eight 16-bit lanes in packed order: lanes with a set mask bit first,\n")
	b.WriteString("// the rest following, both in ascending lane order. Each byte is twice\n")
	b.WriteString("// the source lane index; applying it widens each entry to the byte pair\n")
	b.WriteString("// [b, b+1].\n")
	fmt.Fprintf(&b, "var %s = [2048]uint8{\n", name)
	for _, row := range compress16Rows() {
		b.WriteByte('\t')
		for i, off := range row {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "0x%02x", off)
		}
		b.WriteString(",\n")
	}
	b.WriteString("}\n\n")

	name = tableName(32, "indices")
	fmt.Fprintf(&b, "// %s holds, for each 4-bit mask, the sixteen byte offsets\n", name)
	b.WriteString("// that pack the four 32-bit lanes: lanes with a set mask bit first, the\n")
	b.WriteString("// rest following, both in ascending lane order.\n")
	fmt.Fprintf(&b, "var %s = [256]uint8{\n", name)
	for _, row := range compress32Rows() {
		b.WriteByte('\t')
		for i, off := range row {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", off)
		}
		b.WriteString(",\n")
	}
	b.WriteString("}\n")
	return b.Bytes()
}

func renderV512() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n\npackage v512\n\n", generatedHeader)

	name := tableName(64, "packed")
	fmt.Fprintf(&b, "// %s holds, for each 8-bit mask, the permutation that packs\n", name)
	b.WriteString("// eight 64-bit lanes: lanes with a set mask bit first, the rest following,\n")
	b.WriteString("// both in ascending lane order. Nibble i (from the low end) is the source\n")
	b.WriteString("// lane of result lane i.\n")
	fmt.Fprintf(&b, "var %s = [256]uint64{\n", name)
	rows := compress64Rows()
	for i := 0; i < len(rows); i += 4 {
		fmt.Fprintf(&b, "\t0x%08x, 0x%08x, 0x%08x, 0x%08x,\n", rows[i], rows[i+1], rows[i+2], rows[i+3])
	}
	b.WriteString("}\n")
	return b.Bytes()
}

// formatSource runs goimports over rendered output so generated files
// match what gofmt would produce.
func formatSource(path string, src []byte) ([]byte, error) {
	return imports.Process(path, src, nil)
}
