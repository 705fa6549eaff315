package lane

import (
	"os"
	"strconv"
)

// Width identifies one of the fixed backend register widths.
type Width int

const (
	// Width128 selects the 128-bit backend (lane/v128).
	Width128 Width = 128

	// Width512 selects the 512-bit backend (lane/v512).
	Width512 Width = 512
)

// String returns a human-readable name for the width.
func (w Width) String() string {
	switch w {
	case Width128:
		return "v128"
	case Width512:
		return "v512"
	default:
		return "unknown"
	}
}

// Bytes returns the register width in bytes.
func (w Width) Bytes() int {
	return int(w) / 8
}

// preferredWidth is detected by init() in dispatch_*.go files.
var preferredWidth = Width128

// PreferredWidth reports which backend width best matches the host CPU.
// The backends themselves are pure Go and run anywhere; this is advisory,
// for callers that pick an import based on the registers the target
// machine could keep in flight.
func PreferredWidth() Width {
	if w, ok := forcedWidth(); ok {
		return w
	}
	return preferredWidth
}

// ForceWidthEnv is the environment variable that overrides PreferredWidth.
// Accepted values are 128 and 512. Useful for testing and debugging.
const ForceWidthEnv = "LANES_FORCE_WIDTH"

func forcedWidth() (Width, bool) {
	val := os.Getenv(ForceWidthEnv)
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	switch Width(n) {
	case Width128:
		return Width128, true
	case Width512:
		return Width512, true
	}
	return 0, false
}
