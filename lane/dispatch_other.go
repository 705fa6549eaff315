//go:build !amd64 && !arm64

package lane

// Unknown architectures keep the 128-bit default.

// HasAVX512 reports false when the architecture is not x86-64.
func HasAVX512() bool {
	return false
}

// HasVectorAES reports false when CPU feature detection is unavailable.
func HasVectorAES() bool {
	return false
}
