package lane

// CLMul64 computes the 128-bit carryless (polynomial over GF(2)) product of
// a and b, returned as little-endian halves. The loop is branch-free: each
// iteration widens bit i of b into a full mask.
func CLMul64(a, b uint64) (lo, hi uint64) {
	for i := uint(0); i < 64; i++ {
		mask := uint64(int64(b<<(63-i)) >> 63)
		lo ^= (a << i) & mask
		hi ^= (a >> (64 - i)) & mask
	}
	return lo, hi
}
