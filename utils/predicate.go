package utils

// FromEnd resolves a possibly negative index against a sequence of length n,
// -1 being the last element.
func FromEnd(idx, n int) int {
	if idx < 0 {
		return n + idx
	}

	return idx
}
