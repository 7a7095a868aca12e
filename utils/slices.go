package utils

// Rest returns s without its first n elements.
func Rest[Slice ~[]T, T any](s Slice, n int) Slice {
	if n >= len(s) {
		return nil
	}

	return s[n:]
}
