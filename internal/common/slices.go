package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Every returns true if predicate holds for all elements. It is false for an empty slice,
// which is what callers dispatching on "all arguments are X" want.
func Every[S ~[]E, E any](s S, predicate func(E) bool) bool {
	if len(s) == 0 {
		return false
	}

	for _, e := range s {
		if !predicate(e) {
			return false
		}
	}

	return true
}
