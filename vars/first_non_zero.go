package vars

// FirstNonZero picks the first set value, so settings can be listed from the
// highest precedence source down to the default.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
