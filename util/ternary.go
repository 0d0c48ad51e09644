package util

// Tern picks a when cond holds, b otherwise.
func Tern[T any](cond bool, a T, b T) T {
	if cond {
		return a
	}
	return b
}
