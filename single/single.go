package single

// Filter returns the value and true when cond holds for it, or the zero
// value and false otherwise. It is the optional-result counterpart of Is and
// never panics for total predicates.
func Filter[T any](v T, cond func(T) bool) (T, bool) {
	if cond(v) {
		return v, true
	}

	var zero T
	return zero, false
}

// Is reports whether the value satisfies cond. It exists for symmetry with
// Filter in predicate pipelines.
func Is[T any](v T, cond func(T) bool) bool {
	return cond(v)
}

// IsNot is the negation of Is.
func IsNot[T any](v T, cond func(T) bool) bool {
	return !cond(v)
}
