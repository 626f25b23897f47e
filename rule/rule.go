package rule

// Rule transforms or checks a single raw value at construction time.
//
// A normalizer returns the (possibly adjusted) value and a nil error; it must
// be total. A validator returns its input unchanged, or a *Error describing
// the failing condition and the offending value.
type Rule[T any] func(T) (T, error)

// Rules composes rules into a single rule applied in listed order.
// Preferred over repeated Apply calls when the same pipeline guards every
// construction of a wrapper type: define it once as a package-level variable
// and share it freely, rules carry no mutable state.
func Rules[T any](rules ...Rule[T]) Rule[T] {
	return func(value T) (T, error) {
		return Apply(value, rules...)
	}
}

// Apply runs each rule against value in strict left-to-right order.
// Normalizers replace the working value; the first validator failure aborts
// the whole pipeline and is returned as-is. Ordering is caller-determined and
// order-sensitive: Apply(" ab ", TrimSpace, MinLength(3)) fails while
// Apply(" ab ", MinLength(3)) passes.
func Apply[T any](value T, rules ...Rule[T]) (T, error) {
	result := value

	for _, r := range rules {
		next, err := r(result)
		if err != nil {
			return result, err
		}
		result = next
	}

	return result, nil
}

// Normalize lifts a total transformation into a Rule that never fails.
func Normalize[T any](fn func(T) T) Rule[T] {
	return func(value T) (T, error) {
		return fn(value), nil
	}
}

// ValidOnlyIf builds a validator that passes the value through unchanged when
// cond holds and fails the pipeline with message otherwise.
func ValidOnlyIf[T any](cond func(T) bool, message string) Rule[T] {
	return func(value T) (T, error) {
		if !cond(value) {
			return value, &Error{Value: value, Message: message}
		}
		return value, nil
	}
}

// ValidUnless is the negation of ValidOnlyIf: the value is rejected when cond
// holds.
func ValidUnless[T any](cond func(T) bool, message string) Rule[T] {
	return func(value T) (T, error) {
		if cond(value) {
			return value, &Error{Value: value, Message: message}
		}
		return value, nil
	}
}
