// Package rule provides a composable validation and normalization pipeline
// for raw values, applied once when a wrapper type is constructed.
//
// A Rule either normalizes its input (a total transformation that cannot
// fail) or validates it (a predicate that rejects the value with a
// descriptive error). Rules compose left-to-right with Rules and are
// evaluated with Apply, which short-circuits on the first validator failure
// and otherwise returns the final, possibly normalized, value.
//
// # Architecture
//
// Each source file groups factories for a family of raw kinds: string.go for
// text, numeric.go for the generic Numeric constraint, float.go for
// floating-point specifics (finiteness, rounding), decimal.go for
// arbitrary-precision values, format.go for structured-text formats (email,
// URL, UUID), and choice.go for membership checks. Every factory returns a
// plain Rule value; the package holds no global state, so rules are safe to
// define once and evaluate concurrently from any number of goroutines.
//
// Core building blocks:
//   - Rule[T]                    – func(T) (T, error), normalizer or validator
//   - Rules / Apply              – composition and left-to-right evaluation
//   - Normalize                  – lifts a func(T) T into a Rule
//   - ValidOnlyIf / ValidUnless  – predicate-to-validator adapters
//   - Error                     – failing condition plus offending value
//
// # Usage
//
// A pipeline is typically bound to a wrapper type at its definition:
//
//	var hostnameRules = rule.Rules(
//	    rule.TrimSpace,
//	    rule.MinLength(1),
//	    rule.MaxLength(255),
//	)
//
//	normalized, err := rule.Apply("  host.example.com  ", hostnameRules)
//	// normalized == "host.example.com"
//
// Evaluation order is strictly the listed order and deliberately
// order-sensitive: trimming before a length check and after it are different
// pipelines. The package never reorders rules.
//
// # Error Handling
//
// Validator failures are reported as *Error carrying the offending value and
// the failing condition. Use IsValidationError or AsValidationError to detect
// and inspect them through wrapped error chains.
//
// # Performance Considerations
//
// Rules are small closures over their parameters; pattern rules compile their
// regular expression once at definition time. Evaluation allocates nothing on
// the success path beyond what the normalizers themselves produce.
package rule
