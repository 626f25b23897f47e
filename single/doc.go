// Package single turns raw primitives into named, immutable, self-validating
// domain types with minimal boilerplate.
//
// A wrapper type is an ordinary Go defined type over its raw kind:
//
//	type Hostname string
//	type Quantity int
//	type Rating float64
//
// The package supplies generic constructors and operations constrained by the
// underlying kind, so every function returns the caller's concrete type. The
// type argument replaces the self-constructor a generic base class would
// otherwise have to store: rebuilding the concrete type is a conversion.
//
// # Architecture
//
// One file per raw kind (text.go, int.go, long.go, double.go, decimal.go)
// carries the kind's constructor, Must variant, map/flatMap and the kind's
// specific operations; single.go holds the kind-independent Filter/Is/IsNot
// predicates. Everything is a pure function over in-memory values: no state,
// no I/O, no locking, safe under arbitrary concurrency.
//
// Equality, hashing and ordering need no library support. Defined types are
// distinct types, so a UserID and an OrderID with the same raw value cannot
// even be compared — the compiler rejects it, which is stronger than a
// runtime type check. Within one type, ==, map keys and < operate on the raw
// value directly. The one exception is decimal-backed types, whose struct
// representation is scale-sensitive; see decimal.go.
//
// # Usage
//
// Bind a rule pipeline to the type at its definition and funnel every
// construction through it:
//
//	type Hostname string
//
//	var hostnameRules = rule.Rules(
//	    rule.TrimSpace,
//	    rule.MinLength(1),
//	    rule.MaxLength(255),
//	)
//
//	func NewHostname(raw string) (Hostname, error) {
//	    return single.NewText[Hostname](raw, hostnameRules)
//	}
//
// Transformations produce new values of the same concrete type:
//
//	upper := single.MapText(host, strings.ToUpper) // still a Hostname
//	short, ok := single.Filter(host, func(h Hostname) bool {
//	    return single.Length(h) < 32
//	})
//
// Read the raw value only at the boundary to an external system (string(h),
// int(q)); internal logic should stay on the wrapper type.
//
// # Error Handling
//
// Constructors return (zero, error) on validation failure — the wrapper value
// never comes into existence. Must variants panic and are meant for
// package-level values built from known-good literals, in the spirit of
// regexp.MustCompile. Indexing and argument violations (CharAt out of range,
// negative Left/Right lengths) panic, matching string and slice indexing
// semantics: they are caller programming errors, not input validation.
//
// # Immutability Convention
//
// Types built with this package are values in the strict sense: immutable
// after construction, side-effect free and safe to share. Anything carrying
// mutable state or performing I/O does not belong in a wrapper type; keep
// such concerns in ordinary structs and reserve wrapper types for pure data.
package single
