// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Maybe[T] values.
//
// It composes solo primitives behind a convenient Chain[T] type, so a
// pipeline reads as a straight sequence of steps while absence
// short-circuits everything after the step that produced it.
//
// Key operations:
// - Start/FromValue: begin a chain from a Maybe[T] or value
// - Then: compose a Maybe-returning step
// - Map/Filter: transform or gate the present value
// - Ensure: trigger side effects without changing the result
// - Finally/OrElse: collapse the chain into a concrete value
//
// The package-level Then, Map and Finally cover hops that change the
// value type.
package chain
