// Package solo contains single-value, synchronous primitives that operate
// on Maybe[T]. These functions form the core building blocks for
// short-circuiting pipelines.
//
// Highlights:
// - Wrap/Empty: construct Maybe[T]
// - Bind: apply a Maybe-returning function, short-circuiting on absence
// - Map: transform a present value (total function)
// - Filter: turn a present value failing a predicate into absence
// - Try: call a function (Out, error) and convert error to absence
// - Tee/DoubleTee: side-effect helpers
// - Finally/Extract: reduce to a concrete value
package solo
