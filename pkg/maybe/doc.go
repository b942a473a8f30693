// Package maybe defines Maybe[T], an immutable optional-value container
// used to thread success or failure through a sequence of steps without
// branching at each one.
//
// A Maybe is either present or absent. Absence is absorbing: once a step
// produces None, every later operation passes it through untouched. The
// variants are explicit, so a present zero value is never confused with
// absence.
//
// Construction goes through Just, None, NoneFrom or FromPtr only. Each
// instance carries an id and a UTC creation time and never mutates after
// construction.
package maybe
