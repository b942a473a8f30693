package maybe

import "time"

type ValueProvider[T any] interface {
	// Value returns the wrapped value (zero value when absent)
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithPresence defines an interface for types that can report whether a
// value is actually there
type WithPresence[T any] interface {
	ValueProvider[T]
	// Get returns the value together with its presence flag
	Get() (T, bool)
	// IsPresent returns true if a value is wrapped
	IsPresent() bool
}
