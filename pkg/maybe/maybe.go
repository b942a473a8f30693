package maybe

import (
	"time"

	"github.com/google/uuid"
)

// Maybe is an explicit two-variant container: a value is present, or it
// is not. A zero or empty value wrapped by Just is still present; absence
// exists only through None, NoneFrom or a nil pointer given to FromPtr.
type Maybe[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	present   bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:     v,
		present:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{
		present:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// NoneFrom propagates absence across a type change, keeping the identity
// of the instance that broke the chain.
func NoneFrom[In, Out any](from Maybe[In]) Maybe[Out] {
	return Maybe[Out]{
		present:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FromPtr treats a nil pointer as absence. This is the only sanctioned
// way to turn a nil sentinel into a Maybe; callers never construct
// absence out of a value directly.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Just(*p)
}

func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

func (m Maybe[T]) IsNone() bool {
	return !m.present
}

func (m Maybe[T]) OrElse(def T) T {
	if m.present {
		return m.value
	}
	return def
}

func (m Maybe[T]) CreatedAt() time.Time {
	return m.createdAt
}

func (m Maybe[T]) Id() uuid.UUID {
	return m.id
}
