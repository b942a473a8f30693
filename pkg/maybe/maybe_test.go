package maybe

import (
	"testing"
)

func TestJust_IsPresent(t *testing.T) {
	t.Parallel()
	m := Just(42)
	if !m.IsPresent() || m.IsNone() {
		t.Fatalf("expected present, got present=%v none=%v", m.IsPresent(), m.IsNone())
	}
	if m.Value() != 42 {
		t.Fatalf("expected value 42, got %v", m.Value())
	}
}

func TestJust_ZeroValueIsPresent(t *testing.T) {
	t.Parallel()

	// a successfully computed zero must never read as absence
	m := Just(0)
	if !m.IsPresent() {
		t.Fatalf("Just(0) must be present")
	}
	v, ok := m.Get()
	if !ok || v != 0 {
		t.Fatalf("expected (0, true), got (%v, %v)", v, ok)
	}

	s := Just("")
	if !s.IsPresent() {
		t.Fatalf("Just(\"\") must be present")
	}
}

func TestNone_IsAbsent(t *testing.T) {
	t.Parallel()
	m := None[int]()
	if m.IsPresent() || !m.IsNone() {
		t.Fatalf("expected absent, got present=%v none=%v", m.IsPresent(), m.IsNone())
	}
	v, ok := m.Get()
	if ok || v != 0 {
		t.Fatalf("expected zero value and false, got (%v, %v)", v, ok)
	}
}

func TestGet_Idempotent(t *testing.T) {
	t.Parallel()

	m := Just(7)
	v1, ok1 := m.Get()
	v2, ok2 := m.Get()
	if v1 != v2 || ok1 != ok2 {
		t.Fatalf("Get must be stable: (%v,%v) vs (%v,%v)", v1, ok1, v2, ok2)
	}

	n := None[int]()
	_, okA := n.Get()
	_, okB := n.Get()
	if okA || okB {
		t.Fatalf("Get on absent must report false every time")
	}
}

func TestNoneFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	src := None[int]()
	out := NoneFrom[int, string](src)

	if out.IsPresent() {
		t.Fatalf("expected absence to propagate")
	}
	if out.Id() != src.Id() {
		t.Fatalf("expected id to survive the type switch: %v vs %v", out.Id(), src.Id())
	}
	if !out.CreatedAt().Equal(src.CreatedAt()) {
		t.Fatalf("expected createdAt to survive the type switch")
	}
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	v := 11
	m := FromPtr(&v)
	if !m.IsPresent() || m.Value() != 11 {
		t.Fatalf("expected present 11, got present=%v val=%v", m.IsPresent(), m.Value())
	}

	var p *int
	n := FromPtr(p)
	if !n.IsNone() {
		t.Fatalf("nil pointer must map to absence")
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	if got := Just(3).OrElse(9); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := None[int]().OrElse(9); got != 9 {
		t.Fatalf("expected fallback 9, got %v", got)
	}
}
