package fingerprint

import "testing"

func TestCombine_DeterministicAcrossCalls(t *testing.T) {
	a := Combine(Seed, []byte("guaranteed-const-bytes"))
	b := Combine(Seed, []byte("guaranteed-const-bytes"))
	if a != b {
		t.Fatalf("same input produced different fingerprints: %d vs %d", a, b)
	}
}

func TestCombine_OrderSensitive(t *testing.T) {
	ab := Combine(Combine(Seed, []byte("aa")), []byte("bb"))
	ba := Combine(Combine(Seed, []byte("bb")), []byte("aa"))
	if ab == ba {
		t.Fatalf("fold must be order-sensitive, got equal value %d", ab)
	}
}

func TestCombine_ChunkBoundariesSignificant(t *testing.T) {
	// Folding "ab" then "c" is a different sequence of chunks than "a" then
	// "bc"; the running-value feedback makes the boundary part of identity.
	one := Combine(Combine(Seed, []byte("ab")), []byte("c"))
	two := Combine(Combine(Seed, []byte("a")), []byte("bc"))
	if one == two {
		t.Fatalf("chunk boundary change did not change fingerprint: %d", one)
	}
}

func TestCombine_RunningValueMatters(t *testing.T) {
	a := Combine(1, []byte("x"))
	b := Combine(2, []byte("x"))
	if a == b {
		t.Fatalf("different running values collided: %d", a)
	}
}

func TestRender_SeedIsNotEmpty(t *testing.T) {
	got := Render(Seed)
	if got != "0" {
		t.Fatalf("expected seed rendering %q, got %q", "0", got)
	}
}

func TestRender_Decimal(t *testing.T) {
	if got := Render(18446744073709551615); got != "18446744073709551615" {
		t.Fatalf("unexpected rendering: %q", got)
	}
}
