package rng

import "testing"

func TestStreamDeterminism(t *testing.T) {
	a := NewStream("andromeda")
	b := NewStream("andromeda")

	for i := 0; i < 100; i++ {
		if got, want := a.Uint64(), b.Uint64(); got != want {
			t.Fatalf("draw %d diverged: %d != %d", i, got, want)
		}
	}
}

func TestStreamSeedSeparation(t *testing.T) {
	a := NewStream("andromeda")
	b := NewStream("andromedb")

	same := 0
	for i := 0; i < 100; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same > 0 {
		t.Fatalf("streams with different seeds collided on %d of 100 draws", same)
	}
}

func TestForkIsPureWithRespectToDraws(t *testing.T) {
	fresh := NewStream("orion")
	advanced := NewStream("orion")
	for i := 0; i < 57; i++ {
		advanced.Uint64()
	}

	a := fresh.Fork("belt:sys-1")
	b := advanced.Fork("belt:sys-1")
	for i := 0; i < 20; i++ {
		if got, want := b.Uint64(), a.Uint64(); got != want {
			t.Fatalf("fork after draws diverged at %d", i)
		}
	}
}

func TestForkOrderIndependence(t *testing.T) {
	collect := func(s *Stream) uint64 { return s.Uint64() }

	first := NewStream("orion")
	beltThenComet := []uint64{collect(first.Fork("belt:x")), collect(first.Fork("comet:x"))}

	second := NewStream("orion")
	cometThenBelt := []uint64{collect(second.Fork("comet:x")), collect(second.Fork("belt:x"))}

	if beltThenComet[0] != cometThenBelt[1] || beltThenComet[1] != cometThenBelt[0] {
		t.Fatal("sibling forks depend on creation order")
	}
}

func TestForkLabelSeparation(t *testing.T) {
	s := NewStream("orion")
	if s.Fork("ring:a").Uint64() == s.Fork("ring:b").Uint64() {
		t.Fatal("distinct labels produced identical child streams")
	}
}

func TestFloat64Range(t *testing.T) {
	s := NewStream("range-check")
	for i := 0; i < 10000; i++ {
		f := s.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", f)
		}
	}
}

func TestIntnEdgeCases(t *testing.T) {
	s := NewStream("intn")
	if got := s.Intn(0); got != 0 {
		t.Fatalf("Intn(0) = %d, want 0", got)
	}
	if got := s.Intn(-5); got != 0 {
		t.Fatalf("Intn(-5) = %d, want 0", got)
	}
	for i := 0; i < 1000; i++ {
		if got := s.Intn(7); got < 0 || got > 6 {
			t.Fatalf("Intn(7) out of range: %d", got)
		}
	}
}

func TestDeriveStability(t *testing.T) {
	base := SeedFromString("pillars")
	if Derive(base, "child") != Derive(base, "child") {
		t.Fatal("Derive is not deterministic")
	}
	if Derive(base, "child") == Derive(base, "other") {
		t.Fatal("Derive ignores the label")
	}
	if Derive(base, "child") == Derive(base+1, "child") {
		t.Fatal("Derive ignores the base seed")
	}
}
