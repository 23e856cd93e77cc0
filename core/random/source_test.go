package random

import (
	"testing"
	"time"
)

func TestSourceDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 10; i++ {
		da, db := a.Duration(time.Second, 5*time.Second), b.Duration(time.Second, 5*time.Second)
		if da != db {
			t.Fatalf("draw %d differs: %s vs %s", i, da, db)
		}
	}
	if a.Seed() != 42 {
		t.Fatalf("expected seed 42, got %d", a.Seed())
	}
}

func TestSourceDurationBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		d := s.Duration(4*time.Second, 8*time.Second)
		if d < 4*time.Second || d >= 8*time.Second {
			t.Fatalf("duration %s out of [4s, 8s)", d)
		}
	}
}

func TestSourceDegenerateBounds(t *testing.T) {
	s := New(1)
	if d := s.Duration(4*time.Second, 4*time.Second); d != 4*time.Second {
		t.Fatalf("expected 4s, got %s", d)
	}
	if d := s.Duration(4*time.Second, time.Second); d != 4*time.Second {
		t.Fatalf("expected 4s, got %s", d)
	}
}

func TestSourceZeroSeed(t *testing.T) {
	if New(0).Seed() == 0 {
		t.Fatal("expected a time-based seed")
	}
}
