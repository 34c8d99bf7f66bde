package asteroids

import "testing"

func TestSimpleRNGDeterminism(t *testing.T) {
	a := NewSimpleRNG(99)
	b := NewSimpleRNG(99)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	if NewSimpleRNG(0).State() != NewSimpleRNG(1).State() {
		t.Error("zero seed should be replaced by 1")
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(3)
	for i := 0; i < 10000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, outside [0, 1)", f)
		}
	}
}
