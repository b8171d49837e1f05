package testutil

import "testing"

func TestRamp(t *testing.T) {
	r := Ramp(5)
	for i, v := range r {
		if v != float64(i) {
			t.Fatalf("Ramp[%d] = %v, want %d", i, v, i)
		}
	}
	if len(Ramp(0)) != 0 {
		t.Fatal("Ramp(0) should be empty")
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("noise[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicPositive(t *testing.T) {
	p := DeterministicPositive(7, 2.0, 32)
	for i, v := range p {
		if v < 0 || v >= 2 {
			t.Fatalf("p[%d] = %v out of [0,2)", i, v)
		}
	}
}

func TestConstantAndSentinel(t *testing.T) {
	c := Constant(0.5, 3)
	for i, v := range c {
		if v != 0.5 {
			t.Fatalf("c[%d] = %v, want 0.5", i, v)
		}
	}
	s := Sentinel(2)
	if s[0] != s[1] || s[0] == 0 {
		t.Fatalf("unexpected sentinel %v", s)
	}
}
