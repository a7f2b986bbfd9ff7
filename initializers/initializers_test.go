package initializers

import (
	"math"
	"testing"

	mn "github.com/sharnoff/multinet"
)

func TestRegistered(t *testing.T) {
	want := []string{"Skip", "None", "Constant", "FlatRandom", "Centered", "GaussNormal", "GaussNormalInverted", "GaussianInverted2"}
	got := mn.List(mn.InitializerFamily)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFixed(t *testing.T) {
	if !Skip().Do(3).IsSkip() {
		t.Error("Skip did not skip")
	}
	if v, ok := None().Do(3).Get(); !ok || v != 0 {
		t.Errorf("None gave %v (%v)", v, ok)
	}
	if v, ok := Constant().Do(-1.5).Get(); !ok || v != -1.5 {
		t.Errorf("Constant gave %v (%v)", v, ok)
	}
}

func TestRanges(t *testing.T) {
	tests := []struct {
		name   string
		param  float64
		lo, hi float64
	}{
		{"FlatRandom", 2, 0, 2},
		{"Centered", 2, -1, 1},
		{"GaussNormal", 0.5, 0, 1},
		{"GaussNormal", 3.7, 0, 1},
		{"GaussNormalInverted", 0.4, 0, 1},
		{"GaussianInverted2", 0.4, 0, 1},
	}

	for _, test := range tests {
		in, err := mn.ResolveInitializer(test.name)
		if err != nil {
			t.Fatal(err)
		}

		for i := 0; i < 2000; i++ {
			v, ok := in.Do(test.param).Get()
			if !ok || v < test.lo || v > test.hi || (test.name != "GaussNormalInverted" && test.name != "GaussianInverted2" && v == test.hi) {
				t.Fatalf("%s(%v) gave %v outside [%v, %v)", test.name, test.param, v, test.lo, test.hi)
			}
		}
	}
}

func TestWrapReflect(t *testing.T) {
	tests := []struct {
		f       func(float64) float64
		name    string
		in, out float64
	}{
		{Wrap, "Wrap", 1.25, 0.25},
		{Wrap, "Wrap", -0.25, 0.75},
		{Reflect, "Reflect", 1.25, 0.75},
		{Reflect, "Reflect", -0.25, 0.25},
		{Reflect, "Reflect", 2.5, 0.5},
	}

	for _, test := range tests {
		if got := test.f(test.in); math.Abs(got-test.out) > 1e-12 {
			t.Errorf("%s(%v) = %v, want %v", test.name, test.in, got, test.out)
		}
	}
}

func TestGaussianInverted2Sides(t *testing.T) {
	var low, high int
	for i := 0; i < 2000; i++ {
		if GaussianInverted2(0.1) < 0.5 {
			low++
		} else {
			high++
		}
	}

	if low == 0 || high == 0 {
		t.Errorf("expected samples near both ends, got %d low and %d high", low, high)
	}
}
