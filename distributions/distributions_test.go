package distributions

import (
	"testing"

	mn "github.com/sharnoff/multinet"
)

func TestOrder(t *testing.T) {
	want := []string{"Constant", "FlatRandom", "GaussNormal", "GaussNormalInverted"}
	got := mn.List(mn.DistributionFamily)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRanges(t *testing.T) {
	for _, name := range mn.List(mn.DistributionFamily) {
		d, err := mn.ResolveDistribution(name)
		if err != nil {
			t.Fatal(err)
		}
		p, _ := mn.DefaultParam(mn.DistributionFamily, name)

		for i := 0; i < 1000; i++ {
			if v := d.Do(p); v < 0 || v > 1 {
				t.Fatalf("%s gave %v outside [0, 1]", name, v)
			}
		}
	}
}

func TestConstant(t *testing.T) {
	d, err := mn.ResolveDistribution("Constant")
	if err != nil {
		t.Fatal(err)
	}
	if v := d.Do(0.25); v != 0.25 {
		t.Errorf("got %v, want 0.25", v)
	}
}
