package multinet

import (
	"math/rand"
	"testing"
)

func TestErrorMatrixScenario(t *testing.T) {
	em := NewErrorMatrix([]string{"0", "1", "2"})
	em.Add(0, 0)
	em.Add(1, 2)
	em.Add(0, 0)

	for a := range em.Matrix {
		for p := range em.Matrix[a] {
			want := int64(0)
			if a == 0 && p == 0 {
				want = 2
			} else if a == 1 && p == 2 {
				want = 1
			}
			if em.Matrix[a][p] != want {
				t.Errorf("matrix[%d][%d] = %d, want %d", a, p, em.Matrix[a][p], want)
			}
		}
	}

	check := func(name string, got, want []int64) {
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s = %v, want %v", name, got, want)
				return
			}
		}
	}
	check("input", em.Input, []int64{2, 1, 0})
	check("output", em.Output, []int64{2, 0, 1})

	if em.Count != 3 {
		t.Errorf("count = %d, want 3", em.Count)
	}
	if em.MaxInput() != 2 || em.MaxOutput() != 2 {
		t.Errorf("max input/output = %d/%d, want 2/2", em.MaxInput(), em.MaxOutput())
	}
}

func TestErrorMatrixTotals(t *testing.T) {
	const classes = 4
	em := NewErrorMatrix(make([]string, classes))

	var want [classes][classes]int64
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a, p := r.Intn(classes), r.Intn(classes)
		em.Add(a, p)
		want[a][p]++
	}

	if em.Count != 1000 {
		t.Errorf("count = %d, want 1000", em.Count)
	}

	for a := 0; a < classes; a++ {
		var in, out int64
		for p := 0; p < classes; p++ {
			if em.Matrix[a][p] != want[a][p] {
				t.Errorf("matrix[%d][%d] = %d, want %d", a, p, em.Matrix[a][p], want[a][p])
			}
			in += em.Matrix[a][p]
			out += em.Matrix[p][a]
		}

		if em.Input[a] != in {
			t.Errorf("input[%d] = %d, want the row sum %d", a, em.Input[a], in)
		}
		if em.Output[a] != out {
			t.Errorf("output[%d] = %d, want the column sum %d", a, em.Output[a], out)
		}
	}
}

func TestErrorMatrixPair(t *testing.T) {
	a := NewErrorMatrixPair([]string{"x", "y"})
	b := a.Next

	if b == a || b.Next != a {
		t.Fatal("buffers do not form a 2-cycle")
	}

	for i := 0; i < 5; i++ {
		a.Add(i%2, 1)
	}
	if b.Count != 0 || b.MaxInput() != 1 || b.MaxOutput() != 1 {
		t.Error("writing one buffer changed the other")
	}

	a.Clear()
	a.Clear()
	if a.Count != 0 || a.Correct() != 0 {
		t.Error("Clear did not zero the count")
	}
	for i := range a.Matrix {
		if a.Input[i] != 0 || a.Output[i] != 0 || a.Matrix[i][0] != 0 || a.Matrix[i][1] != 0 {
			t.Fatal("Clear did not zero every counter")
		}
	}
}

func TestErrorMatrixCopy(t *testing.T) {
	em := NewErrorMatrix([]string{"x", "y"})
	em.Add(1, 1)
	em.Add(0, 1)

	c := em.Copy()
	em.Clear()

	if c.Count != 2 || c.Matrix[1][1] != 1 || c.Accuracy() != 0.5 {
		t.Error("copy changed with the original")
	}
	if c.Next != c {
		t.Error("copy should be unpaired")
	}
}
