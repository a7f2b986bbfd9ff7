package multinet

// ErrorMatrix is a confusion matrix, counting how often each actual class was predicted as each
// class.
//
// ErrorMatrices come in pairs: Next points to the other buffer, whose Next points back. The
// training loop only ever writes the buffer its Network currently holds; when a snapshot is taken
// the Network switches to Next and the previous buffer can be read (and then cleared) safely from
// another goroutine. The ErrorMatrix itself does no locking.
type ErrorMatrix struct {
	Classes []string

	// Matrix is indexed by [actual][predicted]
	Matrix [][]int64

	// Input counts each actual class, Output each predicted class
	Input, Output []int64

	Count int64

	Next *ErrorMatrix
}

// NewErrorMatrix returns a single, unpaired ErrorMatrix for the given classes. Its Next is itself.
func NewErrorMatrix(classes []string) *ErrorMatrix {
	n := len(classes)

	em := &ErrorMatrix{
		Classes: classes,
		Matrix:  make([][]int64, n),
		Input:   make([]int64, n),
		Output:  make([]int64, n),
	}

	// one backing array for the whole matrix
	cells := make([]int64, n*n)
	for i := range em.Matrix {
		em.Matrix[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}

	em.Next = em
	return em
}

// NewErrorMatrixPair returns the first of two ErrorMatrices that refer to each other through Next
func NewErrorMatrixPair(classes []string) *ErrorMatrix {
	a, b := NewErrorMatrix(classes), NewErrorMatrix(classes)
	a.Next, b.Next = b, a
	return a
}

// Add counts one example of class 'actual' that was predicted as 'predicted'
func (em *ErrorMatrix) Add(actual, predicted int) {
	em.Input[actual]++
	em.Output[predicted]++
	em.Matrix[actual][predicted]++
	em.Count++
}

// Clear sets every counter to zero
func (em *ErrorMatrix) Clear() {
	for i := range em.Matrix {
		for j := range em.Matrix[i] {
			em.Matrix[i][j] = 0
		}
		em.Input[i] = 0
		em.Output[i] = 0
	}

	em.Count = 0
}

// MaxInput returns the highest count of any actual class, or 1 if that would be smaller
func (em *ErrorMatrix) MaxInput() int64 {
	return maxAtLeastOne(em.Input)
}

// MaxOutput returns the highest count of any predicted class, or 1 if that would be smaller
func (em *ErrorMatrix) MaxOutput() int64 {
	return maxAtLeastOne(em.Output)
}

func maxAtLeastOne(counts []int64) int64 {
	var m int64 = 1
	for _, c := range counts {
		if c > m {
			m = c
		}
	}
	return m
}

// Correct returns the number of examples on the diagonal of the matrix
func (em *ErrorMatrix) Correct() int64 {
	var sum int64
	for i := range em.Matrix {
		sum += em.Matrix[i][i]
	}
	return sum
}

// Accuracy returns the fraction of counted examples that were predicted correctly
func (em *ErrorMatrix) Accuracy() float64 {
	if em.Count == 0 {
		return 0
	}
	return float64(em.Correct()) / float64(em.Count)
}

// Copy returns an unpaired deep copy of the ErrorMatrix
func (em *ErrorMatrix) Copy() *ErrorMatrix {
	c := NewErrorMatrix(em.Classes)
	for i := range em.Matrix {
		copy(c.Matrix[i], em.Matrix[i])
	}
	copy(c.Input, em.Input)
	copy(c.Output, em.Output)
	c.Count = em.Count
	return c
}
