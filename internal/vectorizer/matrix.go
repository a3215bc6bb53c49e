package vectorizer

// Vector holds token counts for one document, indexed by vocabulary column.
type Vector []int

// Matrix holds one count Vector per document.
type Matrix []Vector

// NewMatrix allocates a zeroed rows x cols matrix backed by a single buffer.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	buf := make([]int, rows*cols)
	for i := range m {
		m[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

// Rows returns the number of documents.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the row width, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Sum returns the total number of counted tokens in the vector.
func (v Vector) Sum() int {
	total := 0
	for _, c := range v {
		total += c
	}
	return total
}

// Nnz returns the number of non-zero entries.
func (v Vector) Nnz() int {
	n := 0
	for _, c := range v {
		if c != 0 {
			n++
		}
	}
	return n
}
