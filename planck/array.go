package planck

import "fmt"

// Array is a scalar, vector, or higher-rank grid of float64 values
// stored in row-major order. A nil shape marks a scalar; the dispatch
// of output shapes depends on whether each input was originally scalar
// or array-valued.
type Array struct {
	data  []float64
	shape []int
}

// Scalar wraps a single value.
func Scalar(v float64) Array {
	return Array{data: []float64{v}}
}

// Vector wraps a 1-D sequence of values. The slice is copied.
func Vector(values []float64) Array {
	data := append([]float64(nil), values...)

	return Array{data: data, shape: []int{len(data)}}
}

// Grid wraps a row-major 2-D grid with the given dimensions. The slice
// is copied.
func Grid(values []float64, rows, cols int) (Array, error) {
	if rows <= 0 || cols <= 0 || rows*cols != len(values) {
		return Array{}, fmt.Errorf("%w: %d values for %dx%d grid", ErrInvalidShape, len(values), rows, cols)
	}

	data := append([]float64(nil), values...)

	return Array{data: data, shape: []int{rows, cols}}, nil
}

// IsScalar reports whether the array holds a single unshaped value.
func (a Array) IsScalar() bool {
	return a.shape == nil
}

// Rank returns the number of dimensions; 0 for a scalar.
func (a Array) Rank() int {
	return len(a.shape)
}

// Shape returns a copy of the dimensions; nil for a scalar.
func (a Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Len returns the total element count.
func (a Array) Len() int {
	return len(a.data)
}

// Float returns the value of a scalar (or the first element otherwise).
func (a Array) Float() float64 {
	if len(a.data) == 0 {
		return 0
	}

	return a.data[0]
}

// Values returns a copy of the elements in row-major order.
func (a Array) Values() []float64 {
	return append([]float64(nil), a.data...)
}

// At returns the element at the given multi-dimensional index. The
// number of indices must match the rank; a scalar takes no indices.
func (a Array) At(idx ...int) float64 {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("planck: %d indices for rank-%d array", len(idx), len(a.shape)))
	}

	offset := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("planck: index %d out of range for dimension %d (size %d)", i, d, a.shape[d]))
		}

		offset = offset*a.shape[d] + i
	}

	return a.data[offset]
}

// resultShape maps the scalar-ness and lengths of the two inputs to
// the shape of the radiance output:
//
//   - one spectral position, scalar temperature: scalar
//   - one spectral position, temperature array: the temperature shape
//   - many positions, scalar temperature: 1-D spectrum of length posLen
//   - many positions, temperature array: temperature shape with a
//     trailing spectral axis of length posLen
func resultShape(posLen int, tempScalar bool, tempShape []int) []int {
	if posLen == 1 {
		if tempScalar {
			return nil
		}

		return append([]int(nil), tempShape...)
	}

	if tempScalar {
		return []int{posLen}
	}

	return append(append([]int(nil), tempShape...), posLen)
}
