package cpu

import "github.com/prism-ml/prism/internal/tensor"

// Flat slice kernels behind the element-wise entry points in
// backend.go. Dispatch on DataType happens once per call; the loops
// are instantiated per element type and compile to tight code.

// floats constrains kernels that only make sense on floating-point
// data, such as pooling and bilinear resampling.
type floats interface {
	~float32 | ~float64
}

func addSlices[T tensor.DType](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subSlices[T tensor.DType](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulSlices[T tensor.DType](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divSlices[T tensor.DType](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}
