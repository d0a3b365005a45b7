package cpu

import (
	"fmt"

	"github.com/prism-ml/prism/internal/tensor"
)

// Cat concatenates tensors along the specified dimension.
//
// All tensors must share dtype and shape except along the
// concatenation dimension. Supports negative dim indexing
// (-1 = last dimension).
//
// Example:
//
//	y := tensor.Zeros[float32](tensor.Shape{1, 4, 4}, backend)
//	u := tensor.Zeros[float32](tensor.Shape{1, 4, 4}, backend)
//	yu := backend.Cat([]*tensor.RawTensor{y.Raw(), u.Raw()}, -3) // Shape: [2, 4, 4]
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	shape := tensors[0].Shape()
	ndim := len(shape)
	dtype := tensors[0].DType()

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cat: dimension %d out of range for %dD tensor", dim, ndim))
	}

	// Validate shapes and sum sizes along the concat dimension.
	totalDim := 0
	for i, t := range tensors {
		tShape := t.Shape()
		if len(tShape) != ndim {
			panic(fmt.Sprintf("cat: tensor %d has %d dimensions, expected %d", i, len(tShape), ndim))
		}
		if t.DType() != dtype {
			panic(fmt.Sprintf("cat: tensor %d has dtype %s, expected %s", i, t.DType(), dtype))
		}
		for d := 0; d < ndim; d++ {
			if d == dim {
				totalDim += tShape[d]
			} else if tShape[d] != shape[d] {
				panic(fmt.Sprintf("cat: tensor %d dimension %d is %d, expected %d", i, d, tShape[d], shape[d]))
			}
		}
	}

	outShape := shape.Clone()
	outShape[dim] = totalDim

	result, err := tensor.NewRaw(outShape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cat: %v", err))
	}

	// Row-major layout makes concatenation a block copy: for each index
	// of the dimensions before dim, every source contributes one
	// contiguous run of shape[dim]*inner bytes. No per-dtype code needed.
	inner := dtype.Size()
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}

	out := result.Data()
	offset := 0
	for o := 0; o < outer; o++ {
		for _, t := range tensors {
			run := t.Shape()[dim] * inner
			copy(out[offset:offset+run], t.Data()[o*run:(o+1)*run])
			offset += run
		}
	}

	return result
}

// Chunk splits a tensor into n equal parts along the specified dimension.
//
// The dimension size must be divisible by n. Supports negative dim
// indexing (-1 = last dimension).
//
// Example:
//
//	img := tensor.Zeros[float32](tensor.Shape{3, 4, 4}, backend)
//	planes := backend.Chunk(img.Raw(), 3, -3) // 3 tensors of shape [1, 4, 4]
func (cpu *CPUBackend) Chunk(x *tensor.RawTensor, n, dim int) []*tensor.RawTensor {
	if n <= 0 {
		panic(fmt.Sprintf("chunk: n must be positive, got %d", n))
	}

	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("chunk: dimension %d out of range for %dD tensor", dim, ndim))
	}

	dimSize := shape[dim]
	if dimSize%n != 0 {
		panic(fmt.Sprintf("chunk: dimension %d size %d not divisible by %d", dim, dimSize, n))
	}
	chunkSize := dimSize / n

	chunkShape := shape.Clone()
	chunkShape[dim] = chunkSize

	inner := x.DType().Size()
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}

	// Inverse of Cat: each source block of dimSize*inner bytes holds n
	// consecutive runs, one per part.
	src := x.Data()
	run := chunkSize * inner
	results := make([]*tensor.RawTensor, n)
	for i := 0; i < n; i++ {
		part, err := tensor.NewRaw(chunkShape, x.DType(), cpu.device)
		if err != nil {
			panic(fmt.Sprintf("chunk: %v", err))
		}
		dst := part.Data()
		for o := 0; o < outer; o++ {
			srcStart := (o*n + i) * run
			copy(dst[o*run:(o+1)*run], src[srcStart:srcStart+run])
		}
		results[i] = part
	}

	return results
}
