package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// elementWise performs element-wise operations on equal-shape tensors.
func (m *MockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("elementwise op requires equal shapes, got %v and %v", a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("elementwise op requires equal dtypes, got %s and %s", a.DType(), b.DType()))
	}

	result, err := NewRaw(a.Shape(), a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	// Convert to float64 for generic processing
	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	resultData := make([]float64, result.NumElements())

	for i := range resultData {
		resultData[i] = op(aData[i], bData[i])
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// AddScalar adds a scalar to each element.
func (m *MockBackend) AddScalar(x *RawTensor, scalar any) *RawTensor {
	s := toFloat64Scalar(scalar)
	return m.unaryOp(x, func(v float64) float64 { return v + s })
}

// SubScalar subtracts a scalar from each element.
func (m *MockBackend) SubScalar(x *RawTensor, scalar any) *RawTensor {
	s := toFloat64Scalar(scalar)
	return m.unaryOp(x, func(v float64) float64 { return v - s })
}

// MulScalar multiplies each element by a scalar.
func (m *MockBackend) MulScalar(x *RawTensor, scalar any) *RawTensor {
	s := toFloat64Scalar(scalar)
	return m.unaryOp(x, func(v float64) float64 { return v * s })
}

// DivScalar divides each element by a scalar.
func (m *MockBackend) DivScalar(x *RawTensor, scalar any) *RawTensor {
	s := toFloat64Scalar(scalar)
	return m.unaryOp(x, func(v float64) float64 { return v / s })
}

// unaryOp applies op to every element.
func (m *MockBackend) unaryOp(x *RawTensor, op func(float64) float64) *RawTensor {
	result, err := NewRaw(x.Shape(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	xData := m.toFloat64Slice(x)
	resultData := make([]float64, result.NumElements())
	for i := range resultData {
		resultData[i] = op(xData[i])
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// Cat concatenates tensors along the given dimension (naive implementation).
func (m *MockBackend) Cat(tensors []*RawTensor, dim int) *RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	first := tensors[0]
	ndim := len(first.Shape())
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cat: dimension %d out of range for %dD tensor", dim, ndim))
	}

	outShape := first.Shape().Clone()
	for _, t := range tensors[1:] {
		if len(t.Shape()) != ndim || t.DType() != first.DType() {
			panic("cat: tensors must have matching rank and dtype")
		}
		for i := 0; i < ndim; i++ {
			if i != dim && t.Shape()[i] != first.Shape()[i] {
				panic(fmt.Sprintf("cat: shape %v incompatible with %v on dim %d", t.Shape(), first.Shape(), dim))
			}
		}
		outShape[dim] += t.Shape()[dim]
	}

	result, err := NewRaw(outShape, first.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	outerSize := 1
	for i := 0; i < dim; i++ {
		outerSize *= outShape[i]
	}
	innerSize := 1
	for i := dim + 1; i < ndim; i++ {
		innerSize *= outShape[i]
	}

	resultData := make([]float64, result.NumElements())
	offset := 0
	for outer := 0; outer < outerSize; outer++ {
		for _, t := range tensors {
			tData := m.toFloat64Slice(t)
			copyLen := t.Shape()[dim] * innerSize
			copy(resultData[offset:offset+copyLen], tData[outer*copyLen:(outer+1)*copyLen])
			offset += copyLen
		}
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// Chunk splits a tensor into n equal parts along the given dimension.
func (m *MockBackend) Chunk(x *RawTensor, n, dim int) []*RawTensor {
	ndim := len(x.Shape())
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("chunk: dimension %d out of range for %dD tensor", dim, ndim))
	}
	if x.Shape()[dim]%n != 0 {
		panic(fmt.Sprintf("chunk: dimension size %d not divisible by %d", x.Shape()[dim], n))
	}

	partDim := x.Shape()[dim] / n
	partShape := x.Shape().Clone()
	partShape[dim] = partDim

	outerSize := 1
	for i := 0; i < dim; i++ {
		outerSize *= x.Shape()[i]
	}
	innerSize := 1
	for i := dim + 1; i < ndim; i++ {
		innerSize *= x.Shape()[i]
	}

	xData := m.toFloat64Slice(x)
	axisSize := x.Shape()[dim]

	parts := make([]*RawTensor, n)
	for p := 0; p < n; p++ {
		part, err := NewRaw(partShape, x.DType(), m.Device())
		if err != nil {
			panic(err)
		}
		partData := make([]float64, part.NumElements())
		for outer := 0; outer < outerSize; outer++ {
			srcStart := outer*axisSize*innerSize + p*partDim*innerSize
			dstStart := outer * partDim * innerSize
			copy(partData[dstStart:dstStart+partDim*innerSize], xData[srcStart:srcStart+partDim*innerSize])
		}
		m.fromFloat64Slice(partData, part)
		parts[p] = part
	}
	return parts
}

// AvgPool2D performs 2D average pooling (naive implementation for testing).
func (m *MockBackend) AvgPool2D(input *RawTensor, kernelSize, stride int) *RawTensor {
	inputShape := input.Shape()
	if len(inputShape) != 4 {
		panic(fmt.Sprintf("AvgPool2D: expected 4D input [N,C,H,W], got %dD", len(inputShape)))
	}

	N := inputShape[0]
	C := inputShape[1]
	H := inputShape[2]
	W := inputShape[3]

	// Compute output dimensions
	HOut := (H-kernelSize)/stride + 1
	WOut := (W-kernelSize)/stride + 1

	output, err := NewRaw(Shape{N, C, HOut, WOut}, input.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	inputData := m.toFloat64Slice(input)
	outputData := make([]float64, output.NumElements())
	window := float64(kernelSize * kernelSize)

	// Naive average pooling
	for n := 0; n < N; n++ {
		for c := 0; c < C; c++ {
			for outH := 0; outH < HOut; outH++ {
				for outW := 0; outW < WOut; outW++ {
					hStart := outH * stride
					wStart := outW * stride

					sum := 0.0
					for kh := 0; kh < kernelSize; kh++ {
						for kw := 0; kw < kernelSize; kw++ {
							inputIdx := n*C*H*W + c*H*W + (hStart+kh)*W + (wStart + kw)
							sum += inputData[inputIdx]
						}
					}

					outputIdx := n*C*HOut*WOut + c*HOut*WOut + outH*WOut + outW
					outputData[outputIdx] = sum / window
				}
			}
		}
	}

	m.fromFloat64Slice(outputData, output)
	return output
}

// UpsampleBilinear2D upsamples by an integer factor with half-pixel
// sample alignment (naive implementation for testing).
func (m *MockBackend) UpsampleBilinear2D(input *RawTensor, scale int) *RawTensor {
	inputShape := input.Shape()
	if len(inputShape) != 4 {
		panic(fmt.Sprintf("UpsampleBilinear2D: expected 4D input [N,C,H,W], got %dD", len(inputShape)))
	}
	if scale < 1 {
		panic(fmt.Sprintf("UpsampleBilinear2D: scale must be >= 1, got %d", scale))
	}

	N := inputShape[0]
	C := inputShape[1]
	H := inputShape[2]
	W := inputShape[3]
	HOut := H * scale
	WOut := W * scale

	output, err := NewRaw(Shape{N, C, HOut, WOut}, input.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	inputData := m.toFloat64Slice(input)
	outputData := make([]float64, output.NumElements())
	ratio := 1.0 / float64(scale)

	for n := 0; n < N; n++ {
		for c := 0; c < C; c++ {
			plane := inputData[(n*C+c)*H*W:]
			for oh := 0; oh < HOut; oh++ {
				h0, h1, hw := sampleCoord(oh, H, ratio)
				for ow := 0; ow < WOut; ow++ {
					w0, w1, ww := sampleCoord(ow, W, ratio)

					top := (1-ww)*plane[h0*W+w0] + ww*plane[h0*W+w1]
					bot := (1-ww)*plane[h1*W+w0] + ww*plane[h1*W+w1]

					outputIdx := (n*C+c)*HOut*WOut + oh*WOut + ow
					outputData[outputIdx] = (1-hw)*top + hw*bot
				}
			}
		}
	}

	m.fromFloat64Slice(outputData, output)
	return output
}

// sampleCoord maps an output coordinate to a pair of input taps and the
// interpolation weight of the second tap, using half-pixel centers.
// The source coordinate is clamped at the low edge and the second tap
// collapses onto the first at the high edge.
func sampleCoord(out, inSize int, ratio float64) (lo, hi int, frac float64) {
	src := (float64(out)+0.5)*ratio - 0.5
	if src < 0 {
		src = 0
	}
	lo = int(src)
	hi = lo
	if lo < inSize-1 {
		hi = lo + 1
	}
	return lo, hi, src - float64(lo)
}

// Helper functions

func (m *MockBackend) toFloat64Slice(t *RawTensor) []float64 {
	switch t.DType() {
	case Float32:
		src := t.AsFloat32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Float64:
		src := t.AsFloat64()
		dst := make([]float64, len(src))
		copy(dst, src)
		return dst
	case Int32:
		src := t.AsInt32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Uint8:
		src := t.AsUint8()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.DType()))
	}
}

func (m *MockBackend) fromFloat64Slice(src []float64, t *RawTensor) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), src)
	case Int32:
		dst := t.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case Uint8:
		dst := t.AsUint8()
		for i, v := range src {
			dst[i] = uint8(v)
		}
	}
}

// toFloat64Scalar converts a scalar of any supported type to float64.
func toFloat64Scalar(scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int32:
		return float64(s)
	case uint8:
		return float64(s)
	case int:
		return float64(s)
	default:
		panic(fmt.Sprintf("unsupported scalar type: %T", scalar))
	}
}
