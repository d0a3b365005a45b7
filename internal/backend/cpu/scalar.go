package cpu

import (
	"fmt"

	"github.com/prism-ml/prism/internal/tensor"
)

// Scalar operations, element-wise against a single scalar value.
//
// The scalar argument may be the tensor's exact element type or one of
// the common literal types (float64, int); it is coerced to the
// element type before the loop. Color conversion passes float64 matrix
// coefficients to tensors of either float width, so coercion happens
// here rather than at every call site.

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newScalarResult(x, "addScalar")

	switch x.DType() {
	case tensor.Float32:
		addScalarSlices(result.AsFloat32(), x.AsFloat32(), scalarAs[float32](scalar, "addScalar"))
	case tensor.Float64:
		addScalarSlices(result.AsFloat64(), x.AsFloat64(), scalarAs[float64](scalar, "addScalar"))
	case tensor.Int32:
		addScalarSlices(result.AsInt32(), x.AsInt32(), scalarAs[int32](scalar, "addScalar"))
	case tensor.Uint8:
		addScalarSlices(result.AsUint8(), x.AsUint8(), scalarAs[uint8](scalar, "addScalar"))
	default:
		panic(fmt.Sprintf("addScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newScalarResult(x, "subScalar")

	switch x.DType() {
	case tensor.Float32:
		subScalarSlices(result.AsFloat32(), x.AsFloat32(), scalarAs[float32](scalar, "subScalar"))
	case tensor.Float64:
		subScalarSlices(result.AsFloat64(), x.AsFloat64(), scalarAs[float64](scalar, "subScalar"))
	case tensor.Int32:
		subScalarSlices(result.AsInt32(), x.AsInt32(), scalarAs[int32](scalar, "subScalar"))
	case tensor.Uint8:
		subScalarSlices(result.AsUint8(), x.AsUint8(), scalarAs[uint8](scalar, "subScalar"))
	default:
		panic(fmt.Sprintf("subScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newScalarResult(x, "mulScalar")

	switch x.DType() {
	case tensor.Float32:
		mulScalarSlices(result.AsFloat32(), x.AsFloat32(), scalarAs[float32](scalar, "mulScalar"))
	case tensor.Float64:
		mulScalarSlices(result.AsFloat64(), x.AsFloat64(), scalarAs[float64](scalar, "mulScalar"))
	case tensor.Int32:
		mulScalarSlices(result.AsInt32(), x.AsInt32(), scalarAs[int32](scalar, "mulScalar"))
	case tensor.Uint8:
		mulScalarSlices(result.AsUint8(), x.AsUint8(), scalarAs[uint8](scalar, "mulScalar"))
	default:
		panic(fmt.Sprintf("mulScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newScalarResult(x, "divScalar")

	switch x.DType() {
	case tensor.Float32:
		divScalarSlices(result.AsFloat32(), x.AsFloat32(), scalarAs[float32](scalar, "divScalar"))
	case tensor.Float64:
		divScalarSlices(result.AsFloat64(), x.AsFloat64(), scalarAs[float64](scalar, "divScalar"))
	case tensor.Int32:
		divScalarSlices(result.AsInt32(), x.AsInt32(), scalarAs[int32](scalar, "divScalar"))
	case tensor.Uint8:
		divScalarSlices(result.AsUint8(), x.AsUint8(), scalarAs[uint8](scalar, "divScalar"))
	default:
		panic(fmt.Sprintf("divScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

func (cpu *CPUBackend) newScalarResult(x *tensor.RawTensor, op string) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

// scalarAs coerces a scalar argument to the tensor's element type.
func scalarAs[T tensor.DType](scalar any, op string) T {
	switch s := scalar.(type) {
	case float32:
		return T(s)
	case float64:
		return T(s)
	case int32:
		return T(s)
	case uint8:
		return T(s)
	case int:
		return T(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", op, scalar))
	}
}

func addScalarSlices[T tensor.DType](dst, x []T, s T) {
	for i := range dst {
		dst[i] = x[i] + s
	}
}

func subScalarSlices[T tensor.DType](dst, x []T, s T) {
	for i := range dst {
		dst[i] = x[i] - s
	}
}

func mulScalarSlices[T tensor.DType](dst, x []T, s T) {
	for i := range dst {
		dst[i] = x[i] * s
	}
}

func divScalarSlices[T tensor.DType](dst, x []T, s T) {
	for i := range dst {
		dst[i] = x[i] / s
	}
}
