// Package cpu implements the CPU backend with parallel per-plane kernels.
package cpu

import (
	"fmt"

	"github.com/prism-ml/prism/internal/parallel"
	"github.com/prism-ml/prism/internal/tensor"
)

// CPUBackend implements tensor operations on CPU. Element-wise kernels
// run as flat loops; the plane kernels (pooling, resampling) fan out
// over a worker pool, one HxW plane per work item.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	par := parallel.DefaultConfig()
	// Work items for the plane kernels are whole images, not elements.
	par.MinChunkSize = 2
	return &CPUBackend{
		device: tensor.CPU,
		par:    par,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition. Shapes and dtypes must match.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newElementwiseResult(a, b, "add")

	switch a.DType() {
	case tensor.Float32:
		addSlices(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		addSlices(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		addSlices(result.AsInt32(), a.AsInt32(), b.AsInt32())
	case tensor.Uint8:
		addSlices(result.AsUint8(), a.AsUint8(), b.AsUint8())
	default:
		panic(fmt.Sprintf("add: unsupported dtype %v", a.DType()))
	}

	return result
}

// Sub performs element-wise subtraction. Shapes and dtypes must match.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newElementwiseResult(a, b, "sub")

	switch a.DType() {
	case tensor.Float32:
		subSlices(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		subSlices(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		subSlices(result.AsInt32(), a.AsInt32(), b.AsInt32())
	case tensor.Uint8:
		subSlices(result.AsUint8(), a.AsUint8(), b.AsUint8())
	default:
		panic(fmt.Sprintf("sub: unsupported dtype %v", a.DType()))
	}

	return result
}

// Mul performs element-wise multiplication. Shapes and dtypes must match.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newElementwiseResult(a, b, "mul")

	switch a.DType() {
	case tensor.Float32:
		mulSlices(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		mulSlices(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		mulSlices(result.AsInt32(), a.AsInt32(), b.AsInt32())
	case tensor.Uint8:
		mulSlices(result.AsUint8(), a.AsUint8(), b.AsUint8())
	default:
		panic(fmt.Sprintf("mul: unsupported dtype %v", a.DType()))
	}

	return result
}

// Div performs element-wise division. Shapes and dtypes must match.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newElementwiseResult(a, b, "div")

	switch a.DType() {
	case tensor.Float32:
		divSlices(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		divSlices(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		divSlices(result.AsInt32(), a.AsInt32(), b.AsInt32())
	case tensor.Uint8:
		divSlices(result.AsUint8(), a.AsUint8(), b.AsUint8())
	default:
		panic(fmt.Sprintf("div: unsupported dtype %v", a.DType()))
	}

	return result
}

// newElementwiseResult validates the operand pair and allocates the
// output tensor for an element-wise binary operation.
func (cpu *CPUBackend) newElementwiseResult(a, b *tensor.RawTensor, op string) *tensor.RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}
