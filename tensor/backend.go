// Copyright 2026 Prism Imaging Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/prism-ml/prism/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go with parallel per-plane kernels
//
// Backends panic on malformed inputs (shape or dtype mismatches).
// Validated error returns belong to the layers above, such as the
// transform package, which check inputs before invoking the backend.
//
// Example:
//
//	import (
//	    "github.com/prism-ml/prism/backend/cpu"
//	    "github.com/prism-ml/prism/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Rand[float32](tensor.Shape{1, 3, 8, 8}, backend)
//	y := x.MulScalar(0.5)  // Uses backend.MulScalar under the hood
type Backend interface {
	// Element-wise binary operations.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, scalar any) *RawTensor // Subtract scalar.
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	DivScalar(x *RawTensor, scalar any) *RawTensor // Divide by scalar.

	// Manipulation operations.
	Cat(tensors []*RawTensor, dim int) *RawTensor // Concatenate along dimension.
	Chunk(x *RawTensor, n, dim int) []*RawTensor  // Split into n equal parts.

	// Resampling operations on [N,C,H,W] tensors.
	AvgPool2D(input *RawTensor, kernelSize, stride int) *RawTensor // 2D average pooling.
	UpsampleBilinear2D(input *RawTensor, scale int) *RawTensor     // Bilinear upsampling by an integer scale.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that the internal Backend matches the public one.
var _ Backend = tensor.Backend(nil)
