// Copyright 2026 Prism Imaging Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the Prism imaging toolkit.
//
// # Overview
//
// Tensors are the fundamental data structure in Prism. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Image-friendly [N,C,H,W] layout with negative dimension indexing
//   - Strict value semantics: no operation writes into its inputs
//   - Device abstraction through the Backend interface
//
// # Basic Usage
//
//	import (
//	    "github.com/prism-ml/prism/backend/cpu"
//	    "github.com/prism-ml/prism/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Rand[float32](tensor.Shape{1, 3, 8, 8}, backend)
//	    y := tensor.Full[float32](tensor.Shape{1, 3, 8, 8}, 0.5, backend)
//
//	    // Tensor operations
//	    z := x.Mul(y).AddScalar(0.1)
//	    planes := x.Chunk(3, -3)  // Split into channel planes
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point, used by the color transforms)
//   - int32 (signed integers)
//   - uint8 (unsigned integers, useful for 8-bit images)
//
// # Available Operations
//
// Element-wise operations:
//
//	z := x.Add(y)            // Element-wise addition
//	z := x.Sub(y)            // Element-wise subtraction
//	z := x.Mul(y)            // Element-wise multiplication
//	z := x.Div(y)            // Element-wise division
//
// Scalar operations:
//
//	y := x.MulScalar(2.0)    // Multiply by scalar
//	y := x.AddScalar(1.0)    // Add scalar
//	y := x.SubScalar(0.5)    // Subtract scalar
//	y := x.DivScalar(2.0)    // Divide by scalar
//
// Manipulation:
//
//	c := tensor.Cat(parts, -3)   // Concatenate along a dimension
//	parts := x.Chunk(3, -3)      // Split into equal parts
//
// Resampling on [N,C,H,W] tensors:
//
//	y := x.AvgPool2D(2, 2)           // 2x2 block averaging
//	y := x.UpsampleBilinear2D(2)     // Bilinear doubling, half-pixel centers
//
// See method documentation for the full list of operations.
package tensor
