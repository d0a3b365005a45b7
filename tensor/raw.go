// Copyright 2026 Prism Imaging Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/prism-ml/prism/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Type-safe data access via AsFloat32(), AsUint8(), etc.
//   - Deep copies via Clone()
//
// Each RawTensor owns its buffer. Operations allocate fresh output
// tensors and never write into their inputs, so two tensors never
// share memory.
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{1, 3, 8, 8}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()  // Type-safe access
//	clone := raw.Clone()     // Independent deep copy
type RawTensor = tensor.RawTensor
