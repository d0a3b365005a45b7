// Copyright 2026 Prism Imaging Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/prism-ml/prism/internal/backend/cpu"
	"github.com/prism-ml/prism/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of all tensor operations
// with parallel per-plane kernels for the resampling operations.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/prism-ml/prism/backend/cpu"
//	    "github.com/prism-ml/prism/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{1, 3, 8, 8}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
