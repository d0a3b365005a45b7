// Copyright 2026 Prism Imaging Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32, Float64, Int32 and Uint8 support
//   - Batched processing of [N,C,H,W] image tensors
//   - Parallel per-plane kernels for pooling and upsampling
//
// # Basic Usage
//
//	import (
//	    "github.com/prism-ml/prism/backend/cpu"
//	    "github.com/prism-ml/prism/tensor"
//	    "github.com/prism-ml/prism/transform"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with tensors
//	    x := tensor.Rand[float32](tensor.Shape{1, 3, 8, 8}, backend)
//	    y := x.MulScalar(0.5)
//
//	    // Use with the color transforms
//	    ycbcr, err := transform.RGBToYCbCr(x)
//	}
//
// # Performance
//
// The resampling kernels split work by image plane: each (batch,
// channel) pair is an independent work item dispatched across
// GOMAXPROCS workers. Small inputs run sequentially to avoid
// goroutine overhead.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// allocates its own output and does not share mutable state.
package cpu
