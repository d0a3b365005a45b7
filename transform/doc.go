// Copyright 2026 Prism Imaging Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transform provides color transforms for image tensors.
//
// # Overview
//
// This package implements the two transform families used around
// learned image codecs:
//   - RGB <-> YCbCr conversion (ITU-R BT.709 by default, BT.601 optional)
//   - 4:4:4 <-> 4:2:0 chroma resampling (2x2 block averaging down,
//     bilinear doubling with half-pixel centers up)
//
// Images are floating-point tensors of shape (N,3,H,W) or (3,H,W)
// with values in the nominal [0,1] range. The channel axis is always
// the third from the end, so batched and unbatched images share the
// same code path. Chroma resampling works on batched images only.
//
// All operations validate their inputs and return errors for
// malformed ones; they never panic on caller input and never write
// into their input tensors.
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
//	    backend := cpu.New()
//	    rgb := tensor.Rand[float32](tensor.Shape{1, 3, 64, 64}, backend)
//
//	    ycbcr, err := transform.RGBToYCbCr(rgb)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Subsample chroma to 4:2:0 and back
//	    sub, err := transform.YUV444To420(ycbcr)
//	    full, err := transform.YUV420To444(sub)
//
//	    back, err := transform.YCbCrToRGB(full)
//	}
//
// # Conversion Standards
//
// The default coefficients are ITU-R BT.709. Use the Using variants
// to select ITU-R BT.601 instead:
//
//	ycbcr, err := transform.RGBToYCbCrUsing(rgb, transform.BT601)
//
// # Typed and Raw APIs
//
// The generic functions operate on tensor.Tensor[T, B] values and
// carry the backend implicitly. The Raw variants operate on
// tensor.RawTensor with an explicit Standard and Backend, for callers
// working below the typed layer.
//
// # Errors
//
// Malformed inputs are reported with errors wrapping ErrInvalidShape
// (wrong dtype, rank or channel count) or ErrInvalidTriple (a plane
// set that is not exactly three non-nil tensors). Match them with
// errors.Is.
package transform
