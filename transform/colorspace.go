// Copyright 2026 Prism Imaging Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package transform

import (
	"fmt"

	"github.com/prism-ml/prism/internal/tensor"
	"github.com/prism-ml/prism/internal/transform"
)

// unwrap returns the raw tensor and backend behind t, rejecting nil.
func unwrap[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) (*tensor.RawTensor, B, error) {
	if t == nil {
		var zero B
		return nil, zero, fmt.Errorf("%w: nil tensor, expected (N,3,H,W) or (3,H,W)", ErrInvalidShape)
	}
	return t.Raw(), t.Backend(), nil
}

// RGBToYCbCr converts an RGB image tensor to YCbCr using the ITU-R
// BT.709 coefficients.
//
// The input must be a floating-point tensor of shape (N,3,H,W) or
// (3,H,W) with values in the nominal [0,1] range. The result has the
// same shape and dtype, with Y in [0,1] and Cb, Cr centered on 0.5.
// The input is left unchanged.
//
// Example:
//
//	backend := cpu.New()
//	rgb := tensor.Rand[float32](tensor.Shape{1, 3, 8, 8}, backend)
//	ycbcr, err := transform.RGBToYCbCr(rgb)
func RGBToYCbCr[T tensor.DType, B tensor.Backend](rgb *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return RGBToYCbCrUsing(rgb, BT709)
}

// RGBToYCbCrUsing converts an RGB image tensor to YCbCr with the
// coefficients of the given standard. See RGBToYCbCr for the input
// contract.
func RGBToYCbCrUsing[T tensor.DType, B tensor.Backend](rgb *tensor.Tensor[T, B], std Standard) (*tensor.Tensor[T, B], error) {
	raw, backend, err := unwrap(rgb)
	if err != nil {
		return nil, err
	}
	out, err := transform.RGBToYCbCrUsing(raw, std, backend)
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](out, backend), nil
}

// YCbCrToRGB converts a YCbCr image tensor to RGB using the ITU-R
// BT.709 coefficients. It is the exact inverse of RGBToYCbCr up to
// floating-point rounding.
//
// The input must be a floating-point tensor of shape (N,3,H,W) or
// (3,H,W). The result has the same shape and dtype. The input is
// left unchanged.
func YCbCrToRGB[T tensor.DType, B tensor.Backend](ycbcr *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return YCbCrToRGBUsing(ycbcr, BT709)
}

// YCbCrToRGBUsing converts a YCbCr image tensor to RGB with the
// coefficients of the given standard. See YCbCrToRGB for the input
// contract.
func YCbCrToRGBUsing[T tensor.DType, B tensor.Backend](ycbcr *tensor.Tensor[T, B], std Standard) (*tensor.Tensor[T, B], error) {
	raw, backend, err := unwrap(ycbcr)
	if err != nil {
		return nil, err
	}
	out, err := transform.YCbCrToRGBUsing(raw, std, backend)
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](out, backend), nil
}
