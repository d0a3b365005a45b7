// Copyright 2026 Prism Imaging Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/prism-ml/prism/internal/tensor"
	"github.com/prism-ml/prism/internal/transform"
)

// Standard selects the matrix coefficients used when converting
// between RGB and YCbCr.
type Standard = transform.Standard

// Supported conversion standards.
const (
	// BT709 selects the ITU-R BT.709 coefficients used for HD video.
	// It is the default for all conversions in this package.
	BT709 Standard = transform.BT709

	// BT601 selects the ITU-R BT.601 coefficients used for SD video.
	BT601 Standard = transform.BT601
)

// Weights holds the luma coefficients Kr, Kg, Kb of a conversion
// standard. The three weights sum to one.
type Weights = transform.Weights

// Planes holds the raw Y, U and V planes of a planar YUV image.
// Each plane has shape (N,1,H,W); in a 4:2:0 image the U and V
// planes are half the luma resolution in both dimensions.
type Planes = transform.Planes

// Sentinel errors reported by the transform operations. Match them
// with errors.Is; the wrapped message carries the rejected detail.
var (
	// ErrInvalidShape reports an input tensor whose dtype or shape
	// does not match the layout an operation expects.
	ErrInvalidShape = transform.ErrInvalidShape

	// ErrInvalidTriple reports a plane set that is not exactly three
	// non-nil tensors.
	ErrInvalidTriple = transform.ErrInvalidTriple
)

// PlanesFromSlice builds a Planes value from a slice of exactly three
// non-nil raw tensors in Y, U, V order.
func PlanesFromSlice(tensors []*tensor.RawTensor) (Planes, error) {
	return transform.PlanesFromSlice(tensors)
}

// RGBToYCbCrRaw converts a packed RGB image to YCbCr at the raw
// tensor level, with an explicit conversion standard and backend.
func RGBToYCbCrRaw(rgb *tensor.RawTensor, std Standard, backend tensor.Backend) (*tensor.RawTensor, error) {
	return transform.RGBToYCbCrUsing(rgb, std, backend)
}

// YCbCrToRGBRaw converts a packed YCbCr image to RGB at the raw
// tensor level, with an explicit conversion standard and backend.
func YCbCrToRGBRaw(ycbcr *tensor.RawTensor, std Standard, backend tensor.Backend) (*tensor.RawTensor, error) {
	return transform.YCbCrToRGBUsing(ycbcr, std, backend)
}

// YUV444To420Raw subsamples a packed 4:4:4 image of shape (N,3,H,W)
// into a 4:2:0 plane triple at the raw tensor level.
func YUV444To420Raw(yuv *tensor.RawTensor, backend tensor.Backend) (Planes, error) {
	return transform.YUV444To420(yuv, backend)
}

// YUV420To444Raw upsamples a 4:2:0 plane triple into a packed 4:4:4
// image of shape (N,3,H,W) at the raw tensor level.
func YUV420To444Raw(p Planes, backend tensor.Backend) (*tensor.RawTensor, error) {
	return transform.YUV420To444(p, backend)
}
