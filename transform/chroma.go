// Copyright 2026 Prism Imaging Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package transform

import (
	"fmt"

	"github.com/prism-ml/prism/internal/tensor"
	"github.com/prism-ml/prism/internal/transform"
)

// ImagePlanes holds the typed Y, U and V planes of a planar YUV
// image. Each plane has shape (N,1,H,W); in a 4:2:0 image the U and
// V planes are half the luma resolution in both dimensions.
type ImagePlanes[T tensor.DType, B tensor.Backend] struct {
	Y *tensor.Tensor[T, B]
	U *tensor.Tensor[T, B]
	V *tensor.Tensor[T, B]
}

// wrapPlanes lifts raw planes into typed ones on the given backend.
func wrapPlanes[T tensor.DType, B tensor.Backend](p transform.Planes, backend B) ImagePlanes[T, B] {
	return ImagePlanes[T, B]{
		Y: tensor.New[T, B](p.Y, backend),
		U: tensor.New[T, B](p.U, backend),
		V: tensor.New[T, B](p.V, backend),
	}
}

// unwrapPlanes lowers typed planes to raw ones, rejecting nil members.
func unwrapPlanes[T tensor.DType, B tensor.Backend](p ImagePlanes[T, B]) (transform.Planes, B, error) {
	var zero B
	switch {
	case p.Y == nil:
		return transform.Planes{}, zero, fmt.Errorf("%w: Y plane is nil", ErrInvalidTriple)
	case p.U == nil:
		return transform.Planes{}, zero, fmt.Errorf("%w: U plane is nil", ErrInvalidTriple)
	case p.V == nil:
		return transform.Planes{}, zero, fmt.Errorf("%w: V plane is nil", ErrInvalidTriple)
	}
	raw := transform.Planes{Y: p.Y.Raw(), U: p.U.Raw(), V: p.V.Raw()}
	return raw, p.Y.Backend(), nil
}

// Pack concatenates the three planes along the channel axis into a
// packed (N,3,H,W) tensor. The planes must share shape and dtype.
func (p ImagePlanes[T, B]) Pack() (*tensor.Tensor[T, B], error) {
	raw, backend, err := unwrapPlanes(p)
	if err != nil {
		return nil, err
	}
	packed, err := raw.Pack(backend)
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](packed, backend), nil
}

// YUV444To420 subsamples the chroma of a packed 4:4:4 image tensor
// to 4:2:0. The input must be a floating-point tensor of shape
// (N,3,H,W) with even H and W. Each chroma plane is reduced with 2x2
// block averaging; the returned Y plane reuses the input luma values
// unchanged.
//
// Example:
//
//	sub, err := transform.YUV444To420(ycbcr)
//	// sub.Y is (N,1,H,W), sub.U and sub.V are (N,1,H/2,W/2)
func YUV444To420[T tensor.DType, B tensor.Backend](yuv *tensor.Tensor[T, B]) (ImagePlanes[T, B], error) {
	raw, backend, err := unwrap(yuv)
	if err != nil {
		return ImagePlanes[T, B]{}, err
	}
	p, err := transform.YUV444To420(raw, backend)
	if err != nil {
		return ImagePlanes[T, B]{}, err
	}
	return wrapPlanes[T, B](p, backend), nil
}

// YUV444To420Planes subsamples the chroma of a 4:4:4 plane triple to
// 4:2:0. All three planes must share shape (N,1,H,W) and dtype, with
// even H and W. The returned Y plane is the input Y plane.
func YUV444To420Planes[T tensor.DType, B tensor.Backend](p ImagePlanes[T, B]) (ImagePlanes[T, B], error) {
	raw, backend, err := unwrapPlanes(p)
	if err != nil {
		return ImagePlanes[T, B]{}, err
	}
	out, err := transform.YUV444To420Planes(raw, backend)
	if err != nil {
		return ImagePlanes[T, B]{}, err
	}
	return wrapPlanes[T, B](out, backend), nil
}

// YUV420To444 upsamples a 4:2:0 plane triple back to a packed 4:4:4
// image tensor of shape (N,3,H,W). The chroma planes are doubled
// with bilinear interpolation on half-pixel centers; the luma plane
// must already match the doubled chroma resolution.
func YUV420To444[T tensor.DType, B tensor.Backend](p ImagePlanes[T, B]) (*tensor.Tensor[T, B], error) {
	raw, backend, err := unwrapPlanes(p)
	if err != nil {
		return nil, err
	}
	packed, err := transform.YUV420To444(raw, backend)
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](packed, backend), nil
}

// YUV420To444Planes upsamples the chroma planes of a 4:2:0 triple to
// full resolution, leaving the planes separate. The returned Y plane
// is the input Y plane; no agreement between luma and chroma
// resolution is required or checked.
func YUV420To444Planes[T tensor.DType, B tensor.Backend](p ImagePlanes[T, B]) (ImagePlanes[T, B], error) {
	raw, backend, err := unwrapPlanes(p)
	if err != nil {
		return ImagePlanes[T, B]{}, err
	}
	out, err := transform.YUV420To444Planes(raw, backend)
	if err != nil {
		return ImagePlanes[T, B]{}, err
	}
	return wrapPlanes[T, B](out, backend), nil
}
