// Package transform implements color transforms for image tensors:
// RGB <-> YCbCr conversion and 4:4:4 <-> 4:2:0 chroma resampling.
//
// Operations accept image tensors of shape (N,3,H,W) or (3,H,W) with
// a floating-point dtype in the nominal [0,1] range. Inputs are
// validated up front and malformed ones are reported as errors; the
// backend is only invoked with inputs it accepts, so these functions
// never panic on caller input. Input tensors are never mutated.
package transform

import (
	"fmt"

	"github.com/prism-ml/prism/internal/tensor"
)

// channelDim is the channel axis for image tensors. Counting from the
// end lets (N,3,H,W) and (3,H,W) share the same code path.
const channelDim = -3

// validateImage checks that t is a floating-point image tensor of
// shape (N,3,H,W) or (3,H,W).
func validateImage(t *tensor.RawTensor) error {
	if t == nil {
		return fmt.Errorf("%w: nil tensor, expected (N,3,H,W) or (3,H,W)", ErrInvalidShape)
	}
	if !t.DType().IsFloat() {
		return fmt.Errorf("%w: dtype %s, expected a floating-point tensor", ErrInvalidShape, t.DType())
	}
	shape := t.Shape()
	if len(shape) != 3 && len(shape) != 4 {
		return fmt.Errorf("%w: %dD tensor, expected (N,3,H,W) or (3,H,W)", ErrInvalidShape, len(shape))
	}
	if shape.Dim(channelDim) != 3 {
		return fmt.Errorf("%w: %d channels, expected 3", ErrInvalidShape, shape.Dim(channelDim))
	}
	return nil
}

// RGBToYCbCr converts an RGB image to YCbCr using the ITU-R BT.709
// coefficients. The output has the same shape and dtype as the input,
// with Y in [0,1] and Cb, Cr centered on 0.5.
func RGBToYCbCr(rgb *tensor.RawTensor, backend tensor.Backend) (*tensor.RawTensor, error) {
	return RGBToYCbCrUsing(rgb, BT709, backend)
}

// RGBToYCbCrUsing converts an RGB image to YCbCr with the
// coefficients of the given standard.
func RGBToYCbCrUsing(rgb *tensor.RawTensor, std Standard, backend tensor.Backend) (*tensor.RawTensor, error) {
	if err := validateImage(rgb); err != nil {
		return nil, err
	}
	w := std.Weights()
	planes := backend.Chunk(rgb, 3, channelDim)
	r, g, b := planes[0], planes[1], planes[2]

	// Y = Kr*R + Kg*G + Kb*B
	y := backend.Add(backend.MulScalar(r, w.Kr), backend.MulScalar(g, w.Kg))
	y = backend.Add(y, backend.MulScalar(b, w.Kb))

	// Cb = 0.5*(B-Y)/(1-Kb) + 0.5 and Cr = 0.5*(R-Y)/(1-Kr) + 0.5
	cb := backend.AddScalar(backend.MulScalar(backend.Sub(b, y), 0.5/(1-w.Kb)), 0.5)
	cr := backend.AddScalar(backend.MulScalar(backend.Sub(r, y), 0.5/(1-w.Kr)), 0.5)

	return backend.Cat([]*tensor.RawTensor{y, cb, cr}, channelDim), nil
}

// YCbCrToRGB converts a YCbCr image back to RGB using the ITU-R
// BT.709 coefficients. It is the exact inverse of RGBToYCbCr up to
// floating-point rounding.
func YCbCrToRGB(ycbcr *tensor.RawTensor, backend tensor.Backend) (*tensor.RawTensor, error) {
	return YCbCrToRGBUsing(ycbcr, BT709, backend)
}

// YCbCrToRGBUsing converts a YCbCr image back to RGB with the
// coefficients of the given standard.
func YCbCrToRGBUsing(ycbcr *tensor.RawTensor, std Standard, backend tensor.Backend) (*tensor.RawTensor, error) {
	if err := validateImage(ycbcr); err != nil {
		return nil, err
	}
	w := std.Weights()
	planes := backend.Chunk(ycbcr, 3, channelDim)
	y, cb, cr := planes[0], planes[1], planes[2]

	// R = Y + (2-2*Kr)*(Cr-0.5) and B = Y + (2-2*Kb)*(Cb-0.5)
	r := backend.Add(y, backend.MulScalar(backend.SubScalar(cr, 0.5), 2-2*w.Kr))
	b := backend.Add(y, backend.MulScalar(backend.SubScalar(cb, 0.5), 2-2*w.Kb))

	// G = (Y - Kr*R - Kb*B) / Kg
	g := backend.Sub(backend.Sub(y, backend.MulScalar(r, w.Kr)), backend.MulScalar(b, w.Kb))
	g = backend.DivScalar(g, w.Kg)

	return backend.Cat([]*tensor.RawTensor{r, g, b}, channelDim), nil
}
