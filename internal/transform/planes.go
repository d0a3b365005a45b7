package transform

import (
	"fmt"

	"github.com/prism-ml/prism/internal/tensor"
)

// Planes holds the three planes of a planar YUV image in Y, U, V
// order. Y keeps the full luma resolution; U and V hold the chroma
// planes, subsampled or not. Each plane has shape (N,1,H,W).
type Planes struct {
	Y *tensor.RawTensor
	U *tensor.RawTensor
	V *tensor.RawTensor
}

// PlanesFromSlice builds a Planes triple from a slice of exactly
// three tensors in Y, U, V order.
func PlanesFromSlice(tensors []*tensor.RawTensor) (Planes, error) {
	if len(tensors) != 3 {
		return Planes{}, fmt.Errorf("%w: got %d tensors", ErrInvalidTriple, len(tensors))
	}
	for i, t := range tensors {
		if t == nil {
			return Planes{}, fmt.Errorf("%w: tensor %d is nil", ErrInvalidTriple, i)
		}
	}
	return Planes{Y: tensors[0], U: tensors[1], V: tensors[2]}, nil
}

// Pack concatenates the planes into a single (N,3,H,W) image tensor
// along the channel axis. All three planes must share shape and
// dtype, so subsampled chroma must be upsampled first.
func (p Planes) Pack(backend tensor.Backend) (*tensor.RawTensor, error) {
	if err := checkTriple(p); err != nil {
		return nil, err
	}
	if err := p.sameShape(); err != nil {
		return nil, err
	}
	return backend.Cat([]*tensor.RawTensor{p.Y, p.U, p.V}, channelDim), nil
}

// sameShape reports an error unless all three planes share a shape.
func (p Planes) sameShape() error {
	if !p.U.Shape().Equal(p.Y.Shape()) || !p.V.Shape().Equal(p.Y.Shape()) {
		return fmt.Errorf("%w: plane shapes %v, %v, %v differ", ErrInvalidShape, p.Y.Shape(), p.U.Shape(), p.V.Shape())
	}
	return nil
}

// checkPlane checks that a single plane is a floating-point tensor of
// shape (N,1,H,W).
func checkPlane(t *tensor.RawTensor, name string) error {
	if t == nil {
		return fmt.Errorf("%w: %s plane is nil", ErrInvalidTriple, name)
	}
	if !t.DType().IsFloat() {
		return fmt.Errorf("%w: %s plane has dtype %s, expected a floating-point tensor", ErrInvalidShape, name, t.DType())
	}
	shape := t.Shape()
	if len(shape) != 4 || shape.Dim(channelDim) != 1 {
		return fmt.Errorf("%w: %s plane has shape %v, expected (N,1,H,W)", ErrInvalidShape, name, shape)
	}
	return nil
}

// checkTriple validates every plane of the triple and requires a
// single dtype across all three.
func checkTriple(p Planes) error {
	if err := checkPlane(p.Y, "Y"); err != nil {
		return err
	}
	if err := checkPlane(p.U, "U"); err != nil {
		return err
	}
	if err := checkPlane(p.V, "V"); err != nil {
		return err
	}
	if p.U.DType() != p.Y.DType() || p.V.DType() != p.Y.DType() {
		return fmt.Errorf("%w: plane dtypes %s, %s, %s differ", ErrInvalidShape, p.Y.DType(), p.U.DType(), p.V.DType())
	}
	return nil
}
