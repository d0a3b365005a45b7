package transform

import (
	"fmt"

	"github.com/prism-ml/prism/internal/tensor"
)

// checkEvenSpatial rejects shapes whose height or width is odd.
// 2x2 block averaging needs both spatial dims divisible by two.
func checkEvenSpatial(shape tensor.Shape) error {
	h, w := shape.Dim(-2), shape.Dim(-1)
	if h%2 != 0 || w%2 != 0 {
		return fmt.Errorf("%w: spatial dims %dx%d, expected even height and width", ErrInvalidShape, h, w)
	}
	return nil
}

// subsample halves the chroma planes with 2x2 block averaging.
// The luma plane is returned as passed in, not copied.
func subsample(p Planes, backend tensor.Backend) Planes {
	return Planes{
		Y: p.Y,
		U: backend.AvgPool2D(p.U, 2, 2),
		V: backend.AvgPool2D(p.V, 2, 2),
	}
}

// YUV444To420 converts a packed 4:4:4 image of shape (N,3,H,W) into
// a 4:2:0 plane triple. The Y plane keeps the full resolution; U and
// V are averaged over disjoint 2x2 blocks down to (N,1,H/2,W/2).
// H and W must be even.
func YUV444To420(yuv *tensor.RawTensor, backend tensor.Backend) (Planes, error) {
	if err := validateImage(yuv); err != nil {
		return Planes{}, err
	}
	if len(yuv.Shape()) != 4 {
		return Planes{}, fmt.Errorf("%w: %dD tensor, expected a batched (N,3,H,W) image", ErrInvalidShape, len(yuv.Shape()))
	}
	if err := checkEvenSpatial(yuv.Shape()); err != nil {
		return Planes{}, err
	}
	planes := backend.Chunk(yuv, 3, channelDim)
	return subsample(Planes{Y: planes[0], U: planes[1], V: planes[2]}, backend), nil
}

// YUV444To420Planes converts a 4:4:4 plane triple into a 4:2:0 one.
// All planes must share shape (N,1,H,W) with even H and W. The Y
// plane of the result is the input Y plane itself.
func YUV444To420Planes(p Planes, backend tensor.Backend) (Planes, error) {
	if err := checkTriple(p); err != nil {
		return Planes{}, err
	}
	if err := p.sameShape(); err != nil {
		return Planes{}, err
	}
	if err := checkEvenSpatial(p.Y.Shape()); err != nil {
		return Planes{}, err
	}
	return subsample(p, backend), nil
}

// YUV420To444Planes converts a 4:2:0 plane triple into a 4:4:4 one.
// U and V are doubled in each spatial dimension with bilinear
// interpolation at half-pixel sample centers; Y is returned as passed
// in. U and V must share a shape, but no agreement with Y's
// dimensions is required.
func YUV420To444Planes(p Planes, backend tensor.Backend) (Planes, error) {
	if err := checkTriple(p); err != nil {
		return Planes{}, err
	}
	if !p.V.Shape().Equal(p.U.Shape()) {
		return Planes{}, fmt.Errorf("%w: U shape %v does not match V shape %v", ErrInvalidShape, p.U.Shape(), p.V.Shape())
	}
	return Planes{
		Y: p.Y,
		U: backend.UpsampleBilinear2D(p.U, 2),
		V: backend.UpsampleBilinear2D(p.V, 2),
	}, nil
}

// YUV420To444 converts a 4:2:0 plane triple into a packed 4:4:4
// image of shape (N,3,H,W). The upsampled chroma planes must match
// the luma dimensions, so Y must be exactly twice the chroma size.
func YUV420To444(p Planes, backend tensor.Backend) (*tensor.RawTensor, error) {
	up, err := YUV420To444Planes(p, backend)
	if err != nil {
		return nil, err
	}
	return up.Pack(backend)
}
