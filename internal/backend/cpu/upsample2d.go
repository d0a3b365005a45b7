package cpu

import (
	"fmt"

	"github.com/prism-ml/prism/internal/parallel"
	"github.com/prism-ml/prism/internal/tensor"
)

// UpsampleBilinear2D upsamples both spatial dimensions by an integer
// factor using bilinear interpolation with half-pixel sample centers.
//
// Output samples are placed at src = (dst + 0.5)/scale - 0.5, clamped
// at the low edge; past the last input sample the second tap collapses
// onto the first. For scale 2 the interior weights are 0.25/0.75,
// which restores 4:2:0 chroma planes to full resolution.
//
// Input shape:  [batch, channels, height, width]
// Output shape: [batch, channels, height*scale, width*scale]
func (cpu *CPUBackend) UpsampleBilinear2D(input *tensor.RawTensor, scale int) *tensor.RawTensor {
	inputShape := input.Shape()
	if len(inputShape) != 4 {
		panic(fmt.Sprintf("upsample2d: expected 4D input [N,C,H,W], got %dD", len(inputShape)))
	}
	if scale < 1 {
		panic(fmt.Sprintf("upsample2d: scale must be >= 1, got %d", scale))
	}

	N := inputShape[0]
	C := inputShape[1]
	H := inputShape[2]
	W := inputShape[3]
	HOut := H * scale
	WOut := W * scale

	output, err := tensor.NewRaw(tensor.Shape{N, C, HOut, WOut}, input.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("upsample2d: failed to create output: %v", err))
	}

	// Tap positions and weights depend only on the axis sizes, so they
	// are computed once and shared by every plane.
	hTaps := upsampleTaps(HOut, H, scale)
	wTaps := upsampleTaps(WOut, W, scale)

	switch input.DType() {
	case tensor.Float32:
		src, dst := input.AsFloat32(), output.AsFloat32()
		parallel.ForPlanes(N, C, func(n, c int) {
			p := n*C + c
			upsamplePlane(dst[p*HOut*WOut:(p+1)*HOut*WOut], src[p*H*W:(p+1)*H*W],
				WOut, W, hTaps, wTaps)
		}, cpu.par)
	case tensor.Float64:
		src, dst := input.AsFloat64(), output.AsFloat64()
		parallel.ForPlanes(N, C, func(n, c int) {
			p := n*C + c
			upsamplePlane(dst[p*HOut*WOut:(p+1)*HOut*WOut], src[p*H*W:(p+1)*H*W],
				WOut, W, hTaps, wTaps)
		}, cpu.par)
	default:
		panic(fmt.Sprintf("upsample2d: unsupported dtype %v", input.DType()))
	}

	return output
}

// axisTaps holds, for every output coordinate along one axis, the two
// source taps and the interpolation weight of the second tap.
type axisTaps struct {
	lo   []int
	hi   []int
	frac []float64
}

// upsampleTaps precomputes the tap table for one axis. Half-pixel
// centers: src = (dst + 0.5)/scale - 0.5, clamped at the low edge; at
// the high edge the second tap collapses onto the first.
func upsampleTaps(outSize, inSize, scale int) axisTaps {
	taps := axisTaps{
		lo:   make([]int, outSize),
		hi:   make([]int, outSize),
		frac: make([]float64, outSize),
	}

	ratio := 1.0 / float64(scale)
	for i := 0; i < outSize; i++ {
		src := (float64(i)+0.5)*ratio - 0.5
		if src < 0 {
			src = 0
		}
		lo := int(src)
		hi := lo
		if lo < inSize-1 {
			hi = lo + 1
		}
		taps.lo[i] = lo
		taps.hi[i] = hi
		taps.frac[i] = src - float64(lo)
	}

	return taps
}

// upsamplePlane interpolates one HxW plane into an HOut x WOut plane.
func upsamplePlane[T floats](dst, src []T, wOut, w int, hTaps, wTaps axisTaps) {
	for oh := range hTaps.lo {
		// Pre-slice the two source rows for this output row.
		top := src[hTaps.lo[oh]*w : hTaps.lo[oh]*w+w]
		bot := src[hTaps.hi[oh]*w : hTaps.hi[oh]*w+w]
		hf := T(hTaps.frac[oh])

		out := dst[oh*wOut : (oh+1)*wOut]
		for ow := range out {
			wf := T(wTaps.frac[ow])
			lo, hi := wTaps.lo[ow], wTaps.hi[ow]

			t := (1-wf)*top[lo] + wf*top[hi]
			b := (1-wf)*bot[lo] + wf*bot[hi]
			out[ow] = (1-hf)*t + hf*b
		}
	}
}
