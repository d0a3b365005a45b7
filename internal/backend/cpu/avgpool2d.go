package cpu

import (
	"fmt"

	"github.com/prism-ml/prism/internal/parallel"
	"github.com/prism-ml/prism/internal/tensor"
)

// AvgPool2D performs 2D average pooling.
//
// Each output sample is the mean of a kernelSize x kernelSize window.
// With kernelSize = stride = 2 this halves both spatial dimensions,
// which is how chroma planes are taken from 4:4:4 to 4:2:0.
//
// Input shape:  [batch, channels, height, width]
// Output shape: [batch, channels, out_height, out_width]
//
// Where:
//
//	out_height = (height - kernelSize) / stride + 1
//	out_width = (width - kernelSize) / stride + 1
func (cpu *CPUBackend) AvgPool2D(input *tensor.RawTensor, kernelSize, stride int) *tensor.RawTensor {
	inputShape := input.Shape()
	if len(inputShape) != 4 {
		panic(fmt.Sprintf("avgpool2d: expected 4D input [N,C,H,W], got %dD", len(inputShape)))
	}

	N := inputShape[0]
	C := inputShape[1]
	H := inputShape[2]
	W := inputShape[3]

	if kernelSize <= 0 {
		panic(fmt.Sprintf("avgpool2d: invalid kernel size %d", kernelSize))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("avgpool2d: invalid stride %d", stride))
	}
	if kernelSize > H || kernelSize > W {
		panic(fmt.Sprintf("avgpool2d: kernel size %d too large for input %dx%d", kernelSize, H, W))
	}

	HOut := (H-kernelSize)/stride + 1
	WOut := (W-kernelSize)/stride + 1

	output, err := tensor.NewRaw(tensor.Shape{N, C, HOut, WOut}, input.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("avgpool2d: failed to create output: %v", err))
	}

	switch input.DType() {
	case tensor.Float32:
		src, dst := input.AsFloat32(), output.AsFloat32()
		parallel.ForPlanes(N, C, func(n, c int) {
			p := n*C + c
			avgPool2DPlane(dst[p*HOut*WOut:(p+1)*HOut*WOut], src[p*H*W:(p+1)*H*W],
				HOut, WOut, W, kernelSize, stride)
		}, cpu.par)
	case tensor.Float64:
		src, dst := input.AsFloat64(), output.AsFloat64()
		parallel.ForPlanes(N, C, func(n, c int) {
			p := n*C + c
			avgPool2DPlane(dst[p*HOut*WOut:(p+1)*HOut*WOut], src[p*H*W:(p+1)*H*W],
				HOut, WOut, W, kernelSize, stride)
		}, cpu.par)
	default:
		panic(fmt.Sprintf("avgpool2d: unsupported dtype %v", input.DType()))
	}

	return output
}

// avgPool2DPlane pools one HxW plane into an HOut x WOut plane.
func avgPool2DPlane[T floats](dst, src []T, hOut, wOut, w, kernelSize, stride int) {
	window := T(kernelSize * kernelSize)

	for oh := 0; oh < hOut; oh++ {
		hStart := oh * stride

		for ow := 0; ow < wOut; ow++ {
			wStart := ow * stride

			var sum T
			for kh := 0; kh < kernelSize; kh++ {
				// Pre-slice row: single bounds check per row
				rowStart := (hStart+kh)*w + wStart
				row := src[rowStart : rowStart+kernelSize]

				for _, v := range row {
					sum += v
				}
			}

			dst[oh*wOut+ow] = sum / window
		}
	}
}
