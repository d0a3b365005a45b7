package transform

import "fmt"

// Standard selects the matrix coefficients used when converting
// between RGB and YCbCr.
type Standard int

// Supported conversion standards.
const (
	// BT709 is the ITU-R BT.709 standard used for HD video.
	BT709 Standard = iota
	// BT601 is the ITU-R BT.601 standard used for SD video.
	BT601
)

// Weights holds the luma coefficients of a conversion standard.
// Kr + Kg + Kb = 1 for every standard.
type Weights struct {
	Kr float64
	Kg float64
	Kb float64
}

// Weights returns the luma coefficients for the standard.
// Panics on an unknown standard value.
func (s Standard) Weights() Weights {
	switch s {
	case BT709:
		return Weights{Kr: 0.2126, Kg: 0.7152, Kb: 0.0722}
	case BT601:
		return Weights{Kr: 0.299, Kg: 0.587, Kb: 0.114}
	default:
		panic(fmt.Sprintf("unknown conversion standard %d", int(s)))
	}
}

// String returns the ITU-R name of the standard.
func (s Standard) String() string {
	switch s {
	case BT709:
		return "ITU-R BT.709"
	case BT601:
		return "ITU-R BT.601"
	default:
		return fmt.Sprintf("Standard(%d)", int(s))
	}
}
