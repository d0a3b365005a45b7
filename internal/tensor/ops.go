package tensor

// Add performs element-wise addition.
// Both tensors must have the same shape.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 5}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction.
// Both tensors must have the same shape.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication.
// Both tensors must have the same shape.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Div performs element-wise division.
// Both tensors must have the same shape.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Div(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// AddScalar adds a scalar value to each element of the tensor.
//
// Example:
//
//	x := tensor.Rand[float32](Shape{2, 3}, backend)
//	y := x.AddScalar(0.5) // add 0.5 to all elements
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	result := t.backend.AddScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	result := t.backend.SubScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	result := t.backend.MulScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// DivScalar divides each element of the tensor by a scalar value.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	result := t.backend.DivScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// AvgPool2D performs 2D average pooling on a [N,C,H,W] tensor.
//
// Each output element is the mean of a kernelSize x kernelSize window.
// Output spatial dims: (H-kernelSize)/stride+1 x (W-kernelSize)/stride+1.
//
// Example:
//
//	x := tensor.Rand[float32](Shape{1, 3, 8, 8}, backend)
//	y := x.AvgPool2D(2, 2) // Shape: [1, 3, 4, 4]
func (t *Tensor[T, B]) AvgPool2D(kernelSize, stride int) *Tensor[T, B] {
	result := t.backend.AvgPool2D(t.raw, kernelSize, stride)
	return New[T, B](result, t.backend)
}

// UpsampleBilinear2D upsamples a [N,C,H,W] tensor by an integer scale
// factor using bilinear interpolation with half-pixel sample alignment.
//
// Example:
//
//	x := tensor.Rand[float32](Shape{1, 3, 4, 4}, backend)
//	y := x.UpsampleBilinear2D(2) // Shape: [1, 3, 8, 8]
func (t *Tensor[T, B]) UpsampleBilinear2D(scale int) *Tensor[T, B] {
	result := t.backend.UpsampleBilinear2D(t.raw, scale)
	return New[T, B](result, t.backend)
}
