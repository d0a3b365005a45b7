package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: Pure Go with parallel per-plane kernels
//   - Mock: Naive reference implementation for tests
//
// Backends panic on malformed inputs (shape or dtype mismatches).
// Validated error returns belong to the layers above, which check
// inputs before invoking the backend.
type Backend interface {
	// Element-wise binary operations.
	// Both operands must share the same shape and dtype.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar any) *RawTensor // add scalar
	SubScalar(x *RawTensor, scalar any) *RawTensor // subtract scalar
	MulScalar(x *RawTensor, scalar any) *RawTensor // multiply by scalar
	DivScalar(x *RawTensor, scalar any) *RawTensor // divide by scalar

	// Manipulation operations
	Cat(tensors []*RawTensor, dim int) *RawTensor // concatenate along dimension
	Chunk(x *RawTensor, n, dim int) []*RawTensor  // split into n equal parts

	// Resampling operations on [N,C,H,W] tensors
	AvgPool2D(input *RawTensor, kernelSize, stride int) *RawTensor
	UpsampleBilinear2D(input *RawTensor, scale int) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
