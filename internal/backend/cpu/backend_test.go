package cpu

import (
	"testing"

	"github.com/prism-ml/prism/internal/tensor"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New()
}

// Helper to check float32 slices are equal within epsilon.
func float32SliceEqual(a, b []float32) bool {
	const epsilon = 1e-6
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// Helper to check that fn panics.
func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

// TestCPUBackend_New tests backend creation.
func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "CPU" {
		t.Errorf("Expected name 'CPU', got '%s'", backend.Name())
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Expected device CPU, got %v", backend.Device())
	}
}

// TestCPUBackend_Add tests element-wise addition.
func TestCPUBackend_Add(t *testing.T) {
	backend := newTestBackend()

	a, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	b, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)

	aData := a.AsFloat32()
	bData := b.AsFloat32()
	for i := range aData {
		aData[i] = float32(i + 1)  // 1, 2, 3, 4, 5, 6
		bData[i] = float32(i + 10) // 10, 11, 12, 13, 14, 15
	}

	result := backend.Add(a, b)

	// 1+10=11, 2+11=13, 3+12=15, 4+13=17, 5+14=19, 6+15=21
	expected := []float32{11, 13, 15, 17, 19, 21}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Add failed: got %v, expected %v", result.AsFloat32(), expected)
	}

	// Inputs must stay untouched.
	if aData[0] != 1 || bData[0] != 10 {
		t.Errorf("Add modified its inputs: a[0]=%v, b[0]=%v", aData[0], bData[0])
	}
}

// TestCPUBackend_Sub tests subtraction.
func TestCPUBackend_Sub(t *testing.T) {
	backend := newTestBackend()

	a, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)
	b, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)

	aData := a.AsFloat32()
	bData := b.AsFloat32()
	aData[0], aData[1], aData[2] = 10, 20, 30
	bData[0], bData[1], bData[2] = 1, 2, 3

	result := backend.Sub(a, b)

	expected := []float32{9, 18, 27}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Sub failed: got %v, expected %v", result.AsFloat32(), expected)
	}
}

// TestCPUBackend_Mul tests multiplication.
func TestCPUBackend_Mul(t *testing.T) {
	backend := newTestBackend()

	a, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)
	b, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)

	aData := a.AsFloat32()
	bData := b.AsFloat32()
	aData[0], aData[1], aData[2] = 2, 3, 4
	bData[0], bData[1], bData[2] = 10, 10, 10

	result := backend.Mul(a, b)

	expected := []float32{20, 30, 40}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Mul failed: got %v, expected %v", result.AsFloat32(), expected)
	}
}

// TestCPUBackend_Div tests division.
func TestCPUBackend_Div(t *testing.T) {
	backend := newTestBackend()

	a, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)
	b, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)

	aData := a.AsFloat32()
	bData := b.AsFloat32()
	aData[0], aData[1], aData[2] = 20, 30, 40
	bData[0], bData[1], bData[2] = 2, 3, 4

	result := backend.Div(a, b)

	expected := []float32{10, 10, 10}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Div failed: got %v, expected %v", result.AsFloat32(), expected)
	}
}

// TestCPUBackend_MismatchPanics tests operand validation.
func TestCPUBackend_MismatchPanics(t *testing.T) {
	backend := newTestBackend()

	a, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	b, _ := tensor.NewRaw(tensor.Shape{3, 2}, tensor.Float32, tensor.CPU)
	assertPanics(t, "shape mismatch", func() { backend.Add(a, b) })

	c, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float64, tensor.CPU)
	assertPanics(t, "dtype mismatch", func() { backend.Mul(a, c) })
}

// TestCPUBackend_MultiDType tests operations with different data types.
func TestCPUBackend_MultiDType(t *testing.T) {
	backend := newTestBackend()

	t.Run("Float64", func(t *testing.T) {
		a, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)
		b, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)

		aData := a.AsFloat64()
		bData := b.AsFloat64()
		aData[0], aData[1], aData[2] = 1.5, 2.5, 3.5
		bData[0], bData[1], bData[2] = 0.5, 0.5, 0.5

		result := backend.Add(a, b)

		expected := []float64{2.0, 3.0, 4.0}
		resultData := result.AsFloat64()
		for i, exp := range expected {
			if resultData[i] != exp {
				t.Errorf("Float64 add failed at index %d: got %v, expected %v", i, resultData[i], exp)
			}
		}
	})

	t.Run("Int32", func(t *testing.T) {
		a, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Int32, tensor.CPU)
		b, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Int32, tensor.CPU)

		aData := a.AsInt32()
		bData := b.AsInt32()
		aData[0], aData[1], aData[2] = 10, 20, 30
		bData[0], bData[1], bData[2] = 1, 2, 3

		result := backend.Mul(a, b)

		expected := []int32{10, 40, 90}
		resultData := result.AsInt32()
		for i, exp := range expected {
			if resultData[i] != exp {
				t.Errorf("Int32 mul failed at index %d: got %v, expected %v", i, resultData[i], exp)
			}
		}
	})

	t.Run("Uint8", func(t *testing.T) {
		a, _ := tensor.NewRaw(tensor.Shape{4}, tensor.Uint8, tensor.CPU)
		b, _ := tensor.NewRaw(tensor.Shape{4}, tensor.Uint8, tensor.CPU)

		aData := a.AsUint8()
		bData := b.AsUint8()
		for i := range aData {
			aData[i] = uint8(16 * (i + 1)) // 16, 32, 48, 64
			bData[i] = 1
		}

		result := backend.Add(a, b)

		expected := []uint8{17, 33, 49, 65}
		resultData := result.AsUint8()
		for i, exp := range expected {
			if resultData[i] != exp {
				t.Errorf("Uint8 add failed at index %d: got %v, expected %v", i, resultData[i], exp)
			}
		}
	})
}

// TestCPUBackend_ScalarOps tests element-wise operations against a scalar.
func TestCPUBackend_ScalarOps(t *testing.T) {
	backend := newTestBackend()

	t.Run("AddScalar", func(t *testing.T) {
		x, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)
		xData := x.AsFloat32()
		xData[0], xData[1], xData[2] = 1, 2, 3

		result := backend.AddScalar(x, float32(10))

		expected := []float32{11, 12, 13}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("AddScalar failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("SubScalar", func(t *testing.T) {
		x, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)
		xData := x.AsFloat32()
		xData[0], xData[1], xData[2] = 10, 20, 30

		result := backend.SubScalar(x, float32(0.5))

		expected := []float32{9.5, 19.5, 29.5}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("SubScalar failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("MulScalar", func(t *testing.T) {
		x, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)
		xData := x.AsFloat64()
		xData[0], xData[1], xData[2] = 1.5, 2.5, 3.5

		result := backend.MulScalar(x, 2.0)

		expected := []float64{3, 5, 7}
		resultData := result.AsFloat64()
		for i, exp := range expected {
			if resultData[i] != exp {
				t.Errorf("MulScalar failed at %d: got %v, expected %v", i, resultData[i], exp)
			}
		}
	})

	t.Run("DivScalar", func(t *testing.T) {
		x, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)
		xData := x.AsFloat32()
		xData[0], xData[1], xData[2] = 10, 20, 30

		result := backend.DivScalar(x, float32(10))

		expected := []float32{1, 2, 3}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("DivScalar failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	// Conversion coefficients arrive as float64 regardless of the
	// tensor's float width.
	t.Run("Float64ScalarOnFloat32Tensor", func(t *testing.T) {
		x, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
		xData := x.AsFloat32()
		xData[0], xData[1] = 1, 2

		result := backend.MulScalar(x, 0.5)

		expected := []float32{0.5, 1}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("MulScalar with float64 scalar failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("IntScalarOnFloat32Tensor", func(t *testing.T) {
		x, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
		xData := x.AsFloat32()
		xData[0], xData[1] = 3, 4

		result := backend.AddScalar(x, 1)

		expected := []float32{4, 5}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("AddScalar with int scalar failed: got %v, expected %v", result.AsFloat32(), expected)
		}
	})

	t.Run("UnsupportedScalarType", func(t *testing.T) {
		x, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
		assertPanics(t, "string scalar", func() { backend.AddScalar(x, "nope") })
	})
}

// TestCPUBackend_MatchesMock verifies CPU element-wise ops against the
// naive reference implementation.
func TestCPUBackend_MatchesMock(t *testing.T) {
	cpuBackend := New()
	mockBackend := tensor.NewMockBackend()

	a, _ := tensor.NewRaw(tensor.Shape{2, 3, 4}, tensor.Float32, tensor.CPU)
	b, _ := tensor.NewRaw(tensor.Shape{2, 3, 4}, tensor.Float32, tensor.CPU)

	aData := a.AsFloat32()
	bData := b.AsFloat32()
	for i := range aData {
		aData[i] = float32(i)*0.25 + 1
		bData[i] = float32(i%7) + 1
	}

	ops := map[string]func(tensor.Backend) *tensor.RawTensor{
		"Add": func(be tensor.Backend) *tensor.RawTensor { return be.Add(a, b) },
		"Sub": func(be tensor.Backend) *tensor.RawTensor { return be.Sub(a, b) },
		"Mul": func(be tensor.Backend) *tensor.RawTensor { return be.Mul(a, b) },
		"Div": func(be tensor.Backend) *tensor.RawTensor { return be.Div(a, b) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			cpuOut := op(cpuBackend)
			mockOut := op(mockBackend)

			if !cpuOut.Shape().Equal(mockOut.Shape()) {
				t.Fatalf("Shape mismatch: CPU=%v, Mock=%v", cpuOut.Shape(), mockOut.Shape())
			}
			if !float32SliceEqual(cpuOut.AsFloat32(), mockOut.AsFloat32()) {
				t.Errorf("%s: CPU=%v, Mock=%v", name, cpuOut.AsFloat32(), mockOut.AsFloat32())
			}
		})
	}
}
