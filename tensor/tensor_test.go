// Copyright 2026 Prism Imaging Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/prism-ml/prism/internal/backend/cpu"
	"github.com/prism-ml/prism/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	// Test Shape() method.
	shape := raw.Shape()
	if !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", shape)
	}

	// Test DType() method.
	if dtype := raw.DType(); dtype != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", dtype)
	}

	// Test Device() method.
	if device := raw.Device(); device != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", device)
	}

	// Test NumElements() method.
	if n := raw.NumElements(); n != 6 {
		t.Errorf("NumElements() = %d, want 6", n)
	}

	// Test ByteSize() method.
	byteSize := raw.ByteSize()
	expected := 6 * 4 // 6 elements * 4 bytes (float32)
	if byteSize != expected {
		t.Errorf("ByteSize() = %d, want %d", byteSize, expected)
	}

	// Test Data() method.
	if data := raw.Data(); len(data) != byteSize {
		t.Errorf("Data() length = %d, want %d", len(data), byteSize)
	}

	// Test AsFloat32() method.
	f32 := raw.AsFloat32()
	if len(f32) != 6 {
		t.Errorf("AsFloat32() length = %d, want 6", len(f32))
	}

	// Test Clone() independence: the copy owns its own buffer.
	clone := raw.Clone()
	if clone == nil {
		t.Fatal("Clone() returned nil")
	}
	clone.AsFloat32()[0] = 42
	if f32[0] == 42 {
		t.Error("Clone() shares memory with the original")
	}
}

// TestTensorCreationFunctions verifies high-level tensor creation API.
func TestTensorCreationFunctions(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name string
		fn   func() interface{}
	}{
		{
			name: "Zeros",
			fn: func() interface{} {
				return tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
			},
		},
		{
			name: "Ones",
			fn: func() interface{} {
				return tensor.Ones[float32](tensor.Shape{2, 3}, backend)
			},
		},
		{
			name: "Full",
			fn: func() interface{} {
				return tensor.Full[float32](tensor.Shape{2, 3}, 3.14, backend)
			},
		},
		{
			name: "Rand",
			fn: func() interface{} {
				return tensor.Rand[float32](tensor.Shape{2, 3}, backend)
			},
		},
		{
			name: "FromSlice",
			fn: func() interface{} {
				data := []float32{1, 2, 3, 4, 5, 6}
				t, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
				if err != nil {
					return err
				}
				return t
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn()
			if result == nil {
				t.Errorf("%s() returned nil", tt.name)
			}
			// Check if result is error.
			if err, ok := result.(error); ok {
				t.Errorf("%s() returned error: %v", tt.name, err)
			}
		})
	}
}

// TestDataTypeConstants verifies all data type constants are accessible.
func TestDataTypeConstants(t *testing.T) {
	dtypes := []struct {
		name  string
		dtype tensor.DataType
	}{
		{"Float32", tensor.Float32},
		{"Float64", tensor.Float64},
		{"Int32", tensor.Int32},
		{"Uint8", tensor.Uint8},
	}

	for _, dt := range dtypes {
		t.Run(dt.name, func(t *testing.T) {
			// Verify String() method works.
			if str := dt.dtype.String(); str == "" || str == "unknown" {
				t.Errorf("DataType.String() = %q, want non-empty known name", str)
			}

			// Verify Size() method works.
			if size := dt.dtype.Size(); size <= 0 {
				t.Errorf("DataType.Size() = %d, want > 0", size)
			}
		})
	}
}

// TestDeviceConstants verifies device constants are accessible.
func TestDeviceConstants(t *testing.T) {
	if str := tensor.CPU.String(); str != "CPU" {
		t.Errorf("Device.String() = %q, want %q", str, "CPU")
	}
}

// TestShapeAPI verifies Shape type alias exposes expected API.
func TestShapeAPI(t *testing.T) {
	shape := tensor.Shape{2, 3, 4}

	// Test NumElements.
	if n := shape.NumElements(); n != 24 {
		t.Errorf("NumElements() = %d, want 24", n)
	}

	// Test length (rank).
	if len(shape) != 3 {
		t.Errorf("len(shape) = %d, want 3", len(shape))
	}

	// Test Equal.
	if !shape.Equal(tensor.Shape{2, 3, 4}) {
		t.Error("Equal() = false, want true for identical shapes")
	}

	// Test Dim with negative indexing.
	if d := shape.Dim(-3); d != 2 {
		t.Errorf("Dim(-3) = %d, want 2", d)
	}

	// Test Clone.
	clone := shape.Clone()
	if !clone.Equal(shape) {
		t.Error("Clone() created non-equal shape")
	}

	// Verify modifying clone doesn't affect original.
	clone[0] = 999
	if shape[0] == 999 {
		t.Error("Clone() didn't create independent copy")
	}
}

// TestManipulationFunctions verifies manipulation utility functions.
func TestManipulationFunctions(t *testing.T) {
	backend := cpu.New()

	t.Run("Cat", func(t *testing.T) {
		a := tensor.Ones[float32](tensor.Shape{1, 1, 4, 4}, backend)
		b := tensor.Zeros[float32](tensor.Shape{1, 1, 4, 4}, backend)
		c := tensor.Cat([]*tensor.Tensor[float32, *cpu.CPUBackend]{a, b}, -3)

		if c == nil {
			t.Fatal("Cat() returned nil")
		}
		wantShape := tensor.Shape{1, 2, 4, 4}
		if !c.Shape().Equal(wantShape) {
			t.Errorf("Cat() shape = %v, want %v", c.Shape(), wantShape)
		}
	})

	t.Run("Chunk", func(t *testing.T) {
		x := tensor.Rand[float32](tensor.Shape{1, 3, 4, 4}, backend)
		parts := x.Chunk(3, -3)

		if len(parts) != 3 {
			t.Fatalf("Chunk() returned %d parts, want 3", len(parts))
		}
		wantShape := tensor.Shape{1, 1, 4, 4}
		for i, p := range parts {
			if !p.Shape().Equal(wantShape) {
				t.Errorf("Chunk() part %d shape = %v, want %v", i, p.Shape(), wantShape)
			}
		}
	})
}

// TestResamplingMethods verifies the resampling methods on the public Tensor type.
func TestResamplingMethods(t *testing.T) {
	backend := cpu.New()

	t.Run("AvgPool2D", func(t *testing.T) {
		x := tensor.Full[float32](tensor.Shape{1, 1, 4, 4}, 0.5, backend)
		y := x.AvgPool2D(2, 2)

		if !y.Shape().Equal(tensor.Shape{1, 1, 2, 2}) {
			t.Errorf("AvgPool2D() shape = %v, want [1 1 2 2]", y.Shape())
		}
		for i, v := range y.Data() {
			if v != 0.5 {
				t.Errorf("AvgPool2D() data[%d] = %v, want 0.5", i, v)
			}
		}
	})

	t.Run("UpsampleBilinear2D", func(t *testing.T) {
		x := tensor.Full[float32](tensor.Shape{1, 1, 2, 2}, 0.25, backend)
		y := x.UpsampleBilinear2D(2)

		if !y.Shape().Equal(tensor.Shape{1, 1, 4, 4}) {
			t.Errorf("UpsampleBilinear2D() shape = %v, want [1 1 4 4]", y.Shape())
		}
		for i, v := range y.Data() {
			if v != 0.25 {
				t.Errorf("UpsampleBilinear2D() data[%d] = %v, want 0.25", i, v)
			}
		}
	})
}
