package tensor

import (
	"fmt"
	"testing"
)

func TestTensorAdd(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)
	b, _ := FromSlice([]float32{5, 6, 7, 8}, Shape{2, 2}, backend)

	c := a.Add(b)

	expected := []float32{6, 8, 10, 12}
	got := c.Data()

	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("Add[%d]", i))
	}
}

func TestTensorSub(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice([]float32{5, 6, 7, 8}, Shape{2, 2}, backend)
	b, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)

	c := a.Sub(b)

	expected := []float32{4, 4, 4, 4}
	got := c.Data()

	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("Sub[%d]", i))
	}
}

func TestTensorMul(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)
	b, _ := FromSlice([]float32{2, 2, 2, 2}, Shape{2, 2}, backend)

	c := a.Mul(b)

	expected := []float32{2, 4, 6, 8}
	got := c.Data()

	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("Mul[%d]", i))
	}
}

func TestTensorDiv(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice([]float32{10, 20, 30, 40}, Shape{2, 2}, backend)
	b, _ := FromSlice([]float32{2, 4, 5, 8}, Shape{2, 2}, backend)

	c := a.Div(b)

	expected := []float32{5, 5, 6, 5}
	got := c.Data()

	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("Div[%d]", i))
	}
}

func TestAddDoesNotMutateInputs(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)
	b, _ := FromSlice([]float32{5, 6, 7, 8}, Shape{2, 2}, backend)

	_ = a.Add(b)

	if a.At(0, 0) != 1 || b.At(0, 0) != 5 {
		t.Error("Add must allocate a fresh output and leave inputs untouched")
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	backend := NewMockBackend()
	a := Ones[float32](Shape{2, 2}, backend)
	b := Ones[float32](Shape{2, 3}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Add with mismatched shapes should panic")
		}
	}()
	a.Add(b)
}

func TestScalarOps(t *testing.T) {
	backend := NewMockBackend()

	t.Run("AddScalar", func(t *testing.T) {
		x, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{4}, backend)
		y := x.AddScalar(0.5)
		expected := []float32{1.5, 2.5, 3.5, 4.5}
		for i, v := range y.Data() {
			assertEqualFloat32(t, expected[i], v, fmt.Sprintf("AddScalar[%d]", i))
		}
	})

	t.Run("SubScalar", func(t *testing.T) {
		x, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{4}, backend)
		y := x.SubScalar(1)
		expected := []float32{0, 1, 2, 3}
		for i, v := range y.Data() {
			assertEqualFloat32(t, expected[i], v, fmt.Sprintf("SubScalar[%d]", i))
		}
	})

	t.Run("MulScalar", func(t *testing.T) {
		x, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{4}, backend)
		y := x.MulScalar(2)
		expected := []float32{2, 4, 6, 8}
		for i, v := range y.Data() {
			assertEqualFloat32(t, expected[i], v, fmt.Sprintf("MulScalar[%d]", i))
		}
	})

	t.Run("DivScalar", func(t *testing.T) {
		x, _ := FromSlice([]float32{2, 4, 6, 8}, Shape{4}, backend)
		y := x.DivScalar(2)
		expected := []float32{1, 2, 3, 4}
		for i, v := range y.Data() {
			assertEqualFloat32(t, expected[i], v, fmt.Sprintf("DivScalar[%d]", i))
		}
	})
}

func TestTensorAvgPool2D(t *testing.T) {
	backend := NewMockBackend()
	// 1x1x4x4 plane with constant 2x2 blocks
	x, _ := FromSlice([]float32{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}, Shape{1, 1, 4, 4}, backend)

	y := x.AvgPool2D(2, 2)

	assertEqualShape(t, Shape{1, 1, 2, 2}, y.Shape(), "AvgPool2D shape")

	expected := []float32{1, 2, 3, 4}
	for i, v := range y.Data() {
		assertEqualFloat32(t, expected[i], v, fmt.Sprintf("AvgPool2D[%d]", i))
	}
}

func TestTensorUpsampleBilinear2D(t *testing.T) {
	backend := NewMockBackend()
	// Constant plane upsamples to the same constant
	x := Full(Shape{1, 1, 2, 2}, float32(3), backend)

	y := x.UpsampleBilinear2D(2)

	assertEqualShape(t, Shape{1, 1, 4, 4}, y.Shape(), "UpsampleBilinear2D shape")

	for i, v := range y.Data() {
		assertEqualFloat32(t, 3, v, fmt.Sprintf("UpsampleBilinear2D[%d]", i))
	}
}

func TestUpsampleBilinear2DValues(t *testing.T) {
	backend := NewMockBackend()
	// 1x1x1x2 row: interpolation between 0 and 1 with half-pixel centers
	x, _ := FromSlice([]float32{0, 1}, Shape{1, 1, 1, 2}, backend)

	y := x.UpsampleBilinear2D(2)

	assertEqualShape(t, Shape{1, 1, 2, 4}, y.Shape(), "upsample shape")

	expected := []float32{0, 0.25, 0.75, 1}
	got := y.Data()
	for i := range expected {
		assertEqualFloat32(t, expected[i], got[i], fmt.Sprintf("row 0 col %d", i))
		assertEqualFloat32(t, expected[i], got[4+i], fmt.Sprintf("row 1 col %d", i))
	}
}
