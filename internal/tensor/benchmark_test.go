package tensor

import (
	"fmt"
	"testing"
)

func BenchmarkTensorCreation(b *testing.B) {
	backend := NewMockBackend()
	shape := Shape{100, 100}

	b.Run("Zeros", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Zeros[float32](shape, backend)
		}
	})

	b.Run("Ones", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Ones[float32](shape, backend)
		}
	})

	b.Run("Rand", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Rand[float32](shape, backend)
		}
	})
}

func BenchmarkShapeOperations(b *testing.B) {
	shape := Shape{1, 3, 100, 100}

	b.Run("NumElements", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.NumElements()
		}
	})

	b.Run("ComputeStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.ComputeStrides()
		}
	})

	b.Run("Validate", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.Validate()
		}
	})
}

func BenchmarkTensorElementWise(b *testing.B) {
	backend := NewMockBackend()
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		shape := Shape{size}
		a := Ones[float32](shape, backend)
		c := Ones[float32](shape, backend)

		b.Run(fmt.Sprintf("Add-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = a.Add(c)
			}
		})

		b.Run(fmt.Sprintf("MulScalar-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = a.MulScalar(0.5)
			}
		})
	}
}

func BenchmarkRawTensorClone(b *testing.B) {
	raw, _ := NewRaw(Shape{1, 3, 256, 256}, Float32, CPU)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = raw.Clone()
	}
}
