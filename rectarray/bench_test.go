package rectarray_test

import (
	"testing"

	"github.com/katalvlaran/lvlarr/rectarray"
)

// buildRect constructs a filled rows×cols RectArray for benchmarks.
func buildRect(b *testing.B, rows, cols int) *rectarray.RectArray[int] {
	b.Helper()
	g, err := rectarray.New[int](rows, cols)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			if err = g.Set(r, c, r*cols+c); err != nil {
				b.Fatalf("Set failed: %v", err)
			}
		}
	}

	return g
}

// BenchmarkRectArray_At measures validated element access.
func BenchmarkRectArray_At(b *testing.B) {
	g := buildRect(b, 64, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.At(32, 32); err != nil {
			b.Fatalf("At failed: %v", err)
		}
	}
}

// BenchmarkRectArray_SwapRows measures in-place row exchange.
func BenchmarkRectArray_SwapRows(b *testing.B) {
	g := buildRect(b, 64, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.SwapRows(1, 64); err != nil {
			b.Fatalf("SwapRows failed: %v", err)
		}
	}
}

// BenchmarkRectArray_RotateUp measures a full-height band rotation.
func BenchmarkRectArray_RotateUp(b *testing.B) {
	g := buildRect(b, 64, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.RotateUp(1, 64); err != nil {
			b.Fatalf("RotateUp failed: %v", err)
		}
	}
}

// BenchmarkRectArray_AssignSameShape measures the in-place overwrite path
// of Assign.
func BenchmarkRectArray_AssignSameShape(b *testing.B) {
	src := buildRect(b, 64, 64)
	dst := buildRect(b, 64, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := dst.Assign(src); err != nil {
			b.Fatalf("Assign failed: %v", err)
		}
	}
}
