package vecmath

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-modwt/internal/vecmath/arch/generic"
)

func TestAddScaledIntoMatchesGeneric(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	dst := make([]float64, len(a))
	copy(dst, a)
	want := make([]float64, len(a))
	copy(want, a)

	AddScaledInto(dst, a, 0.5)
	generic.AddScaledInto(want, a, 0.5)

	for i := range dst {
		if math.Abs(dst[i]-want[i]) > 1e-15 {
			t.Fatalf("index %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestAddScaledIntoLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	AddScaledInto(make([]float64, 2), make([]float64, 3), 1)
}

func TestScaleIntoMatchesGeneric(t *testing.T) {
	src := []float64{1, -2, 3, -4, 5, -6, 7}
	dst := make([]float64, len(src))
	want := make([]float64, len(src))

	ScaleInto(dst, src, 2.0)
	generic.ScaleInto(want, src, 2.0)

	for i := range dst {
		if dst[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestDotProductMatchesGeneric(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{5, 4, 3, 2, 1}

	got := DotProduct(a, b)
	want := generic.DotProduct(a, b)

	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("DotProduct = %v, want %v", got, want)
	}
}

func TestDotProductUsesShorterLength(t *testing.T) {
	a := []float64{1, 1, 1, 1}
	b := []float64{2, 2}

	got := DotProduct(a, b)
	if got != 4 {
		t.Fatalf("DotProduct = %v, want 4", got)
	}
}

func TestMaxAbsMatchesGeneric(t *testing.T) {
	x := []float64{1, -7, 3, -2, 6, -9, 0.5}

	got := MaxAbs(x)
	want := generic.MaxAbs(x)

	if got != want {
		t.Fatalf("MaxAbs = %v, want %v", got, want)
	}
}

func TestMaxAbsEmpty(t *testing.T) {
	if got := MaxAbs(nil); got != 0 {
		t.Fatalf("MaxAbs(nil) = %v, want 0", got)
	}
}
