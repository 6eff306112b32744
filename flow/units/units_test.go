package units

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-flow/internal/testutil"
)

func TestNewGainInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewGain(size, 1); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewGain(%d, 1) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestGainProcess(t *testing.T) {
	g, err := NewGain(4, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if g.InputCount() != 4 || g.OutputCount() != 4 {
		t.Fatalf("counts = %d/%d, want 4/4", g.InputCount(), g.OutputCount())
	}

	out := make([]float64, 4)
	if err := g.Process([]float64{2, -4, 6, 0}, out); err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{1, -2, 3, 0}, 1e-12)
}

func TestGainBlockLengthMismatch(t *testing.T) {
	g, err := NewGain(4, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.Process(make([]float64, 3), make([]float64, 4)); !errors.Is(err, ErrBlockLength) {
		t.Fatalf("short input error = %v, want ErrBlockLength", err)
	}
	if err := g.Process(make([]float64, 4), make([]float64, 5)); !errors.Is(err, ErrBlockLength) {
		t.Fatalf("long output error = %v, want ErrBlockLength", err)
	}
}

func TestOffsetProcess(t *testing.T) {
	o, err := NewOffset(3, -1.5)
	if err != nil {
		t.Fatal(err)
	}

	out := make([]float64, 3)
	if err := o.Process([]float64{0, 1.5, 3}, out); err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{-1.5, 0, 1.5}, 1e-12)
}

func TestModulateProcess(t *testing.T) {
	m, err := NewModulate([]float64{1, 0.5, 0})
	if err != nil {
		t.Fatal(err)
	}
	if m.InputCount() != 3 || m.OutputCount() != 3 {
		t.Fatalf("counts = %d/%d, want 3/3", m.InputCount(), m.OutputCount())
	}

	out := make([]float64, 3)
	if err := m.Process([]float64{8, 8, 8}, out); err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{8, 4, 0}, 1e-12)
}

func TestModulateCopiesCoefficients(t *testing.T) {
	coeffs := []float64{1, 1}
	m, err := NewModulate(coeffs)
	if err != nil {
		t.Fatal(err)
	}
	coeffs[0] = 100

	out := make([]float64, 2)
	if err := m.Process([]float64{2, 3}, out); err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{2, 3}, 1e-12)
}

func TestModulateEmptyCoefficients(t *testing.T) {
	if _, err := NewModulate(nil); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("NewModulate(nil) error = %v, want ErrInvalidSize", err)
	}
}

func TestDecimateCounts(t *testing.T) {
	tests := []struct {
		size, factor, wantOut int
	}{
		{8, 2, 4},
		{8, 3, 3},
		{5, 2, 3},
		{4, 1, 4},
		{3, 10, 1},
	}

	for _, tt := range tests {
		d, err := NewDecimate(tt.size, tt.factor)
		if err != nil {
			t.Fatalf("NewDecimate(%d, %d): %v", tt.size, tt.factor, err)
		}
		if got := d.OutputCount(); got != tt.wantOut {
			t.Fatalf("NewDecimate(%d, %d).OutputCount() = %d, want %d",
				tt.size, tt.factor, got, tt.wantOut)
		}
	}
}

func TestDecimateProcess(t *testing.T) {
	d, err := NewDecimate(5, 2)
	if err != nil {
		t.Fatal(err)
	}

	out := make([]float64, d.OutputCount())
	if err := d.Process(testutil.Ramp(5), out); err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 2, 4}, 0)
}

func TestDecimateFactorOneIsIdentity(t *testing.T) {
	d, err := NewDecimate(4, 1)
	if err != nil {
		t.Fatal(err)
	}

	in := []float64{4, 3, 2, 1}
	out := make([]float64, 4)
	if err := d.Process(in, out); err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, in, 0)
}

func TestDecimateInvalidFactor(t *testing.T) {
	if _, err := NewDecimate(4, 0); !errors.Is(err, ErrInvalidFactor) {
		t.Fatalf("NewDecimate(4, 0) error = %v, want ErrInvalidFactor", err)
	}
}

func TestRectifyProcess(t *testing.T) {
	r, err := NewRectify(4)
	if err != nil {
		t.Fatal(err)
	}

	out := make([]float64, 4)
	if err := r.Process([]float64{-1, 2, -3, 0}, out); err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{1, 2, 3, 0}, 0)
}
