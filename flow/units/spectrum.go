package units

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum transforms a time-domain block into magnitude spectrum bins.
// The output holds the fftSize/2+1 non-redundant bins of the
// real-input spectrum.
type Spectrum struct {
	fftSize int
	plan    *algofft.Plan[complex128]

	timeBuf []complex128
	freqBuf []complex128
	re      []float64
	im      []float64
}

// NewSpectrum returns a spectrum unit for blocks of fftSize samples.
// Plan creation errors (e.g. unsupported sizes) are propagated.
func NewSpectrum(fftSize int) (*Spectrum, error) {
	if fftSize <= 0 {
		return nil, fmt.Errorf("units: spectrum size %d: %w", fftSize, ErrInvalidSize)
	}
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("units: create FFT plan: %w", err)
	}
	bins := fftSize/2 + 1
	return &Spectrum{
		fftSize: fftSize,
		plan:    plan,
		timeBuf: make([]complex128, fftSize),
		freqBuf: make([]complex128, fftSize),
		re:      make([]float64, bins),
		im:      make([]float64, bins),
	}, nil
}

// InputCount returns the FFT size.
func (s *Spectrum) InputCount() int { return s.fftSize }

// OutputCount returns the number of magnitude bins, fftSize/2+1.
func (s *Spectrum) OutputCount() int { return s.fftSize/2 + 1 }

// Process writes |X[k]| for the non-redundant bins of in's spectrum to out.
func (s *Spectrum) Process(in, out []float64) error {
	if err := checkBlock(in, out, s.fftSize, s.OutputCount()); err != nil {
		return err
	}

	for i, v := range in {
		s.timeBuf[i] = complex(v, 0)
	}
	if err := s.plan.Forward(s.freqBuf, s.timeBuf); err != nil {
		return fmt.Errorf("units: forward FFT: %w", err)
	}

	bins := s.freqBuf[:s.OutputCount()]
	for i, c := range bins {
		s.re[i] = real(c)
		s.im[i] = imag(c)
	}
	vecmath.Magnitude(out, s.re, s.im)
	return nil
}
