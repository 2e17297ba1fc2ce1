package kem_test

import (
	"math"
	"testing"
	"time"

	"github.com/itzmeanjan/ml-kem-sub000/internal/kem"
)

// welch computes Welch's t-statistic for two samples of independent
// measurements. A |t| below ~4.5 gives no statistically significant
// evidence of a timing difference between the two classes; this mirrors
// the threshold the reference implementation's dudect-based harness uses
// (_examples/original_source/tests/dudect).
func welch(a, b []float64) float64 {
	meanVar := func(xs []float64) (mean, variance float64) {
		for _, x := range xs {
			mean += x
		}
		mean /= float64(len(xs))
		for _, x := range xs {
			d := x - mean
			variance += d * d
		}
		variance /= float64(len(xs) - 1)
		return
	}

	meanA, varA := meanVar(a)
	meanB, varB := meanVar(b)

	se := math.Sqrt(varA/float64(len(a)) + varB/float64(len(b)))
	if se == 0 {
		return 0
	}
	return (meanA - meanB) / se
}

// TestDecapsulateTimingIsIndependentOfCiphertextValidity exercises
// Decapsulate's implicit-rejection path against both a genuine
// ciphertext and a tampered one, the same two classes
// do_one_computation in the reference dudect harness compares, and
// checks that neither class's timing distribution dominates the other
// by more than the conventional |t| > 4.5 significance threshold. Timing
// tests are inherently noisy on shared or virtualized hardware, so this
// runs only outside -short mode.
func TestDecapsulateTimingIsIndependentOfCiphertextValidity(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test skipped in -short mode")
	}

	p := kem.Params768
	d := make([]byte, 32)
	z := make([]byte, 32)
	ek, dk := p.KeyGen(d, z)

	m := make([]byte, 32)
	validCT, _, err := p.Encapsulate(ek, m)
	if err != nil {
		t.Fatal(err)
	}

	tamperedCT := make([]byte, len(validCT))
	copy(tamperedCT, validCT)
	tamperedCT[len(tamperedCT)-1] ^= 0x01

	const rounds = 2000
	validTimes := make([]float64, rounds)
	tamperedTimes := make([]float64, rounds)

	for i := 0; i < rounds; i++ {
		start := time.Now()
		p.Decapsulate(dk, validCT)
		validTimes[i] = float64(time.Since(start))

		start = time.Now()
		p.Decapsulate(dk, tamperedCT)
		tamperedTimes[i] = float64(time.Since(start))
	}

	stat := welch(validTimes, tamperedTimes)
	if math.Abs(stat) > 4.5 {
		t.Errorf("|t|=%.2f exceeds conventional threshold; Decapsulate's timing appears to depend on ciphertext validity", math.Abs(stat))
	}
}
