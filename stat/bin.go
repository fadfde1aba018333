// Package stat provides the statistical transforms behind the histograms.
package stat

import (
	"errors"
	"math"

	"go-hep.org/x/hep/hbook"
)

// ErrNoValues is returned when there is nothing to bin.
var ErrNoValues = errors.New("no finite values to bin")

// Bin groups values into n equal-width bins spanning [min, max] and counts
// the occurrences. NaN and infinite values are dropped, max falls into the
// last bin. A constant sample is binned over [x-0.5, x+0.5].
func Bin(values []float64, n int) (*hbook.H1D, error) {
	if n <= 0 {
		return nil, errors.New("number of bins must be positive")
	}
	min, max := math.Inf(+1), math.Inf(-1)
	for _, x := range values {
		if !finite(x) {
			continue
		}
		min = math.Min(min, x)
		max = math.Max(max, x)
	}
	if math.IsInf(min, +1) {
		return nil, ErrNoValues
	}
	if min == max {
		min -= 0.5
		max += 0.5
	}

	h := hbook.NewH1D(n, min, math.Nextafter(max, math.Inf(+1)))
	for _, x := range values {
		if !finite(x) {
			continue
		}
		h.Fill(x, 1)
	}
	return h, nil
}

// BinnedData describes one bin of a histogram.
type BinnedData struct {
	X        float64 // Center of the bin.
	Width    float64
	Count    float64
	Density  float64 // Count / Width / total count.
	NCount   float64 // Count scaled to a maximum of 1.
	NDensity float64 // Density scaled to a maximum of 1.
}

// Summarize lists the bins of h.
func Summarize(h *hbook.H1D) []BinnedData {
	bins := h.Binning.Bins
	result := make([]BinnedData, len(bins))

	total, maxCount, maxDensity := 0.0, 0.0, 0.0
	for _, b := range bins {
		total += b.SumW()
	}
	for i, b := range bins {
		result[i].X = b.XMid()
		result[i].Width = b.XWidth()
		result[i].Count = b.SumW()
		if total > 0 {
			result[i].Density = b.SumW() / b.XWidth() / total
		}
		maxCount = math.Max(maxCount, result[i].Count)
		maxDensity = math.Max(maxDensity, result[i].Density)
	}
	for i := range result {
		if maxCount > 0 {
			result[i].NCount = result[i].Count / maxCount
		}
		if maxDensity > 0 {
			result[i].NDensity = result[i].Density / maxDensity
		}
	}
	return result
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
