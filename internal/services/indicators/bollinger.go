package indicators

import "math"

// BollingerSeries holds the three band tracks, each aligned with SMA
// (len(prices)-period+1 values).
type BollingerSeries struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BollingerBands puts the middle track on the period SMA and the outer
// bands width population standard deviations away from it.
func BollingerBands(prices []float64, period int, width float64) BollingerSeries {
	middle := SMA(prices, period)
	if middle == nil {
		return BollingerSeries{}
	}

	upper := make([]float64, len(middle))
	lower := make([]float64, len(middle))
	for i := range middle {
		sd := popStddev(prices[i:i+period], middle[i])
		upper[i] = middle[i] + width*sd
		lower[i] = middle[i] - width*sd
	}
	return BollingerSeries{Upper: upper, Middle: middle, Lower: lower}
}

// popStddev is the population standard deviation about a known mean.
func popStddev(window []float64, mean float64) float64 {
	var ss float64
	for _, p := range window {
		d := p - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(window)))
}
