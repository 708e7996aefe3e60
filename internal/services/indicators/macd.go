package indicators

// MACDSeries holds the three MACD outputs. Line has len(prices)-slow+1
// values; Signal is shorter by signalPeriod-1; Histogram is aligned with
// Signal against the tail of Line.
type MACDSeries struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes moving average convergence/divergence from a fast and a
// slow EMA. fast must be smaller than slow; series shorter than slow yield
// the empty result.
func MACD(prices []float64, fast, slow, signalPeriod int) MACDSeries {
	if fast <= 0 || fast >= slow || len(prices) < slow {
		return MACDSeries{}
	}

	fastEMA := EMA(prices, fast)
	slowEMA := EMA(prices, slow)

	// The fast EMA starts slow-fast bars earlier; drop its head so both
	// series describe the same bars.
	offset := slow - fast
	line := make([]float64, len(slowEMA))
	for i := range slowEMA {
		line[i] = fastEMA[offset+i] - slowEMA[i]
	}

	signal := EMA(line, signalPeriod)
	hist := make([]float64, len(signal))
	start := len(line) - len(signal)
	for i := range signal {
		hist[i] = line[start+i] - signal[i]
	}

	return MACDSeries{Line: line, Signal: signal, Histogram: hist}
}
