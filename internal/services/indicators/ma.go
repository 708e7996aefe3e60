// Package indicators implements the technical indicator primitives the
// signal engine is built on. Every function is pure: it takes a price or
// volume series (oldest first) and returns a derived series whose first
// value corresponds to the earliest bar with enough lookback, so outputs
// are shorter than inputs by a documented offset. Series too short for an
// indicator yield nil rather than an error.
package indicators

// SMA computes the simple moving average over period bars. The result has
// len(prices)-period+1 values; result[i] averages prices[i:i+period].
func SMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}
	out := make([]float64, 0, len(prices)-period+1)
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			out = append(out, sum/float64(period))
		}
	}
	return out
}

// EMA computes the exponential moving average with multiplier 2/(period+1),
// seeded with the simple average of the first period prices. The result has
// len(prices)-period+1 values, aligned with SMA.
func EMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}
	mult := 2 / float64(period+1)
	seed := 0.0
	for _, p := range prices[:period] {
		seed += p
	}
	seed /= float64(period)

	out := make([]float64, 0, len(prices)-period+1)
	out = append(out, seed)
	prev := seed
	for _, p := range prices[period:] {
		prev = p*mult + prev*(1-mult)
		out = append(out, prev)
	}
	return out
}
