package indicators

import "math"

// Volatility is the population standard deviation of the trailing period
// simple returns. Pairs whose previous price is zero contribute no return.
// It returns 0 when fewer than period returns exist.
func Volatility(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period+1 {
		return 0
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
		}
	}
	if len(returns) < period {
		return 0
	}

	recent := returns[len(returns)-period:]
	mean := 0.0
	for _, r := range recent {
		mean += r
	}
	mean /= float64(len(recent))

	variance := 0.0
	for _, r := range recent {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(recent))

	return math.Sqrt(variance)
}
