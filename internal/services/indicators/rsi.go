package indicators

// RSI computes Wilder's relative strength index. It needs period+1 prices
// and returns len(prices)-period values. The first value is derived from
// the simple averages of the first period price changes; later values use
// Wilder smoothing: avg = (avg*(period-1) + current) / period. An average
// loss of zero pins the RSI at 100.
func RSI(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period+1 {
		return nil
	}

	changes := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		changes[i-1] = prices[i] - prices[i-1]
	}

	var avgGain, avgLoss float64
	for _, c := range changes[:period] {
		if c > 0 {
			avgGain += c
		} else {
			avgLoss -= c
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	out := make([]float64, 0, len(changes)-period+1)
	out = append(out, rsiFrom(avgGain, avgLoss))
	for _, c := range changes[period:] {
		var gain, loss float64
		if c > 0 {
			gain = c
		} else {
			loss = -c
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out = append(out, rsiFrom(avgGain, avgLoss))
	}
	return out
}

func rsiFrom(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
