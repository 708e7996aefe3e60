package indicators

// Levels lists detected support and resistance prices in scan order.
type Levels struct {
	Support    []float64
	Resistance []float64
}

// SupportResistance finds strict local extrema: a low is a support level
// only if it is strictly below every other low within window bars on both
// sides, and symmetrically for resistance on the highs. Tied values are
// not extrema. Series shorter than 2*window+1 closes yield no levels.
func SupportResistance(closes, highs, lows []float64, window int) Levels {
	if window <= 0 || len(closes) < 2*window+1 {
		return Levels{}
	}

	var levels Levels
	for i := window; i < len(lows)-window; i++ {
		if strictMin(lows, i, window) {
			levels.Support = append(levels.Support, lows[i])
		}
	}
	for i := window; i < len(highs)-window; i++ {
		if strictMax(highs, i, window) {
			levels.Resistance = append(levels.Resistance, highs[i])
		}
	}
	return levels
}

func strictMin(vals []float64, i, window int) bool {
	for j := i - window; j <= i+window; j++ {
		if j != i && vals[j] <= vals[i] {
			return false
		}
	}
	return true
}

func strictMax(vals []float64, i, window int) bool {
	for j := i - window; j <= i+window; j++ {
		if j != i && vals[j] >= vals[i] {
			return false
		}
	}
	return true
}
