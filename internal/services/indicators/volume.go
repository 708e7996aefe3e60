package indicators

// VolumeProfile compares the latest volume against its trailing average.
type VolumeProfile struct {
	Average  float64
	Current  float64
	Ratio    float64
	Abnormal bool
}

// AnalyzeVolume averages the last period volumes and reports the latest
// volume's ratio against that average. A zero average (or a series shorter
// than period) yields the neutral ratio 1; Abnormal flags ratios above
// threshold.
func AnalyzeVolume(volumes []float64, period int, threshold float64) VolumeProfile {
	if period <= 0 || len(volumes) < period {
		return VolumeProfile{Ratio: 1}
	}

	sum := 0.0
	for _, v := range volumes[len(volumes)-period:] {
		sum += v
	}
	avg := sum / float64(period)
	current := volumes[len(volumes)-1]

	ratio := 1.0
	if avg > 0 {
		ratio = current / avg
	}
	return VolumeProfile{
		Average:  avg,
		Current:  current,
		Ratio:    ratio,
		Abnormal: ratio > threshold,
	}
}
