package features

import (
	"math"
	"testing"

	"TradeScope/internal/domain/models"
)

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.6f, want %.6f", label, got, want)
	}
}

func constantSeries(n int, price, volume float64) models.Series {
	s := make(models.Series, n)
	for i := range s {
		s[i] = models.Bar{Open: price, High: price, Low: price, Close: price, Volume: volume}
	}
	return s
}

func risingSeries(n int) models.Series {
	s := make(models.Series, n)
	for i := range s {
		c := 100 + float64(i)
		s[i] = models.Bar{Open: c - 0.5, High: c + 0.5, Low: c - 1, Close: c, Volume: 1000}
	}
	return s
}

func TestBuildVector_NeedsMinBars(t *testing.T) {
	if _, ok := BuildVector(constantSeries(MinBars-1, 100, 1000)); ok {
		t.Fatal("expected ok=false below MinBars")
	}
	if _, ok := BuildVector(constantSeries(MinBars, 100, 1000)); !ok {
		t.Fatal("expected ok=true at MinBars")
	}
}

func TestBuildVector_ConstantSeries(t *testing.T) {
	vec, ok := BuildVector(constantSeries(40, 100, 1000))
	if !ok {
		t.Fatal("expected ok")
	}

	assertClose(t, "price change", vec.PriceChange, 0, 1e-9)
	// Flat prices pin the RSI at 100; the feature is scaled to [0, 1].
	assertClose(t, "rsi", vec.RSI, 1, 1e-9)
	assertClose(t, "macd", vec.MACD, 0, 1e-9)
	assertClose(t, "macd signal", vec.MACDSignal, 0, 1e-9)
	assertClose(t, "macd histogram", vec.MACDHistogram, 0, 1e-9)
	// Collapsed bands read as mid-band.
	assertClose(t, "bb position", vec.BBPosition, 0.5, 1e-9)
	assertClose(t, "sma5 ratio", vec.SMA5Ratio, 1, 1e-9)
	assertClose(t, "sma20 ratio", vec.SMA20Ratio, 1, 1e-9)
	assertClose(t, "ema12 ratio", vec.EMA12Ratio, 1, 1e-9)
	assertClose(t, "ema26 ratio", vec.EMA26Ratio, 1, 1e-9)
	assertClose(t, "volume ratio", vec.VolumeRatio, 1, 1e-9)
	assertClose(t, "volatility", vec.Volatility, 0, 1e-9)
	assertClose(t, "pattern signal", vec.PatternSignal, 0, 1e-9)
}

func TestBuildVector_RisingSeries(t *testing.T) {
	vec, ok := BuildVector(risingSeries(30))
	if !ok {
		t.Fatal("expected ok")
	}

	// Last close 129, previous 128.
	assertClose(t, "price change", vec.PriceChange, 1.0/128.0, 1e-9)
	// Monotonic gains pin the RSI at 100 → scaled 1.
	assertClose(t, "rsi", vec.RSI, 1, 1e-9)
	if vec.MACD <= 0 {
		t.Errorf("macd should be positive in an uptrend, got %v", vec.MACD)
	}
	if vec.BBPosition <= 0.5 {
		t.Errorf("bb position should sit above mid-band in an uptrend, got %v", vec.BBPosition)
	}
	if vec.SMA5Ratio <= 1 || vec.SMA20Ratio <= 1 {
		t.Errorf("price should sit above both SMAs in an uptrend, got %v / %v", vec.SMA5Ratio, vec.SMA20Ratio)
	}
	if vec.SMA20Ratio <= vec.SMA5Ratio {
		t.Errorf("the long SMA should lag further behind: sma5=%v sma20=%v", vec.SMA5Ratio, vec.SMA20Ratio)
	}
}

func TestBuildVector_VolumeSurge(t *testing.T) {
	series := constantSeries(30, 100, 1000)
	series[len(series)-1].Volume = 3000

	vec, ok := BuildVector(series)
	if !ok {
		t.Fatal("expected ok")
	}
	// Mean of the ten bars before the last is 1000.
	assertClose(t, "volume ratio", vec.VolumeRatio, 3, 1e-9)
}

func TestFeatureVector_ValuesOrder(t *testing.T) {
	vec := models.FeatureVector{
		PriceChange: 1, RSI: 2, MACD: 3, MACDSignal: 4, MACDHistogram: 5,
		BBPosition: 6, SMA5Ratio: 7, SMA20Ratio: 8, EMA12Ratio: 9,
		EMA26Ratio: 10, VolumeRatio: 11, Volatility: 12, PatternSignal: 13,
	}
	values := vec.Values()
	if len(values) != len(models.FeatureNames) {
		t.Fatalf("values len %d != names len %d", len(values), len(models.FeatureNames))
	}
	for i, v := range values {
		if v != float64(i+1) {
			t.Errorf("values[%d] = %v, want %v (order must match FeatureNames)", i, v, i+1)
		}
	}
}
