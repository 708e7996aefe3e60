package metrics

// Noop discards all measurements. Used in tests and wherever a caller has
// no registry to report into.
type Noop struct{}

func (Noop) RecordRecommendation(class, signal string) {}
func (Noop) RecordError(kind string)                   {}
func (Noop) RecordScore(symbol string, score float64)  {}
func (Noop) RecordLatency(op string, seconds float64)  {}
