package fastsearch

import (
	"fmt"
	"strings"
)

// Strategy names a matching algorithm.
type Strategy uint8

const (
	// Auto picks a strategy from the haystack and pattern lengths.
	Auto Strategy = iota
	// SingleUnit scans for a one unit pattern.
	SingleUnit
	// DefaultScan is the last-unit anchored bloom filter scan.
	DefaultScan
	// TwoWay is the Crochemore-Perrin matcher.
	TwoWay
	// Adaptive starts as DefaultScan and switches to TwoWay when the scan
	// keeps producing partial matches.
	Adaptive
)

var strategyNames = [...]string{
	Auto:        "auto",
	SingleUnit:  "single",
	DefaultScan: "default",
	TwoWay:      "twoway",
	Adaptive:    "adaptive",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

var strategyAliases = map[string]Strategy{
	"":             Auto,
	"two-way":      TwoWay,
	"default-scan": DefaultScan,
	"char":         SingleUnit,
}

// ParseStrategy returns the strategy with the given name. Matching is case
// insensitive and an empty name is Auto.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if s, ok := strategyAliases[name]; ok {
		return s, nil
	}
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return Auto, fmt.Errorf("fastsearch: unknown strategy %q", name)
}

// Tuning holds the length thresholds used to pick a strategy.
type Tuning struct {
	// Haystacks shorter than SmallHaystack always use DefaultScan.
	SmallHaystack int
	// Haystacks shorter than MediumHaystack use DefaultScan for patterns
	// shorter than ShortPattern.
	MediumHaystack int
	ShortPattern   int
	// Patterns shorter than TinyPattern always use DefaultScan.
	TinyPattern int
	// AdaptiveMinRemaining is how much haystack must be left for Adaptive to
	// hand over to TwoWay.
	AdaptiveMinRemaining int
}

// DefaultTuning returns the built-in thresholds.
func DefaultTuning() Tuning {
	return Tuning{
		SmallHaystack:        2500,
		MediumHaystack:       30000,
		ShortPattern:         100,
		TinyPattern:          6,
		AdaptiveMinRemaining: 2000,
	}
}

// Choose returns the strategy for a haystack of h units and a pattern of p
// units. It never returns Auto.
func (t Tuning) Choose(h, p int) Strategy {
	switch {
	case p == 1:
		return SingleUnit
	case h < t.SmallHaystack || (p < t.ShortPattern && h < t.MediumHaystack) || p < t.TinyPattern:
		return DefaultScan
	case p>>2*3 < h>>2:
		// The pattern is short relative to the haystack, so the up front
		// factorization pays off.
		return TwoWay
	default:
		return Adaptive
	}
}
