package riemann

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Interval is a real interval [Low, High]. Variable optionally names the
// variable of integration; it is empty for display intervals and for
// integration intervals that rely on inference.
type Interval struct {
	Variable string
	Low      float64
	High     float64
}

// Width is High-Low. Low < High is assumed, not enforced.
func (iv Interval) Width() float64 {
	return iv.High - iv.Low
}

func (iv Interval) String() string {
	lo := strconv.FormatFloat(iv.Low, 'g', -1, 64)
	hi := strconv.FormatFloat(iv.High, 'g', -1, 64)
	if iv.Variable != "" {
		return fmt.Sprintf("(%s,%s,%s)", iv.Variable, lo, hi)
	}
	return fmt.Sprintf("(%s,%s)", lo, hi)
}

// ParseInterval parses a pair of reals such as "(0,2)", "[0.5, 1.5]" or
// "0,2". Bracket characters at either end are stripped before splitting
// on commas.
func ParseInterval(s string) (Interval, error) {
	parts := splitTuple(s)
	if len(parts) != 2 {
		return Interval{}, argErr("", s, "is not a valid pair of real numbers")
	}
	lo, hi, err := parsePair(parts[0], parts[1])
	if err != nil {
		return Interval{}, argErr("", s, "is not a valid pair of real numbers")
	}
	return Interval{Low: lo, High: hi}, nil
}

// ParseBounds parses an integration interval: either a pair of reals or a
// triple whose first element names the variable, as in "(t,0,1)". A triple
// whose first element is numeric is rejected.
func ParseBounds(s string) (Interval, error) {
	parts := splitTuple(s)
	switch len(parts) {
	case 2:
		return ParseInterval(s)
	case 3:
		name := parts[0]
		if !isIdentifier(name) {
			return Interval{}, argErr("", s, "must be (low,high) or (variable,low,high)")
		}
		lo, hi, err := parsePair(parts[1], parts[2])
		if err != nil {
			return Interval{}, argErr("", s, "bounds are not real numbers")
		}
		return Interval{Variable: name, Low: lo, High: hi}, nil
	default:
		return Interval{}, argErr("", s, "must be (low,high) or (variable,low,high)")
	}
}

func splitTuple(s string) []string {
	s = strings.Trim(strings.TrimSpace(s), "()[]")
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parsePair(a, b string) (float64, float64, error) {
	lo, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, err
	}
	hi, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, err
	}
	if !finite(lo) || !finite(hi) {
		return 0, 0, fmt.Errorf("bounds must be finite")
	}
	return lo, hi, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
