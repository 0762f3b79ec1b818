package riemann

// Mode selects which point of a sub-interval sets the rectangle height.
type Mode string

const (
	Left   Mode = "left"
	Right  Mode = "right"
	Center Mode = "center"
)

var modes = map[Mode]func(start, end float64) float64{
	Left:   func(start, end float64) float64 { return start },
	Right:  func(start, end float64) float64 { return end },
	Center: func(start, end float64) float64 { return (start + end) / 2 },
}

// Modes returns the recognized modes in display order.
func Modes() []Mode {
	return []Mode{Left, Right, Center}
}

// ParseMode rejects anything other than left, right or center.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if _, ok := modes[m]; !ok {
		return "", argErr("mode", s, "must be left, right, or center")
	}
	return m, nil
}

// Valid reports whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	_, ok := modes[m]
	return ok
}

// Sample returns the point of [start, end] whose function value is the
// rectangle height.
func (m Mode) Sample(start, end float64) (float64, error) {
	fn, ok := modes[m]
	if !ok {
		return 0, argErr("mode", string(m), "must be left, right, or center")
	}
	return fn(start, end), nil
}

func (m Mode) String() string { return string(m) }
