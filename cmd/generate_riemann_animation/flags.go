package main

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/san-kum/riemann/internal/riemann"
)

// intervalValue checks an interval string when the flag is set but keeps
// the raw text, so flags layer over config files the same way.
type intervalValue struct {
	raw   *string
	parse func(string) (riemann.Interval, error)
}

func (v *intervalValue) Set(s string) error {
	if _, err := v.parse(s); err != nil {
		return err
	}
	*v.raw = s
	return nil
}

func (v *intervalValue) String() string { return *v.raw }
func (v *intervalValue) Type() string   { return "interval" }

type positiveValue struct {
	n *int
}

func (v *positiveValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return &riemann.ArgumentError{Value: s, Reason: "is not a valid positive integer"}
	}
	*v.n = n
	return nil
}

func (v *positiveValue) String() string { return strconv.Itoa(*v.n) }
func (v *positiveValue) Type() string   { return "int" }

type modeValue struct {
	raw *string
}

func (v *modeValue) Set(s string) error {
	if _, err := riemann.ParseMode(s); err != nil {
		return err
	}
	*v.raw = s
	return nil
}

func (v *modeValue) String() string { return *v.raw }
func (v *modeValue) Type() string   { return "mode" }

var (
	_ pflag.Value = (*intervalValue)(nil)
	_ pflag.Value = (*positiveValue)(nil)
	_ pflag.Value = (*modeValue)(nil)
)
