package config

import "errors"

var ErrInvalidBreakpoints = errors.New("breakpoints must be two increasing positive widths")

type ConfigInitError struct {
	msg string
}

func (e *ConfigInitError) Error() string {
	return e.msg
}
