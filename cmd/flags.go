package cmd

import (
	"strconv"
)

// optionalIntFlag implements pflag.Value for an int that may be left unset.
type optionalIntFlag struct {
	target **int
}

func newOptionalIntFlag(target **int) *optionalIntFlag {
	return &optionalIntFlag{target: target}
}

func (f *optionalIntFlag) String() string {
	if *f.target == nil {
		return ""
	}
	return strconv.Itoa(**f.target)
}

func (f *optionalIntFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f.target = &v
	return nil
}

func (f *optionalIntFlag) Type() string {
	return "int"
}
