package system

import "fmt"

type unsupportedError struct {
	op string
}

func (e *unsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported on this platform", e.op)
}

func errUnsupported(op string) error {
	return &unsupportedError{op: op}
}
