package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// PanicError turns a recovered panic value into an error that carries the
// stack trace of the panicking goroutine. Runtime errors, such as index out
// of range, remain recognizable as runtime.Error. PanicError returns nil if
// p is nil.
func PanicError(p interface{}) error {
	if p == nil {
		return nil
	}
	s := fmt.Sprintf("%v\n%s\nrecovered at", p, debug.Stack())
	r := errors.New(s)
	if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
		return runtimeError{r}
	}
	return r
}
