package errors

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	werr "github.com/pkg/errors"
)

/*
-------------------------------
	Wrapper
-------------------------------
*/

// WrapStack add StackTrace and wrap error with message if it passed
// If error have StackTrace, new stack trace will be ignoring
func WrapStack(err error, msgs ...interface{}) error {
	if err == nil {
		return nil
	}
	if !HasStack(err) {
		err = werr.WithStack(err)
	}
	if msg := joinMessages(msgs); msg != "" {
		err = werr.WithMessage(err, msg)
	}
	return err
}

// WrapMessage wrap error with message if it passed
// without StackTrace
func WrapMessage(err error, msgs ...interface{}) error {
	if err == nil {
		return nil
	}
	if msg := joinMessages(msgs); msg != "" {
		err = werr.WithMessage(err, msg)
	}
	return err
}

func joinMessages(msgs []interface{}) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, fmt.Sprintf("%+v", m))
	}
	return strings.Join(parts, "; ")
}

/*
-------------------------------
	Wrapper tools
-------------------------------
*/

// Cause Return first error, anyway, error was wrapped or not
func Cause(err error) error {
	return werr.Cause(err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// IsWrapped If error from standard pkg was wrapped
func IsWrapped(err error) bool {
	if _, ok := err.(interface{ Cause() error }); ok {
		return true
	}
	return false
}

type stackTracer interface {
	StackTrace() werr.StackTrace
}

// HasStack Return true if StackTrace exist anywhere in the chain
func HasStack(err error) bool {
	var st stackTracer
	return errors.As(err, &st)
}

// UnWrapStack Return StackTrace if it has exist
func UnWrapStack(err error) string {
	var e stackTracer
	if errors.As(err, &e) {
		st := e.StackTrace()
		if len(st) > 0 {
			return fmt.Sprintf("%+v", st)
		}
	}

	return ""
}

// GetStack always return stack
// if there is not wrapped stack then return runtime/debug
func GetStack(err error) string {
	if stack := UnWrapStack(err); stack != "" {
		return stack
	}

	return string(debug.Stack())
}

// New returns an error with the supplied message.
// Sentinel errors are created with New, the stack is attached when they are returned.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error. Errorf also records the stack trace at the point it was called.
func Errorf(format string, args ...interface{}) error {
	return werr.Errorf(format, args...)
}
