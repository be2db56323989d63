// Package errors provides error values that carry slog annotations and the
// source location where they were created. It re-exports the standard library
// helpers so that callers only need a single errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError wraps a cause with a message, optional slog attributes, and
// the program counter of the call site that created it.
type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	pc    uintptr
}

// NewSentinel creates a sentinel error suitable for package-level declaration
// and comparison with Is.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg, cause: nil, attrs: nil, pc: callerPC()}
}

// Wrap annotates err with a message and optional slog attributes. The
// attributes surface in logs through SlogError.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, cause: err, attrs: attrs, pc: callerPC()}
}

// DecoratePanic converts a recovered panic value into an error. It returns nil
// when recovered is nil so that it can be called unconditionally in a deferred
// recover block.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		msg:   fmt.Sprintf("panic: %v", recovered),
		cause: nil,
		attrs: nil,
		pc:    callerPC(),
	}
}

// callerPC records the program counter of the caller outside this package.
func callerPC() uintptr {
	// Skip runtime.Callers, callerPC, and the exported constructor.
	var pcs [1]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return 0
	}
	return pcs[0]
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// SlogError converts err into a slog.Attr containing the error message, the
// source location where the error was created, and any annotations attached
// with Wrap along the error chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}
	if source := sourceLocation(err); source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if annotations := collectAnnotations(err); len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}

	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// sourceLocation returns "file.go:line" for the outermost annotated error in
// the chain that recorded a call site.
func sourceLocation(err error) string {
	for _, ae := range annotatedChain(err) {
		if ae.pc == 0 {
			continue
		}
		frames := runtime.CallersFrames([]uintptr{ae.pc})
		frame, _ := frames.Next()
		if frame.File == "" {
			continue
		}
		return fmt.Sprintf("%s:%d", frame.File, frame.Line)
	}
	return ""
}

// collectAnnotations gathers the slog attributes from every annotated error in
// the chain, outermost first.
func collectAnnotations(err error) []slog.Attr {
	var annotations []slog.Attr
	for _, ae := range annotatedChain(err) {
		annotations = append(annotations, ae.attrs...)
	}
	return annotations
}

// annotatedChain walks the error tree breadth-first and returns every
// annotated error it contains. It handles both single-cause wrapping and
// errors.Join trees.
func annotatedChain(err error) []*annotatedError {
	var (
		chain []*annotatedError
		queue = []error{err}
	)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == nil {
			continue
		}
		if ae, ok := current.(*annotatedError); ok {
			chain = append(chain, ae)
			queue = append(queue, ae.cause)
			continue
		}
		switch unwrapped := current.(type) {
		case interface{ Unwrap() error }:
			queue = append(queue, unwrapped.Unwrap())
		case interface{ Unwrap() []error }:
			queue = append(queue, unwrapped.Unwrap()...)
		}
	}
	return chain
}

// New returns an error with the given message. See errors.New.
func New(msg string) error {
	return errors.New(msg)
}

// Is reports whether any error in err's tree matches target. See errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target. See errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err. See
// errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps the given errors into a single error. See errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
