package mdu

import (
	"fmt"
	"io"
	"sync"
)

// logger provides conditional debug output and unconditional error lines.
type logger struct {
	enabled bool
	debug   io.Writer
	errors  io.Writer
	mu      sync.Mutex
}

// printf prints debug output if logging is enabled.
func (l *logger) printf(format string, args ...any) {
	if !l.enabled || l.debug == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.debug, format, args...)
}

// errorf writes a single error line prefixed with the program name.
func (l *logger) errorf(format string, args ...any) {
	if l.errors == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.errors, "mdu: "+format+"\n", args...)
}
