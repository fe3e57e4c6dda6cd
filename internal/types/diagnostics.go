package types

import (
	"fmt"
	"sync"
)

// Diagnostics accumulates the non-fatal warnings produced during a run so
// they can be reported together after the document is written. Methods are
// safe for concurrent use.
type Diagnostics struct {
	mutex    sync.Mutex
	warnings []string
}

// NewDiagnostics constructs an empty Diagnostics collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Warnf records a formatted warning message. A nil collector discards the
// message.
func (collector *Diagnostics) Warnf(format string, arguments ...interface{}) {
	if collector == nil {
		return
	}
	collector.mutex.Lock()
	defer collector.mutex.Unlock()
	collector.warnings = append(collector.warnings, fmt.Sprintf(format, arguments...))
}

// Warnings returns a copy of the recorded warnings in the order they were
// added.
func (collector *Diagnostics) Warnings() []string {
	if collector == nil {
		return nil
	}
	collector.mutex.Lock()
	defer collector.mutex.Unlock()
	recorded := make([]string, len(collector.warnings))
	copy(recorded, collector.warnings)
	return recorded
}
