package output

import (
	"fmt"
	"os"
	"strings"
)

const lineSeparator = "\n"

// Sink writes an assembled sequence of document lines to a destination.
type Sink interface {
	Write(lines []string, destinationPath string) error
}

// FileSink writes documents to the local filesystem.
type FileSink struct{}

// NewFileSink constructs a FileSink.
func NewFileSink() *FileSink {
	return &FileSink{}
}

// Write joins the lines with single newlines and writes the fully assembled
// document in a single call; nothing is appended incrementally.
func (sink *FileSink) Write(lines []string, destinationPath string) error {
	documentText := strings.Join(lines, lineSeparator)
	if writeError := os.WriteFile(destinationPath, []byte(documentText), 0o644); writeError != nil {
		return fmt.Errorf("write document to %s: %w", destinationPath, writeError)
	}
	return nil
}

var _ Sink = (*FileSink)(nil)
