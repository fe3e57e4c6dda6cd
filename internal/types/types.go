// Package types defines the data structures shared between the selection,
// loading, and rendering stages of document generation.
package types

// File classification values distinguish how a selected file is rendered.
const (
	// FileKindText marks files whose decoded content is embedded verbatim.
	FileKindText = "text"
	// FileKindBinary marks files rendered as a single placeholder line.
	FileKindBinary = "binary"
)

// RuleSet holds the override patterns loaded from the repository rules file.
// Patterns appear in file order.
type RuleSet struct {
	Exclude []string
	Include []string
}

// SelectedFile describes one file chosen for the document together with the
// metadata the document builder needs to account for its section.
type SelectedFile struct {
	// Path is the repository-relative path using forward slashes.
	Path string
	// Kind is FileKindText or FileKindBinary.
	Kind string
	// Content holds the decoded file text. Empty for binary files.
	Content string
	// LineCount is the number of content lines the rendered section carries.
	// Binary files always count as one placeholder line; empty text files
	// still count as one line.
	LineCount int
	// SizeBytes is the on-disk size of the file.
	SizeBytes int64
	// MimeType carries the detected content type for binary files.
	MimeType string
}

// SectionRange records the 1-based inclusive line span a file section
// occupies in the generated document, including the spacer lines that
// trail the closing code fence.
type SectionRange struct {
	StartLine int
	EndLine   int
	Kind      string
}
