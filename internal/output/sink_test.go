package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/repodoc/internal/output"
)

func TestFileSinkWritesJoinedLines(testingInstance *testing.T) {
	destinationPath := filepath.Join(testingInstance.TempDir(), "document.md")
	lines := []string{"# Repository: demo", "", "---", ""}

	if writeError := output.NewFileSink().Write(lines, destinationPath); writeError != nil {
		testingInstance.Fatalf("Write error: %v", writeError)
	}

	writtenBytes, readError := os.ReadFile(destinationPath)
	if readError != nil {
		testingInstance.Fatalf("read document: %v", readError)
	}
	expectedContent := "# Repository: demo\n\n---\n"
	if string(writtenBytes) != expectedContent {
		testingInstance.Fatalf("expected %q, got %q", expectedContent, string(writtenBytes))
	}
}

func TestFileSinkReportsWriteFailure(testingInstance *testing.T) {
	missingDirectory := filepath.Join(testingInstance.TempDir(), "absent", "document.md")
	if writeError := output.NewFileSink().Write([]string{"line"}, missingDirectory); writeError == nil {
		testingInstance.Fatalf("expected error writing into missing directory")
	}
}
