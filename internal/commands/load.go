package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/temirov/repodoc/internal/types"
	"github.com/temirov/repodoc/internal/utils"
)

const (
	readErrorContentFormat = "[Error reading file: %v]"
	warningFileReadFormat  = "Could not read %s: %v"
)

// LoadContents classifies and reads every selected file concurrently,
// preserving the input order in the returned slice. Per-file failures never
// abort the run: unreadable files classify as binary during probing, and a
// text file that fails to load carries a single synthetic error line.
func LoadContents(repositoryRoot string, relativePaths []string, diagnostics *types.Diagnostics) []types.SelectedFile {
	selectedFiles := make([]types.SelectedFile, len(relativePaths))
	loadGroup := new(errgroup.Group)
	loadGroup.SetLimit(runtime.NumCPU())
	for pathIndex, relativePath := range relativePaths {
		loadGroup.Go(func() error {
			selectedFiles[pathIndex] = loadSelectedFile(repositoryRoot, relativePath, diagnostics)
			return nil
		})
	}
	_ = loadGroup.Wait()
	return selectedFiles
}

func loadSelectedFile(repositoryRoot string, relativePath string, diagnostics *types.Diagnostics) types.SelectedFile {
	absolutePath := filepath.Join(repositoryRoot, filepath.FromSlash(relativePath))
	selected := types.SelectedFile{Path: relativePath, Kind: types.FileKindText}

	if fileInformation, statError := os.Stat(absolutePath); statError == nil {
		selected.SizeBytes = fileInformation.Size()
	}

	if utils.IsFileBinary(absolutePath) {
		selected.Kind = types.FileKindBinary
		selected.LineCount = 1
		selected.MimeType = utils.DetectMimeType(absolutePath)
		return selected
	}

	fileBytes, readError := os.ReadFile(absolutePath)
	if readError != nil {
		diagnostics.Warnf(warningFileReadFormat, relativePath, readError)
		selected.Content = fmt.Sprintf(readErrorContentFormat, readError)
		selected.LineCount = 1
		return selected
	}

	selected.Content = utils.DecodeTextWithReplacement(fileBytes)
	selected.LineCount = utils.ContentLineCount(selected.Content)
	return selected
}
