// Package gitfiles enumerates repository file paths from version control
// metadata and from the working tree.
package gitfiles

import (
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/temirov/repodoc/internal/utils"
)

const (
	gitExecutableName     = "git"
	gitListFilesVerb      = "ls-files"
	gitNullTerminateFlag  = "-z"
	trackedListingFormat  = "list tracked files in %s: %w"
	workingTreeWalkFormat = "walk working tree %s: %w"
)

// TrackedFileProvider lists the repository-relative paths currently tracked
// by version control, using forward slashes.
type TrackedFileProvider interface {
	ListTracked(repositoryRoot string) ([]string, error)
}

// CommandLineProvider lists tracked files by invoking the git executable.
type CommandLineProvider struct{}

// ListTracked runs git ls-files with NUL-terminated output inside the
// repository root, so paths containing newlines survive splitting.
func (CommandLineProvider) ListTracked(repositoryRoot string) ([]string, error) {
	// #nosec G204
	listCommand := exec.Command(gitExecutableName, gitListFilesVerb, gitNullTerminateFlag)
	listCommand.Dir = repositoryRoot
	commandOutput, commandError := listCommand.Output()
	if commandError != nil {
		return nil, fmt.Errorf(trackedListingFormat, repositoryRoot, commandError)
	}
	var trackedPaths []string
	for _, rawPath := range strings.Split(string(commandOutput), "\x00") {
		if rawPath == "" {
			continue
		}
		trackedPaths = append(trackedPaths, rawPath)
	}
	return trackedPaths, nil
}

// IndexProvider lists tracked files by reading the repository index through
// go-git, so listing works without a git executable installed.
type IndexProvider struct{}

// ListTracked opens the repository and returns the name of every index entry.
func (IndexProvider) ListTracked(repositoryRoot string) ([]string, error) {
	repository, openError := git.PlainOpen(repositoryRoot)
	if openError != nil {
		return nil, fmt.Errorf(trackedListingFormat, repositoryRoot, openError)
	}
	repositoryIndex, indexError := repository.Storer.Index()
	if indexError != nil {
		return nil, fmt.Errorf(trackedListingFormat, repositoryRoot, indexError)
	}
	trackedPaths := make([]string, 0, len(repositoryIndex.Entries))
	for _, indexEntry := range repositoryIndex.Entries {
		trackedPaths = append(trackedPaths, indexEntry.Name)
	}
	return trackedPaths, nil
}

// NewTrackedFileProvider prefers the git executable and falls back to the
// index reader when git is not installed.
func NewTrackedFileProvider() TrackedFileProvider {
	if _, lookupError := exec.LookPath(gitExecutableName); lookupError == nil {
		return CommandLineProvider{}
	}
	return IndexProvider{}
}

// ListAllFiles walks the working tree under repositoryRoot and returns
// slash-separated relative paths for every file outside the version control
// metadata directory. Include patterns are evaluated against this listing.
func ListAllFiles(repositoryRoot string) ([]string, error) {
	var allPaths []string
	walkError := filepath.WalkDir(repositoryRoot, func(currentPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			return accessError
		}
		if directoryEntry.IsDir() {
			if directoryEntry.Name() == utils.GitDirectoryName && currentPath != repositoryRoot {
				return filepath.SkipDir
			}
			return nil
		}
		relativePath, relativeError := filepath.Rel(repositoryRoot, currentPath)
		if relativeError != nil {
			return relativeError
		}
		allPaths = append(allPaths, filepath.ToSlash(relativePath))
		return nil
	})
	if walkError != nil {
		return nil, fmt.Errorf(workingTreeWalkFormat, repositoryRoot, walkError)
	}
	return allPaths, nil
}

var (
	_ TrackedFileProvider = CommandLineProvider{}
	_ TrackedFileProvider = IndexProvider{}
)
