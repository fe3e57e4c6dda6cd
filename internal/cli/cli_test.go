package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	git "github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// initializeRepositoryFixture creates a repository with the given files
// written to disk and staged in the index.
func initializeRepositoryFixture(testingInstance *testing.T, trackedFiles map[string]string) string {
	testingInstance.Helper()
	repositoryRoot := testingInstance.TempDir()
	repository, initError := git.PlainInit(repositoryRoot, false)
	if initError != nil {
		testingInstance.Fatalf("initialize repository: %v", initError)
	}
	worktree, worktreeError := repository.Worktree()
	if worktreeError != nil {
		testingInstance.Fatalf("open worktree: %v", worktreeError)
	}
	for relativePath, fileContent := range trackedFiles {
		writeWorkingTreeFile(testingInstance, repositoryRoot, relativePath, fileContent)
		if _, addError := worktree.Add(relativePath); addError != nil {
			testingInstance.Fatalf("stage fixture file %s: %v", relativePath, addError)
		}
	}
	return repositoryRoot
}

func writeWorkingTreeFile(testingInstance *testing.T, repositoryRoot string, relativePath string, fileContent string) {
	testingInstance.Helper()
	absolutePath := filepath.Join(repositoryRoot, filepath.FromSlash(relativePath))
	if mkdirError := os.MkdirAll(filepath.Dir(absolutePath), 0o755); mkdirError != nil {
		testingInstance.Fatalf("create fixture directory: %v", mkdirError)
	}
	if writeError := os.WriteFile(absolutePath, []byte(fileContent), 0o600); writeError != nil {
		testingInstance.Fatalf("write fixture file: %v", writeError)
	}
}

func executeRootCommand(testingInstance *testing.T, commandArguments []string) error {
	testingInstance.Helper()
	testingInstance.Setenv("HOME", testingInstance.TempDir())
	testingInstance.Setenv("USERPROFILE", testingInstance.TempDir())
	rootCommand := createRootCommand(zap.NewNop())
	rootCommand.SetArgs(commandArguments)
	return rootCommand.Execute()
}

func TestGenerateDocumentEndToEnd(testingInstance *testing.T) {
	repositoryRoot := initializeRepositoryFixture(testingInstance, map[string]string{
		"readme.md":   "# Demo\n",
		"src/main.go": "package main\n",
		"logo.bin":    "\x00\x01\x02",
	})
	writeWorkingTreeFile(testingInstance, repositoryRoot, "notes.md", "untracked notes\n")
	writeWorkingTreeFile(testingInstance, repositoryRoot, ".repodocrc",
		"[exclude]\nlogo.bin\n\n[include]\nnotes.md\n")
	outputPath := filepath.Join(testingInstance.TempDir(), "document.md")

	if executeError := executeRootCommand(testingInstance, []string{repositoryRoot, outputPath}); executeError != nil {
		testingInstance.Fatalf("Execute error: %v", executeError)
	}

	documentBytes, readError := os.ReadFile(outputPath)
	if readError != nil {
		testingInstance.Fatalf("read generated document: %v", readError)
	}
	documentText := string(documentBytes)
	documentLines := strings.Split(documentText, "\n")

	if expectedHeading := "# Repository: " + filepath.Base(repositoryRoot); documentLines[0] != expectedHeading {
		testingInstance.Fatalf("expected heading %q, got %q", expectedHeading, documentLines[0])
	}
	for _, expectedFragment := range []string{
		"## 📂 Directory Structure",
		"## 📑 Table of Contents",
		"## 📄 File Contents",
		"### readme.md",
		"### src/main.go",
		"### notes.md",
		"| 📄 [readme.md](#readme-md) |",
	} {
		if !strings.Contains(documentText, expectedFragment) {
			testingInstance.Fatalf("document missing %q", expectedFragment)
		}
	}
	for _, forbiddenFragment := range []string{"### logo.bin", "### .repodocrc"} {
		if strings.Contains(documentText, forbiddenFragment) {
			testingInstance.Fatalf("document must not contain %q", forbiddenFragment)
		}
	}
}

func TestGenerateFailsForMissingDirectory(testingInstance *testing.T) {
	missingPath := filepath.Join(testingInstance.TempDir(), "absent")

	executeError := executeRootCommand(testingInstance, []string{missingPath, "out.md"})
	if executeError == nil || !strings.Contains(executeError.Error(), "is not a valid directory") {
		testingInstance.Fatalf("expected invalid directory error, got %v", executeError)
	}
}

func TestGenerateFailsOutsideRepository(testingInstance *testing.T) {
	plainDirectory := testingInstance.TempDir()

	executeError := executeRootCommand(testingInstance, []string{plainDirectory, "out.md"})
	if executeError == nil || !strings.Contains(executeError.Error(), "is not a git repository") {
		testingInstance.Fatalf("expected repository error, got %v", executeError)
	}
}

func TestGenerateFailsWhenAllFilesExcluded(testingInstance *testing.T) {
	repositoryRoot := initializeRepositoryFixture(testingInstance, map[string]string{
		"readme.md": "# Demo\n",
	})
	writeWorkingTreeFile(testingInstance, repositoryRoot, ".repodocrc", "[exclude]\n*\n")

	executeError := executeRootCommand(testingInstance, []string{repositoryRoot, filepath.Join(testingInstance.TempDir(), "out.md")})
	if executeError == nil || executeError.Error() != errorNoFilesSelected {
		testingInstance.Fatalf("expected %q, got %v", errorNoFilesSelected, executeError)
	}
}

func TestGenerateHonorsConfiguredOutput(testingInstance *testing.T) {
	repositoryRoot := initializeRepositoryFixture(testingInstance, map[string]string{
		"readme.md": "# Demo\n",
	})
	configuredOutputPath := filepath.Join(testingInstance.TempDir(), "from_config.md")
	writeWorkingTreeFile(testingInstance, repositoryRoot, ".repodoc.yaml", "output: "+configuredOutputPath+"\n")

	if executeError := executeRootCommand(testingInstance, []string{repositoryRoot}); executeError != nil {
		testingInstance.Fatalf("Execute error: %v", executeError)
	}

	if _, statError := os.Stat(configuredOutputPath); statError != nil {
		testingInstance.Fatalf("expected document at configured path: %v", statError)
	}
}

func TestInitCommandWritesRulesFile(testingInstance *testing.T) {
	workingDirectory := testingInstance.TempDir()
	testingInstance.Chdir(workingDirectory)

	if executeError := executeRootCommand(testingInstance, []string{"init"}); executeError != nil {
		testingInstance.Fatalf("Execute error: %v", executeError)
	}

	rulesContent, readError := os.ReadFile(filepath.Join(workingDirectory, ".repodocrc"))
	if readError != nil {
		testingInstance.Fatalf("read rules file: %v", readError)
	}
	if !strings.Contains(string(rulesContent), "[exclude]") {
		testingInstance.Fatalf("unexpected rules content: %s", rulesContent)
	}
}

func TestInitCommandGlobalTarget(testingInstance *testing.T) {
	homeDirectory := testingInstance.TempDir()
	testingInstance.Setenv("HOME", homeDirectory)
	testingInstance.Setenv("USERPROFILE", homeDirectory)

	rootCommand := createRootCommand(zap.NewNop())
	rootCommand.SetArgs([]string{"init", "--global"})
	if executeError := rootCommand.Execute(); executeError != nil {
		testingInstance.Fatalf("Execute error: %v", executeError)
	}

	configContent, readError := os.ReadFile(filepath.Join(homeDirectory, ".repodoc", "config.yaml"))
	if readError != nil {
		testingInstance.Fatalf("read global configuration: %v", readError)
	}
	if !strings.Contains(string(configContent), "output:") {
		testingInstance.Fatalf("unexpected configuration content: %s", configContent)
	}
}
