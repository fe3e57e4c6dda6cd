package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/repodoc/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes a starter rules file into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes the application configuration into the global
	// configuration directory.
	InitTargetGlobal InitTarget = "global"

	defaultRulesTemplate = `# Override rules for repodoc.
# Patterns use glob syntax; ** spans directories, other wildcards stay
# within one path segment. A bare file pattern matches at any depth.

[exclude]
# Remove tracked files from the generated document.
# *.test.js
# docs/internal/**
# secrets.json

[include]
# Add files that exist on disk but are not tracked.
# .env.example
# config/*.sample
`

	defaultConfigurationTemplate = `output: repo_contents.md
tokens:
  enabled: false
  model: gpt-4o
copy: false
`
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// InitializeConfiguration writes the default file for the requested target: a
// starter rules file for the local target, the application configuration for
// the global target. The destination path is returned.
func InitializeConfiguration(options InitOptions) (string, error) {
	target := options.Target
	if target == "" {
		target = InitTargetLocal
	}
	var destinationPath string
	var fileContent string
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			currentDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", workingDirectoryError)
			}
			workingDirectory = currentDirectory
		}
		destinationPath = filepath.Join(workingDirectory, utils.RulesFileName)
		fileContent = defaultRulesTemplate
	case InitTargetGlobal:
		homeDirectory, homeError := os.UserHomeDir()
		if homeError != nil {
			return "", fmt.Errorf("resolve home directory for configuration: %w", homeError)
		}
		configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if mkdirError := os.MkdirAll(configurationDirectory, 0o755); mkdirError != nil {
			return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, mkdirError)
		}
		destinationPath = filepath.Join(configurationDirectory, utils.GlobalConfigFileName)
		fileContent = defaultConfigurationTemplate
	default:
		return "", fmt.Errorf("unsupported init target %q", target)
	}

	if _, statError := os.Stat(destinationPath); statError == nil {
		if !options.Force {
			return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(statError) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, statError)
	}

	if writeError := os.WriteFile(destinationPath, []byte(fileContent), 0o600); writeError != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, writeError)
	}

	return destinationPath, nil
}
