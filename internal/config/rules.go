// Package config loads override rules and application configuration.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/repodoc/internal/types"
	"github.com/temirov/repodoc/internal/utils"
)

const (
	// excludeSectionHeader identifies the section removing tracked files.
	excludeSectionHeader = "[exclude]"
	// includeSectionHeader identifies the section adding untracked files.
	includeSectionHeader = "[include]"
	// commentPrefix marks a rules-file line as a comment.
	commentPrefix = "#"

	warningRulesReadFormat  = "Could not read %s: %v"
	warningRulesCloseFormat = "Failed to close %s: %v"
)

// LoadRules reads the override rules file from the repository root and
// returns the exclude and include patterns in file order. A missing file
// yields an empty rule set; an unreadable file yields an empty rule set and
// records a warning. Pattern lines that appear before any section header are
// discarded.
//
// #nosec G304
func LoadRules(repositoryRoot string, diagnostics *types.Diagnostics) types.RuleSet {
	rulesFilePath := filepath.Join(repositoryRoot, utils.RulesFileName)
	fileHandle, openError := os.Open(rulesFilePath)
	if openError != nil {
		if !os.IsNotExist(openError) {
			diagnostics.Warnf(warningRulesReadFormat, rulesFilePath, openError)
		}
		return types.RuleSet{}
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil {
			diagnostics.Warnf(warningRulesCloseFormat, rulesFilePath, closeError)
		}
	}()

	var rules types.RuleSet
	currentSectionHeader := ""
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		if strings.EqualFold(trimmedLine, excludeSectionHeader) {
			currentSectionHeader = excludeSectionHeader
			continue
		}
		if strings.EqualFold(trimmedLine, includeSectionHeader) {
			currentSectionHeader = includeSectionHeader
			continue
		}
		switch currentSectionHeader {
		case excludeSectionHeader:
			rules.Exclude = append(rules.Exclude, trimmedLine)
		case includeSectionHeader:
			rules.Include = append(rules.Include, trimmedLine)
		}
	}
	if scanError := scanner.Err(); scanError != nil {
		diagnostics.Warnf(warningRulesReadFormat, rulesFilePath, scanError)
		return types.RuleSet{}
	}
	return rules
}
