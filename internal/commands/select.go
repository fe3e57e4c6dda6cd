// Package commands implements the selection and loading stages that turn a
// repository's tracked file listing into renderable document input.
package commands

import (
	"sort"

	"github.com/temirov/repodoc/internal/types"
	"github.com/temirov/repodoc/internal/utils"
)

// SelectionStats summarizes how override rules changed the tracked set.
type SelectionStats struct {
	TrackedCount  int
	ExcludedCount int
	IncludedCount int
}

// SelectFiles applies the override rules to the tracked file set and returns
// the final sorted selection. Exclude patterns remove tracked files; include
// patterns add files present on disk but not tracked. A file that is both
// tracked and include-matched stays subject to exclusion: exclusion wins.
// The rules file itself is always dropped. The allFiles listing is only
// consulted when include patterns exist, so callers may pass nil otherwise.
func SelectFiles(trackedFiles []string, allFiles []string, rules types.RuleSet) ([]string, SelectionStats) {
	trackedSet := make(map[string]struct{}, len(trackedFiles))
	for _, trackedPath := range trackedFiles {
		trackedSet[trackedPath] = struct{}{}
	}

	selectedSet := make(map[string]struct{}, len(trackedSet))
	for trackedPath := range trackedSet {
		selectedSet[trackedPath] = struct{}{}
	}
	stats := SelectionStats{TrackedCount: len(trackedSet)}

	if len(rules.Exclude) > 0 {
		for selectedPath := range selectedSet {
			if utils.MatchesAnyPattern(selectedPath, rules.Exclude) {
				delete(selectedSet, selectedPath)
				stats.ExcludedCount++
			}
		}
	}

	if len(rules.Include) > 0 {
		for _, candidatePath := range allFiles {
			if _, isTracked := trackedSet[candidatePath]; isTracked {
				continue
			}
			if _, alreadySelected := selectedSet[candidatePath]; alreadySelected {
				continue
			}
			if utils.MatchesAnyPattern(candidatePath, rules.Include) {
				selectedSet[candidatePath] = struct{}{}
				stats.IncludedCount++
			}
		}
	}

	delete(selectedSet, utils.RulesFileName)

	selectedPaths := make([]string, 0, len(selectedSet))
	for selectedPath := range selectedSet {
		selectedPaths = append(selectedPaths, selectedPath)
	}
	sort.Strings(selectedPaths)
	return selectedPaths, stats
}
