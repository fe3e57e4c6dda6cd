package commands_test

import (
	"reflect"
	"testing"

	"github.com/temirov/repodoc/internal/commands"
	"github.com/temirov/repodoc/internal/types"
)

func TestSelectFiles(testingInstance *testing.T) {
	testCases := []struct {
		testName      string
		trackedFiles  []string
		allFiles      []string
		rules         types.RuleSet
		expectedPaths []string
		expectedStats commands.SelectionStats
	}{
		{
			testName:      "no rules keeps tracked set sorted",
			trackedFiles:  []string{"src/main.go", "readme.md", "docs/guide.md"},
			allFiles:      nil,
			rules:         types.RuleSet{},
			expectedPaths: []string{"docs/guide.md", "readme.md", "src/main.go"},
			expectedStats: commands.SelectionStats{TrackedCount: 3},
		},
		{
			testName:     "exclusion wins over inclusion for tracked files",
			trackedFiles: []string{"keep.txt", "remove.log"},
			allFiles:     []string{"keep.txt", "remove.log", "extra.env"},
			rules: types.RuleSet{
				Exclude: []string{"*.log"},
				Include: []string{"*.log", "*.env"},
			},
			expectedPaths: []string{"extra.env", "keep.txt"},
			expectedStats: commands.SelectionStats{TrackedCount: 2, ExcludedCount: 1, IncludedCount: 1},
		},
		{
			testName:      "include adds only matching untracked files",
			trackedFiles:  []string{"main.go"},
			allFiles:      []string{"main.go", "notes.md", "build/out.bin"},
			rules:         types.RuleSet{Include: []string{"*.md"}},
			expectedPaths: []string{"main.go", "notes.md"},
			expectedStats: commands.SelectionStats{TrackedCount: 1, IncludedCount: 1},
		},
		{
			testName:      "rules file never appears in selection",
			trackedFiles:  []string{".repodocrc", "main.go"},
			allFiles:      nil,
			rules:         types.RuleSet{},
			expectedPaths: []string{"main.go"},
			expectedStats: commands.SelectionStats{TrackedCount: 2},
		},
		{
			testName:      "rules file dropped even when include matched",
			trackedFiles:  []string{"main.go"},
			allFiles:      []string{"main.go", ".repodocrc"},
			rules:         types.RuleSet{Include: []string{".repodocrc"}},
			expectedPaths: []string{"main.go"},
			expectedStats: commands.SelectionStats{TrackedCount: 1, IncludedCount: 1},
		},
		{
			testName:      "duplicate tracked paths collapse",
			trackedFiles:  []string{"main.go", "main.go"},
			allFiles:      nil,
			rules:         types.RuleSet{},
			expectedPaths: []string{"main.go"},
			expectedStats: commands.SelectionStats{TrackedCount: 1},
		},
		{
			testName:      "exclude with directory pattern",
			trackedFiles:  []string{"src/app.go", "vendor/lib/dep.go", "vendor/readme.md"},
			allFiles:      nil,
			rules:         types.RuleSet{Exclude: []string{"vendor/**"}},
			expectedPaths: []string{"src/app.go"},
			expectedStats: commands.SelectionStats{TrackedCount: 3, ExcludedCount: 2},
		},
	}

	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(subtestInstance *testing.T) {
			selectedPaths, stats := commands.SelectFiles(testCase.trackedFiles, testCase.allFiles, testCase.rules)
			if !reflect.DeepEqual(selectedPaths, testCase.expectedPaths) {
				subtestInstance.Fatalf("expected %v, got %v", testCase.expectedPaths, selectedPaths)
			}
			if stats != testCase.expectedStats {
				subtestInstance.Fatalf("expected stats %+v, got %+v", testCase.expectedStats, stats)
			}
		})
	}
}
