package output

import (
	"fmt"
	"path"
	"strings"

	"github.com/temirov/repodoc/internal/types"
	"github.com/temirov/repodoc/internal/utils"
)

const (
	repositoryHeaderFormat = "# Repository: %s"
	pathLineFormat         = "**Path:** `%s`"
	trackedFilesLineFormat = "**Total tracked files:** %d"
	horizontalRule         = "---"
	blankLine              = ""

	structureSectionHeading = "## 📂 Directory Structure"
	tocSectionHeading       = "## 📑 Table of Contents"
	contentsSectionHeading  = "## 📄 File Contents"

	tocTableHeaderRow  = "| File | Lines | Type |"
	tocTableDividerRow = "|------|-------|------|"
	tocRowFormat       = "| %s [%s](#%s) | %d-%d | %s |"
	textFileIcon       = "📄"
	binaryFileIcon     = "📦"

	codeFence                = "```"
	fileSectionHeadingFormat = "### %s"
	binaryContentPlaceholder = "[Binary file - content not displayed]"
	defaultLanguageTag       = "txt"

	// fileSectionOverheadLineCount is the number of non-content lines in one
	// file section: the four heading lines, the two fence lines, and the
	// three spacer lines before the next section.
	fileSectionOverheadLineCount = 9
)

var anchorReplacer = strings.NewReplacer("/", "-", ".", "-", "_", "-")

// Section records where one file's rendered block lives in the document.
type Section struct {
	Path  string
	Range types.SectionRange
}

// Document carries the fully assembled output lines and the per-file section
// ranges recorded in the table of contents.
type Document struct {
	Lines    []string
	Sections []Section
}

// BuildDocument assembles the complete document for the ordered file
// selection. Section line ranges are computed arithmetically from the
// per-file line counts before any content is emitted, then the content pass
// renders into exactly those ranges; nothing is ever renumbered.
func BuildDocument(repositoryName string, absoluteRootPath string, selectedFiles []types.SelectedFile) Document {
	headerLines := []string{
		fmt.Sprintf(repositoryHeaderFormat, repositoryName),
		blankLine,
		fmt.Sprintf(pathLineFormat, absoluteRootPath),
		blankLine,
		fmt.Sprintf(trackedFilesLineFormat, len(selectedFiles)),
		blankLine,
		horizontalRule,
		blankLine,
	}

	relativePaths := make([]string, len(selectedFiles))
	for fileIndex, selectedFile := range selectedFiles {
		relativePaths[fileIndex] = selectedFile.Path
	}
	treeLines := RenderDirectoryTree(relativePaths)

	structureLines := make([]string, 0, len(treeLines)+8)
	structureLines = append(structureLines, structureSectionHeading, blankLine, codeFence, repositoryName+directorySuffix)
	structureLines = append(structureLines, treeLines...)
	structureLines = append(structureLines, codeFence, blankLine, horizontalRule, blankLine)

	tocHeaderLines := []string{tocSectionHeading, blankLine, tocTableHeaderRow, tocTableDividerRow}
	contentLeadInLines := []string{blankLine, horizontalRule, blankLine, contentsSectionHeading, blankLine}

	preContentLineCount := len(headerLines) + len(structureLines) + len(tocHeaderLines) +
		len(selectedFiles) + len(contentLeadInLines)

	sections := make([]Section, 0, len(selectedFiles))
	nextStartLine := preContentLineCount + 1
	for _, selectedFile := range selectedFiles {
		sectionEndLine := nextStartLine + fileSectionOverheadLineCount + selectedFile.LineCount - 1
		sections = append(sections, Section{
			Path: selectedFile.Path,
			Range: types.SectionRange{
				StartLine: nextStartLine,
				EndLine:   sectionEndLine,
				Kind:      selectedFile.Kind,
			},
		})
		nextStartLine = sectionEndLine + 1
	}

	outputLines := make([]string, 0, nextStartLine-1)
	outputLines = append(outputLines, headerLines...)
	outputLines = append(outputLines, structureLines...)
	outputLines = append(outputLines, tocHeaderLines...)
	for fileIndex, selectedFile := range selectedFiles {
		fileIcon := textFileIcon
		if selectedFile.Kind == types.FileKindBinary {
			fileIcon = binaryFileIcon
		}
		sectionRange := sections[fileIndex].Range
		outputLines = append(outputLines, fmt.Sprintf(tocRowFormat,
			fileIcon, selectedFile.Path, AnchorForPath(selectedFile.Path),
			sectionRange.StartLine, sectionRange.EndLine, selectedFile.Kind))
	}
	outputLines = append(outputLines, contentLeadInLines...)
	for _, selectedFile := range selectedFiles {
		outputLines = append(outputLines,
			fmt.Sprintf(fileSectionHeadingFormat, selectedFile.Path),
			blankLine,
			fmt.Sprintf(pathLineFormat, selectedFile.Path),
			blankLine,
		)
		if selectedFile.Kind == types.FileKindBinary {
			outputLines = append(outputLines, codeFence, binaryContentPlaceholder)
		} else {
			outputLines = append(outputLines, codeFence+FenceLanguageTag(selectedFile.Path))
			outputLines = append(outputLines, utils.SplitContentLines(selectedFile.Content)...)
		}
		outputLines = append(outputLines, codeFence, blankLine, horizontalRule, blankLine)
	}

	return Document{Lines: outputLines, Sections: sections}
}

// AnchorForPath derives the table-of-contents anchor for a path: slashes,
// dots, and underscores become hyphens and the result is lower-cased.
// Distinct paths can collide after normalization; the first occurrence wins
// in markdown viewers.
func AnchorForPath(relativePath string) string {
	return strings.ToLower(anchorReplacer.Replace(relativePath))
}

// FenceLanguageTag returns the code-fence language tag for a path, derived
// from the final extension of the basename. Names without an extension,
// dotfiles, and names ending in a dot all fall back to the default tag.
// Extension case is preserved.
func FenceLanguageTag(relativePath string) string {
	baseName := path.Base(relativePath)
	dotIndex := strings.LastIndex(baseName, ".")
	if dotIndex <= 0 || dotIndex == len(baseName)-1 {
		return defaultLanguageTag
	}
	return baseName[dotIndex+1:]
}
