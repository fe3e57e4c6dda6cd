// Package output renders the generated document: the directory tree, the
// line-accounted section layout, and the final write to disk.
package output

import (
	"strings"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
	directoryGlyph      = "📁 "
	fileGlyph           = "📄 "
	directorySuffix     = "/"
)

// directoryTreeNode is a file leaf or an interior directory whose children
// preserve insertion order.
type directoryTreeNode struct {
	childNames []string
	children   map[string]*directoryTreeNode
	isFile     bool
}

func newDirectoryTreeNode() *directoryTreeNode {
	return &directoryTreeNode{children: make(map[string]*directoryTreeNode)}
}

func (node *directoryTreeNode) child(name string) *directoryTreeNode {
	existingChild, childExists := node.children[name]
	if !childExists {
		existingChild = newDirectoryTreeNode()
		node.children[name] = existingChild
		node.childNames = append(node.childNames, name)
	}
	return existingChild
}

// RenderDirectoryTree returns the indented tree lines for the given paths.
// Sibling order follows first insertion, so callers pass the already sorted
// selection and the tree mirrors document order exactly. Directories carry a
// folder glyph and a trailing slash; files carry a file glyph.
func RenderDirectoryTree(sortedPaths []string) []string {
	rootNode := newDirectoryTreeNode()
	for _, relativePath := range sortedPaths {
		pathSegments := strings.Split(relativePath, "/")
		currentNode := rootNode
		for _, directorySegment := range pathSegments[:len(pathSegments)-1] {
			currentNode = currentNode.child(directorySegment)
		}
		currentNode.child(pathSegments[len(pathSegments)-1]).isFile = true
	}

	var treeLines []string
	appendTreeLines(rootNode, "", &treeLines)
	return treeLines
}

func appendTreeLines(node *directoryTreeNode, linePrefix string, treeLines *[]string) {
	for childIndex, childName := range node.childNames {
		childNode := node.children[childName]
		connector := treeBranchConnector
		childPadding := treeBranchPadding
		if childIndex == len(node.childNames)-1 {
			connector = treeLastConnector
			childPadding = treeLastPadding
		}
		if childNode.isFile {
			*treeLines = append(*treeLines, linePrefix+connector+fileGlyph+childName)
			continue
		}
		*treeLines = append(*treeLines, linePrefix+connector+directoryGlyph+childName+directorySuffix)
		appendTreeLines(childNode, linePrefix+childPadding, treeLines)
	}
}
