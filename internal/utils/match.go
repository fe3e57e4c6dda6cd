package utils

import (
	"path"
	"strings"
)

const (
	pathSeparator        = "/"
	windowsPathSeparator = "\\"
	recursiveWildcard    = "**"
	wildcardCharacter    = "*"
)

// MatchesPattern reports whether a slash-separated relative path matches an
// override pattern. Both arguments are normalized to forward slashes first.
//
// Patterns containing exactly one "**" are split into a prefix and a suffix.
// The prefix anchors the match at the start of the path; the suffix is then
// tried against every trailing sub-path so the wildcard spans any number of
// directories. All other patterns are matched against the whole path, the
// basename, and finally against the path with leading directories dropped one
// at a time, so a bare file pattern matches at any depth. Glob segments use
// path.Match syntax: '*' and '?' never cross a slash. Malformed patterns
// never match.
func MatchesPattern(candidatePath string, pattern string) bool {
	normalizedPath := strings.ReplaceAll(candidatePath, windowsPathSeparator, pathSeparator)
	normalizedPattern := strings.ReplaceAll(pattern, windowsPathSeparator, pathSeparator)

	wildcardParts := strings.Split(normalizedPattern, recursiveWildcard)
	if len(wildcardParts) == 2 {
		return matchesRecursivePattern(normalizedPath, wildcardParts[0], wildcardParts[1])
	}

	if strings.HasSuffix(normalizedPattern, pathSeparator) {
		normalizedPattern = strings.TrimRight(normalizedPattern, pathSeparator) + pathSeparator + wildcardCharacter
	}

	if globMatches(normalizedPattern, normalizedPath) {
		return true
	}
	if globMatches(normalizedPattern, path.Base(normalizedPath)) {
		return true
	}
	pathSegments := strings.Split(normalizedPath, pathSeparator)
	for segmentIndex := range pathSegments {
		if globMatches(normalizedPattern, strings.Join(pathSegments[segmentIndex:], pathSeparator)) {
			return true
		}
	}
	return false
}

// MatchesAnyPattern reports whether the path matches at least one pattern.
func MatchesAnyPattern(candidatePath string, patterns []string) bool {
	for _, pattern := range patterns {
		if MatchesPattern(candidatePath, pattern) {
			return true
		}
	}
	return false
}

// matchesRecursivePattern handles patterns split around a single "**". The
// prefix must match the start of the path; an empty suffix means anything
// below the prefix matches, otherwise the suffix is tried against every
// trailing sub-path.
func matchesRecursivePattern(normalizedPath string, rawPrefix string, rawSuffix string) bool {
	patternPrefix := strings.TrimRight(rawPrefix, pathSeparator)
	patternSuffix := strings.TrimLeft(rawSuffix, pathSeparator)
	literalPrefix := strings.TrimRight(patternPrefix, wildcardCharacter)

	if patternPrefix != "" && !strings.HasPrefix(normalizedPath, literalPrefix) {
		firstSegment := strings.SplitN(normalizedPath, pathSeparator, 2)[0]
		if !globMatches(patternPrefix, firstSegment) {
			return false
		}
	}

	if patternSuffix == "" {
		if strings.HasPrefix(normalizedPath, literalPrefix) {
			return true
		}
		return globMatches(patternPrefix+wildcardCharacter, normalizedPath)
	}

	pathSegments := strings.Split(normalizedPath, pathSeparator)
	for segmentIndex := range pathSegments {
		if globMatches(patternSuffix, strings.Join(pathSegments[segmentIndex:], pathSeparator)) {
			return true
		}
	}
	return false
}

// globMatches wraps path.Match, treating malformed patterns as non-matches.
func globMatches(pattern string, name string) bool {
	matched, matchError := path.Match(pattern, name)
	return matchError == nil && matched
}
