package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Empty Jupytext user_expressions marker, including its surrounding newlines
	blankUserExpressions = regexp.MustCompile(`\n\+\+\+ \{"user_expressions": \[\]\}\n`)

	// {doc}`title <target>`
	titledDocLink = regexp.MustCompile("\\{doc\\}`([^`]*)<([^>]*)>`")

	// {doc}`target`
	blankDocLink = regexp.MustCompile("\\{doc\\}`([^`]*)`")

	// ```{name args} or :::{name args}
	directiveOpener = regexp.MustCompile("(```|:::)\\{([^}]*)\\}")
)

// RemoveBlankUserExpressions deletes `+++ {"user_expressions": []}` marker
// lines together with their trailing newline. Markers listing expressions are kept.
func RemoveBlankUserExpressions(content string) string {
	return blankUserExpressions.ReplaceAllLiteralString(content, "")
}

// RewriteTitledDocLinks turns {doc}`title <target>` into [title](target.md).
// The title is trimmed; the target is used verbatim.
func RewriteTitledDocLinks(content string) string {
	return replaceMatches(titledDocLink, content, func(loc []int) string {
		title := strings.TrimSpace(group(content, loc, 1))
		target := group(content, loc, 2)
		return "[" + title + "](" + target + ".md)"
	})
}

// RewriteBlankDocLinks turns {doc}`target` into [](target.md).
func RewriteBlankDocLinks(content string) string {
	return replaceMatches(blankDocLink, content, func(loc []int) string {
		return "[](" + strings.TrimSpace(group(content, loc, 1)) + ".md)"
	})
}

// LowercaseDirectives lowercases the text between the braces of fence and
// colon directive openers. Markers and braces are left as they are.
func LowercaseDirectives(content string) string {
	return replaceMatches(directiveOpener, content, func(loc []int) string {
		return group(content, loc, 1) + "{" + strings.ToLower(group(content, loc, 2)) + "}"
	})
}
