// Package verify checks that a rewritten document keeps its block structure.
//
// The code-cell pass only consumes a cell's header; the body and closing
// fence must survive. CheckFences parses both versions with goldmark and
// compares the fenced code blocks one by one, with the cell header (YAML
// or directive options) removed from each body.
package verify

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ErrFenceMismatch indicates the rewrite changed the fenced block structure.
var ErrFenceMismatch = errors.New("fenced code block structure changed")

const codeCellInfo = "{code-cell}"

var (
	md = goldmark.New()

	// :label: value, :tags: a, b, ...
	cellOption = regexp.MustCompile(`^:[\w-]+:(\s|$)`)
)

// Fence describes one fenced code block.
type Fence struct {
	Info  string // lowercased first word of the info string ("" for none)
	Lines int    // body lines, excluding a code-cell header
}

// FenceStats summarizes fenced code blocks in a document.
type FenceStats struct {
	Blocks int
	Fences []Fence // in document order
}

// CountFences parses content as CommonMark and describes its fenced code blocks.
func CountFences(content string) FenceStats {
	source := []byte(content)
	doc := md.Parser().Parse(text.NewReader(source))

	var stats FenceStats
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		info := strings.ToLower(string(fcb.Language(source)))
		lines := make([]string, fcb.Lines().Len())
		for i := range lines {
			seg := fcb.Lines().At(i)
			lines[i] = strings.TrimRight(string(seg.Value(source)), "\r\n")
		}
		if info == codeCellInfo {
			lines = stripCellHeader(lines)
		}

		stats.Blocks++
		stats.Fences = append(stats.Fences, Fence{Info: info, Lines: len(lines)})
		return ast.WalkContinue, nil
	})
	return stats
}

// stripCellHeader drops a leading ----delimited YAML header, or leading
// directive option lines plus the blank line that follows them.
func stripCellHeader(lines []string) []string {
	if len(lines) > 0 && lines[0] == "---" {
		for i := 1; i < len(lines); i++ {
			if lines[i] == "---" {
				return lines[i+1:]
			}
		}
		return lines
	}

	i := 0
	for i < len(lines) && cellOption.MatchString(lines[i]) {
		i++
	}
	if i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return lines[i:]
}

// CheckFences returns ErrFenceMismatch when before and after differ in the
// number of fenced code blocks, or when any block's directive name or body
// length changes. Directive names compare case-insensitively.
func CheckFences(before, after string) error {
	b, a := CountFences(before), CountFences(after)
	if b.Blocks != a.Blocks {
		return fmt.Errorf("%w: %d blocks before, %d after", ErrFenceMismatch, b.Blocks, a.Blocks)
	}
	for i := range b.Fences {
		fb, fa := b.Fences[i], a.Fences[i]
		if fb.Info != fa.Info {
			return fmt.Errorf("%w: block %d is %q before, %q after", ErrFenceMismatch, i+1, fb.Info, fa.Info)
		}
		if fb.Lines != fa.Lines {
			return fmt.Errorf("%w: block %d (%s) has %d body lines before, %d after",
				ErrFenceMismatch, i+1, fb.Info, fb.Lines, fa.Lines)
		}
	}
	return nil
}
