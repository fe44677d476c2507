package pipeline

import (
	"log/slog"
	"regexp"
	"strings"
)

// Pass rewrites a whole document and returns the result.
type Pass func(content string) string

// NamedPass pairs a pass with a stable name for logging.
type NamedPass struct {
	Name  string
	Apply Pass
}

// Pass names in execution order.
const (
	PassBlankUserExpressions = "blank-user-expressions"
	PassDocLinksTitled       = "doc-links-titled"
	PassDocLinksBlank        = "doc-links-blank"
	PassCodeCells            = "code-cells"
	PassDirectiveCase        = "directive-case"
)

// Pipeline runs a fixed sequence of passes, feeding each output forward.
type Pipeline struct {
	passes []NamedPass
	logger *slog.Logger
}

// New creates a Pipeline from the given passes. A nil logger discards output.
func New(logger *slog.Logger, passes ...NamedPass) *Pipeline {
	if logger == nil {
		logger = discardLogger()
	}
	return &Pipeline{passes: passes, logger: logger}
}

// Default returns the standard pipeline. Titled links must run before
// blank links, otherwise `{doc}`title <target>`` is consumed as a target.
func Default(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = discardLogger()
	}
	codeCells := &CodeCellPass{Logger: logger}
	return New(logger,
		NamedPass{Name: PassBlankUserExpressions, Apply: RemoveBlankUserExpressions},
		NamedPass{Name: PassDocLinksTitled, Apply: RewriteTitledDocLinks},
		NamedPass{Name: PassDocLinksBlank, Apply: RewriteBlankDocLinks},
		NamedPass{Name: PassCodeCells, Apply: codeCells.Apply},
		NamedPass{Name: PassDirectiveCase, Apply: LowercaseDirectives},
	)
}

// Run applies every pass once, in order.
func (p *Pipeline) Run(content string) string {
	for _, pass := range p.passes {
		out := pass.Apply(content)
		if out != content {
			p.logger.Debug("pass rewrote document", "pass", pass.Name, "before", len(content), "after", len(out))
		}
		content = out
	}
	return content
}

// Names returns the pass names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name
	}
	return names
}

// replaceMatches rewrites every non-overlapping match of re, left to right,
// over the original text. repl receives the submatch index slice for the
// match; text between matches is copied unchanged and never rescanned.
func replaceMatches(re *regexp.Regexp, content string, repl func(loc []int) string) string {
	matches := re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, loc := range matches {
		b.WriteString(content[last:loc[0]])
		b.WriteString(repl(loc))
		last = loc[1]
	}
	b.WriteString(content[last:])
	return b.String()
}

// group returns submatch n for a location returned by FindAllStringSubmatchIndex.
func group(content string, loc []int, n int) string {
	start, end := loc[2*n], loc[2*n+1]
	if start < 0 {
		return ""
	}
	return content[start:end]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
