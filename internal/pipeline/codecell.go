package pipeline

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/alnah/go-mdupgrade/internal/yamlutil"
)

// codeCellHeader matches a code-cell opener followed by a ----delimited YAML
// header. Only the header is consumed; the cell body and closing fence stay
// in place after the match.
var codeCellHeader = regexp.MustCompile("```\\{code-cell\\}\\s+([\\w-]+)\\n---\\n([\\s\\S]*?)\\n---\\n")

// MetadataDecoder decodes an embedded YAML header into a generic tree.
type MetadataDecoder func(data []byte) (any, error)

// CellOptions holds the directive options extracted from a code-cell header.
type CellOptions struct {
	Label   string
	Caption string
	Width   string
	Tags    []string
}

// Lines renders the options as ":key: value" lines in fixed order,
// skipping empty values.
func (o CellOptions) Lines() []string {
	var lines []string
	if o.Label != "" {
		lines = append(lines, ":label: "+o.Label)
	}
	if o.Caption != "" {
		lines = append(lines, ":caption: "+o.Caption)
	}
	if o.Width != "" {
		lines = append(lines, ":width: "+o.Width)
	}
	if tags := strings.Join(o.Tags, ", "); tags != "" {
		lines = append(lines, ":tags: "+tags)
	}
	return lines
}

// CodeCellPass rewrites code-cell YAML headers into inline directive options.
// The zero value decodes with yamlutil and discards diagnostics.
type CodeCellPass struct {
	Logger *slog.Logger
	Decode MetadataDecoder
}

// Apply rewrites every recognized code-cell header in content. A header whose
// YAML fails to decode is left exactly as written and a warning is logged.
func (p *CodeCellPass) Apply(content string) string {
	logger := p.Logger
	if logger == nil {
		logger = discardLogger()
	}
	decode := p.Decode
	if decode == nil {
		decode = yamlutil.Decode
	}

	block := 0
	return replaceMatches(codeCellHeader, content, func(loc []int) string {
		block++
		lang := group(content, loc, 1)
		header := group(content, loc, 2)

		opts, err := extractCellOptions(decode, header)
		if err != nil {
			logger.Warn("could not parse YAML for code-cell",
				"block", block,
				"line", strings.Count(content[:loc[0]], "\n")+1,
				"lang", lang,
				"error", err,
			)
			return content[loc[0]:loc[1]]
		}

		lines := append([]string{"```{code-cell} " + lang}, opts.Lines()...)
		return strings.Join(lines, "\n") + "\n\n"
	})
}

// extractCellOptions decodes a header and pulls out the figure and tag fields.
// Blank headers yield no options.
func extractCellOptions(decode MetadataDecoder, header string) (CellOptions, error) {
	if strings.TrimSpace(header) == "" {
		return CellOptions{}, nil
	}

	doc, err := decode([]byte(header))
	if err != nil {
		return CellOptions{}, err
	}

	root := asMap(doc)
	figure := asMap(asMap(root["mystnb"])["figure"])

	return CellOptions{
		Label:   figureValue(figure["name"]),
		Caption: strings.TrimSpace(figureValue(figure["caption"])),
		Width:   figureValue(figure["width"]),
		Tags:    stringList(root["tags"]),
	}, nil
}

// asMap returns v as a string-keyed map, or nil if it is not a mapping.
func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	default:
		return nil
	}
}

// scalarString formats a scalar YAML value. Missing values, nulls and
// collections format as the empty string.
func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []any, map[string]any, map[any]any:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// figureValue formats a figure field. False and numeric zero count as unset.
func figureValue(v any) string {
	switch n := v.(type) {
	case bool:
		if !n {
			return ""
		}
	case int:
		if n == 0 {
			return ""
		}
	case int64:
		if n == 0 {
			return ""
		}
	case uint64:
		if n == 0 {
			return ""
		}
	case float64:
		if n == 0 || n != n {
			return ""
		}
	}
	return scalarString(v)
}

// stringList formats each element of a YAML sequence. Non-sequences yield nil.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := listItem(item); ok {
			out = append(out, s)
		}
	}
	return out
}

// listItem formats one tag. Nested sequences are joined with ","; mappings
// are skipped.
func listItem(v any) (string, bool) {
	switch item := v.(type) {
	case []any:
		parts := make([]string, 0, len(item))
		for _, e := range item {
			if s, ok := listItem(e); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true
	case map[string]any, map[any]any:
		return "", false
	default:
		return scalarString(item), true
	}
}
