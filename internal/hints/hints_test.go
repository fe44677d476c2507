package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user config path",
			paths:    []string{"./team.yaml", "/home/u/.config/go-mdupgrade/team.yaml"},
			contains: "or create /home/u/.config/go-mdupgrade/team.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForNotADirectory(t *testing.T) {
	t.Parallel()

	if hint := ForNotADirectory("lecture.md"); !strings.Contains(hint, "lecture.md") {
		t.Errorf("expected path in hint, got %q", hint)
	}
	if hint := ForNotADirectory(""); !strings.Contains(hint, "folder") {
		t.Errorf("expected generic hint, got %q", hint)
	}
}

func TestForNoFiles(t *testing.T) {
	t.Parallel()

	hint := ForNoFiles([]string{".md", ".markdown"})
	if !strings.Contains(hint, ".md, .markdown") {
		t.Errorf("expected extensions in hint, got %q", hint)
	}
	if strings.Count(hint, "hint:") != 1 {
		t.Errorf("expected a single hint line, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	all := map[string]string{
		"ForConfigNotFound":   ForConfigNotFound(nil),
		"ForMissingDirectory": ForMissingDirectory(),
		"ForNotADirectory":    ForNotADirectory("x"),
		"ForPermission":       ForPermission(),
		"ForFenceMismatch":    ForFenceMismatch(),
		"ForNoFiles":          ForNoFiles([]string{".md"}),
	}

	for name, hint := range all {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s: hint = %q, want prefix %q", name, hint, "\n  hint: ")
		}
	}

	if format("") != "" {
		t.Error("format(\"\") should be empty")
	}
	if formatHints(nil) != "" {
		t.Error("formatHints(nil) should be empty")
	}
}
