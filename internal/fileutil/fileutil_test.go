package fileutil_test

// Notes:
// - WriteFileAtomic: the Write, Close and Chmod error branches are not tested
//   because triggering disk write failures is platform-specific.
// - Mode preservation is skipped on Windows, which only models the read-only bit.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-mdupgrade/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{
			name:      "valid extension md",
			extension: "md",
			wantErr:   nil,
		},
		{
			name:      "valid extension markdown",
			extension: "markdown",
			wantErr:   nil,
		},
		{
			name:      "empty extension",
			extension: "",
			wantErr:   fileutil.ErrExtensionEmpty,
		},
		{
			name:      "forward slash path traversal",
			extension: "../etc/passwd",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
		{
			name:      "backslash path traversal",
			extension: "..\\windows\\system32",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
		{
			name:      "null byte injection",
			extension: "md\x00exe",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Replace file contents in place
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "new.md")
		if err := fileutil.WriteFileAtomic(path, []byte("hello"), 0o644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading back: %v", err)
		}
		if string(got) != "hello" {
			t.Errorf("content = %q, want %q", got, "hello")
		}
	})

	t.Run("replaces existing file and keeps mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		if err := os.WriteFile(path, []byte("old content"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if info.Mode().Perm() != 0o600 {
				t.Errorf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(0o600))
			}
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 1 {
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Errorf("dir entries = %v, want only doc.md", names)
		}
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "doc.md")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

// ---------------------------------------------------------------------------
// TestListFiles - Non-recursive listing by extension
// ---------------------------------------------------------------------------

func TestListFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.md", "a.MD", "notes.txt", "c.markdown"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub.md", "nested.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		exts []string
		want []string
	}{
		{
			name: "md only, case-insensitive",
			exts: []string{".md"},
			want: []string{"a.MD", "b.md"},
		},
		{
			name: "md and markdown",
			exts: []string{".md", ".markdown"},
			want: []string{"a.MD", "b.md", "c.markdown"},
		},
		{
			name: "no match",
			exts: []string{".rst"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.ListFiles(dir, tt.exts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var names []string
			for _, p := range got {
				names = append(names, filepath.Base(p))
			}
			if strings.Join(names, ",") != strings.Join(tt.want, ",") {
				t.Errorf("ListFiles() = %v, want %v", names, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRequireDir - Directory argument validation
// ---------------------------------------------------------------------------

func TestRequireDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name: "directory",
			path: dir,
		},
		{
			name:    "regular file",
			path:    file,
			wantErr: fileutil.ErrNotDirectory,
		},
		{
			name:    "missing path",
			path:    filepath.Join(dir, "missing"),
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.RequireDir(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RequireDir(%q) = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing file returns true",
			path: testFile,
			want: true,
		},
		{
			name: "directory returns false",
			path: testDir,
			want: false,
		},
		{
			name: "nonexistent path returns false",
			path: filepath.Join(tempDir, "nonexistent"),
			want: false,
		},
		{
			name: "empty path returns false",
			path: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.FileExists(tt.path)
			if got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "simple name returns false",
			input: "team",
			want:  false,
		},
		{
			name:  "relative path with dot-slash returns true",
			input: "./mdupgrade.yaml",
			want:  true,
		},
		{
			name:  "absolute Unix path returns true",
			input: "/etc/mdupgrade.yaml",
			want:  true,
		},
		{
			name:  "Windows path with backslash returns true",
			input: "C:\\config\\mdupgrade.yaml",
			want:  true,
		},
		{
			name:  "name with dots but no slash returns false",
			input: "team.local",
			want:  false,
		},
		{
			name:  "empty string returns false",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsFilePath(tt.input)
			if got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
