package docfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gugugu/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolvePathPriority(t *testing.T) {
	root := t.TempDir()
	byPath := filepath.Join(root, "direct.txt")
	writeFile(t, byPath, "direct")
	writeFile(t, filepath.Join(root, "named.txt"), "named")

	r := NewResolver(root)
	got, err := r.Resolve(byPath, "named.txt")
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if got != byPath {
		t.Errorf("path must win over name: got %s", got)
	}
}

func TestResolveNameSearchesSubdirs(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "docs", "guide.md")
	writeFile(t, want, "guide")

	r := NewResolver(root)
	got, err := r.Resolve("", "guide.md")
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if got != want {
		t.Errorf("Resolve() = %s, want %s", got, want)
	}
}

func TestResolveNotFound(t *testing.T) {
	r := NewResolver(t.TempDir())

	tests := []struct {
		name     string
		path     string
		fileName string
	}{
		{"missing path", filepath.Join(t.TempDir(), "nope.txt"), ""},
		{"missing name", "", "nope.txt"},
		{"no reference", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.path, tt.fileName)
			var nf *domain.NotFoundError
			if !errors.As(err, &nf) {
				t.Errorf("expected NotFoundError, got %v", err)
			}
		})
	}
}

func TestFingerprintChangesWithContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "version one")
	first := Fingerprint(path)
	if first == "" {
		t.Fatal("fingerprint of a readable file must not be empty")
	}
	if again := Fingerprint(path); again != first {
		t.Error("fingerprint must be stable for unchanged content")
	}

	writeFile(t, path, "version one!")
	if second := Fingerprint(path); second == first {
		t.Error("a one-byte change must change the fingerprint")
	}
}

func TestFingerprintUnreadableFile(t *testing.T) {
	if got := Fingerprint(filepath.Join(t.TempDir(), "missing.txt")); got != "" {
		t.Errorf("unreadable file must yield an empty fingerprint, got %q", got)
	}
}
