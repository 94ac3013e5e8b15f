package docfile

import (
	"os"
	"path/filepath"

	"gugugu/internal/domain"
)

// Resolver maps a document reference to one canonical absolute path.
type Resolver struct {
	root string
}

// NewResolver creates a resolver searching bare names under root and its
// docs/ and documents/ subdirectories.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Root returns the configured document root.
func (r *Resolver) Root() string { return r.root }

// Resolve turns a path or a bare file name into a canonical absolute path.
// A given path takes priority over a name. Every lookup hits the filesystem;
// nothing is cached. A reference that cannot be resolved yields
// *domain.NotFoundError.
func (r *Resolver) Resolve(path, name string) (string, error) {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(abs); err != nil {
			return "", &domain.NotFoundError{Ref: path}
		}
		return abs, nil
	}

	if name != "" {
		for _, sub := range []string{"", "docs", "documents"} {
			candidate := filepath.Join(r.root, sub, name)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return "", err
			}
			return abs, nil
		}
		return "", &domain.NotFoundError{Ref: name}
	}

	return "", &domain.NotFoundError{Ref: "(no path or name given)"}
}

// Canonical normalizes a path the same way Resolve does, without requiring
// the file to exist. Used when removing documents that are already gone.
func Canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
