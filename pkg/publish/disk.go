package publish

import (
	"context"
	"os"
	"path/filepath"
)

// DiskStore writes published markup below a root directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a new DiskStore, creating dir if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Put implements Store. Parent directories are created as needed.
func (s *DiskStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rel, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", err
	}
	return target, nil
}
