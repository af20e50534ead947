package contentstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type filesystemStore struct {
	dir string
}

var _ ContentStore = (*filesystemStore)(nil)

func NewFilesystemStore(dir string) (ContentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating upload dir: %v", ErrStorageFailure, err)
	}

	return &filesystemStore{dir}, nil
}

func (s *filesystemStore) Put(ctx context.Context, data []byte) (string, bool, error) {
	hash := ComputeHash(data)
	path := s.GetPath(hash)

	if _, err := os.Stat(path); err == nil {
		return hash, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	// Concurrent uploads of the same bytes both land here. Each writes its own
	// temp file and the renames replace the blob with identical content.
	tmp, err := os.CreateTemp(s.dir, "."+hash+".*")
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	if err := tmp.Close(); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return hash, true, nil
}

func (s *filesystemStore) GetPath(hash string) string {
	return filepath.Join(s.dir, hash)
}

func (s *filesystemStore) Exists(ctx context.Context, hash string) (bool, error) {
	if !ValidHash(hash) {
		return false, nil
	}

	info, err := os.Stat(s.GetPath(hash))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return info.Mode().IsRegular(), nil
}

func (s *filesystemStore) Read(ctx context.Context, hash string) ([]byte, error) {
	if !ValidHash(hash) {
		return nil, ErrBlobNotFound
	}

	data, err := os.ReadFile(s.GetPath(hash))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return data, nil
}
