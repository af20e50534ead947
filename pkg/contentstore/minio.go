package contentstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	dbconnections "github.com/thebartekbanach/canvas/pkg/connections"
)

type minioStore struct {
	conn dbconnections.BlobStorageConnection
}

var _ ContentStore = (*minioStore)(nil)

func NewMinioStore(conn dbconnections.BlobStorageConnection) ContentStore {
	return &minioStore{conn}
}

func (s *minioStore) Put(ctx context.Context, data []byte) (string, bool, error) {
	hash := ComputeHash(data)
	objectName := s.GetPath(hash)

	exists, err := s.conn.ObjectExists(ctx, objectName)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if exists {
		return hash, false, nil
	}

	mimeType := http.DetectContentType(data)
	if err := s.conn.PutObject(ctx, objectName, int64(len(data)), mimeType, bytes.NewReader(data)); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return hash, true, nil
}

func (s *minioStore) GetPath(hash string) string {
	return hash
}

func (s *minioStore) Exists(ctx context.Context, hash string) (bool, error) {
	if !ValidHash(hash) {
		return false, nil
	}

	exists, err := s.conn.ObjectExists(ctx, s.GetPath(hash))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return exists, nil
}

func (s *minioStore) Read(ctx context.Context, hash string) ([]byte, error) {
	if !ValidHash(hash) {
		return nil, ErrBlobNotFound
	}

	reader, err := s.conn.GetObject(ctx, s.GetPath(hash))
	if errors.Is(err, dbconnections.ErrObjectNotFound) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return data, nil
}
