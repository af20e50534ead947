package contentstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ContentStore keeps uploaded bytes addressed by the hex SHA-256 digest of
// their content. Blobs are immutable once written.
type ContentStore interface {
	// Put stores data unless a blob with the same digest already exists and
	// returns the digest either way. written reports whether a write happened.
	Put(ctx context.Context, data []byte) (hash string, written bool, err error)
	// GetPath is a pure lookup, it does not check for existence.
	GetPath(hash string) string
	Exists(ctx context.Context, hash string) (bool, error)
	Read(ctx context.Context, hash string) ([]byte, error)
}

func ComputeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ValidHash reports whether hash looks like a digest produced by ComputeHash.
func ValidHash(hash string) bool {
	if len(hash) != sha256.Size*2 {
		return false
	}

	for _, c := range hash {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}

	return true
}

var (
	ErrBlobNotFound   = errors.New("blob not found")
	ErrStorageFailure = errors.New("storage failure")
)
