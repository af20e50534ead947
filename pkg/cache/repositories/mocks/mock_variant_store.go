package mock_cacherepositories

import (
	"context"
	"sync"

	cacherepositories "github.com/thebartekbanach/canvas/pkg/cache/repositories"
	"github.com/thebartekbanach/canvas/pkg/transform"
)

type MockVariantStore struct {
	variants map[transform.VariantKey][]byte
	lock     sync.Mutex
	err      error
	sets     int
}

var _ cacherepositories.VariantStore = (*MockVariantStore)(nil)

func NewMockVariantStore() *MockVariantStore {
	return &MockVariantStore{
		variants: make(map[transform.VariantKey][]byte),
	}
}

func (s *MockVariantStore) InstantSave(key transform.VariantKey, data []byte) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.variants[key] = data
}

func (s *MockVariantStore) ReturnError(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.err = err
}

// SetCalls returns how many times Set was called.
func (s *MockVariantStore) SetCalls() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.sets
}

func (s *MockVariantStore) Stored(key transform.VariantKey) ([]byte, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, ok := s.variants[key]
	return data, ok
}

func (s *MockVariantStore) Exists(ctx context.Context, key transform.VariantKey) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.err != nil {
		return false, s.err
	}

	_, ok := s.variants[key]
	return ok, nil
}

func (s *MockVariantStore) Get(ctx context.Context, key transform.VariantKey) ([]byte, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	if data, ok := s.variants[key]; ok {
		return data, nil
	}

	return nil, cacherepositories.ErrVariantNotFound
}

func (s *MockVariantStore) Set(ctx context.Context, key transform.VariantKey, data []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.err != nil {
		return s.err
	}

	s.sets++
	s.variants[key] = data
	return nil
}
