package mock_registry

import (
	"context"
	"sync"

	"github.com/thebartekbanach/canvas/pkg/registry"
)

type MockSourceImagesRepository struct {
	images map[string]registry.SourceImageModel
	lock   sync.Mutex
	err    error
}

var _ registry.SourceImagesRepository = (*MockSourceImagesRepository)(nil)

func NewMockSourceImagesRepository() *MockSourceImagesRepository {
	return &MockSourceImagesRepository{
		images: make(map[string]registry.SourceImageModel),
	}
}

func (r *MockSourceImagesRepository) ReturnError(err error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.err = err
}

func (r *MockSourceImagesRepository) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()

	return len(r.images)
}

func (r *MockSourceImagesRepository) CreateSourceImageInfo(ctx context.Context, info registry.SourceImageModel) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.err != nil {
		return r.err
	}

	if _, ok := r.images[info.Hash]; ok {
		return registry.ErrSourceImageAlreadyExists
	}

	r.images[info.Hash] = info
	return nil
}

func (r *MockSourceImagesRepository) GetSourceImageInfo(ctx context.Context, hash string) (registry.SourceImageModel, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.err != nil {
		return registry.SourceImageModel{}, r.err
	}

	info, ok := r.images[hash]
	if !ok {
		return registry.SourceImageModel{}, registry.ErrSourceImageNotFound
	}

	return info, nil
}
