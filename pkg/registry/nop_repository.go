package registry

import "context"

// NopRepository is used when no registry database is configured. It accepts
// every record and never finds one.
type NopRepository struct{}

var _ SourceImagesRepository = NopRepository{}

func (NopRepository) CreateSourceImageInfo(ctx context.Context, info SourceImageModel) error {
	return nil
}

func (NopRepository) GetSourceImageInfo(ctx context.Context, hash string) (SourceImageModel, error) {
	return SourceImageModel{}, ErrSourceImageNotFound
}
