package registry

import (
	"context"
	"errors"

	dbconnections "github.com/thebartekbanach/canvas/pkg/connections"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const sourceImagesCollection = "sourceImages"

type sourceImagesRepository struct {
	conn dbconnections.RegistryDBConnection
}

var _ SourceImagesRepository = (*sourceImagesRepository)(nil)

func NewSourceImagesRepository(conn dbconnections.RegistryDBConnection) SourceImagesRepository {
	return &sourceImagesRepository{conn}
}

func (repo *sourceImagesRepository) CreateSourceImageInfo(ctx context.Context, info SourceImageModel) error {
	collection := repo.conn.Collection(sourceImagesCollection)

	result := collection.FindOne(ctx, bson.M{"hash": info.Hash})
	if result.Err() == nil {
		return ErrSourceImageAlreadyExists
	}
	if !errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return result.Err()
	}

	_, err := collection.InsertOne(ctx, info)
	if mongo.IsDuplicateKeyError(err) {
		return ErrSourceImageAlreadyExists
	}

	return err
}

func (repo *sourceImagesRepository) GetSourceImageInfo(ctx context.Context, hash string) (SourceImageModel, error) {
	collection := repo.conn.Collection(sourceImagesCollection)

	var info SourceImageModel
	if err := collection.FindOne(ctx, bson.M{"hash": hash}).Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return SourceImageModel{}, ErrSourceImageNotFound
		}

		return SourceImageModel{}, err
	}

	return info, nil
}

var (
	ErrSourceImageNotFound      = errors.New("source image not found")
	ErrSourceImageAlreadyExists = errors.New("source image already exists")
)
