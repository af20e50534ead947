package dbconnections

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RegistryDBConfig struct {
	ConnectionString string
}

type RegistryDBProductionConnection struct {
	config RegistryDBConfig
	client *mongo.Client
}

var _ RegistryDBConnection = (*RegistryDBProductionConnection)(nil)

func NewRegistryDBProductionConnection(ctx context.Context, config RegistryDBConfig) (*RegistryDBProductionConnection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionString))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	return &RegistryDBProductionConnection{
		config: config,
		client: client,
	}, nil
}

func (c *RegistryDBProductionConnection) Collection(collectionName string) *mongo.Collection {
	return c.client.Database("canvas").Collection(collectionName)
}

func (c *RegistryDBProductionConnection) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
