package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thebartekbanach/canvas/pkg/cache"
	"github.com/thebartekbanach/canvas/pkg/config"
	dbconnections "github.com/thebartekbanach/canvas/pkg/connections"
	"github.com/thebartekbanach/canvas/pkg/contentstore"
	"github.com/thebartekbanach/canvas/pkg/processor"
	imagingprocessor "github.com/thebartekbanach/canvas/pkg/processor/imaging"
	"github.com/thebartekbanach/canvas/pkg/registry"
)

const connectTimeout = time.Minute

func InitializeContentStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (contentstore.ContentStore, error) {
	if cfg.StorageBackend != config.StorageMinio {
		logger.WithField("dir", cfg.UploadDir).Info("storing uploads on the filesystem")
		return contentstore.NewFilesystemStore(cfg.UploadDir)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, err := dbconnections.NewMinioBlobStorageConnection(ctx, dbconnections.MinioBlobStorageConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		Location:  cfg.MinioLocation,
		UseSSL:    cfg.MinioSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to minio: %w", err)
	}

	logger.WithField("bucket", cfg.MinioBucket).Info("storing uploads in minio")
	return contentstore.NewMinioStore(conn), nil
}

func InitializeSourceReader(store contentstore.ContentStore) cache.SourceReader {
	return store
}

func InitializeVariantCacheConnection(ctx context.Context, cfg *config.Config) (dbconnections.VariantCacheConnection, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, err := dbconnections.NewVariantCacheProductionConnection(ctx, dbconnections.VariantCacheConfig{
		URL:      cfg.RedisURL,
		PoolSize: cfg.Workers,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return conn, func() { conn.Close() }, nil
}

// InitializeRegistry falls back to a registry that records nothing when no
// MongoDB connection string is configured.
func InitializeRegistry(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (registry.SourceImagesRepository, func(), error) {
	if cfg.MongoConnectionString == "" {
		logger.Info("mongo_connection_string is not set, source registry disabled")
		return registry.NopRepository{}, func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, err := dbconnections.NewRegistryDBProductionConnection(connectCtx, dbconnections.RegistryDBConfig{
		ConnectionString: cfg.MongoConnectionString,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	cleanup := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		conn.Disconnect(disconnectCtx)
	}

	return registry.NewSourceImagesRepository(conn), cleanup, nil
}

func InitializeProcessingService(cfg *config.Config, logger *logrus.Logger) (processor.ProcessingService, error) {
	processorConfig := imagingprocessor.Config{
		Workers:         cfg.Workers,
		OverlayFontSize: cfg.OverlayFontSize,
	}

	if cfg.WatermarkFilePath != "" {
		watermark, err := imagingprocessor.LoadWatermark(cfg.WatermarkFilePath)
		if err != nil {
			return nil, fmt.Errorf("loading watermark: %w", err)
		}
		processorConfig.Watermark = watermark
	} else {
		logger.Info("watermark_file_path is not set, watermark requests are ignored")
	}

	return imagingprocessor.NewProcessor(processorConfig)
}

func InitializeCacheServiceConfig(cfg *config.Config) cache.CacheServiceConfig {
	return cache.CacheServiceConfig{CollapseMisses: cfg.CollapseMisses}
}
