//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/sirupsen/logrus"
	"github.com/thebartekbanach/canvas/pkg/cache"
	cacherepositories "github.com/thebartekbanach/canvas/pkg/cache/repositories"
	"github.com/thebartekbanach/canvas/pkg/config"
	"github.com/thebartekbanach/canvas/pkg/images"
)

func InitializeImageService(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (images.ImageService, func(), error) {
	wire.Build(
		InitializeContentStore,
		InitializeSourceReader,

		InitializeVariantCacheConnection,
		cacherepositories.NewVariantStore,

		InitializeRegistry,
		InitializeProcessingService,

		InitializeCacheServiceConfig,
		cache.NewCacheService,

		images.NewImageService,
	)

	return nil, nil, nil
}
