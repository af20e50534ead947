package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	cacherepositories "github.com/thebartekbanach/canvas/pkg/cache/repositories"
	"github.com/thebartekbanach/canvas/pkg/contentstore"
	"github.com/thebartekbanach/canvas/pkg/metrics"
	"github.com/thebartekbanach/canvas/pkg/processor"
)

type CacheServiceConfig struct {
	// CollapseMisses makes concurrent misses for one key share a single
	// pipeline run.
	CollapseMisses bool
}

type cacheService struct {
	config    CacheServiceConfig
	variants  cacherepositories.VariantStore
	sources   SourceReader
	processor processor.ProcessingService
	logger    *logrus.Logger
	misses    singleflight.Group
}

var _ CacheService = (*cacheService)(nil)

func NewCacheService(
	config CacheServiceConfig,
	variants cacherepositories.VariantStore,
	sources SourceReader,
	processingService processor.ProcessingService,
	logger *logrus.Logger,
) CacheService {
	return &cacheService{
		config:    config,
		variants:  variants,
		sources:   sources,
		processor: processingService,
		logger:    logger,
	}
}

func (s *cacheService) Resolve(ctx context.Context, req VariantRequest, conditional bool) (Result, error) {
	if conditional {
		metrics.RecordLookup(metrics.LookupNotModified)
		return Result{Status: StatusNotModified}, nil
	}

	log := s.logger.WithFields(logrus.Fields{"hash": req.Hash, "key": req.Key})

	exists, err := s.variants.Exists(ctx, req.Key)
	if err != nil {
		metrics.RecordLookup(metrics.LookupError)
		return Result{}, fmt.Errorf("%w: %v", ErrVariantStoreFailure, err)
	}

	if exists {
		data, err := s.variants.Get(ctx, req.Key)
		if err == nil {
			metrics.RecordLookup(metrics.LookupHit)
			log.Debug("variant cache hit")
			return Result{Status: StatusOK, Body: data, Cached: true}, nil
		}

		if !errors.Is(err, cacherepositories.ErrVariantNotFound) {
			metrics.RecordLookup(metrics.LookupError)
			return Result{}, fmt.Errorf("%w: %v", ErrVariantStoreFailure, err)
		}
	}

	metrics.RecordLookup(metrics.LookupMiss)
	log.Debug("variant cache miss")

	var data []byte
	if s.config.CollapseMisses {
		// Callers joining the run must not fail because the first caller
		// went away.
		shared, err, _ := s.misses.Do(req.Key.String(), func() (interface{}, error) {
			return s.render(context.WithoutCancel(ctx), req)
		})
		if err != nil {
			return Result{}, err
		}
		data = shared.([]byte)
	} else {
		data, err = s.render(ctx, req)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{Status: StatusOK, Body: data}, nil
}

func (s *cacheService) render(ctx context.Context, req VariantRequest) ([]byte, error) {
	source, err := s.sources.Read(ctx, req.Hash)
	if errors.Is(err, contentstore.ErrBlobNotFound) {
		return nil, ErrSourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceReadFailure, err)
	}

	data, err := s.processor.Process(ctx, source, req.Spec)
	if err != nil {
		return nil, err
	}

	if err := s.variants.Set(ctx, req.Key, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVariantStoreFailure, err)
	}

	return data, nil
}

var (
	ErrSourceNotFound      = errors.New("source image not found")
	ErrSourceReadFailure   = errors.New("source image could not be read")
	ErrVariantStoreFailure = errors.New("variant store failure")
)
