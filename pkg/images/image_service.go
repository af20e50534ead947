package images

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"

	"github.com/thebartekbanach/canvas/pkg/cache"
	"github.com/thebartekbanach/canvas/pkg/contentstore"
	"github.com/thebartekbanach/canvas/pkg/metrics"
	"github.com/thebartekbanach/canvas/pkg/registry"
	"github.com/thebartekbanach/canvas/pkg/response"
	"github.com/thebartekbanach/canvas/pkg/transform"
)

type imageService struct {
	store    contentstore.ContentStore
	cache    cache.CacheService
	registry registry.SourceImagesRepository
	logger   *logrus.Logger
}

var _ ImageService = (*imageService)(nil)

func NewImageService(
	store contentstore.ContentStore,
	cache cache.CacheService,
	registry registry.SourceImagesRepository,
	logger *logrus.Logger,
) ImageService {
	return &imageService{
		store:    store,
		cache:    cache,
		registry: registry,
		logger:   logger,
	}
}

func (s *imageService) Upload(ctx context.Context, data []byte) (string, error) {
	hash, written, err := s.store.Put(ctx, data)
	if err != nil {
		metrics.RecordUpload(metrics.UploadFailed)
		return "", internal("could not store image", err)
	}

	log := s.logger.WithFields(logrus.Fields{"hash": hash, "size": len(data)})

	if written {
		metrics.RecordUpload(metrics.UploadStored)
		log.Info("image stored")
	} else {
		metrics.RecordUpload(metrics.UploadDeduplicated)
		log.Debug("upload matched an existing image")
	}

	// Deduplicated uploads retry the record in case an earlier write failed.
	if err := s.registry.CreateSourceImageInfo(ctx, describeSource(hash, data)); err != nil {
		if !errors.Is(err, registry.ErrSourceImageAlreadyExists) {
			log.WithError(err).Warn("could not record source image")
		}
	}

	return hash, nil
}

func (s *imageService) Render(ctx context.Context, hash string, params url.Values, conditional bool) (Rendition, error) {
	exists, err := s.store.Exists(ctx, hash)
	if err != nil {
		return Rendition{}, internal("could not look up image", err)
	}
	if !exists {
		return Rendition{}, ImageNotFound(hash)
	}

	spec := transform.Parse(params)
	key := transform.DeriveKey(hash, spec)

	headers := make(http.Header)
	response.Build(hash, spec, key).Apply(headers)

	result, err := s.cache.Resolve(ctx, cache.VariantRequest{Hash: hash, Spec: spec, Key: key}, conditional)
	if errors.Is(err, cache.ErrSourceNotFound) {
		return Rendition{}, ImageNotFound(hash)
	}
	if err != nil {
		s.logger.WithFields(logrus.Fields{"hash": hash, "key": key}).WithError(err).Error("could not render image")
		return Rendition{}, internal("could not render image", err)
	}

	s.logger.WithFields(logrus.Fields{
		"hash":        hash,
		"key":         key,
		"cached":      result.Cached,
		"conditional": conditional,
	}).Debug("image rendered")

	rendition := Rendition{Status: RenditionOK, Body: result.Body, Headers: headers}
	if result.Status == cache.StatusNotModified {
		rendition.Status = RenditionNotModified
		rendition.Body = nil
	}

	return rendition, nil
}

func (s *imageService) Describe(ctx context.Context, hash string) (registry.SourceImageModel, error) {
	info, err := s.registry.GetSourceImageInfo(ctx, hash)
	if errors.Is(err, registry.ErrSourceImageNotFound) {
		return registry.SourceImageModel{}, ImageNotFound(hash)
	}
	if err != nil {
		return registry.SourceImageModel{}, internal("could not look up image", err)
	}

	return info, nil
}

func describeSource(hash string, data []byte) registry.SourceImageModel {
	info := registry.SourceImageModel{
		Hash:       hash,
		Size:       int64(len(data)),
		MimeType:   http.DetectContentType(data),
		UploadedAt: time.Now().UTC(),
	}

	if config, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		info.Width = config.Width
		info.Height = config.Height
	}

	return info
}
