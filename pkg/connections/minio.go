package dbconnections

import (
	"context"
	"errors"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioBlobStorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Location  string
	UseSSL    bool
}

type MinioBlobStorageConnection struct {
	config MinioBlobStorageConfig
	client *minio.Client
}

var _ BlobStorageConnection = (*MinioBlobStorageConnection)(nil)

func NewMinioBlobStorageConnection(ctx context.Context, config MinioBlobStorageConfig) (*MinioBlobStorageConnection, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, err
	}

	if !exists {
		makeBucketOptions := minio.MakeBucketOptions{Region: config.Location}
		if err := client.MakeBucket(ctx, config.Bucket, makeBucketOptions); err != nil {
			return nil, err
		}
	}

	return &MinioBlobStorageConnection{
		config: config,
		client: client,
	}, nil
}

func (c *MinioBlobStorageConnection) GetObject(ctx context.Context, objectName string) (io.ReadCloser, error) {
	object, err := c.client.GetObject(ctx, c.config.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, convertToKnownError(err)
	}

	// GetObject is lazy, errors like a missing key only show up on first access.
	if _, err := object.Stat(); err != nil {
		object.Close()
		return nil, convertToKnownError(err)
	}

	return object, nil
}

func (c *MinioBlobStorageConnection) PutObject(
	ctx context.Context,
	objectName string,
	objectSize int64,
	mimeType string,
	reader io.Reader,
) error {
	_, err := c.client.PutObject(
		ctx,
		c.config.Bucket,
		objectName,
		reader,
		objectSize,
		minio.PutObjectOptions{ContentType: mimeType},
	)
	return err
}

func (c *MinioBlobStorageConnection) ObjectExists(ctx context.Context, objectName string) (exists bool, err error) {
	_, err = c.client.StatObject(ctx, c.config.Bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		if errors.Is(convertToKnownError(err), ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func convertToKnownError(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrObjectNotFound
	}

	return err
}

var (
	ErrObjectNotFound = errors.New("object not found")
)
