package dbconnections

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

type MinioBlobStorageTestingConnection struct {
	*MinioBlobStorageConnection
}

// NewMinioBlobStorageTestingConnection connects to the MinIO server named by
// CANVAS_TEST_MINIO_ENDPOINT and skips the test when it is not set.
func NewMinioBlobStorageTestingConnection(t *testing.T) *MinioBlobStorageTestingConnection {
	endpoint := os.Getenv("CANVAS_TEST_MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("CANVAS_TEST_MINIO_ENDPOINT not set, skipping minio integration test")
	}

	conn, err := NewMinioBlobStorageConnection(context.Background(), MinioBlobStorageConfig{
		Endpoint:  endpoint,
		AccessKey: envOrDefault("CANVAS_TEST_MINIO_ACCESS_KEY", testingServerAccessKey),
		SecretKey: envOrDefault("CANVAS_TEST_MINIO_SECRET_KEY", testingServerSecretKey),
		Bucket:    uuid.New().String() + "-testing-bucket",
		Location:  "us-east-1",
		UseSSL:    false,
	})
	if err != nil {
		t.Fatalf("Error when connecting to minio blob storage: %v", err)
	}

	testingConn := &MinioBlobStorageTestingConnection{conn}
	t.Cleanup(func() { testingConn.dropTestBucket(t) })

	return testingConn
}

func (c *MinioBlobStorageTestingConnection) dropTestBucket(t *testing.T) {
	err := c.client.RemoveBucketWithOptions(context.Background(), c.config.Bucket, minio.RemoveBucketOptions{
		ForceDelete: true,
	})
	if err != nil {
		t.Logf("Error when dropping test bucket %s: %v", c.config.Bucket, err)
	}
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return fallback
}

const testingServerAccessKey = "minio"
const testingServerSecretKey = "minio123"
