package dbconnections

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RegistryDBTestingConnection struct {
	testDBName string
	client     *mongo.Client
}

var _ RegistryDBConnection = (*RegistryDBTestingConnection)(nil)

// NewRegistryDBTestingConnection uses CANVAS_TEST_MONGO_CONNECTION_STRING and
// skips the test when it is not set. Every test gets its own database.
func NewRegistryDBTestingConnection(t *testing.T) *RegistryDBTestingConnection {
	connectionString := os.Getenv("CANVAS_TEST_MONGO_CONNECTION_STRING")
	if connectionString == "" {
		t.Skip("CANVAS_TEST_MONGO_CONNECTION_STRING not set, skipping mongo integration test")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(connectionString))
	if err != nil {
		t.Fatalf("Cannot connect to mongodb: %v", err)
	}

	testDBName := generateTestDBName(t, client)
	conn := &RegistryDBTestingConnection{testDBName, client}

	t.Cleanup(func() { conn.cleanup(t) })
	return conn
}

func (c *RegistryDBTestingConnection) Collection(name string) *mongo.Collection {
	return c.client.Database(c.testDBName).Collection(name)
}

func (c *RegistryDBTestingConnection) cleanup(t *testing.T) {
	ctx := context.Background()
	if err := c.client.Database(c.testDBName).Drop(ctx); err != nil {
		t.Errorf("Cannot cleanup testing database '%s': %v", c.testDBName, err)
	}

	c.client.Disconnect(ctx)
}

func generateTestDBName(t *testing.T, client *mongo.Client) string {
	databases, err := client.ListDatabaseNames(context.Background(), bson.M{})
	if err != nil {
		t.Fatalf("Cannot fetch database names list: %v", err)
	}

	for i := 0; i < 10; i++ {
		id := uuid.New().String()
		if !contains(databases, id) {
			return id
		}
	}

	t.Fatal("Cannot generate unique test DB name")
	return ""
}

func contains(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}

	return false
}
