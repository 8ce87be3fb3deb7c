package vault

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Mongo is a vault storing each backup as a document of the "backups" collection.
type Mongo struct {
	client   *mongo.Client
	dbName   string
	collName string
	logger   *zap.Logger
}

// NewMongo connects to the database and checks it is reachable.
func NewMongo(ctx context.Context, uri, dbName string, logger *zap.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &Mongo{client: client, dbName: dbName, collName: "backups", logger: logger}, nil
}

func (m *Mongo) Push(ctx context.Context, name string, doc []byte) (string, error) {
	record := bson.M{
		"name":      name,
		"createdAt": time.Now().UTC(),
		"document":  string(doc),
	}
	res, err := m.client.Database(m.dbName).Collection(m.collName).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to insert backup: %w", err)
	}
	key := fmt.Sprint(res.InsertedID)
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		key = id.Hex()
	}
	logger(m.logger).Info("backup pushed to mongodb", zap.String("db", m.dbName), zap.String("key", key))
	return key, nil
}

// Close closes the MongoDB connection.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
