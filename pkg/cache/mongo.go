package cache

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCache implements a MongoDB-backed cache.
// Entries live in a single collection with a TTL index on expires_at,
// so MongoDB reaps expired documents in the background.
type MongoCache struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig holds connection settings for the MongoDB backend.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// mongoEntry is the document shape stored in the collection.
type mongoEntry struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	ExpiresAt time.Time `bson:"expires_at,omitempty"`
}

// NewMongoCache connects to MongoDB and ensures the TTL index exists.
func NewMongoCache(ctx context.Context, cfg MongoConfig) (*MongoCache, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, Retryable(err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, Retryable(err)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)

	// expireAfterSeconds of 0 makes MongoDB delete documents as soon as
	// expires_at passes. Documents without expires_at never expire.
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, Retryable(err)
	}

	return &MongoCache{client: client, collection: coll}, nil
}

// Get retrieves a value from MongoDB.
func (c *MongoCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry mongoEntry
	err := c.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, Retryable(err)
	}

	// The TTL reaper runs periodically, so an expired document may still
	// be present. Treat it as a miss.
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores a value in MongoDB, replacing any existing entry.
func (c *MongoCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := mongoEntry{
		Key:  key,
		Data: data,
	}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	_, err := c.collection.ReplaceOne(ctx, bson.M{"_id": key}, entry,
		options.Replace().SetUpsert(true))
	if err != nil {
		return Retryable(err)
	}
	return nil
}

// Delete removes a value from MongoDB.
func (c *MongoCache) Delete(ctx context.Context, key string) error {
	_, err := c.collection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return Retryable(err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (c *MongoCache) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}

// Ensure MongoCache implements Cache.
var _ Cache = (*MongoCache)(nil)
