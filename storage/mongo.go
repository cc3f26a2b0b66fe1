package storage

import (
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type kvDocument struct {
	Key       string     `bson:"_id"`
	Value     string     `bson:"value,omitempty"`
	Count     int64      `bson:"count,omitempty"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

// MongoAdapter is the database-backed KV store. Counters use $inc through
// FindOneAndUpdate so concurrent increments cannot lose updates. Expiry is
// enforced by a TTL index plus an explicit check on read, since the TTL
// reaper only runs periodically.
type MongoAdapter struct {
	client *mongo.Client
	col    *mongo.Collection
}

func NewMongoAdapter(ctx context.Context, uri string, dbName string) (*MongoAdapter, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	col := client.Database(dbName).Collection("kv_entries")

	// TTL index on expires_at; documents without the field never expire.
	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetName("ttl_expires_at").SetExpireAfterSeconds(0),
	})
	if err != nil {
		return nil, err
	}

	return &MongoAdapter{client: client, col: col}, nil
}

func (m *MongoAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if doc.ExpiresAt != nil && time.Now().After(*doc.ExpiresAt) {
		return "", false, nil
	}
	if doc.Value == "" && doc.Count != 0 {
		return strconv.FormatInt(doc.Count, 10), true, nil
	}
	return doc.Value, true, nil
}

func (m *MongoAdapter) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	set := bson.M{"value": value, "updated_at": time.Now()}
	update := bson.M{"$set": set}
	if ttl > 0 {
		set["expires_at"] = time.Now().Add(ttl)
	} else {
		update["$unset"] = bson.M{"expires_at": ""}
	}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateByID(ctx, key, update, opts)
	return err
}

func (m *MongoAdapter) Increment(ctx context.Context, key string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	update := bson.M{
		"$inc": bson.M{"count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	var doc kvDocument
	if err := m.col.FindOneAndUpdate(ctx, bson.M{"_id": key}, update, opts).Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Count, nil
}

func (m *MongoAdapter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if ttl <= 0 {
		_, err := m.col.DeleteOne(ctx, bson.M{"_id": key})
		return err
	}
	_, err := m.col.UpdateByID(ctx, key, bson.M{
		"$set": bson.M{"expires_at": time.Now().Add(ttl), "updated_at": time.Now()},
	})
	return err
}

func (m *MongoAdapter) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoAdapter) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
