package mongo

import (
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultKVCollectionName = "kv_store"

// kvDocument is how one key/value pair is laid out in the collection.
// The key doubles as _id so point lookups and prefix scans use the primary index.
type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoKVStore implements repository.KVStore
type mongoKVStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoKVStore creates a KVStore backed by a single MongoDB collection.
// The client is disconnected by Close.
func NewMongoKVStore(client *mongo.Client, db *mongo.Database, collectionName string) repository.KVStore {
	if collectionName == "" {
		collectionName = defaultKVCollectionName
	}
	return &mongoKVStore{
		client:     client,
		collection: db.Collection(collectionName),
	}
}

func (r *mongoKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return []byte(doc.Value), nil
}

// Set upserts the full document at key.
func (r *mongoKVStore) Set(ctx context.Context, key string, value []byte) error {
	doc := kvDocument{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoKVStore) Delete(ctx context.Context, key string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// ScanPrefix returns every entry whose key starts with prefix, ordered by key.
// An anchored, literal regex on _id lets MongoDB walk the index range.
func (r *mongoKVStore) ScanPrefix(ctx context.Context, prefix string) ([]repository.KVEntry, error) {
	filter := bson.M{"_id": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []kvDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	entries := make([]repository.KVEntry, len(docs))
	for i, d := range docs {
		entries[i] = repository.KVEntry{Key: d.Key, Value: []byte(d.Value)}
	}
	return entries, nil
}

func (r *mongoKVStore) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return DisconnectDB(ctx, r.client)
}
