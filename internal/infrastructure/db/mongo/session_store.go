package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const sessionCollection = "sessions"

// SessionStore keeps one session per namespace as a single document.
type SessionStore struct {
	coll      *mongo.Collection
	namespace string
}

func NewSessionStore(db *mongo.Database, namespace string) *SessionStore {
	if namespace == "" {
		namespace = "default"
	}
	return &SessionStore{coll: db.Collection(sessionCollection), namespace: namespace}
}

type mongoSession struct {
	Namespace string            `bson:"_id"`
	Values    map[string]string `bson:"values"`
	UpdatedAt int64             `bson:"updated_at"`
}

func (s *SessionStore) load(ctx context.Context) (map[string]string, error) {
	var doc mongoSession
	err := s.coll.FindOne(ctx, bson.M{"_id": s.namespace}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return doc.Values, nil
}

func (s *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	values, err := s.load(ctx)
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	update := bson.M{"$set": bson.M{
		"values." + key: value,
		"updated_at":    time.Now().UTC().Unix(),
	}}
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": s.namespace}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (s *SessionStore) Has(ctx context.Context, key string) (bool, error) {
	_, ok, err := s.Get(ctx, key)
	return ok, err
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": s.namespace}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, readpref.Primary())
}
