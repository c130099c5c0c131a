package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// UpdateResult reports how many documents an update touched.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// Collection is the uniform CRUD contract the services are written against.
// Filters are exact-match equality on one or two fields, plus $in for the
// bulk counter increment; updates use $set and $inc only. The mongo-backed
// implementation is used in production and the in-memory one in tests.
type Collection interface {
	Find(ctx context.Context, filter bson.M, results interface{}) error
	FindOne(ctx context.Context, filter bson.M, result interface{}) error
	InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error)
	InsertMany(ctx context.Context, docs []interface{}) ([]primitive.ObjectID, error)
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*UpdateResult, error)
	UpdateMany(ctx context.Context, filter bson.M, update bson.M) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
	DeleteMany(ctx context.Context, filter bson.M) (int64, error)
}
