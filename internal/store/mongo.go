package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCollection adapts a *mongo.Collection to the Collection contract.
type MongoCollection struct {
	coll *mongo.Collection
}

func NewMongoCollection(coll *mongo.Collection) *MongoCollection {
	return &MongoCollection{coll: coll}
}

func (c *MongoCollection) Find(ctx context.Context, filter bson.M, results interface{}) error {
	cur, err := c.coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	return cur.All(ctx, results)
}

func (c *MongoCollection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	err := c.coll.FindOne(ctx, filter).Decode(result)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (c *MongoCollection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	result, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (c *MongoCollection) InsertMany(ctx context.Context, docs []interface{}) ([]primitive.ObjectID, error) {
	result, err := c.coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(result.InsertedIDs))
	for _, id := range result.InsertedIDs {
		ids = append(ids, id.(primitive.ObjectID))
	}
	return ids, nil
}

func (c *MongoCollection) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*UpdateResult, error) {
	result, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (c *MongoCollection) UpdateMany(ctx context.Context, filter bson.M, update bson.M) (*UpdateResult, error) {
	result, err := c.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (c *MongoCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	result, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (c *MongoCollection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	result, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
