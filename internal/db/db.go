package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect initializes the MongoDB connection using the provided URI and
// verifies it with a ping. The client is returned to the caller for
// injection instead of being kept in package state.
func Connect(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB!")
	return client, nil
}

// EnsureIndexes creates lookup indexes for the hot filters. They are plain
// (non-unique) indexes: duplicate detection stays in the services as a
// documented find-before-insert sequence.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.M{"email": 1}},
		},
		"classes": {
			{Keys: bson.M{"category_id": 1}},
			{Keys: bson.M{"instructor_id": 1}},
			{Keys: bson.M{"instructor_email": 1}},
		},
		"selected": {
			{Keys: bson.M{"student_email": 1}},
			{Keys: bson.M{"class_id": 1}},
		},
		"enrolled": {
			{Keys: bson.M{"student_email": 1}},
		},
		"payments": {
			{Keys: bson.M{"student_email": 1}},
		},
	}

	for name, models := range indexes {
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
