package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is read-only in this service; documents are written by an external
// moderation pipeline.
type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Image  string             `bson:"image" json:"image"`
	Rating float64            `bson:"rating" json:"rating"`
	Review string             `bson:"review" json:"review"`
}
