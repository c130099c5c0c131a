package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups classes. Classes reference it by the numeric category_id
// and also store a denormalized copy of the name.
type Category struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CategoryID int                `bson:"category_id" json:"category_id"`
	Name       string             `bson:"category_name" json:"category_name"`
	Image      string             `bson:"category_image" json:"category_image"`
}
