package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Selection is a student's wishlist entry for a class, created before
// payment. ClassID is the hex id of the Class document; the display fields
// are denormalized so the cart can render without a join.
type Selection struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID        string             `bson:"class_id" json:"class_id"`
	Name           string             `bson:"name" json:"name"`
	Image          string             `bson:"image" json:"image"`
	Price          float64            `bson:"price" json:"price"`
	InstructorName string             `bson:"instructor_name" json:"instructor_name"`
	StudentEmail   string             `bson:"student_email" json:"student_email"`
}
