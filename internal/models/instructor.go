package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Instructor struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InstructorID int                `bson:"instructor_id" json:"instructor_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Image        string             `bson:"image" json:"image"`
	Specialty    string             `bson:"specialty" json:"specialty"`
	Experience   string             `bson:"experience" json:"experience"`
	About        string             `bson:"about" json:"about"`
}
