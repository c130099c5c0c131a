package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment is a confirmed registration, normally written in bulk right
// after a successful payment.
type Enrollment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID        string             `bson:"class_id" json:"class_id"`
	Name           string             `bson:"name" json:"name"`
	Image          string             `bson:"image" json:"image"`
	Price          float64            `bson:"price" json:"price"`
	InstructorName string             `bson:"instructor_name" json:"instructor_name"`
	StudentEmail   string             `bson:"student_email" json:"student_email"`
	EnrolledAt     time.Time          `bson:"enrolled_at" json:"enrolled_at"`
}
