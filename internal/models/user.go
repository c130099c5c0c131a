package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// User model. Email is the natural key; uniqueness is enforced by a
// find-before-insert check, not by the store.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	Image       string             `bson:"image" json:"image"`
	Gender      string             `bson:"gender" json:"gender"`
	DateOfBirth string             `bson:"dob" json:"dob"`
	Role        UserRole           `bson:"role" json:"role"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// UserUpdate carries the fields a PATCH may change. Nil fields are left
// untouched in storage.
type UserUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Gender      *string   `json:"gender,omitempty"`
	DateOfBirth *string   `json:"dob,omitempty"`
	Role        *UserRole `json:"role,omitempty"`
}

// Fields returns the $set document for the non-nil fields.
func (u UserUpdate) Fields() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.Gender != nil {
		set["gender"] = *u.Gender
	}
	if u.DateOfBirth != nil {
		set["dob"] = *u.DateOfBirth
	}
	if u.Role != nil {
		set["role"] = *u.Role
	}
	return set
}
