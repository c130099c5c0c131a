package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"
	ClassApproved ClassStatus = "approved"
	ClassDenied   ClassStatus = "denied"
)

// Class is a course offering. Instructor and category fields are
// denormalized copies keyed by their numeric ids; Enrolled is a running
// counter bumped after checkout.
type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image" json:"image"`
	Description     string             `bson:"description" json:"description"`
	InstructorName  string             `bson:"instructor_name" json:"instructor_name"`
	InstructorEmail string             `bson:"instructor_email" json:"instructor_email"`
	InstructorID    int                `bson:"instructor_id" json:"instructor_id"`
	CategoryID      int                `bson:"category_id" json:"category_id"`
	CategoryName    string             `bson:"category_name" json:"category_name"`
	Price           float64            `bson:"price" json:"price"`
	Duration        string             `bson:"duration" json:"duration"`
	SeatCapacity    int                `bson:"seat_capacity" json:"seat_capacity"`
	Enrolled        int                `bson:"enrolled" json:"enrolled"`
	Rating          float64            `bson:"rating" json:"rating"`
	Status          ClassStatus        `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

type ClassUpdate struct {
	Name         *string      `json:"name,omitempty"`
	Image        *string      `json:"image,omitempty"`
	Description  *string      `json:"description,omitempty"`
	CategoryID   *int         `json:"category_id,omitempty"`
	CategoryName *string      `json:"category_name,omitempty"`
	Price        *float64     `json:"price,omitempty"`
	Duration     *string      `json:"duration,omitempty"`
	SeatCapacity *int         `json:"seat_capacity,omitempty"`
	Rating       *float64     `json:"rating,omitempty"`
	Status       *ClassStatus `json:"status,omitempty"`
	Feedback     *string      `json:"feedback,omitempty"`
}

func (c ClassUpdate) Fields() bson.M {
	set := bson.M{}
	if c.Name != nil {
		set["name"] = *c.Name
	}
	if c.Image != nil {
		set["image"] = *c.Image
	}
	if c.Description != nil {
		set["description"] = *c.Description
	}
	if c.CategoryID != nil {
		set["category_id"] = *c.CategoryID
	}
	if c.CategoryName != nil {
		set["category_name"] = *c.CategoryName
	}
	if c.Price != nil {
		set["price"] = *c.Price
	}
	if c.Duration != nil {
		set["duration"] = *c.Duration
	}
	if c.SeatCapacity != nil {
		set["seat_capacity"] = *c.SeatCapacity
	}
	if c.Rating != nil {
		set["rating"] = *c.Rating
	}
	if c.Status != nil {
		set["status"] = *c.Status
	}
	if c.Feedback != nil {
		set["feedback"] = *c.Feedback
	}
	return set
}
