package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed checkout. Append-only except for the
// patch-style correction endpoint.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentName   string             `bson:"student_name" json:"student_name"`
	StudentEmail  string             `bson:"student_email" json:"student_email"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	TransactionID string             `bson:"transaction_id" json:"transaction_id"`
	PaymentMethod []string           `bson:"payment_method" json:"payment_method"`
	PaidClasses   []string           `bson:"paid_classes" json:"paid_classes"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

type PaymentUpdate struct {
	StudentName   *string  `json:"student_name,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
	TransactionID *string  `json:"transaction_id,omitempty"`
}

func (p PaymentUpdate) Fields() bson.M {
	set := bson.M{}
	if p.StudentName != nil {
		set["student_name"] = *p.StudentName
	}
	if p.Amount != nil {
		set["amount"] = *p.Amount
	}
	if p.Currency != nil {
		set["currency"] = *p.Currency
	}
	if p.TransactionID != nil {
		set["transaction_id"] = *p.TransactionID
	}
	return set
}
