package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

type PaymentService struct {
	collection store.Collection
}

func NewPaymentService(collection store.Collection) *PaymentService {
	return &PaymentService{collection: collection}
}

func (s *PaymentService) ByStudent(ctx context.Context, email string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.collection.Find(ctx, bson.M{"student_email": email}, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// CreatePayment records a completed checkout. There is no idempotency key:
// a retried request writes a second document, and a payment whose follow-up
// enrollment write fails is left for external reconciliation.
func (s *PaymentService) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	if payment.Currency == "" {
		payment.Currency = "usd"
	}

	id, err := s.collection.InsertOne(ctx, payment)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// UpdatePayment applies a patch-style correction to a recorded payment.
func (s *PaymentService) UpdatePayment(ctx context.Context, id string, update models.PaymentUpdate) (*store.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := update.Fields()
	if len(set) == 0 {
		return &store.UpdateResult{}, nil
	}
	return s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
}

func (s *PaymentService) DeletePayment(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	return s.collection.DeleteOne(ctx, bson.M{"_id": objID})
}
