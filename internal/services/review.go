package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

type ReviewService struct {
	collection store.Collection
}

func NewReviewService(collection store.Collection) *ReviewService {
	return &ReviewService{collection: collection}
}

func (s *ReviewService) ReviewList(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.collection.Find(ctx, bson.M{}, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
