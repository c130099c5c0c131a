package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

type InstructorService struct {
	collection store.Collection
}

func NewInstructorService(collection store.Collection) *InstructorService {
	return &InstructorService{collection: collection}
}

func (s *InstructorService) InstructorList(ctx context.Context) ([]models.Instructor, error) {
	var instructors []models.Instructor
	if err := s.collection.Find(ctx, bson.M{}, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}
