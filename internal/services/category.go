package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

type CategoryService struct {
	collection store.Collection
}

func NewCategoryService(collection store.Collection) *CategoryService {
	return &CategoryService{collection: collection}
}

func (s *CategoryService) CategoryList(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.collection.Find(ctx, bson.M{}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory looks a category up by its numeric id. A miss returns
// (nil, nil) so the route can answer with an empty body.
func (s *CategoryService) GetCategory(ctx context.Context, categoryID int) (*models.Category, error) {
	var category models.Category
	err := s.collection.FindOne(ctx, bson.M{"category_id": categoryID}, &category)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
