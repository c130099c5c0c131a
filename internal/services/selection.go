package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chromacraft/chromacraft-gobackend/internal/config"
	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

// SelectionService manages the wishlist collection. The scope parameter
// decides how duplicates are detected on Add; see config.SelectionScope*.
type SelectionService struct {
	collection store.Collection
	scope      string
}

func NewSelectionService(collection store.Collection, scope string) *SelectionService {
	return &SelectionService{collection: collection, scope: scope}
}

func (s *SelectionService) ByStudent(ctx context.Context, email string) ([]models.Selection, error) {
	var selections []models.Selection
	if err := s.collection.Find(ctx, bson.M{"student_email": email}, &selections); err != nil {
		return nil, err
	}
	return selections, nil
}

// IsSelected reports whether the student already has classID on their list.
// It fetches the student's selections and scans them; n is small.
func (s *SelectionService) IsSelected(ctx context.Context, email, classID string) (bool, error) {
	selections, err := s.ByStudent(ctx, email)
	if err != nil {
		return false, err
	}
	for _, selection := range selections {
		if selection.ClassID == classID {
			return true, nil
		}
	}
	return false, nil
}

// Add inserts a selection unless the duplicate check finds one. Under the
// default global scope the check matches on class_id alone, so a class
// selected by any student blocks every other student. That mirrors the
// long-standing production behavior; scope student corrects it.
func (s *SelectionService) Add(ctx context.Context, selection *models.Selection) (string, error) {
	filter := bson.M{"class_id": selection.ClassID}
	if s.scope == config.SelectionScopeStudent {
		filter["student_email"] = selection.StudentEmail
	}

	var existing models.Selection
	err := s.collection.FindOne(ctx, filter, &existing)
	if err == nil {
		return "", ErrDuplicate
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	selection.ID = primitive.NewObjectID()
	id, err := s.collection.InsertOne(ctx, selection)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *SelectionService) Remove(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	return s.collection.DeleteOne(ctx, bson.M{"_id": objID})
}

// RemoveByStudent clears a student's whole list, typically after checkout.
func (s *SelectionService) RemoveByStudent(ctx context.Context, email string) (int64, error) {
	return s.collection.DeleteMany(ctx, bson.M{"student_email": email})
}
