package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

type ClassService struct {
	collection store.Collection
}

func NewClassService(collection store.Collection) *ClassService {
	return &ClassService{collection: collection}
}

func (s *ClassService) ClassList(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	if err := s.collection.Find(ctx, bson.M{}, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *ClassService) GetClass(ctx context.Context, id string) (*models.Class, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var class models.Class
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}, &class)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (s *ClassService) ClassesByCategory(ctx context.Context, categoryID int) ([]models.Class, error) {
	var classes []models.Class
	if err := s.collection.Find(ctx, bson.M{"category_id": categoryID}, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *ClassService) ClassesByInstructor(ctx context.Context, instructorID int) ([]models.Class, error) {
	var classes []models.Class
	if err := s.collection.Find(ctx, bson.M{"instructor_id": instructorID}, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *ClassService) ClassesByInstructorEmail(ctx context.Context, email string) ([]models.Class, error) {
	var classes []models.Class
	if err := s.collection.Find(ctx, bson.M{"instructor_email": email}, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *ClassService) CreateClass(ctx context.Context, class *models.Class) (string, error) {
	class.ID = primitive.NewObjectID()
	if class.Status == "" {
		class.Status = models.ClassPending
	}

	id, err := s.collection.InsertOne(ctx, class)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *ClassService) UpdateClass(ctx context.Context, id string, update models.ClassUpdate) (*store.UpdateResult, error) {
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

func (s *ClassService) DeleteClass(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	return s.collection.DeleteOne(ctx, bson.M{"_id": objID})
}

// IncrementEnrolled bumps the enrolled counter by one on every class whose
// id appears in ids. Ids that do not resolve to a document (or do not parse
// as object ids) are skipped, not errored; the result counts report what
// actually matched.
func (s *ClassService) IncrementEnrolled(ctx context.Context, ids []string) (*store.UpdateResult, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}
	if len(objIDs) == 0 {
		return &store.UpdateResult{}, nil
	}

	return s.collection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": objIDs}},
		bson.M{"$inc": bson.M{"enrolled": 1}},
	)
}
