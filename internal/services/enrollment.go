package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

type EnrollmentService struct {
	collection store.Collection
}

func NewEnrollmentService(collection store.Collection) *EnrollmentService {
	return &EnrollmentService{collection: collection}
}

func (s *EnrollmentService) ByStudent(ctx context.Context, email string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.collection.Find(ctx, bson.M{"student_email": email}, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// IsEnrolled reports whether the student is already enrolled in classID.
// This probe is the supported duplicate check: the bulk insert below does
// not guard against duplicates itself.
func (s *EnrollmentService) IsEnrolled(ctx context.Context, email, classID string) (bool, error) {
	enrollments, err := s.ByStudent(ctx, email)
	if err != nil {
		return false, err
	}
	for _, enrollment := range enrollments {
		if enrollment.ClassID == classID {
			return true, nil
		}
	}
	return false, nil
}

// AddMany writes one enrollment per paid class in a single insert.
func (s *EnrollmentService) AddMany(ctx context.Context, enrollments []models.Enrollment) ([]string, error) {
	now := time.Now()
	docs := make([]interface{}, 0, len(enrollments))
	for i := range enrollments {
		enrollments[i].ID = primitive.NewObjectID()
		enrollments[i].EnrolledAt = now
		docs = append(docs, enrollments[i])
	}

	insertedIDs, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(insertedIDs))
	for _, id := range insertedIDs {
		ids = append(ids, id.Hex())
	}
	return ids, nil
}

func (s *EnrollmentService) Remove(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	return s.collection.DeleteOne(ctx, bson.M{"_id": objID})
}
