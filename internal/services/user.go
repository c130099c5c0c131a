package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

type UserService struct {
	collection store.Collection
}

func NewUserService(collection store.Collection) *UserService {
	return &UserService{collection: collection}
}

func (s *UserService) UserList(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.collection.Find(ctx, bson.M{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// StudentList returns only users with the student role.
func (s *UserService) StudentList(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.collection.Find(ctx, bson.M{"role": models.RoleStudent}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByEmail looks a user up by the exact email. A miss returns (nil, nil):
// read endpoints answer with an empty result instead of an error.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}, &user)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a user unless one with the same email already exists,
// in which case ErrDuplicate is returned and nothing is written.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (string, error) {
	var existing models.User
	err := s.collection.FindOne(ctx, bson.M{"email": user.Email}, &existing)
	if err == nil {
		return "", ErrDuplicate
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = models.RoleStudent
	}

	id, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (*store.UpdateResult, error) {
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

func (s *UserService) DeleteUser(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	return s.collection.DeleteOne(ctx, bson.M{"_id": objID})
}
