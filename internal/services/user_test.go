package services

import (
	"context"
	"errors"
	"testing"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	service := NewUserService(store.NewMemoryCollection())
	ctx := context.Background()

	first := models.User{Name: "Mia", Email: "mia@example.com", Role: models.RoleStudent}
	if _, err := service.CreateUser(ctx, &first); err != nil {
		t.Fatalf("first CreateUser failed: %v", err)
	}

	second := models.User{Name: "Other Mia", Email: "mia@example.com"}
	_, err := service.CreateUser(ctx, &second)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second CreateUser error = %v, want ErrDuplicate", err)
	}

	users, err := service.UserList(ctx)
	if err != nil {
		t.Fatalf("UserList failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected 1 user after duplicate submit, got %d", len(users))
	}
}

func TestGetByEmailMissIsLenient(t *testing.T) {
	service := NewUserService(store.NewMemoryCollection())

	user, err := service.GetByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("GetByEmail returned error for a miss: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user for a miss, got %+v", user)
	}
}

func TestStudentListFiltersByRole(t *testing.T) {
	service := NewUserService(store.NewMemoryCollection())
	ctx := context.Background()

	for _, u := range []models.User{
		{Name: "Stu", Email: "stu@example.com", Role: models.RoleStudent},
		{Name: "Ina", Email: "ina@example.com", Role: models.RoleInstructor},
		{Name: "Adm", Email: "adm@example.com", Role: models.RoleAdmin},
	} {
		user := u
		if _, err := service.CreateUser(ctx, &user); err != nil {
			t.Fatalf("CreateUser(%s) failed: %v", u.Email, err)
		}
	}

	students, err := service.StudentList(ctx)
	if err != nil {
		t.Fatalf("StudentList failed: %v", err)
	}
	if len(students) != 1 || students[0].Email != "stu@example.com" {
		t.Errorf("unexpected student list: %+v", students)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	service := NewUserService(store.NewMemoryCollection())
	ctx := context.Background()

	user := models.User{Name: "Mia", Email: "mia@example.com", Phone: "111"}
	id, err := service.CreateUser(ctx, &user)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	phone := "222"
	result, err := service.UpdateUser(ctx, id, models.UserUpdate{Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if result.MatchedCount != 1 || result.ModifiedCount != 1 {
		t.Errorf("unexpected update result: %+v", result)
	}

	updated, err := service.GetByEmail(ctx, "mia@example.com")
	if err != nil || updated == nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if updated.Phone != "222" {
		t.Errorf("phone = %q, want 222", updated.Phone)
	}
	if updated.Name != "Mia" {
		t.Errorf("name changed by partial update: %q", updated.Name)
	}
}

func TestDeleteUser(t *testing.T) {
	service := NewUserService(store.NewMemoryCollection())
	ctx := context.Background()

	user := models.User{Name: "Mia", Email: "mia@example.com"}
	id, err := service.CreateUser(ctx, &user)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	deleted, err := service.DeleteUser(ctx, id)
	if err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	remaining, err := service.UserList(ctx)
	if err != nil {
		t.Fatalf("UserList failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected empty user list, got %d", len(remaining))
	}
}
