package services

import (
	"context"
	"errors"
	"testing"

	"github.com/chromacraft/chromacraft-gobackend/internal/config"
	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

const classA = "64b000000000000000000001"

// Under the default global scope the duplicate check matches on class_id
// alone, so a class selected by one student blocks every other student.
// This is a known defect kept for compatibility; the corrected behavior is
// covered by TestAddSelectionStudentScope.
func TestAddSelectionGlobalScopeDuplicate(t *testing.T) {
	service := NewSelectionService(store.NewMemoryCollection(), config.SelectionScopeGlobal)
	ctx := context.Background()

	first := models.Selection{ClassID: classA, StudentEmail: "alice@example.com"}
	if _, err := service.Add(ctx, &first); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}

	second := models.Selection{ClassID: classA, StudentEmail: "bob@example.com"}
	if _, err := service.Add(ctx, &second); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Add for a different student error = %v, want ErrDuplicate", err)
	}
}

func TestAddSelectionStudentScope(t *testing.T) {
	service := NewSelectionService(store.NewMemoryCollection(), config.SelectionScopeStudent)
	ctx := context.Background()

	first := models.Selection{ClassID: classA, StudentEmail: "alice@example.com"}
	if _, err := service.Add(ctx, &first); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}

	second := models.Selection{ClassID: classA, StudentEmail: "bob@example.com"}
	if _, err := service.Add(ctx, &second); err != nil {
		t.Fatalf("Add for a different student failed under student scope: %v", err)
	}

	again := models.Selection{ClassID: classA, StudentEmail: "alice@example.com"}
	if _, err := service.Add(ctx, &again); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Add for the same student error = %v, want ErrDuplicate", err)
	}
}

func TestIsSelected(t *testing.T) {
	service := NewSelectionService(store.NewMemoryCollection(), config.SelectionScopeGlobal)
	ctx := context.Background()

	selection := models.Selection{ClassID: classA, StudentEmail: "alice@example.com"}
	if _, err := service.Add(ctx, &selection); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	selected, err := service.IsSelected(ctx, "alice@example.com", classA)
	if err != nil {
		t.Fatalf("IsSelected failed: %v", err)
	}
	if !selected {
		t.Error("expected IsSelected to report true for an existing selection")
	}

	selected, err = service.IsSelected(ctx, "alice@example.com", "64b000000000000000000009")
	if err != nil {
		t.Fatalf("IsSelected failed: %v", err)
	}
	if selected {
		t.Error("expected IsSelected to report false for an unknown class")
	}
}

func TestRemoveSelection(t *testing.T) {
	service := NewSelectionService(store.NewMemoryCollection(), config.SelectionScopeStudent)
	ctx := context.Background()

	kept := models.Selection{ClassID: "64b000000000000000000002", StudentEmail: "alice@example.com"}
	if _, err := service.Add(ctx, &kept); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	removed := models.Selection{ClassID: classA, StudentEmail: "alice@example.com"}
	id, err := service.Add(ctx, &removed)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	deleted, err := service.Remove(ctx, id)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	remaining, err := service.ByStudent(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("ByStudent failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ClassID != kept.ClassID {
		t.Errorf("unexpected remaining selections: %+v", remaining)
	}
}

func TestRemoveSelectionsByStudent(t *testing.T) {
	service := NewSelectionService(store.NewMemoryCollection(), config.SelectionScopeStudent)
	ctx := context.Background()

	for _, s := range []models.Selection{
		{ClassID: classA, StudentEmail: "alice@example.com"},
		{ClassID: "64b000000000000000000002", StudentEmail: "alice@example.com"},
		{ClassID: classA, StudentEmail: "bob@example.com"},
	} {
		selection := s
		if _, err := service.Add(ctx, &selection); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	deleted, err := service.RemoveByStudent(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("RemoveByStudent failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	bobs, err := service.ByStudent(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("ByStudent failed: %v", err)
	}
	if len(bobs) != 1 {
		t.Errorf("bob's selections were touched: %+v", bobs)
	}
}
