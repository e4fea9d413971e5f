package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medreg/revalidation-backend/internal/domain"
)

func TestListNotes_OrderAndIsolation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	notes := []domain.Note{
		{ID: "n1", GMCID: "7000001", Text: "oldest", CreatedDate: day(1), UpdatedDate: day(1)},
		{ID: "n2", GMCID: "7000001", Text: "newest", CreatedDate: day(2), UpdatedDate: day(5)},
		{ID: "n3", GMCID: "7000001", Text: "middle", CreatedDate: day(3), UpdatedDate: day(3)},
		{ID: "n4", GMCID: "7000002", Text: "other doctor", CreatedDate: day(4), UpdatedDate: day(4)},
	}
	if err := db.Create(&notes).Error; err != nil {
		t.Fatalf("seed notes: %v", err)
	}

	got, err := ListNotes(ctx, db, "7000001")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListNotes returned %d notes, want 3", len(got))
	}
	// updated_date desc
	if got[0].ID != "n2" || got[1].ID != "n3" || got[2].ID != "n1" {
		t.Fatalf("wrong order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}

	// Unknown doctor: empty result, no error.
	got, err = ListNotes(ctx, db, "9999999")
	if err != nil {
		t.Fatalf("ListNotes unknown doctor: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no notes, got %d", len(got))
	}
}

func TestGetNote_FoundAndNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seed := domain.Note{ID: "n1", GMCID: "7000001", Text: "hello", CreatedDate: day(1), UpdatedDate: day(1)}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := GetNote(ctx, db, "n1")
	if err != nil {
		t.Fatalf("GetNote: %v", err)
	}
	if got.Text != "hello" || got.GMCID != "7000001" {
		t.Fatalf("unexpected note: %+v", got)
	}

	if _, err := GetNote(ctx, db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveNote_InsertAndReplace(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	n := &domain.Note{ID: "n1", GMCID: "7000001", Text: "v1", CreatedDate: day(1), UpdatedDate: day(1)}
	if err := SaveNote(ctx, db, n); err != nil {
		t.Fatalf("SaveNote insert: %v", err)
	}

	replacement := &domain.Note{ID: "n1", GMCID: "7000001", Text: "v2", CreatedDate: day(1), UpdatedDate: time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)}
	if err := SaveNote(ctx, db, replacement); err != nil {
		t.Fatalf("SaveNote replace: %v", err)
	}

	got, err := GetNote(ctx, db, "n1")
	if err != nil {
		t.Fatalf("GetNote: %v", err)
	}
	if got.Text != "v2" {
		t.Fatalf("replace did not apply: %+v", got)
	}
	if !got.CreatedDate.Equal(day(1)) {
		t.Fatalf("creation date changed on replace: %v", got.CreatedDate)
	}

	var count int64
	db.Model(&domain.Note{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one row after replace, got %d", count)
	}
}
