// Package services – NotesService
//
// This file implements the NotesService, which manages free-text annotations
// attached to doctors. Listing is newest-updated-first; editing is an
// explicit two-branch state transition: an id that resolves produces a
// replacement note preserving identity and creation date, an id that does
// not resolve silently degrades to creating a fresh note. Rejecting a blank
// id (or blank text) is the HTTP boundary's job, not this component's.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/medreg/revalidation-backend/internal/domain"
	"github.com/medreg/revalidation-backend/internal/repo"
)

// TraineeNotes wraps the notes belonging to one doctor.
type TraineeNotes struct {
	GMCID string        `json:"gmcId"`
	Notes []domain.Note `json:"notes"`
}

// NotesService implements the use-cases around trainee notes.
type NotesService struct {
	// DB is the database handle used for all note operations.
	DB *gorm.DB
}

// List returns the notes attached to gmcID, most recently updated first.
func (s *NotesService) List(ctx context.Context, gmcID string) (*TraineeNotes, error) {
	notes, err := repo.ListNotes(ctx, s.DB, gmcID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		// A doctor with no notes serializes as an empty array, not null.
		notes = []domain.Note{}
	}
	return &TraineeNotes{GMCID: gmcID, Notes: notes}, nil
}

// Create persists a new note for gmcID with both timestamps set to now and a
// generated id, and returns the stored note.
func (s *NotesService) Create(ctx context.Context, gmcID, text string) (*domain.Note, error) {
	now := time.Now().UTC()
	n := &domain.Note{
		ID:          uuid.NewString(),
		GMCID:       gmcID,
		Text:        text,
		CreatedDate: now,
		UpdatedDate: now,
	}
	if err := repo.SaveNote(ctx, s.DB, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Edit resolves id against the store and applies the edit-or-create
// transition:
//
//   - found: a replacement note is persisted reusing the existing id, owner,
//     and creation date, with the new text and updatedDate set to now;
//   - not found: the edit degrades to Create with the supplied gmcID/text.
//
// Only genuine store failures are returned as errors.
func (s *NotesService) Edit(ctx context.Context, id, gmcID, text string) (*domain.Note, error) {
	existing, err := repo.GetNote(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info().Str("note_id", id).Msg("edit of unknown note, creating a new one")
			return s.Create(ctx, gmcID, text)
		}
		return nil, err
	}

	replacement := &domain.Note{
		ID:          existing.ID,
		GMCID:       existing.GMCID,
		Text:        text,
		CreatedDate: existing.CreatedDate,
		UpdatedDate: time.Now().UTC(),
	}
	if err := repo.SaveNote(ctx, s.DB, replacement); err != nil {
		return nil, err
	}
	return replacement, nil
}
