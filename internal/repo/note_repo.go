// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Note model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving the edit-or-create state transition to the
// services package.
//
// Error semantics:
//   - GetNote returns ErrNotFound (gorm.ErrRecordNotFound) when the id does
//     not resolve; the service layer branches on it.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medreg/revalidation-backend/internal/domain"
)

// ListNotes returns all notes attached to gmcID, ordered by update timestamp
// descending (most recently touched first). It returns an empty slice when
// the doctor has no notes. On DB error, it returns the error.
func ListNotes(ctx context.Context, db *gorm.DB, gmcID string) ([]domain.Note, error) {
	var out []domain.Note
	err := db.WithContext(ctx).
		Where("gmc_id = ?", gmcID).
		Order("updated_date desc").
		Find(&out).Error
	return out, err
}

// GetNote fetches a single note by its id. If the record does not exist, it
// returns ErrNotFound. On other DB errors, the raw error is returned.
func GetNote(ctx context.Context, db *gorm.DB, id string) (*domain.Note, error) {
	var n domain.Note
	if err := db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// SaveNote persists the given note, replacing any existing row with the same
// id. The service layer owns id generation and timestamp handling; this is a
// plain write.
func SaveNote(ctx context.Context, db *gorm.DB, n *domain.Note) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(n).Error
}
