// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Doctor
// model: the paged/sorted/filtered listing query behind the trainee summary,
// the two unscoped aggregate counts, and the ingestion upsert.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated; callers treat these as fatal.
package repo

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medreg/revalidation-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// sortColumns maps the API-level sort column names onto the underlying
// database columns. Keys outside this map fall back to submission_date;
// the service layer has already normalized the value against its allow-list,
// so the fallback only matters if the two sets drift.
var sortColumns = map[string]string{
	"gmcReferenceNumber": "gmc_reference_number",
	"doctorFirstName":    "doctor_first_name",
	"doctorLastName":     "doctor_last_name",
	"submissionDate":     "submission_date",
	"dateAdded":          "date_added",
	"underNotice":        "under_notice",
	"doctorStatus":       "doctor_status",
	"lastUpdatedDate":    "last_updated_date",
}

// underNoticeStatuses is the status set counted (and filtered) as "under
// notice": ON_HOLD is grouped with YES.
var underNoticeStatuses = []domain.UnderNotice{domain.UnderNoticeYes, domain.UnderNoticeOnHold}

// DoctorPage is one page of the doctor listing plus the pagination metadata
// reported by the same query.
type DoctorPage struct {
	Doctors    []domain.Doctor
	TotalPages int
	TotalCount int64
}

// DoctorPageQuery carries the normalized listing parameters.
//
// SearchQuery is matched as a case-insensitive substring against the first
// name OR the last name OR the GMC number; an empty string matches everything.
// When UnderNoticeOnly is set, each of the three conditions is additionally
// scoped to the under-notice status set.
type DoctorPageQuery struct {
	SortColumn      string // API-level name, e.g. "submissionDate"
	SortOrder       string // "asc" or "desc"
	SearchQuery     string
	UnderNoticeOnly bool
	PageNumber      int // zero-based
	PageSize        int
}

// ListDoctorsPage executes the sorted, paged, optionally-filtered doctor
// query and returns the page together with the total match count and the
// page count derived from it. Results are ordered by the requested column
// and direction, with the GMC number as a deterministic tie-breaker.
func ListDoctorsPage(ctx context.Context, db *gorm.DB, q DoctorPageQuery) (*DoctorPage, error) {
	column, ok := sortColumns[q.SortColumn]
	if !ok {
		column = "submission_date"
	}
	direction := "DESC"
	if strings.EqualFold(q.SortOrder, "asc") {
		direction = "ASC"
	}

	base := db.WithContext(ctx).Model(&domain.Doctor{})
	base = applySearch(base, q.SearchQuery)
	if q.UnderNoticeOnly {
		base = base.Where("under_notice IN ?", underNoticeStatuses)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	var doctors []domain.Doctor
	err := base.
		Order(column + " " + direction).
		Order("gmc_reference_number ASC").
		Offset(q.PageNumber * q.PageSize).
		Limit(q.PageSize).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	return &DoctorPage{Doctors: doctors, TotalPages: totalPages, TotalCount: total}, nil
}

// applySearch adds the three OR-ed case-insensitive substring conditions.
// An empty search string matches all records, so no condition is added.
func applySearch(tx *gorm.DB, search string) *gorm.DB {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return tx
	}
	pattern := "%" + needle + "%"
	return tx.Where(
		"LOWER(doctor_first_name) LIKE ? OR LOWER(doctor_last_name) LIKE ? OR LOWER(gmc_reference_number) LIKE ?",
		pattern, pattern, pattern,
	)
}

// CountDoctors returns the total number of doctor records, ignoring any
// search or filter. On DB error, it returns the error.
func CountDoctors(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Doctor{}).Count(&total).Error
	return total, err
}

// CountUnderNotice returns the number of doctor records whose status is in
// {YES, ON_HOLD}, ignoring any search, filter, or pagination.
func CountUnderNotice(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Doctor{}).
		Where("under_notice IN ?", underNoticeStatuses).
		Count(&total).Error
	return total, err
}

// UpsertDoctor replaces-or-inserts a doctor record keyed by its GMC number.
// LastUpdatedDate is stamped with the current UTC time on every call; all
// other fields are taken from the given record wholesale.
func UpsertDoctor(ctx context.Context, db *gorm.DB, d *domain.Doctor) error {
	d.LastUpdatedDate = time.Now().UTC()
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "gmc_reference_number"}},
			UpdateAll: true,
		}).
		Create(d).Error
}
