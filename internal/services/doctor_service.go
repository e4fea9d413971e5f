// Package services defines the business logic for the trainee summary
// aggregation, notes, the admin directory, and environment details.
//
// This file implements the DoctorService, the core of the application: it
// turns one listing request into a page of merged trainee views enriched
// with TCS data, plus the two collection-wide aggregate counts. It also owns
// the ingestion upsert consumed by the message subscriber.
package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/medreg/revalidation-backend/internal/clients"
	"github.com/medreg/revalidation-backend/internal/config"
	"github.com/medreg/revalidation-backend/internal/domain"
	"github.com/medreg/revalidation-backend/internal/repo"
)

// TraineeCoreClient is the enrichment capability consumed by DoctorService.
//
// Implementations return a mapping from GMC number to supplementary data;
// an upstream outage and "no matches" both surface as an empty (or partial)
// map, never as an error. See clients.TCSClient.
type TraineeCoreClient interface {
	FetchByGMCIDs(ctx context.Context, gmcIDs []string) map[string]clients.TraineeCore
}

// SummaryRequest carries the raw listing parameters as received at the
// boundary. Sort values are normalized against the configured allow-lists
// inside GetTraineeSummary; callers pass them through unchecked.
type SummaryRequest struct {
	SortColumn  string
	SortOrder   string
	UnderNotice bool
	PageNumber  int // zero-based
	SearchQuery string
}

// TraineeInfo is the read-only merged view of one doctor: the persisted
// record mapped through unchanged, plus the TCS-owned fields when the
// enrichment lookup knew the GMC number. Supplementary fields are never
// defaulted; a doctor TCS does not know simply lacks them.
type TraineeInfo struct {
	GMCReferenceNumber string    `json:"gmcReferenceNumber"`
	DoctorFirstName    string    `json:"doctorFirstName"`
	DoctorLastName     string    `json:"doctorLastName"`
	SubmissionDate     time.Time `json:"submissionDate"`
	DateAdded          time.Time `json:"dateAdded"`
	UnderNotice        string    `json:"underNotice"`
	Sanction           string    `json:"sanction"`
	DoctorStatus       string    `json:"doctorStatus"`
	LastUpdatedDate    time.Time `json:"lastUpdatedDate"`
	DesignatedBodyCode string    `json:"designatedBodyCode"`

	// TCS-owned, present only when enrichment returned this doctor.
	CurriculumEndDate       *time.Time `json:"curriculumEndDate,omitempty"`
	ProgrammeName           string     `json:"programmeName,omitempty"`
	ProgrammeMembershipType string     `json:"programmeMembershipType,omitempty"`
	CurrentGrade            string     `json:"currentGrade,omitempty"`
}

// TraineeSummary is the full listing response: the merged page in store
// order, the page-query pagination metadata, and the two unscoped counts.
//
// CountTotal and CountUnderNotice deliberately ignore the active search and
// filter; they describe the whole collection while TotalPages/TotalResults
// describe the filtered query.
type TraineeSummary struct {
	TraineeInfo      []TraineeInfo `json:"traineeInfo"`
	CountTotal       int64         `json:"countTotal"`
	CountUnderNotice int64         `json:"countUnderNotice"`
	TotalPages       int           `json:"totalPages"`
	TotalResults     int64         `json:"totalResults"`
}

// DoctorPayload is one record as delivered by the GMC feed. Workflow status
// and last-updated stamping are owned by this service, not the feed.
type DoctorPayload struct {
	GMCReferenceNumber string    `json:"gmcReferenceNumber"`
	DoctorFirstName    string    `json:"doctorFirstName"`
	DoctorLastName     string    `json:"doctorLastName"`
	SubmissionDate     time.Time `json:"submissionDate"`
	DateAdded          time.Time `json:"dateAdded"`
	UnderNotice        string    `json:"underNotice"`
	Sanction           string    `json:"sanction"`
	DesignatedBodyCode string    `json:"designatedBodyCode"`
}

// DoctorService implements the trainee summary aggregation pipeline and the
// ingestion upsert. The sort allow-lists arrive as explicit configuration at
// construction; normalization is a pure function over them.
type DoctorService struct {
	// DB is the database handle used for all store queries.
	DB *gorm.DB
	// Core is the TCS enrichment client.
	Core TraineeCoreClient
	// PageSize is the fixed number of doctors per page.
	PageSize int
	// Sort carries the allow-lists and defaults for sort normalization.
	Sort config.SortConfig
}

// GetTraineeSummary executes the aggregation pipeline for one request:
//
//  1. Normalize sortColumn/sortOrder against the allow-lists; invalid values
//     fall back to the defaults with a warning, never an error.
//  2. Query the store for one sorted, paged, optionally-filtered page.
//  3. Collect the page's GMC numbers, in page order.
//  4. Fetch supplementary data for exactly those numbers (best-effort).
//  5. Merge per record, preserving the store's page order.
//  6. Read the two unscoped aggregate counts.
//
// Store failures (steps 2 and 6) are fatal and propagate; enrichment
// failures (step 4) never do.
func (s *DoctorService) GetTraineeSummary(ctx context.Context, req SummaryRequest) (*TraineeSummary, error) {
	sortColumn := normalizeSort(req.SortColumn, s.Sort.Columns, s.Sort.DefaultColumn, "sortColumn")
	sortOrder := normalizeSort(req.SortOrder, s.Sort.Orders, s.Sort.DefaultOrder, "sortOrder")

	page, err := repo.ListDoctorsPage(ctx, s.DB, repo.DoctorPageQuery{
		SortColumn:      sortColumn,
		SortOrder:       sortOrder,
		SearchQuery:     req.SearchQuery,
		UnderNoticeOnly: req.UnderNotice,
		PageNumber:      req.PageNumber,
		PageSize:        s.PageSize,
	})
	if err != nil {
		return nil, err
	}

	gmcIDs := make([]string, 0, len(page.Doctors))
	for _, d := range page.Doctors {
		gmcIDs = append(gmcIDs, d.GMCReferenceNumber)
	}
	coreInfo := s.Core.FetchByGMCIDs(ctx, gmcIDs)

	items := make([]TraineeInfo, 0, len(page.Doctors))
	for _, d := range page.Doctors {
		info := TraineeInfo{
			GMCReferenceNumber: d.GMCReferenceNumber,
			DoctorFirstName:    d.DoctorFirstName,
			DoctorLastName:     d.DoctorLastName,
			SubmissionDate:     d.SubmissionDate,
			DateAdded:          d.DateAdded,
			UnderNotice:        string(d.UnderNotice),
			Sanction:           d.Sanction,
			DoctorStatus:       string(d.DoctorStatus),
			LastUpdatedDate:    d.LastUpdatedDate,
			DesignatedBodyCode: d.DesignatedBodyCode,
		}
		if core, ok := coreInfo[d.GMCReferenceNumber]; ok {
			info.CurriculumEndDate = core.CurriculumEndDate
			info.ProgrammeName = core.ProgrammeName
			info.ProgrammeMembershipType = core.ProgrammeMembershipType
			info.CurrentGrade = core.CurrentGrade
		}
		items = append(items, info)
	}

	countAll, err := repo.CountDoctors(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	countUnderNotice, err := repo.CountUnderNotice(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	return &TraineeSummary{
		TraineeInfo:      items,
		CountTotal:       countAll,
		CountUnderNotice: countUnderNotice,
		TotalPages:       page.TotalPages,
		TotalResults:     page.TotalCount,
	}, nil
}

// UpdateTrainee converts a feed payload into a doctor record and upserts it
// by GMC number. The workflow status is reset to NOT_STARTED and the
// last-updated date is stamped by the repo; the feed never controls either.
func (s *DoctorService) UpdateTrainee(ctx context.Context, p DoctorPayload) error {
	d := &domain.Doctor{
		GMCReferenceNumber: p.GMCReferenceNumber,
		DoctorFirstName:    p.DoctorFirstName,
		DoctorLastName:     p.DoctorLastName,
		SubmissionDate:     p.SubmissionDate,
		DateAdded:          p.DateAdded,
		UnderNotice:        domain.UnderNoticeFromString(p.UnderNotice),
		Sanction:           p.Sanction,
		DoctorStatus:       domain.StatusNotStarted,
		DesignatedBodyCode: p.DesignatedBodyCode,
	}
	return repo.UpsertDoctor(ctx, s.DB, d)
}

// normalizeSort returns requested when it appears in allowed, otherwise the
// default. The fallback is silent towards the caller; a warning is logged so
// misbehaving clients remain visible.
func normalizeSort(requested string, allowed []string, def, param string) string {
	for _, a := range allowed {
		if requested == a {
			return requested
		}
	}
	log.Warn().
		Str("param", param).
		Str("requested", requested).
		Str("fallback", def).
		Msg("invalid sort parameter, reverting to default")
	return def
}
