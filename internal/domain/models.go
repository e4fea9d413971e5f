// Package domain defines the persistence models for trainee doctors and
// their notes. These types are mapped with GORM and form the core data layer
// of the revalidation backend.
package domain

import (
	"strings"
	"time"
)

// UnderNotice is the regulatory scrutiny status carried by a doctor record.
// ON_HOLD is treated like YES for filtering and aggregate counting.
type UnderNotice string

// UnderNotice values as supplied by the GMC feed.
const (
	UnderNoticeYes    UnderNotice = "YES"
	UnderNoticeNo     UnderNotice = "NO"
	UnderNoticeOnHold UnderNotice = "ON_HOLD"
)

// UnderNoticeFromString maps a feed-supplied string onto an UnderNotice
// value. Matching is case-insensitive; anything unrecognized maps to NO,
// mirroring the lenient handling applied to the upstream feed.
func UnderNoticeFromString(s string) UnderNotice {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(UnderNoticeYes):
		return UnderNoticeYes
	case string(UnderNoticeOnHold):
		return UnderNoticeOnHold
	default:
		return UnderNoticeNo
	}
}

// RecommendationStatus tracks the revalidation workflow state of a doctor.
// Records always enter the system as NOT_STARTED; later transitions are made
// by the recommendation workflow, which lives outside this service.
type RecommendationStatus string

// RecommendationStatus values.
const (
	StatusNotStarted     RecommendationStatus = "NOT_STARTED"
	StatusStarted        RecommendationStatus = "STARTED"
	StatusSubmittedToGMC RecommendationStatus = "SUBMITTED_TO_GMC"
	StatusCompleted      RecommendationStatus = "COMPLETED"
)

// Doctor represents one trainee doctor record owned by the GMC system of
// record. Rows are created and replaced wholesale by the ingestion feed; the
// read path never mutates them.
//
// Fields:
//   - GMCReferenceNumber: immutable, globally unique GMC identifier (PK).
//   - DoctorFirstName / DoctorLastName: as supplied by the feed.
//   - SubmissionDate: date of the doctor's last revalidation submission.
//   - DateAdded: date the doctor entered the upstream register.
//   - UnderNotice: regulatory scrutiny status (YES / NO / ON_HOLD).
//   - Sanction: free-text sanction code, may be empty.
//   - DoctorStatus: revalidation workflow status, NOT_STARTED on ingest.
//   - LastUpdatedDate: set to "now" whenever the record is upserted.
//   - DesignatedBodyCode: code of the body responsible for the doctor.
type Doctor struct {
	GMCReferenceNumber string               `json:"gmcReferenceNumber" gorm:"column:gmc_reference_number;type:varchar(32);primaryKey"`
	DoctorFirstName    string               `json:"doctorFirstName"    gorm:"column:doctor_first_name;type:varchar(128);not null;index"`
	DoctorLastName     string               `json:"doctorLastName"     gorm:"column:doctor_last_name;type:varchar(128);not null;index"`
	SubmissionDate     time.Time            `json:"submissionDate"     gorm:"column:submission_date;index"`
	DateAdded          time.Time            `json:"dateAdded"          gorm:"column:date_added"`
	UnderNotice        UnderNotice          `json:"underNotice"        gorm:"column:under_notice;type:varchar(16);not null;index"`
	Sanction           string               `json:"sanction"           gorm:"column:sanction;type:varchar(64)"`
	DoctorStatus       RecommendationStatus `json:"doctorStatus"       gorm:"column:doctor_status;type:varchar(32);not null"`
	LastUpdatedDate    time.Time            `json:"lastUpdatedDate"    gorm:"column:last_updated_date"`
	DesignatedBodyCode string               `json:"designatedBodyCode" gorm:"column:designated_body_code;type:varchar(32)"`
}

// TableName returns the database table name for Doctor.
func (Doctor) TableName() string { return "doctors_for_db" }

// Note is a free-text annotation attached to a doctor by an admin. Notes are
// never deleted by this service; edits replace the row while preserving its
// identity and creation timestamp.
type Note struct {
	ID          string    `json:"id"          gorm:"column:id;type:char(36);primaryKey"`
	GMCID       string    `json:"gmcId"       gorm:"column:gmc_id;type:varchar(32);not null;index"`
	Text        string    `json:"text"        gorm:"column:text;type:text;not null"`
	CreatedDate time.Time `json:"createdDate" gorm:"column:created_date"`
	UpdatedDate time.Time `json:"updatedDate" gorm:"column:updated_date;index"`
}

// TableName returns the database table name for Note.
func (Note) TableName() string { return "trainee_notes" }
