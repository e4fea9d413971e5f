// Doctor listing HTTP handlers.
//
// This file exposes the trainee doctor directory endpoint:
//   - GET /doctors   (paginated, sortable, searchable summary)
//
// Handlers are transport-thin: they parse query parameters with lenient
// defaults, call the aggregation service, and translate results into HTTP
// responses. Invalid sort parameters are not rejected here; the service
// substitutes its configured defaults.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medreg/revalidation-backend/internal/domain"
	"github.com/medreg/revalidation-backend/internal/services"
	"github.com/medreg/revalidation-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// DoctorService defines the trainee summary aggregation consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type DoctorService interface {
	// GetTraineeSummary returns one merged, counted page of the directory.
	GetTraineeSummary(ctx context.Context, req services.SummaryRequest) (*services.TraineeSummary, error)
}

// NotesService defines note lifecycle operations consumed by HTTP handlers.
type NotesService interface {
	// List returns a doctor's notes, newest-updated-first.
	List(ctx context.Context, gmcID string) (*services.TraineeNotes, error)
	// Create stores a fresh note for gmcID.
	Create(ctx context.Context, gmcID, text string) (*domain.Note, error)
	// Edit replaces an existing note or creates one when id is unknown.
	Edit(ctx context.Context, id, gmcID, text string) (*domain.Note, error)
}

// AdminService defines the admin directory lookup consumed by HTTP handlers.
type AdminService interface {
	// AssignableAdmins lists the members of the configured admin group.
	AssignableAdmins(ctx context.Context) ([]services.Admin, error)
}

// EnvironmentService reports deployment environment details.
type EnvironmentService interface {
	Details() services.EnvironmentInfo
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for doctors, notes, admins, and environment.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	docSvc   DoctorService
	notesSvc NotesService
	adminSvc AdminService
	envSvc   EnvironmentService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(docSvc DoctorService, notesSvc NotesService, adminSvc AdminService, envSvc EnvironmentService) *Handlers {
	return &Handlers{docSvc: docSvc, notesSvc: notesSvc, adminSvc: adminSvc, envSvc: envSvc}
}

// GetTraineeDoctors godoc
// @ID          getTraineeDoctors
// @Summary     List trainee doctors
// @Description Returns one page of the trainee doctor directory, enriched with programme data and collection-wide counts.
// @Tags        Doctors
// @Produce     json
//
// @Param       sortColumn   query  string  false "Sort column"                default(submissionDate)
// @Param       sortOrder    query  string  false "Sort direction (asc|desc)" default(desc)
// @Param       underNotice  query  bool    false "Restrict to under-notice doctors" default(false)
// @Param       pageNumber   query  int     false "Zero-based page number"    default(0)
// @Param       searchQuery  query  string  false "Substring match on names or GMC number"
//
// @Success     200 {object} services.TraineeSummary
// @Failure     500 {object} handlers.ErrorResponse "Store failure"
// @Router      /doctors [get]
func (h *Handlers) GetTraineeDoctors(c *gin.Context) {
	underNotice, err := strconv.ParseBool(c.DefaultQuery("underNotice", "false"))
	if err != nil {
		underNotice = false
	}
	pageNumber := utils.AtoiDefault(c.Query("pageNumber"), 0)
	if pageNumber < 0 {
		pageNumber = 0
	}

	req := services.SummaryRequest{
		SortColumn:  c.DefaultQuery("sortColumn", "submissionDate"),
		SortOrder:   c.DefaultQuery("sortOrder", "desc"),
		UnderNotice: underNotice,
		PageNumber:  pageNumber,
		SearchQuery: c.Query("searchQuery"),
	}

	summary, err := h.docSvc.GetTraineeSummary(c.Request.Context(), req)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSummaryFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, summary)
}
