// Trainee notes HTTP handlers.
//
// This file exposes the REST endpoints for note resources:
//   - GET  /trainee/{gmcId}/notes   (list, newest-updated-first)
//   - POST /trainee/notes/add       (create)
//   - PUT  /trainee/notes/edit      (edit, or create when id is unknown)
//
// Handlers are transport-thin: they validate input, delegate to the notes
// service, and translate results into HTTP responses. The boundary owns the
// malformed-edit rejection: a PUT without a note id never reaches the
// service.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medreg/revalidation-backend/internal/services"
)

// SaveNoteRequest is the JSON payload for creating a note.
type SaveNoteRequest struct {
	// GMCID identifies the doctor the note belongs to.
	GMCID string `json:"gmcId" binding:"required" example:"7012617"`
	// Text is the note body.
	Text string `json:"text" binding:"required" example:"Spoke with the designated body on 12 May."`
}

// EditNoteRequest is the JSON payload for editing a note. ID is mandatory at
// this boundary even though an unknown id degrades to a create downstream.
type EditNoteRequest struct {
	ID    string `json:"id" example:"8f2c1d3a-0b7e-4a31-9c5d-2f6a1e8b4c90"`
	GMCID string `json:"gmcId" binding:"required" example:"7012617"`
	Text  string `json:"text" binding:"required" example:"Updated after the panel review."`
}

// GetTraineeNotes godoc
// @ID          getTraineeNotes
// @Summary     List a doctor's notes
// @Description Returns the notes attached to the given GMC number, most recently updated first.
// @Tags        Notes
// @Produce     json
//
// @Param       gmcId  path  string  true  "GMC reference number" example(7012617)
//
// @Success     200 {object} services.TraineeNotes
// @Failure     500 {object} handlers.ErrorResponse "Store failure"
// @Router      /trainee/{gmcId}/notes [get]
func (h *Handlers) GetTraineeNotes(c *gin.Context) {
	gmcID := c.Param("gmcId")

	// A blank identifier is passed through with a null notes list rather
	// than rejected; the frontend relies on this shape.
	if strings.TrimSpace(gmcID) == "" {
		ok(c, http.StatusOK, services.TraineeNotes{GMCID: gmcID, Notes: nil})
		return
	}

	notes, err := h.notesSvc.List(c.Request.Context(), gmcID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeNotesFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, notes)
}

// AddTraineeNote godoc
// @ID          addTraineeNote
// @Summary     Create a note
// @Description Stores a new note for a doctor with both timestamps set to now.
// @Tags        Notes
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SaveNoteRequest  true  "Note payload"
//
// @Success     200 {object} domain.Note
// @Failure     400 {object} handlers.ErrorResponse "Missing gmcId or text"
// @Failure     500 {object} handlers.ErrorResponse "Store failure"
// @Router      /trainee/notes/add [post]
func (h *Handlers) AddTraineeNote(c *gin.Context) {
	var req SaveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "gmcId and text are required")
		return
	}

	note, err := h.notesSvc.Create(c.Request.Context(), req.GMCID, req.Text)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeNotesFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, note)
}

// EditTraineeNote godoc
// @ID          editTraineeNote
// @Summary     Edit a note
// @Description Replaces the note's text, preserving its identity and creation date. An id that no longer exists silently becomes a create.
// @Tags        Notes
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.EditNoteRequest  true  "Note payload including id"
//
// @Success     200 {object} domain.Note
// @Failure     400 {object} handlers.ErrorResponse "Missing id, gmcId, or text"
// @Failure     500 {object} handlers.ErrorResponse "Store failure"
// @Router      /trainee/notes/edit [put]
func (h *Handlers) EditTraineeNote(c *gin.Context) {
	var req EditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "gmcId and text are required")
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "note id is required")
		return
	}

	note, err := h.notesSvc.Edit(c.Request.Context(), req.ID, req.GMCID, req.Text)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeNotesFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, note)
}
