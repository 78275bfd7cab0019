package handler

import (
	"net/http"
	"time"

	"medtracker/internal/app/ds"
	"medtracker/internal/app/pkg/treatment"

	"github.com/gin-gonic/gin"
)

// GET /api/assignments
func (h *Handler) ApiListAssignments(ctx *gin.Context) {
	assignments, err := h.Repository.ListAssignments()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, assignments, int64(len(assignments)), gin.H{})
}

// GET /api/assignments/remaining-days
//
// Every assignment enriched with its remainingDays, computed against the
// request-time clock. Storage order, nothing cached.
func (h *Handler) ApiListAssignmentsWithRemainingDays(ctx *gin.Context) {
	assignments, err := h.Repository.ListAssignments()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	enriched := treatment.EnrichAll(assignments, time.Now())
	jsonResponse(ctx, enriched, int64(len(enriched)), gin.H{})
}

// GET /api/assignments/:id
func (h *Handler) ApiGetAssignment(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	assignment, err := h.Repository.GetAssignment(id)
	if err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	jsonResponse(ctx, assignment, 1, gin.H{"id": id})
}

// GET /api/assignments/:id/remaining-days
func (h *Handler) ApiGetAssignmentWithRemainingDays(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	assignment, err := h.Repository.GetAssignment(id)
	if err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	jsonResponse(ctx, treatment.Enrich(*assignment, time.Now()), 1, gin.H{"id": id})
}

// POST /api/assignments
func (h *Handler) ApiCreateAssignment(ctx *gin.Context) {
	type requestBody struct {
		PatientID    uint   `json:"patientId" binding:"required"`
		MedicationID uint   `json:"medicationId" binding:"required"`
		StartDate    string `json:"startDate" binding:"required"`
		Days         int    `json:"days" binding:"required"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if err := ds.ValidateDays(body.Days); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	startDate, err := ds.ParseDate(body.StartDate)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	assignment := ds.Assignment{
		PatientID:    body.PatientID,
		MedicationID: body.MedicationID,
		StartDate:    startDate,
		Days:         body.Days,
	}
	// fails with not found when a referenced id does not resolve
	if err := h.Repository.CreateAssignment(&assignment); err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	created, err := h.Repository.GetAssignment(assignment.ID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, created, 1, gin.H{})
}

// PUT /api/assignments/:id — each field independently optional
func (h *Handler) ApiUpdateAssignment(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	type requestBody struct {
		PatientID    *uint   `json:"patientId"`
		MedicationID *uint   `json:"medicationId"`
		StartDate    *string `json:"startDate"`
		Days         *int    `json:"days"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	fields := map[string]interface{}{}
	if body.PatientID != nil {
		if *body.PatientID == 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "patientId must be positive"})
			return
		}
		fields["patient_id"] = *body.PatientID
	}
	if body.MedicationID != nil {
		if *body.MedicationID == 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "medicationId must be positive"})
			return
		}
		fields["medication_id"] = *body.MedicationID
	}
	if body.StartDate != nil {
		startDate, err := ds.ParseDate(*body.StartDate)
		if err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
		fields["start_date"] = startDate
	}
	if body.Days != nil {
		if err := ds.ValidateDays(*body.Days); err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
		fields["days"] = *body.Days
	}

	assignment, err := h.Repository.UpdateAssignment(id, fields)
	if err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	jsonResponse(ctx, assignment, 1, gin.H{"id": id})
}

// DELETE /api/assignments/:id
func (h *Handler) ApiDeleteAssignment(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if err := h.Repository.DeleteAssignment(id); err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}
