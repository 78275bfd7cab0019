package handler

import (
	"net/http"
	"strings"

	"medtracker/internal/app/ds"

	"github.com/gin-gonic/gin"
)

// GET /api/patients?name=
func (h *Handler) ApiListPatients(ctx *gin.Context) {
	name := strings.ToLower(ctx.Query("name"))
	patients, err := h.Repository.ListPatients(name)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, patients, int64(len(patients)), gin.H{"name": name})
}

// GET /api/patients/:id
func (h *Handler) ApiGetPatient(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	patient, err := h.Repository.GetPatient(id)
	if err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	jsonResponse(ctx, patient, 1, gin.H{"id": id})
}

// POST /api/patients
func (h *Handler) ApiCreatePatient(ctx *gin.Context) {
	type requestBody struct {
		Name        string `json:"name" binding:"required"`
		DateOfBirth string `json:"dateOfBirth" binding:"required"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if err := ds.ValidatePatientName(body.Name); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	dob, err := ds.ParseDate(body.DateOfBirth)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	patient := ds.Patient{Name: body.Name, DateOfBirth: dob}
	if err := h.Repository.CreatePatient(&patient); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, patient, 1, gin.H{})
}

// PUT /api/patients/:id — partial update, absent fields stay as stored
func (h *Handler) ApiUpdatePatient(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	type requestBody struct {
		Name        *string `json:"name"`
		DateOfBirth *string `json:"dateOfBirth"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	fields := map[string]interface{}{}
	if body.Name != nil {
		if err := ds.ValidatePatientName(*body.Name); err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
		fields["name"] = *body.Name
	}
	if body.DateOfBirth != nil {
		dob, err := ds.ParseDate(*body.DateOfBirth)
		if err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
		fields["date_of_birth"] = dob
	}

	patient, err := h.Repository.UpdatePatient(id, fields)
	if err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	jsonResponse(ctx, patient, 1, gin.H{"id": id})
}

// DELETE /api/patients/:id — cascades to the patient's assignments
func (h *Handler) ApiDeletePatient(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if err := h.Repository.DeletePatient(id); err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}
