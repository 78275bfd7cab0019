package handler

import (
	"net/http"
	"strings"

	"medtracker/internal/app/ds"

	"github.com/gin-gonic/gin"
)

type medicationItem struct {
	ds.Medication
	PublicImageURL string `json:"public_image_url,omitempty"`
}

func (h *Handler) medicationResponse(m ds.Medication) medicationItem {
	item := medicationItem{Medication: m}
	if h.Storage != nil && m.ImageKey != "" {
		item.PublicImageURL = h.Storage.PublicURL(m.ImageKey)
	}
	return item
}

// GET /api/medications?name=
func (h *Handler) ApiListMedications(ctx *gin.Context) {
	name := strings.ToLower(ctx.Query("name"))
	medications, err := h.Repository.ListMedications(name)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	resp := make([]medicationItem, 0, len(medications))
	for _, m := range medications {
		resp = append(resp, h.medicationResponse(m))
	}
	jsonResponse(ctx, resp, int64(len(resp)), gin.H{"name": name})
}

// GET /api/medications/:id
func (h *Handler) ApiGetMedication(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	medication, err := h.Repository.GetMedication(id)
	if err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	jsonResponse(ctx, h.medicationResponse(*medication), 1, gin.H{"id": id})
}

func validateMedicationFields(name, dosage, frequency string) error {
	if err := ds.ValidateMedicationName(name); err != nil {
		return err
	}
	if err := ds.ValidateDosage(dosage); err != nil {
		return err
	}
	return ds.ValidateFrequency(frequency)
}

// POST /api/medications
func (h *Handler) ApiCreateMedication(ctx *gin.Context) {
	type requestBody struct {
		Name      string `json:"name" binding:"required"`
		Dosage    string `json:"dosage" binding:"required"`
		Frequency string `json:"frequency" binding:"required"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if err := validateMedicationFields(body.Name, body.Dosage, body.Frequency); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	medication := ds.Medication{Name: body.Name, Dosage: body.Dosage, Frequency: body.Frequency}
	if err := h.Repository.CreateMedication(&medication); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, medication, 1, gin.H{})
}

// PUT /api/medications/:id — partial update
func (h *Handler) ApiUpdateMedication(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	type requestBody struct {
		Name      *string `json:"name"`
		Dosage    *string `json:"dosage"`
		Frequency *string `json:"frequency"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	fields := map[string]interface{}{}
	if body.Name != nil {
		if err := ds.ValidateMedicationName(*body.Name); err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
		fields["name"] = *body.Name
	}
	if body.Dosage != nil {
		if err := ds.ValidateDosage(*body.Dosage); err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
		fields["dosage"] = *body.Dosage
	}
	if body.Frequency != nil {
		if err := ds.ValidateFrequency(*body.Frequency); err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
		fields["frequency"] = *body.Frequency
	}

	medication, err := h.Repository.UpdateMedication(id, fields)
	if err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	jsonResponse(ctx, h.medicationResponse(*medication), 1, gin.H{"id": id})
}

// DELETE /api/medications/:id — cascades to assignments, removes the image
func (h *Handler) ApiDeleteMedication(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	medication, err := h.Repository.GetMedication(id)
	if err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	if medication.ImageKey != "" && h.Storage != nil {
		_ = h.Storage.DeleteImage(ctx, medication.ImageKey)
	}
	if err := h.Repository.DeleteMedication(id); err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}

// POST /api/medications/:id/image
func (h *Handler) ApiUploadMedicationImage(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	medication, err := h.Repository.GetMedication(id)
	if err != nil {
		h.storeErrorHandler(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		file, err = ctx.FormFile("image")
		if err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
	}

	if h.Storage == nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "storage not configured"})
		return
	}
	if medication.ImageKey != "" {
		_ = h.Storage.DeleteImage(ctx, medication.ImageKey)
	}
	key, publicURL, err := h.Storage.UploadImage(ctx, file, medication.Name)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if err := h.Repository.UpdateMedicationImage(id, key); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, gin.H{"image_key": key, "public_url": publicURL}, 1, gin.H{"id": id})
}
