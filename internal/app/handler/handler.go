package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"medtracker/internal/app/config"
	"medtracker/internal/app/middleware"
	"medtracker/internal/app/pkg/auth"
	"medtracker/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ObjectStorage is what the handlers need from MinIO.
type ObjectStorage interface {
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (key string, publicURL string, err error)
	DeleteImage(ctx context.Context, key string) error
	PublicURL(key string) string
}

type Handler struct {
	Repository     *repository.Repository
	Config         *config.Config
	Storage        ObjectStorage
	JWTService     *auth.JWTService
	SessionService *auth.SessionService
}

func NewHandler(r *repository.Repository, cfg *config.Config, st ObjectStorage, jwtSvc *auth.JWTService, sessionSvc *auth.SessionService) *Handler {
	return &Handler{
		Repository:     r,
		Config:         cfg,
		Storage:        st,
		JWTService:     jwtSvc,
		SessionService: sessionSvc,
	}
}

// RegisterHandler wires up all API routes. Reads are public, mutations
// require an authenticated user.
func (h *Handler) RegisterHandler(router *gin.Engine) {
	authSvc := &middleware.AuthService{JWT: h.JWTService, Session: h.SessionService}

	api := router.Group("/api")
	{
		api.POST("/users/register", h.ApiRegisterUser)
		api.POST("/users/login", h.ApiLogin)
		api.POST("/users/logout", h.ApiLogout)

		api.GET("/patients", h.ApiListPatients)
		api.GET("/patients/:id", h.ApiGetPatient)
		api.GET("/medications", h.ApiListMedications)
		api.GET("/medications/:id", h.ApiGetMedication)
		api.GET("/assignments", h.ApiListAssignments)
		api.GET("/assignments/remaining-days", h.ApiListAssignmentsWithRemainingDays)
		api.GET("/assignments/:id", h.ApiGetAssignment)
		api.GET("/assignments/:id/remaining-days", h.ApiGetAssignmentWithRemainingDays)
	}

	protected := router.Group("/api", middleware.AuthMiddleware(authSvc))
	{
		protected.GET("/users/profile", h.ApiGetProfile)

		protected.POST("/patients", h.ApiCreatePatient)
		protected.PUT("/patients/:id", h.ApiUpdatePatient)
		protected.DELETE("/patients/:id", h.ApiDeletePatient)

		protected.POST("/medications", h.ApiCreateMedication)
		protected.PUT("/medications/:id", h.ApiUpdateMedication)
		protected.DELETE("/medications/:id", h.ApiDeleteMedication)
		protected.POST("/medications/:id/image", h.ApiUploadMedicationImage)

		protected.POST("/assignments", h.ApiCreateAssignment)
		protected.PUT("/assignments/:id", h.ApiUpdateAssignment)
		protected.DELETE("/assignments/:id", h.ApiDeleteAssignment)
	}
}

// errorHandler logs and returns a uniform error body.
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

// storeErrorHandler maps a repository error onto 404 or 500.
func (h *Handler) storeErrorHandler(ctx *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.errorHandler(ctx, http.StatusNotFound, err)
		return
	}
	h.errorHandler(ctx, http.StatusInternalServerError, err)
}

func jsonResponse(ctx *gin.Context, data interface{}, count int64, meta gin.H) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"data":   data,
		"count":  count,
		"meta":   meta,
	})
}

func parseID(ctx *gin.Context) (uint, error) {
	var uri struct {
		ID uint `uri:"id" binding:"required"`
	}
	if err := ctx.ShouldBindUri(&uri); err != nil {
		return 0, err
	}
	return uri.ID, nil
}
