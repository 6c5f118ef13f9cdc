package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/app/services"
	"github.com/okan/courseatlas/internal/middleware"
)

// ProfessorController handles professor rating lookups and ingestion
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// GetProfessorByName retrieves a professor's rating summary
// @Summary Get professor ratings
// @Description Retrieves a professor's rating distribution and averages by display name. Partial names resolve to the closest match.
// @Tags professors
// @Accept json
// @Produce json
// @Param name query string true "Professor display name"
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorResponse} "Professor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing professor name"
// @Failure 404 {object} dto.ErrorResponse "Professor not found or has no ratings"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [get]
func (c *ProfessorController) GetProfessorByName(ctx *gin.Context) {
	name := strings.TrimSpace(ctx.Query("name"))
	if name == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Professor name is required").
			WithField("name")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	professor, err := c.professorService.GetProfessorByName(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(professor))
}

// SyncRatings refreshes all professor ratings from their source pages
// @Summary Sync professor ratings
// @Description Re-fetches the rating distribution of every professor that has a ratings page on record
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RatingSyncResponse} "Sync completed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/sync [post]
func (c *ProfessorController) SyncRatings(ctx *gin.Context) {
	result, err := c.professorService.SyncRatings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
