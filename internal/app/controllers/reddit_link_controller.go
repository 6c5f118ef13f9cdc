package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/app/services"
	"github.com/okan/courseatlas/internal/middleware"
)

// RedditLinkController handles discussion links attached to courses
type RedditLinkController struct {
	linkService services.RedditLinkService
}

// NewRedditLinkController creates a new RedditLinkController
func NewRedditLinkController(linkService services.RedditLinkService) *RedditLinkController {
	return &RedditLinkController{
		linkService: linkService,
	}
}

// GetLinksByCourseNumber lists the discussion links of a course
// @Summary List course discussion links
// @Description Retrieves the reddit discussion links recorded for a course number, newest first
// @Tags reddit-links
// @Accept json
// @Produce json
// @Param courseNumber path string true "Course number, e.g. CSE320"
// @Success 200 {object} dto.APIResponse{data=[]models.RedditLink} "Links retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing course number"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reddit-links/{courseNumber} [get]
func (c *RedditLinkController) GetLinksByCourseNumber(ctx *gin.Context) {
	courseNumber := strings.TrimSpace(ctx.Param("courseNumber"))
	if courseNumber == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Course number is required").
			WithField("courseNumber")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	links, err := c.linkService.GetLinksByCourseNumber(ctx, courseNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(links))
}

// CreateLink registers a new discussion link
// @Summary Create discussion link
// @Description Registers a reddit discussion link for a course number
// @Tags reddit-links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRedditLinkRequest true "Link information"
// @Success 201 {object} dto.APIResponse{data=models.RedditLink} "Link created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reddit-links [post]
func (c *RedditLinkController) CreateLink(ctx *gin.Context) {
	var req dto.CreateRedditLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	link, err := c.linkService.CreateLink(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(link))
}

// DeleteLink removes a discussion link
// @Summary Delete discussion link
// @Description Deletes a reddit discussion link by its ID
// @Tags reddit-links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Success 204 "Link deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid link ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Link not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reddit-links/{id} [delete]
func (c *RedditLinkController) DeleteLink(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid link ID").
			WithDetails("Link ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.linkService.DeleteLink(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
