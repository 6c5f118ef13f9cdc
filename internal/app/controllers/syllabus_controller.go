package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/app/services"
	"github.com/okan/courseatlas/internal/middleware"
)

// SyllabusController handles syllabus uploads and retrieval
type SyllabusController struct {
	syllabusService services.SyllabusService
}

// NewSyllabusController creates a new SyllabusController
func NewSyllabusController(syllabusService services.SyllabusService) *SyllabusController {
	return &SyllabusController{
		syllabusService: syllabusService,
	}
}

// GetSyllabiByCourseID lists the syllabi of a course
// @Summary List course syllabi
// @Description Retrieves the syllabi uploaded for a course, newest first
// @Tags syllabi
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Syllabus} "Syllabi retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/syllabi [get]
func (c *SyllabusController) GetSyllabiByCourseID(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").
			WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	syllabi, err := c.syllabusService.GetSyllabiByCourseID(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(syllabi))
}

// UploadSyllabus uploads a syllabus PDF for a course
// @Summary Upload syllabus
// @Description Uploads a syllabus PDF for a course and semester. Only PDF files are accepted.
// @Tags syllabi
// @Accept multipart/form-data
// @Produce json
// @Param courseId formData int true "Course ID"
// @Param semester formData string true "Semester, e.g. Fall 2025"
// @Param file formData file true "Syllabus PDF"
// @Success 201 {object} dto.APIResponse{data=models.Syllabus} "Syllabus uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or file type"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /syllabi [post]
func (c *SyllabusController) UploadSyllabus(ctx *gin.Context) {
	var req dto.CreateSyllabusRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Syllabus file is required").
			WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	syllabus, err := c.syllabusService.UploadSyllabus(ctx, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(syllabus))
}

// DeleteSyllabus removes a syllabus
// @Summary Delete syllabus
// @Description Deletes a syllabus record and its stored file
// @Tags syllabi
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Syllabus ID"
// @Success 204 "Syllabus deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid syllabus ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Syllabus not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /syllabi/{id} [delete]
func (c *SyllabusController) DeleteSyllabus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid syllabus ID").
			WithDetails("Syllabus ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.syllabusService.DeleteSyllabus(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
