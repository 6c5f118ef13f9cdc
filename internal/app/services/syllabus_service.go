package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/app/repositories"
	"github.com/okan/courseatlas/internal/pkg/apperrors"
	"github.com/okan/courseatlas/internal/pkg/filestorage"
	"github.com/okan/courseatlas/internal/pkg/logger"
)

// syllabusSubdir is where syllabus PDFs live under the storage root
const syllabusSubdir = "syllabi"

// SyllabusService handles syllabus uploads and retrieval
type SyllabusService interface {
	GetSyllabiByCourseID(ctx context.Context, courseID int64) ([]models.Syllabus, error)
	UploadSyllabus(ctx context.Context, req *dto.CreateSyllabusRequest, file *multipart.FileHeader) (*models.Syllabus, error)
	DeleteSyllabus(ctx context.Context, id int64) error
}

type syllabusService struct {
	syllabusRepo *repositories.SyllabusRepository
	courseRepo   *repositories.CourseRepository
	fileStorage  filestorage.FileStorage
	maxFileSize  int64
}

// NewSyllabusService creates a new syllabus service instance
func NewSyllabusService(
	syllabusRepo *repositories.SyllabusRepository,
	courseRepo *repositories.CourseRepository,
	fileStorage filestorage.FileStorage,
	maxFileSize int64,
) SyllabusService {
	return &syllabusService{
		syllabusRepo: syllabusRepo,
		courseRepo:   courseRepo,
		fileStorage:  fileStorage,
		maxFileSize:  maxFileSize,
	}
}

// GetSyllabiByCourseID retrieves all syllabi uploaded for a course
func (s *syllabusService) GetSyllabiByCourseID(ctx context.Context, courseID int64) ([]models.Syllabus, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	syllabi, err := s.syllabusRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving syllabi: %w", err)
	}
	if syllabi == nil {
		syllabi = []models.Syllabus{}
	}

	return syllabi, nil
}

// UploadSyllabus validates and stores a syllabus PDF, then records it
func (s *syllabusService) UploadSyllabus(ctx context.Context, req *dto.CreateSyllabusRequest, file *multipart.FileHeader) (*models.Syllabus, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: syllabus file is required", apperrors.ErrValidationFailed)
	}
	if err := s.validateFile(file); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	fileURL, err := s.fileStorage.SaveFileWithPath(file, syllabusSubdir)
	if err != nil {
		return nil, fmt.Errorf("error saving syllabus file: %w", err)
	}

	syllabus := &models.Syllabus{
		CourseID: req.CourseID,
		Semester: strings.TrimSpace(req.Semester),
		FileName: file.Filename,
		FileURL:  fileURL,
		FileSize: file.Size,
	}

	if err := s.syllabusRepo.Create(ctx, syllabus); err != nil {
		// Keep storage consistent with the database when the insert fails.
		if delErr := s.fileStorage.DeleteFile(fileURL); delErr != nil {
			logger.Warn().Err(delErr).Str("fileUrl", fileURL).Msg("Failed to remove orphaned syllabus file")
		}
		return nil, fmt.Errorf("error recording syllabus: %w", err)
	}

	return syllabus, nil
}

// DeleteSyllabus removes a syllabus record and its stored file
func (s *syllabusService) DeleteSyllabus(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid syllabus ID", apperrors.ErrValidationFailed)
	}

	syllabus, err := s.syllabusRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving syllabus: %w", err)
	}
	if syllabus == nil {
		return apperrors.ErrSyllabusNotFound
	}

	if err := s.syllabusRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSyllabusNotFound) {
			return apperrors.ErrSyllabusNotFound
		}
		return fmt.Errorf("error deleting syllabus: %w", err)
	}

	if err := s.fileStorage.DeleteFile(syllabus.FileURL); err != nil {
		logger.Warn().Err(err).Str("fileUrl", syllabus.FileURL).Msg("Failed to remove stored syllabus file")
	}

	return nil
}

// validateFile enforces the PDF-only and size rules for syllabus uploads
func (s *syllabusService) validateFile(file *multipart.FileHeader) error {
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return fmt.Errorf("%w: file exceeds %d bytes", apperrors.ErrFileTooLarge, s.maxFileSize)
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return fmt.Errorf("%w: only PDF files are accepted", apperrors.ErrInvalidFileType)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "" && contentType != "application/pdf" {
		return fmt.Errorf("%w: only PDF files are accepted", apperrors.ErrInvalidFileType)
	}

	return nil
}
