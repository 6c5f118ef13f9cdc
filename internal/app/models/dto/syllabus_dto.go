package dto

// CreateSyllabusRequest is the multipart metadata for a syllabus upload.
// The file itself is read from the "file" form field.
type CreateSyllabusRequest struct {
	CourseID int64  `form:"courseId" binding:"required,min=1"`
	Semester string `form:"semester" binding:"required"`
}
