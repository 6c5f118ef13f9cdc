package models

import "time"

// Syllabus represents an uploaded syllabus document for a course.
type Syllabus struct {
	ID         int64     `json:"id"`
	CourseID   int64     `json:"courseId"`
	Semester   string    `json:"semester"`
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	FileSize   int64     `json:"fileSize"`
	UploadedAt time.Time `json:"uploadedAt"`
}
