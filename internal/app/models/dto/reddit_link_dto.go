package dto

// CreateRedditLinkRequest is the payload for registering a discussion link
type CreateRedditLinkRequest struct {
	CourseNumber string `json:"courseNumber" binding:"required"`
	Title        string `json:"title" binding:"required"`
	URL          string `json:"url" binding:"required,url"`
}
