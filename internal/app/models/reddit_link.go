package models

import "time"

// RedditLink represents a discussion thread associated with a course number.
type RedditLink struct {
	ID           int64     `json:"id"`
	CourseNumber string    `json:"courseNumber"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	PostedAt     time.Time `json:"postedAt"`
}
