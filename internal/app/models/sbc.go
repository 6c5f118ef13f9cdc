package models

// SBC represents a curriculum-requirement code a course can satisfy.
type SBC struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
