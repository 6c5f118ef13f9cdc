package models

// Course represents a catalog course entry.
type Course struct {
	ID          int64    `json:"id"`
	Department  string   `json:"department"`
	Number      string   `json:"number"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Credits     int      `json:"credits"`
	SBCs        []string `json:"sbcs"`
	Prereqs     *string  `json:"prereqs,omitempty"`
}

// Code returns the combined course code, e.g. "CSE320".
func (c *Course) Code() string {
	return c.Department + c.Number
}
