package models

import (
	"math"
	"time"
)

// Professor represents a professor with an aggregated rating distribution.
type Professor struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	RMPLink      string    `json:"rmpLink"`
	Rating1Count int       `json:"rating1Count"`
	Rating2Count int       `json:"rating2Count"`
	Rating3Count int       `json:"rating3Count"`
	Rating4Count int       `json:"rating4Count"`
	Rating5Count int       `json:"rating5Count"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TotalRatings returns the number of ratings across all star buckets.
func (p *Professor) TotalRatings() int {
	return p.Rating1Count + p.Rating2Count + p.Rating3Count + p.Rating4Count + p.Rating5Count
}

// AverageRating returns the mean star rating rounded to one decimal,
// or 0 when the professor has no ratings.
func (p *Professor) AverageRating() float64 {
	total := p.TotalRatings()
	if total == 0 {
		return 0
	}

	sum := float64(p.Rating1Count) +
		2*float64(p.Rating2Count) +
		3*float64(p.Rating3Count) +
		4*float64(p.Rating4Count) +
		5*float64(p.Rating5Count)

	return math.Round(sum/float64(total)*10) / 10
}
