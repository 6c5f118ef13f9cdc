package dto

import "github.com/okan/courseatlas/internal/app/models"

// ProfessorResponse represents a professor with derived rating fields
type ProfessorResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	RMPLink       string  `json:"rmpLink"`
	Rating1Count  int     `json:"rating1Count"`
	Rating2Count  int     `json:"rating2Count"`
	Rating3Count  int     `json:"rating3Count"`
	Rating4Count  int     `json:"rating4Count"`
	Rating5Count  int     `json:"rating5Count"`
	TotalRatings  int     `json:"totalRatings"`
	AverageRating float64 `json:"averageRating"`
}

// FromProfessor converts a models.Professor to a ProfessorResponse
func FromProfessor(professor *models.Professor) ProfessorResponse {
	if professor == nil {
		return ProfessorResponse{}
	}

	return ProfessorResponse{
		ID:            professor.ID,
		Name:          professor.Name,
		RMPLink:       professor.RMPLink,
		Rating1Count:  professor.Rating1Count,
		Rating2Count:  professor.Rating2Count,
		Rating3Count:  professor.Rating3Count,
		Rating4Count:  professor.Rating4Count,
		Rating5Count:  professor.Rating5Count,
		TotalRatings:  professor.TotalRatings(),
		AverageRating: professor.AverageRating(),
	}
}

// RatingSyncResponse summarizes a ratings ingestion run
type RatingSyncResponse struct {
	Synced  int      `json:"synced"`
	Skipped int      `json:"skipped"`
	Failed  []string `json:"failed,omitempty"`
}
