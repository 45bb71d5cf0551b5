package dto

import "github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"

// ProfileResponse represents an active member profile
type ProfileResponse struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Aliases     []string `json:"aliases"`
}

// NewProfileResponses maps profiles
func NewProfileResponses(profiles []entity.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		aliases := p.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		out = append(out, ProfileResponse{ID: p.ID, DisplayName: p.DisplayName, Aliases: aliases})
	}
	return out
}

// HealthResponse reports service and database health
type HealthResponse struct {
	Status   string `json:"status"`
	Storage  string `json:"storage"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
	Pool     any    `json:"pool,omitempty"`
}
