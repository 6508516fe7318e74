package models

// ActivityResponse represents one timeline event in API responses.
type ActivityResponse struct {
	ID            int                    `json:"id"`
	LeadID        int                    `json:"lead_id"`
	OpportunityID int                    `json:"opportunity_id,omitempty"`
	Type          string                 `json:"type"`
	Content       string                 `json:"content"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	CreatedByID   int                    `json:"created_by_id"`
	CreatedAt     string                 `json:"created_at"`
}

// ActivityListResponse is a lead's timeline, newest first.
type ActivityListResponse struct {
	Data []ActivityResponse `json:"data"`
}
