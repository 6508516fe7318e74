package models

// MoveOpportunityRequest asks the transition engine to move one
// opportunity into a target stage.
type MoveOpportunityRequest struct {
	OpportunityID int    `json:"opportunity_id" validate:"required"`
	ToStageID     string `json:"to_stage_id" validate:"required"`
	Note          string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

// OpportunityResponse represents an opportunity in API responses.
type OpportunityResponse struct {
	ID                int      `json:"id"`
	LeadID            int      `json:"lead_id"`
	StageID           string   `json:"stage_id"`
	PreviousStageID   *string  `json:"previous_stage_id,omitempty"`
	StageEnteredAt    string   `json:"stage_entered_at"`
	AssignedAgentID   int      `json:"assigned_agent_id"`
	IsExclusive       bool     `json:"is_exclusive"`
	ExpectedValue     float64  `json:"expected_value"`
	ExpectedCloseDate *string  `json:"expected_close_date,omitempty"`
	Outcome           *string  `json:"outcome,omitempty"`
	ClosedAt          *string  `json:"closed_at,omitempty"`
	Version           int      `json:"version"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
	Message           string   `json:"message,omitempty"`
}
