package models

// LeadSummary is the subset of lead fields shown on a kanban card.
type LeadSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Source           string `json:"source,omitempty"`
	AssignedAgentID  int    `json:"assigned_agent_id"`
	IsExclusive      bool   `json:"is_exclusive"`
	CurrentStageID   string `json:"current_stage_id,omitempty"`
	CurrentStageName string `json:"current_stage_name,omitempty"`
}

// PropertySummary is the subset of property fields shown on a kanban card.
type PropertySummary struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Address      string  `json:"address,omitempty"`
	City         string  `json:"city,omitempty"`
	PropertyType string  `json:"property_type"`
	Price        float64 `json:"price"`
}

// BoardCard joins an opportunity with its lead and optional property.
type BoardCard struct {
	Opportunity OpportunityResponse `json:"opportunity"`
	Lead        LeadSummary         `json:"lead"`
	Property    *PropertySummary    `json:"property,omitempty"`
}

// BoardColumn is one kanban column: a stage plus the page of cards
// fetched for it. Count and TotalValue reflect only the page returned
// by the per-column query, not the true stage totals.
type BoardColumn struct {
	Stage         Stage       `json:"stage"`
	Count         int         `json:"count"`
	TotalValue    float64     `json:"total_value"`
	Opportunities []BoardCard `json:"opportunities"`
}

// BoardResponse is the full kanban board snapshot.
type BoardResponse struct {
	Columns []BoardColumn `json:"columns"`
}
