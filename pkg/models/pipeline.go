package models

// Stage is one named, ordered step of the sales pipeline. The array
// position inside PipelineConfig.Stages is the canonical kanban column
// order.
type Stage struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color,omitempty"`
	IsTerminal   bool   `json:"is_terminal"`
	TerminalType string `json:"terminal_type,omitempty"`
}

// PipelineConfig is the versioned stage configuration.
type PipelineConfig struct {
	Stages         []Stage `json:"stages"`
	DefaultStageID string  `json:"default_stage_id"`
	Version        int     `json:"version"`
}

// UpdatePipelineRequest carries a new stage configuration together with
// the version the caller read. Stale versions are rejected.
type UpdatePipelineRequest struct {
	Stages         []Stage `json:"stages" validate:"required,min=1,dive"`
	DefaultStageID string  `json:"default_stage_id" validate:"required"`
	Version        int     `json:"version" validate:"min=0"`
}

// StageWithCounts is a stage enriched with aggregate numbers across all
// opportunities in that stage.
type StageWithCounts struct {
	Stage
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
}

// StagesWithCountsResponse is the coarse per-stage summary used for
// badges and tabs.
type StagesWithCountsResponse struct {
	Stages []StageWithCounts `json:"stages"`
}
