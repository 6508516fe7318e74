// Package pipeline resolves and maintains the stage configuration: a
// versioned singleton document holding the ordered stage list.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/casaflow/casaflow/ent"
	"github.com/casaflow/casaflow/ent/pipelineconfig"
	"github.com/casaflow/casaflow/pkg/cache"
	"github.com/casaflow/casaflow/pkg/models"
)

const (
	singletonKey = "pipeline"
	cacheKey     = "pipeline:config"
	cacheTTL     = 5 * time.Minute
)

// VersionConflictError is returned when a config write carries a stale
// version. CurrentVersion lets the caller re-fetch and retry.
type VersionConflictError struct {
	CurrentVersion int
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("pipeline config was modified concurrently (current version %d), please refresh", e.CurrentVersion)
}

// ValidationError is returned when a submitted configuration breaks a
// pipeline invariant.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Service handles pipeline configuration access.
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new pipeline configuration service.
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{db: db, cache: cache}
}

// DefaultConfig returns the built-in stage configuration used until an
// admin persists one.
func DefaultConfig() models.PipelineConfig {
	return models.PipelineConfig{
		Stages: []models.Stage{
			{ID: "lead", Name: "Lead", Color: "#64748b"},
			{ID: "contacted", Name: "Contacted", Color: "#0ea5e9"},
			{ID: "qualified", Name: "Qualified", Color: "#8b5cf6"},
			{ID: "listing", Name: "Listing", Color: "#f59e0b"},
			{ID: "negotiation", Name: "Negotiation", Color: "#f97316"},
			{ID: "sale", Name: "Sale", Color: "#22c55e", IsTerminal: true, TerminalType: "won"},
			{ID: "lost", Name: "Lost", Color: "#ef4444", IsTerminal: true, TerminalType: "lost"},
		},
		DefaultStageID: "lead",
		Version:        0,
	}
}

// GetConfig returns the persisted configuration, or the built-in
// default when none has been saved yet. Store errors propagate.
func (s *Service) GetConfig(ctx context.Context) (models.PipelineConfig, error) {
	if s.cache != nil {
		var cached models.PipelineConfig
		if found, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	row, err := s.db.PipelineConfig.
		Query().
		Where(pipelineconfig.Key(singletonKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return DefaultConfig(), nil
		}
		return models.PipelineConfig{}, fmt.Errorf("failed to fetch pipeline config: %w", err)
	}

	cfg := models.PipelineConfig{
		Stages:         row.Stages,
		DefaultStageID: row.DefaultStageID,
		Version:        row.Version,
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKey, cfg, cacheTTL)
	}

	return cfg, nil
}

// ResolveStage looks up a stage by id. A miss is a normal outcome when
// validating a move target, not an error.
func ResolveStage(cfg models.PipelineConfig, stageID string) (models.Stage, bool) {
	for _, st := range cfg.Stages {
		if st.ID == stageID {
			return st, true
		}
	}
	return models.Stage{}, false
}

// Validate checks the configuration invariants: at least one stage,
// unique stage ids, resolvable default stage, sane terminal types.
func Validate(cfg models.PipelineConfig) error {
	if len(cfg.Stages) == 0 {
		return fmt.Errorf("pipeline must have at least one stage")
	}

	seen := make(map[string]bool, len(cfg.Stages))
	for _, st := range cfg.Stages {
		if st.ID == "" {
			return fmt.Errorf("stage id must not be empty")
		}
		if st.Name == "" {
			return fmt.Errorf("stage %q must have a name", st.ID)
		}
		if seen[st.ID] {
			return fmt.Errorf("duplicate stage id %q", st.ID)
		}
		seen[st.ID] = true

		if st.TerminalType != "" && !st.IsTerminal {
			return fmt.Errorf("stage %q has a terminal type but is not terminal", st.ID)
		}
		if st.TerminalType != "" && st.TerminalType != "won" && st.TerminalType != "lost" {
			return fmt.Errorf("stage %q has invalid terminal type %q", st.ID, st.TerminalType)
		}
	}

	if !seen[cfg.DefaultStageID] {
		return fmt.Errorf("default stage %q is not in the stage list", cfg.DefaultStageID)
	}

	return nil
}

// UpdateConfig replaces the stage configuration. The caller supplies
// the version it read; a stale version is rejected with a
// VersionConflictError carrying the current one.
func (s *Service) UpdateConfig(ctx context.Context, userID int, req models.UpdatePipelineRequest) (models.PipelineConfig, error) {
	next := models.PipelineConfig{
		Stages:         req.Stages,
		DefaultStageID: req.DefaultStageID,
		Version:        req.Version + 1,
	}
	if err := Validate(next); err != nil {
		return models.PipelineConfig{}, &ValidationError{Reason: err.Error()}
	}

	// First persisted write: the caller read the built-in default
	// (version 0), so create the singleton row.
	if req.Version == 0 {
		_, err := s.db.PipelineConfig.
			Create().
			SetKey(singletonKey).
			SetStages(req.Stages).
			SetDefaultStageID(req.DefaultStageID).
			SetVersion(1).
			SetUpdatedByID(userID).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return models.PipelineConfig{}, s.conflict(ctx)
			}
			return models.PipelineConfig{}, fmt.Errorf("failed to create pipeline config: %w", err)
		}
		next.Version = 1
		s.invalidate(ctx)
		return next, nil
	}

	n, err := s.db.PipelineConfig.
		Update().
		Where(
			pipelineconfig.Key(singletonKey),
			pipelineconfig.Version(req.Version),
		).
		SetStages(req.Stages).
		SetDefaultStageID(req.DefaultStageID).
		SetVersion(req.Version + 1).
		SetUpdatedByID(userID).
		Save(ctx)
	if err != nil {
		return models.PipelineConfig{}, fmt.Errorf("failed to update pipeline config: %w", err)
	}
	if n == 0 {
		return models.PipelineConfig{}, s.conflict(ctx)
	}

	s.invalidate(ctx)
	return next, nil
}

// conflict builds a VersionConflictError with the version currently in
// the store.
func (s *Service) conflict(ctx context.Context) error {
	row, err := s.db.PipelineConfig.
		Query().
		Where(pipelineconfig.Key(singletonKey)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch current pipeline config version: %w", err)
	}
	return &VersionConflictError{CurrentVersion: row.Version}
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, cacheKey)
	}
}
