// Package board builds read-only kanban views of the pipeline. It owns
// no state: every call is a fresh snapshot assembled from one page of
// opportunities per stage.
package board

import (
	"context"
	"fmt"
	"time"

	"github.com/casaflow/casaflow/ent"
	entopportunity "github.com/casaflow/casaflow/ent/opportunity"
	"github.com/casaflow/casaflow/pkg/access"
	"github.com/casaflow/casaflow/pkg/cache"
	"github.com/casaflow/casaflow/pkg/models"
	"github.com/casaflow/casaflow/pkg/opportunity"
	"github.com/casaflow/casaflow/pkg/pipeline"
)

const (
	countsCacheTTL = time.Minute

	// DefaultLimit and MaxLimit bound the per-column page size.
	DefaultLimit = 20
	MaxLimit     = 50
)

// Options controls a board build.
type Options struct {
	// LimitPerColumn caps how many cards are fetched per stage.
	LimitPerColumn int
	// ExcludeTerminal drops terminal stages from the board.
	ExcludeTerminal bool
	// ExclusiveOnly restricts the board to exclusive opportunities.
	// Only honored for principals with exclusive access.
	ExclusiveOnly bool
}

// Service builds board views.
type Service struct {
	db       *ent.Client
	pipeline *pipeline.Service
	cache    *cache.Client
}

// NewService creates a new board service.
func NewService(db *ent.Client, pipelineService *pipeline.Service, cache *cache.Client) *Service {
	return &Service{db: db, pipeline: pipelineService, cache: cache}
}

// BuildBoard returns one column per configured stage, each holding a
// single page of cards ordered by most recent update. Column totals
// reflect only the page fetched; this is a dashboard snapshot, not an
// export. Columns are queried independently, so a board may show an
// opportunity mid-move across two columns; acceptable for a dashboard.
func (s *Service) BuildBoard(ctx context.Context, p access.Principal, opts Options) (*models.BoardResponse, error) {
	if opts.LimitPerColumn <= 0 {
		opts.LimitPerColumn = DefaultLimit
	}
	if opts.LimitPerColumn > MaxLimit {
		opts.LimitPerColumn = MaxLimit
	}

	cfg, err := s.pipeline.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	resp := &models.BoardResponse{Columns: make([]models.BoardColumn, 0, len(cfg.Stages))}

	for _, st := range cfg.Stages {
		if opts.ExcludeTerminal && st.IsTerminal {
			continue
		}

		col, err := s.buildColumn(ctx, p, st, opts)
		if err != nil {
			return nil, err
		}
		resp.Columns = append(resp.Columns, *col)
	}

	return resp, nil
}

func (s *Service) buildColumn(ctx context.Context, p access.Principal, st models.Stage, opts Options) (*models.BoardColumn, error) {
	q := s.db.Opportunity.Query().
		Where(entopportunity.StageID(st.ID)).
		Order(ent.Desc(entopportunity.FieldUpdatedAt)).
		Limit(opts.LimitPerColumn).
		WithLead(func(lq *ent.LeadQuery) {
			lq.WithProperty()
		})

	if p.Role == access.RoleAgent {
		q = q.Where(entopportunity.AssignedAgentID(p.ID))
	}
	if opts.ExclusiveOnly && p.HasExclusiveAccess {
		q = q.Where(entopportunity.IsExclusive(true))
	}

	opps, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stage %q: %w", st.ID, err)
	}

	col := &models.BoardColumn{
		Stage:         st,
		Count:         len(opps),
		Opportunities: make([]models.BoardCard, 0, len(opps)),
	}

	for _, o := range opps {
		col.TotalValue += o.ExpectedValue

		// A dangling lead reference means the card has nothing to
		// render; it is dropped from display, not treated as an error.
		l := o.Edges.Lead
		if l == nil {
			continue
		}

		card := models.BoardCard{
			Opportunity: opportunity.ToResponse(o),
			Lead:        leadSummary(l),
		}
		if prop := l.Edges.Property; prop != nil {
			card.Property = propertySummary(prop)
		}
		col.Opportunities = append(col.Opportunities, card)
	}

	return col, nil
}

// StagesWithCounts returns every configured stage with the total count
// and value across all its opportunities, unbounded. Cheaper than the
// board (one grouped query, no joins); used for badges and tabs.
func (s *Service) StagesWithCounts(ctx context.Context, p access.Principal) (*models.StagesWithCountsResponse, error) {
	cfg, err := s.pipeline.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	key := countsCacheKey(p)
	if s.cache != nil {
		var cached models.StagesWithCountsResponse
		if found, err := s.cache.GetJSON(ctx, key, &cached); err == nil && found {
			return &cached, nil
		}
	}

	q := s.db.Opportunity.Query()
	if p.Role == access.RoleAgent {
		q = q.Where(entopportunity.AssignedAgentID(p.ID))
	}

	var rows []struct {
		StageID string  `json:"stage_id"`
		Count   int     `json:"count"`
		Sum     float64 `json:"sum"`
	}
	err = q.GroupBy(entopportunity.FieldStageID).
		Aggregate(ent.Count(), ent.Sum(entopportunity.FieldExpectedValue)).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stage counts: %w", err)
	}

	byStage := make(map[string]struct {
		count int
		sum   float64
	}, len(rows))
	for _, r := range rows {
		byStage[r.StageID] = struct {
			count int
			sum   float64
		}{r.Count, r.Sum}
	}

	resp := &models.StagesWithCountsResponse{Stages: make([]models.StageWithCounts, 0, len(cfg.Stages))}
	for _, st := range cfg.Stages {
		agg := byStage[st.ID]
		resp.Stages = append(resp.Stages, models.StageWithCounts{
			Stage:      st,
			Count:      agg.count,
			TotalValue: agg.sum,
		})
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, resp, countsCacheTTL)
	}

	return resp, nil
}

// InvalidateCounts drops all cached stage-count summaries. Called by
// the cron refresh job.
func (s *Service) InvalidateCounts(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeletePattern(ctx, "board:counts:*")
}

func countsCacheKey(p access.Principal) string {
	if p.Role == access.RoleAgent {
		return fmt.Sprintf("board:counts:agent:%d", p.ID)
	}
	return "board:counts:all"
}

func leadSummary(l *ent.Lead) models.LeadSummary {
	return models.LeadSummary{
		ID:               l.ID,
		Name:             l.Name,
		Email:            l.Email,
		Phone:            l.Phone,
		Source:           l.Source,
		AssignedAgentID:  l.AssignedAgentID,
		IsExclusive:      l.IsExclusive,
		CurrentStageID:   l.CurrentStageID,
		CurrentStageName: l.CurrentStageName,
	}
}

func propertySummary(prop *ent.Property) *models.PropertySummary {
	return &models.PropertySummary{
		ID:           prop.ID,
		Title:        prop.Title,
		Address:      prop.Address,
		City:         prop.City,
		PropertyType: string(prop.PropertyType),
		Price:        prop.Price,
	}
}
