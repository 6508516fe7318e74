// Package opportunity implements the stage transition engine: the only
// code path allowed to move an opportunity between pipeline stages.
package opportunity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/casaflow/casaflow/ent"
	entactivity "github.com/casaflow/casaflow/ent/activity"
	entopportunity "github.com/casaflow/casaflow/ent/opportunity"
	entuser "github.com/casaflow/casaflow/ent/user"
	"github.com/casaflow/casaflow/pkg/access"
	"github.com/casaflow/casaflow/pkg/email"
	"github.com/casaflow/casaflow/pkg/models"
	"github.com/casaflow/casaflow/pkg/pipeline"
	"github.com/casaflow/casaflow/pkg/webhook"
)

// Sentinel errors, mapped to HTTP status codes by the API layer.
var (
	ErrNotFound     = errors.New("opportunity not found")
	ErrLeadNotFound = errors.New("lead not found")
	ErrForbidden    = errors.New("access to this opportunity is denied")
	ErrInvalidStage = errors.New("target stage does not exist in the pipeline")
	ErrConflict     = errors.New("opportunity was modified concurrently, please retry")
)

// Service is the stage transition engine.
type Service struct {
	db       *ent.Client
	pipeline *pipeline.Service
	webhooks *webhook.Service
	email    *email.Service
}

// NewService creates a new transition engine. webhooks may be nil.
func NewService(db *ent.Client, pipelineService *pipeline.Service, webhooks *webhook.Service) *Service {
	return &Service{db: db, pipeline: pipelineService, webhooks: webhooks}
}

// SetEmailNotifier enables agent notifications for closed opportunities.
func (s *Service) SetEmailNotifier(e *email.Service) {
	s.email = e
}

// MoveResult is the outcome of a move request.
type MoveResult struct {
	Opportunity *ent.Opportunity
	// AlreadyInStage marks the idempotent no-op: the opportunity was
	// already in the requested stage, nothing was written.
	AlreadyInStage bool
	ToStage        models.Stage
}

// Move validates and executes a transition of one opportunity into the
// target stage. Any stage may move to any other stage, including
// backward; the same stage is an idempotent no-op. The opportunity
// update, the lead mirror fields and the audit activity are committed
// in one transaction.
func (s *Service) Move(ctx context.Context, p access.Principal, opportunityID int, toStageID, note string) (*MoveResult, error) {
	opp, err := s.db.Opportunity.Get(ctx, opportunityID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch opportunity: %w", err)
	}

	// A missing lead under an existing opportunity is a data-integrity
	// fault, surfaced as not-found rather than repaired here.
	l, err := s.db.Lead.Get(ctx, opp.LeadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	allowed, err := s.checkAccess(ctx, p, l.AssignedAgentID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}

	cfg, err := s.pipeline.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	toStage, ok := pipeline.ResolveStage(cfg, toStageID)
	if !ok {
		return nil, ErrInvalidStage
	}

	// Best effort: the recorded stage may no longer exist if the config
	// changed underneath the opportunity. The move still proceeds, the
	// audit text just falls back to "Unknown".
	fromName := "Unknown"
	if fromStage, ok := pipeline.ResolveStage(cfg, opp.StageID); ok {
		fromName = fromStage.Name
	}

	// Idempotence short-circuit: a repeated move into the current stage
	// must not reset stage_entered_at or duplicate audit history.
	if opp.StageID == toStageID {
		return &MoveResult{Opportunity: opp, AlreadyInStage: true, ToStage: toStage}, nil
	}

	updated, err := s.apply(ctx, p, opp, l, toStage, fromName, note)
	if err != nil {
		return nil, err
	}

	s.notify(updated, l, toStage, fromName)

	return &MoveResult{Opportunity: updated, ToStage: toStage}, nil
}

// checkAccess evaluates the access policy, fetching the linked-agent
// roster for staff principals.
func (s *Service) checkAccess(ctx context.Context, p access.Principal, leadOwnerAgentID int) (bool, error) {
	var roster []int
	if p.Role == access.RoleStaff {
		ids, err := s.db.User.Query().
			Where(entuser.ID(p.ID)).
			QueryLinkedAgents().
			IDs(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to fetch linked agents: %w", err)
		}
		roster = ids
	}
	return access.CanAccessOpportunity(p, leadOwnerAgentID, roster), nil
}

// apply performs the transactional write: opportunity fields, lead
// mirror fields and the activity record succeed or fail together. The
// opportunity write is guarded by its version token; a concurrent move
// that committed first makes this one fail with ErrConflict instead of
// silently winning.
func (s *Service) apply(ctx context.Context, p access.Principal, opp *ent.Opportunity, l *ent.Lead, toStage models.Stage, fromName, note string) (*ent.Opportunity, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	now := time.Now()

	upd := tx.Opportunity.Update().
		Where(
			entopportunity.ID(opp.ID),
			entopportunity.Version(opp.Version),
		).
		SetPreviousStageID(opp.StageID).
		SetStageID(toStage.ID).
		SetStageEnteredAt(now).
		SetUpdatedAt(now).
		AddVersion(1)

	if toStage.IsTerminal {
		outcome := toStage.TerminalType
		if outcome == "" {
			outcome = "won"
		}
		upd.SetOutcome(entopportunity.Outcome(outcome)).SetClosedAt(now)
	} else if opp.Outcome != nil {
		// Leaving a terminal stage reopens the opportunity; stale
		// won/lost labels are cleared rather than left behind.
		upd.ClearOutcome().ClearClosedAt()
	}

	n, err := upd.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}
	if n == 0 {
		tx.Rollback()
		return nil, ErrConflict
	}

	_, err = tx.Lead.UpdateOneID(l.ID).
		SetCurrentStageID(toStage.ID).
		SetCurrentStageName(toStage.Name).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update lead mirror fields: %w", err)
	}

	content := fmt.Sprintf("Moved from %s to %s", fromName, toStage.Name)
	if note != "" {
		content = note
	}

	_, err = tx.Activity.Create().
		SetLeadID(l.ID).
		SetOpportunityID(opp.ID).
		SetType(entactivity.TypeStageChange).
		SetContent(content).
		SetMetadata(map[string]interface{}{
			"from_stage_id":   opp.StageID,
			"from_stage_name": fromName,
			"to_stage_id":     toStage.ID,
			"to_stage_name":   toStage.Name,
		}).
		SetCreatedByID(p.ID).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	updated, err := tx.Opportunity.Get(ctx, opp.ID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to reload opportunity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit move: %w", err)
	}

	return updated, nil
}

// notify fires outbound webhooks and agent emails after a committed move.
func (s *Service) notify(opp *ent.Opportunity, l *ent.Lead, toStage models.Stage, fromName string) {
	closed := toStage.IsTerminal && opp.Outcome != nil

	if s.webhooks != nil {
		data := map[string]interface{}{
			"opportunity_id":  opp.ID,
			"lead_id":         l.ID,
			"lead_name":       l.Name,
			"from_stage_name": fromName,
			"to_stage_id":     toStage.ID,
			"to_stage_name":   toStage.Name,
		}
		s.webhooks.DispatchAsync(webhook.EventStageChanged, data)

		if closed {
			data["outcome"] = string(*opp.Outcome)
			s.webhooks.DispatchAsync(webhook.EventClosed, data)
		}
	}

	if s.email != nil && closed && opp.AssignedAgentID != 0 {
		outcome := string(*opp.Outcome)
		agentID := opp.AssignedAgentID
		leadName := l.Name
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			agent, err := s.db.User.Get(ctx, agentID)
			if err != nil {
				return
			}
			_ = s.email.SendOpportunityClosed(agent.Email, agent.Name, leadName, outcome)
		}()
	}
}

// ToResponse converts an opportunity entity into its API shape.
func ToResponse(o *ent.Opportunity) models.OpportunityResponse {
	resp := models.OpportunityResponse{
		ID:              o.ID,
		LeadID:          o.LeadID,
		StageID:         o.StageID,
		StageEnteredAt:  o.StageEnteredAt.Format(time.RFC3339),
		AssignedAgentID: o.AssignedAgentID,
		IsExclusive:     o.IsExclusive,
		ExpectedValue:   o.ExpectedValue,
		Version:         o.Version,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
	}
	if o.PreviousStageID != nil {
		resp.PreviousStageID = o.PreviousStageID
	}
	if o.ExpectedCloseDate != nil {
		v := o.ExpectedCloseDate.Format(time.RFC3339)
		resp.ExpectedCloseDate = &v
	}
	if o.Outcome != nil {
		v := string(*o.Outcome)
		resp.Outcome = &v
	}
	if o.ClosedAt != nil {
		v := o.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &v
	}
	return resp
}
