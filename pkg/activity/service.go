// Package activity reads and appends the per-lead event ledger.
// Entries are append-only: nothing in this package updates or deletes.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/casaflow/casaflow/ent"
	entactivity "github.com/casaflow/casaflow/ent/activity"
	"github.com/casaflow/casaflow/pkg/models"
)

// Service handles the activity ledger.
type Service struct {
	db *ent.Client
}

// NewService creates a new activity service.
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Entry describes one event to append.
type Entry struct {
	LeadID        int
	OpportunityID int
	Type          entactivity.Type
	Content       string
	Metadata      map[string]interface{}
	CreatedByID   int
}

// Append writes one ledger entry.
func (s *Service) Append(ctx context.Context, e Entry) (*ent.Activity, error) {
	create := s.db.Activity.Create().
		SetLeadID(e.LeadID).
		SetType(e.Type).
		SetContent(e.Content).
		SetCreatedByID(e.CreatedByID)

	if e.OpportunityID != 0 {
		create = create.SetOpportunityID(e.OpportunityID)
	}
	if e.Metadata != nil {
		create = create.SetMetadata(e.Metadata)
	}

	a, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append activity: %w", err)
	}
	return a, nil
}

// ListByLead returns a lead's timeline, newest first.
func (s *Service) ListByLead(ctx context.Context, leadID, limit int) (*models.ActivityListResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := s.db.Activity.Query().
		Where(entactivity.LeadID(leadID)).
		Order(ent.Desc(entactivity.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	resp := &models.ActivityListResponse{Data: make([]models.ActivityResponse, 0, len(rows))}
	for _, a := range rows {
		resp.Data = append(resp.Data, ToResponse(a))
	}
	return resp, nil
}

// ToResponse converts an activity entity into its API shape.
func ToResponse(a *ent.Activity) models.ActivityResponse {
	return models.ActivityResponse{
		ID:            a.ID,
		LeadID:        a.LeadID,
		OpportunityID: a.OpportunityID,
		Type:          string(a.Type),
		Content:       a.Content,
		Metadata:      a.Metadata,
		CreatedByID:   a.CreatedByID,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}
