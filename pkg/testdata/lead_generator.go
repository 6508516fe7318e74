// Package testdata generates realistic fake leads, properties and
// opportunities for seeding and local development.
package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/casaflow/casaflow/ent"
	entopportunity "github.com/casaflow/casaflow/ent/opportunity"
	"github.com/casaflow/casaflow/ent/property"
	"github.com/casaflow/casaflow/pkg/models"
	"github.com/casaflow/casaflow/pkg/pipeline"
)

// GeneratorConfig configures lead generation parameters
type GeneratorConfig struct {
	Count          int
	AgentIDs       []int   // round-robin assignment targets, may be empty
	EmailChance    float64 // 0.0-1.0 (probability of having email)
	PhoneChance    float64
	PropertyChance float64
	ExclusiveRate  float64
}

// DefaultGeneratorConfig returns sensible defaults for local seeding
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Count:          50,
		EmailChance:    0.9,
		PhoneChance:    0.95,
		PropertyChance: 0.6,
		ExclusiveRate:  0.2,
	}
}

var leadSources = []string{
	"website", "referral", "portal", "walk-in", "phone", "social",
}

var propertyTypes = []property.PropertyType{
	property.PropertyTypeHouse,
	property.PropertyTypeApartment,
	property.PropertyTypeLand,
	property.PropertyTypeCommercial,
}

// GenerateLeads creates leads with opportunities spread across the
// given pipeline stages. Every lead gets exactly one opportunity.
func GenerateLeads(ctx context.Context, client *ent.Client, cfg GeneratorConfig, pipelineCfg models.PipelineConfig) (int, error) {
	created := 0

	for i := 0; i < cfg.Count; i++ {
		agentID := 0
		if len(cfg.AgentIDs) > 0 {
			agentID = cfg.AgentIDs[i%len(cfg.AgentIDs)]
		}

		stage := pickStage(pipelineCfg)
		exclusive := rand.Float64() < cfg.ExclusiveRate

		leadCreate := client.Lead.Create().
			SetName(gofakeit.Name()).
			SetSource(leadSources[rand.Intn(len(leadSources))]).
			SetAssignedAgentID(agentID).
			SetIsExclusive(exclusive).
			SetCurrentStageID(stage.ID).
			SetCurrentStageName(stage.Name)

		if rand.Float64() < cfg.EmailChance {
			leadCreate = leadCreate.SetEmail(strings.ToLower(gofakeit.Email()))
		}
		if rand.Float64() < cfg.PhoneChance {
			leadCreate = leadCreate.SetPhone(gofakeit.Phone())
		}

		l, err := leadCreate.Save(ctx)
		if err != nil {
			return created, fmt.Errorf("failed to create lead: %w", err)
		}

		if rand.Float64() < cfg.PropertyChance {
			pt := propertyTypes[rand.Intn(len(propertyTypes))]
			_, err = client.Property.Create().
				SetTitle(fmt.Sprintf("%s in %s", gofakeit.RandomString([]string{"Cozy house", "Modern apartment", "Bright flat", "Spacious villa", "Building plot"}), gofakeit.City())).
				SetAddress(gofakeit.Street()).
				SetCity(gofakeit.City()).
				SetPropertyType(pt).
				SetPrice(float64(gofakeit.Number(80_000, 900_000))).
				SetBedrooms(gofakeit.Number(1, 6)).
				SetAreaSqm(float64(gofakeit.Number(40, 450))).
				SetLeadID(l.ID).
				Save(ctx)
			if err != nil {
				return created, fmt.Errorf("failed to create property: %w", err)
			}
		}

		oppCreate := client.Opportunity.Create().
			SetLeadID(l.ID).
			SetStageID(stage.ID).
			SetAssignedAgentID(agentID).
			SetIsExclusive(exclusive).
			SetExpectedValue(float64(gofakeit.Number(50_000, 800_000)))

		if stage.IsTerminal {
			outcome := stage.TerminalType
			if outcome == "" {
				outcome = "won"
			}
			oppCreate = oppCreate.
				SetOutcome(entopportunity.Outcome(outcome)).
				SetClosedAt(time.Now().AddDate(0, 0, -rand.Intn(60)))
		}

		if _, err := oppCreate.Save(ctx); err != nil {
			return created, fmt.Errorf("failed to create opportunity: %w", err)
		}

		created++
	}

	return created, nil
}

// pickStage weights early stages heavier, closed ones lighter.
func pickStage(cfg models.PipelineConfig) models.Stage {
	if len(cfg.Stages) == 0 {
		cfg = pipeline.DefaultConfig()
	}

	if rand.Float64() < 0.15 {
		// Occasionally land in a terminal stage
		var terminal []models.Stage
		for _, st := range cfg.Stages {
			if st.IsTerminal {
				terminal = append(terminal, st)
			}
		}
		if len(terminal) > 0 {
			return terminal[rand.Intn(len(terminal))]
		}
	}

	var open []models.Stage
	for _, st := range cfg.Stages {
		if !st.IsTerminal {
			open = append(open, st)
		}
	}
	if len(open) == 0 {
		return cfg.Stages[0]
	}
	return open[rand.Intn(len(open))]
}
