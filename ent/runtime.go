// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/casaflow/casaflow/ent/activity"
	"github.com/casaflow/casaflow/ent/lead"
	"github.com/casaflow/casaflow/ent/opportunity"
	"github.com/casaflow/casaflow/ent/pipelineconfig"
	"github.com/casaflow/casaflow/ent/property"
	"github.com/casaflow/casaflow/ent/schema"
	"github.com/casaflow/casaflow/ent/user"
	"github.com/casaflow/casaflow/ent/webhook"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescLeadID is the schema descriptor for lead_id field.
	activityDescLeadID := activityFields[0].Descriptor()
	// activity.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	activity.LeadIDValidator = activityDescLeadID.Validators[0].(func(int) error)
	// activityDescContent is the schema descriptor for content field.
	activityDescContent := activityFields[3].Descriptor()
	// activity.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	activity.ContentValidator = activityDescContent.Validators[0].(func(string) error)
	// activityDescCreatedByID is the schema descriptor for created_by_id field.
	activityDescCreatedByID := activityFields[5].Descriptor()
	// activity.DefaultCreatedByID holds the default value on creation for the created_by_id field.
	activity.DefaultCreatedByID = activityDescCreatedByID.Default.(int)
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[6].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[0].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescAssignedAgentID is the schema descriptor for assigned_agent_id field.
	leadDescAssignedAgentID := leadFields[4].Descriptor()
	// lead.DefaultAssignedAgentID holds the default value on creation for the assigned_agent_id field.
	lead.DefaultAssignedAgentID = leadDescAssignedAgentID.Default.(int)
	// leadDescIsExclusive is the schema descriptor for is_exclusive field.
	leadDescIsExclusive := leadFields[5].Descriptor()
	// lead.DefaultIsExclusive holds the default value on creation for the is_exclusive field.
	lead.DefaultIsExclusive = leadDescIsExclusive.Default.(bool)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[8].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[9].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	opportunityFields := schema.Opportunity{}.Fields()
	_ = opportunityFields
	// opportunityDescLeadID is the schema descriptor for lead_id field.
	opportunityDescLeadID := opportunityFields[0].Descriptor()
	// opportunity.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	opportunity.LeadIDValidator = opportunityDescLeadID.Validators[0].(func(int) error)
	// opportunityDescStageID is the schema descriptor for stage_id field.
	opportunityDescStageID := opportunityFields[1].Descriptor()
	// opportunity.StageIDValidator is a validator for the "stage_id" field. It is called by the builders before save.
	opportunity.StageIDValidator = opportunityDescStageID.Validators[0].(func(string) error)
	// opportunityDescStageEnteredAt is the schema descriptor for stage_entered_at field.
	opportunityDescStageEnteredAt := opportunityFields[3].Descriptor()
	// opportunity.DefaultStageEnteredAt holds the default value on creation for the stage_entered_at field.
	opportunity.DefaultStageEnteredAt = opportunityDescStageEnteredAt.Default.(func() time.Time)
	// opportunityDescAssignedAgentID is the schema descriptor for assigned_agent_id field.
	opportunityDescAssignedAgentID := opportunityFields[4].Descriptor()
	// opportunity.DefaultAssignedAgentID holds the default value on creation for the assigned_agent_id field.
	opportunity.DefaultAssignedAgentID = opportunityDescAssignedAgentID.Default.(int)
	// opportunityDescIsExclusive is the schema descriptor for is_exclusive field.
	opportunityDescIsExclusive := opportunityFields[5].Descriptor()
	// opportunity.DefaultIsExclusive holds the default value on creation for the is_exclusive field.
	opportunity.DefaultIsExclusive = opportunityDescIsExclusive.Default.(bool)
	// opportunityDescExpectedValue is the schema descriptor for expected_value field.
	opportunityDescExpectedValue := opportunityFields[6].Descriptor()
	// opportunity.DefaultExpectedValue holds the default value on creation for the expected_value field.
	opportunity.DefaultExpectedValue = opportunityDescExpectedValue.Default.(float64)
	// opportunityDescVersion is the schema descriptor for version field.
	opportunityDescVersion := opportunityFields[10].Descriptor()
	// opportunity.DefaultVersion holds the default value on creation for the version field.
	opportunity.DefaultVersion = opportunityDescVersion.Default.(int)
	// opportunityDescCreatedAt is the schema descriptor for created_at field.
	opportunityDescCreatedAt := opportunityFields[11].Descriptor()
	// opportunity.DefaultCreatedAt holds the default value on creation for the created_at field.
	opportunity.DefaultCreatedAt = opportunityDescCreatedAt.Default.(func() time.Time)
	// opportunityDescUpdatedAt is the schema descriptor for updated_at field.
	opportunityDescUpdatedAt := opportunityFields[12].Descriptor()
	// opportunity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	opportunity.DefaultUpdatedAt = opportunityDescUpdatedAt.Default.(func() time.Time)
	// opportunity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	opportunity.UpdateDefaultUpdatedAt = opportunityDescUpdatedAt.UpdateDefault.(func() time.Time)
	pipelineconfigFields := schema.PipelineConfig{}.Fields()
	_ = pipelineconfigFields
	// pipelineconfigDescDefaultStageID is the schema descriptor for default_stage_id field.
	pipelineconfigDescDefaultStageID := pipelineconfigFields[2].Descriptor()
	// pipelineconfig.DefaultStageIDValidator is a validator for the "default_stage_id" field. It is called by the builders before save.
	pipelineconfig.DefaultStageIDValidator = pipelineconfigDescDefaultStageID.Validators[0].(func(string) error)
	// pipelineconfigDescVersion is the schema descriptor for version field.
	pipelineconfigDescVersion := pipelineconfigFields[3].Descriptor()
	// pipelineconfig.DefaultVersion holds the default value on creation for the version field.
	pipelineconfig.DefaultVersion = pipelineconfigDescVersion.Default.(int)
	// pipelineconfigDescUpdatedByID is the schema descriptor for updated_by_id field.
	pipelineconfigDescUpdatedByID := pipelineconfigFields[4].Descriptor()
	// pipelineconfig.DefaultUpdatedByID holds the default value on creation for the updated_by_id field.
	pipelineconfig.DefaultUpdatedByID = pipelineconfigDescUpdatedByID.Default.(int)
	// pipelineconfigDescCreatedAt is the schema descriptor for created_at field.
	pipelineconfigDescCreatedAt := pipelineconfigFields[5].Descriptor()
	// pipelineconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelineconfig.DefaultCreatedAt = pipelineconfigDescCreatedAt.Default.(func() time.Time)
	// pipelineconfigDescUpdatedAt is the schema descriptor for updated_at field.
	pipelineconfigDescUpdatedAt := pipelineconfigFields[6].Descriptor()
	// pipelineconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelineconfig.DefaultUpdatedAt = pipelineconfigDescUpdatedAt.Default.(func() time.Time)
	// pipelineconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelineconfig.UpdateDefaultUpdatedAt = pipelineconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	propertyFields := schema.Property{}.Fields()
	_ = propertyFields
	// propertyDescTitle is the schema descriptor for title field.
	propertyDescTitle := propertyFields[0].Descriptor()
	// property.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	property.TitleValidator = propertyDescTitle.Validators[0].(func(string) error)
	// propertyDescPrice is the schema descriptor for price field.
	propertyDescPrice := propertyFields[4].Descriptor()
	// property.DefaultPrice holds the default value on creation for the price field.
	property.DefaultPrice = propertyDescPrice.Default.(float64)
	// propertyDescBedrooms is the schema descriptor for bedrooms field.
	propertyDescBedrooms := propertyFields[5].Descriptor()
	// property.DefaultBedrooms holds the default value on creation for the bedrooms field.
	property.DefaultBedrooms = propertyDescBedrooms.Default.(int)
	// propertyDescAreaSqm is the schema descriptor for area_sqm field.
	propertyDescAreaSqm := propertyFields[6].Descriptor()
	// property.DefaultAreaSqm holds the default value on creation for the area_sqm field.
	property.DefaultAreaSqm = propertyDescAreaSqm.Default.(float64)
	// propertyDescCreatedAt is the schema descriptor for created_at field.
	propertyDescCreatedAt := propertyFields[7].Descriptor()
	// property.DefaultCreatedAt holds the default value on creation for the created_at field.
	property.DefaultCreatedAt = propertyDescCreatedAt.Default.(func() time.Time)
	// propertyDescUpdatedAt is the schema descriptor for updated_at field.
	propertyDescUpdatedAt := propertyFields[8].Descriptor()
	// property.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	property.DefaultUpdatedAt = propertyDescUpdatedAt.Default.(func() time.Time)
	// property.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	property.UpdateDefaultUpdatedAt = propertyDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescHasExclusiveAccess is the schema descriptor for has_exclusive_access field.
	userDescHasExclusiveAccess := userFields[4].Descriptor()
	// user.DefaultHasExclusiveAccess holds the default value on creation for the has_exclusive_access field.
	user.DefaultHasExclusiveAccess = userDescHasExclusiveAccess.Default.(bool)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[6].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookFields := schema.Webhook{}.Fields()
	_ = webhookFields
	// webhookDescUserID is the schema descriptor for user_id field.
	webhookDescUserID := webhookFields[0].Descriptor()
	// webhook.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	webhook.UserIDValidator = webhookDescUserID.Validators[0].(func(int) error)
	// webhookDescURL is the schema descriptor for url field.
	webhookDescURL := webhookFields[1].Descriptor()
	// webhook.URLValidator is a validator for the "url" field. It is called by the builders before save.
	webhook.URLValidator = webhookDescURL.Validators[0].(func(string) error)
	// webhookDescSecret is the schema descriptor for secret field.
	webhookDescSecret := webhookFields[3].Descriptor()
	// webhook.SecretValidator is a validator for the "secret" field. It is called by the builders before save.
	webhook.SecretValidator = webhookDescSecret.Validators[0].(func(string) error)
	// webhookDescActive is the schema descriptor for active field.
	webhookDescActive := webhookFields[5].Descriptor()
	// webhook.DefaultActive holds the default value on creation for the active field.
	webhook.DefaultActive = webhookDescActive.Default.(bool)
	// webhookDescCreatedAt is the schema descriptor for created_at field.
	webhookDescCreatedAt := webhookFields[6].Descriptor()
	// webhook.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhook.DefaultCreatedAt = webhookDescCreatedAt.Default.(func() time.Time)
	// webhookDescUpdatedAt is the schema descriptor for updated_at field.
	webhookDescUpdatedAt := webhookFields[7].Descriptor()
	// webhook.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhook.DefaultUpdatedAt = webhookDescUpdatedAt.Default.(func() time.Time)
	// webhook.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhook.UpdateDefaultUpdatedAt = webhookDescUpdatedAt.UpdateDefault.(func() time.Time)
}
