// Code generated by ent, DO NOT EDIT.

package pipelineconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/casaflow/casaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLTE(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldKey, v))
}

// DefaultStageID applies equality check predicate on the "default_stage_id" field. It's identical to DefaultStageIDEQ.
func DefaultStageID(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldDefaultStageID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldVersion, v))
}

// UpdatedByID applies equality check predicate on the "updated_by_id" field. It's identical to UpdatedByIDEQ.
func UpdatedByID(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldUpdatedByID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldContainsFold(FieldKey, v))
}

// DefaultStageIDEQ applies the EQ predicate on the "default_stage_id" field.
func DefaultStageIDEQ(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldDefaultStageID, v))
}

// DefaultStageIDNEQ applies the NEQ predicate on the "default_stage_id" field.
func DefaultStageIDNEQ(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNEQ(FieldDefaultStageID, v))
}

// DefaultStageIDIn applies the In predicate on the "default_stage_id" field.
func DefaultStageIDIn(vs ...string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldIn(FieldDefaultStageID, vs...))
}

// DefaultStageIDNotIn applies the NotIn predicate on the "default_stage_id" field.
func DefaultStageIDNotIn(vs ...string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNotIn(FieldDefaultStageID, vs...))
}

// DefaultStageIDGT applies the GT predicate on the "default_stage_id" field.
func DefaultStageIDGT(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGT(FieldDefaultStageID, v))
}

// DefaultStageIDGTE applies the GTE predicate on the "default_stage_id" field.
func DefaultStageIDGTE(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGTE(FieldDefaultStageID, v))
}

// DefaultStageIDLT applies the LT predicate on the "default_stage_id" field.
func DefaultStageIDLT(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLT(FieldDefaultStageID, v))
}

// DefaultStageIDLTE applies the LTE predicate on the "default_stage_id" field.
func DefaultStageIDLTE(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLTE(FieldDefaultStageID, v))
}

// DefaultStageIDContains applies the Contains predicate on the "default_stage_id" field.
func DefaultStageIDContains(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldContains(FieldDefaultStageID, v))
}

// DefaultStageIDHasPrefix applies the HasPrefix predicate on the "default_stage_id" field.
func DefaultStageIDHasPrefix(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldHasPrefix(FieldDefaultStageID, v))
}

// DefaultStageIDHasSuffix applies the HasSuffix predicate on the "default_stage_id" field.
func DefaultStageIDHasSuffix(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldHasSuffix(FieldDefaultStageID, v))
}

// DefaultStageIDEqualFold applies the EqualFold predicate on the "default_stage_id" field.
func DefaultStageIDEqualFold(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEqualFold(FieldDefaultStageID, v))
}

// DefaultStageIDContainsFold applies the ContainsFold predicate on the "default_stage_id" field.
func DefaultStageIDContainsFold(v string) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldContainsFold(FieldDefaultStageID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLTE(FieldVersion, v))
}

// UpdatedByIDEQ applies the EQ predicate on the "updated_by_id" field.
func UpdatedByIDEQ(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldUpdatedByID, v))
}

// UpdatedByIDNEQ applies the NEQ predicate on the "updated_by_id" field.
func UpdatedByIDNEQ(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNEQ(FieldUpdatedByID, v))
}

// UpdatedByIDIn applies the In predicate on the "updated_by_id" field.
func UpdatedByIDIn(vs ...int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldIn(FieldUpdatedByID, vs...))
}

// UpdatedByIDNotIn applies the NotIn predicate on the "updated_by_id" field.
func UpdatedByIDNotIn(vs ...int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNotIn(FieldUpdatedByID, vs...))
}

// UpdatedByIDGT applies the GT predicate on the "updated_by_id" field.
func UpdatedByIDGT(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGT(FieldUpdatedByID, v))
}

// UpdatedByIDGTE applies the GTE predicate on the "updated_by_id" field.
func UpdatedByIDGTE(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGTE(FieldUpdatedByID, v))
}

// UpdatedByIDLT applies the LT predicate on the "updated_by_id" field.
func UpdatedByIDLT(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLT(FieldUpdatedByID, v))
}

// UpdatedByIDLTE applies the LTE predicate on the "updated_by_id" field.
func UpdatedByIDLTE(v int) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLTE(FieldUpdatedByID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineConfig) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineConfig) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineConfig) predicate.PipelineConfig {
	return predicate.PipelineConfig(sql.NotPredicates(p))
}
