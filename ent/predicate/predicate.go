// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Opportunity is the predicate function for opportunity builders.
type Opportunity func(*sql.Selector)

// PipelineConfig is the predicate function for pipelineconfig builders.
type PipelineConfig func(*sql.Selector)

// Property is the predicate function for property builders.
type Property func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Webhook is the predicate function for webhook builders.
type Webhook func(*sql.Selector)
