// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "opportunity_id", Type: field.TypeInt, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"stage_change", "note", "lead_created", "assignment"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by_id", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activities_leads_activities",
				Columns:    []*schema.Column{ActivitiesColumns[7]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_activity_lead_time",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[7], ActivitiesColumns[6]},
			},
			{
				Name:    "idx_activity_type_time",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[2], ActivitiesColumns[6]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "assigned_agent_id", Type: field.TypeInt, Default: 0},
		{Name: "is_exclusive", Type: field.TypeBool, Default: false},
		{Name: "current_stage_id", Type: field.TypeString, Nullable: true},
		{Name: "current_stage_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[5]},
			},
			{
				Name:    "lead_current_stage_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[7]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9]},
			},
		},
	}
	// OpportunitiesColumns holds the columns for the "opportunities" table.
	OpportunitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "previous_stage_id", Type: field.TypeString, Nullable: true},
		{Name: "stage_entered_at", Type: field.TypeTime},
		{Name: "assigned_agent_id", Type: field.TypeInt, Default: 0},
		{Name: "is_exclusive", Type: field.TypeBool, Default: false},
		{Name: "expected_value", Type: field.TypeFloat64, Default: 0},
		{Name: "expected_close_date", Type: field.TypeTime, Nullable: true},
		{Name: "outcome", Type: field.TypeEnum, Nullable: true, Enums: []string{"won", "lost"}},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
	}
	// OpportunitiesTable holds the schema information for the "opportunities" table.
	OpportunitiesTable = &schema.Table{
		Name:       "opportunities",
		Columns:    OpportunitiesColumns,
		PrimaryKey: []*schema.Column{OpportunitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "opportunities_leads_opportunities",
				Columns:    []*schema.Column{OpportunitiesColumns[13]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_opportunity_stage_updated",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[1], OpportunitiesColumns[12]},
			},
			{
				Name:    "idx_opportunity_agent",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[4]},
			},
			{
				Name:    "idx_opportunity_lead",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[13]},
			},
		},
	}
	// PipelineConfigsColumns holds the columns for the "pipeline_configs" table.
	PipelineConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "stages", Type: field.TypeJSON},
		{Name: "default_stage_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "updated_by_id", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelineConfigsTable holds the schema information for the "pipeline_configs" table.
	PipelineConfigsTable = &schema.Table{
		Name:       "pipeline_configs",
		Columns:    PipelineConfigsColumns,
		PrimaryKey: []*schema.Column{PipelineConfigsColumns[0]},
	}
	// PropertiesColumns holds the columns for the "properties" table.
	PropertiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "property_type", Type: field.TypeEnum, Enums: []string{"house", "apartment", "land", "commercial"}, Default: "house"},
		{Name: "price", Type: field.TypeFloat64, Default: 0},
		{Name: "bedrooms", Type: field.TypeInt, Default: 0},
		{Name: "area_sqm", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "lead_property", Type: field.TypeInt, Unique: true, Nullable: true},
	}
	// PropertiesTable holds the schema information for the "properties" table.
	PropertiesTable = &schema.Table{
		Name:       "properties",
		Columns:    PropertiesColumns,
		PrimaryKey: []*schema.Column{PropertiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "properties_leads_property",
				Columns:    []*schema.Column{PropertiesColumns[10]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "property_city",
				Unique:  false,
				Columns: []*schema.Column{PropertiesColumns[3]},
			},
			{
				Name:    "property_property_type",
				Unique:  false,
				Columns: []*schema.Column{PropertiesColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "staff", "agent"}, Default: "agent"},
		{Name: "has_exclusive_access", Type: field.TypeBool, Default: false},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// WebhooksColumns holds the columns for the "webhooks" table.
	WebhooksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "url", Type: field.TypeString},
		{Name: "events", Type: field.TypeJSON},
		{Name: "secret", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WebhooksTable holds the schema information for the "webhooks" table.
	WebhooksTable = &schema.Table{
		Name:       "webhooks",
		Columns:    WebhooksColumns,
		PrimaryKey: []*schema.Column{WebhooksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhook_user_id",
				Unique:  false,
				Columns: []*schema.Column{WebhooksColumns[1]},
			},
			{
				Name:    "webhook_active",
				Unique:  false,
				Columns: []*schema.Column{WebhooksColumns[6]},
			},
		},
	}
	// UserLinkedAgentsColumns holds the columns for the "user_linked_agents" table.
	UserLinkedAgentsColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeInt},
		{Name: "linked_agent_id", Type: field.TypeInt},
	}
	// UserLinkedAgentsTable holds the schema information for the "user_linked_agents" table.
	UserLinkedAgentsTable = &schema.Table{
		Name:       "user_linked_agents",
		Columns:    UserLinkedAgentsColumns,
		PrimaryKey: []*schema.Column{UserLinkedAgentsColumns[0], UserLinkedAgentsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_linked_agents_user_id",
				Columns:    []*schema.Column{UserLinkedAgentsColumns[0]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "user_linked_agents_linked_agent_id",
				Columns:    []*schema.Column{UserLinkedAgentsColumns[1]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		LeadsTable,
		OpportunitiesTable,
		PipelineConfigsTable,
		PropertiesTable,
		UsersTable,
		WebhooksTable,
		UserLinkedAgentsTable,
	}
)

func init() {
	ActivitiesTable.ForeignKeys[0].RefTable = LeadsTable
	OpportunitiesTable.ForeignKeys[0].RefTable = LeadsTable
	PropertiesTable.ForeignKeys[0].RefTable = LeadsTable
	UserLinkedAgentsTable.ForeignKeys[0].RefTable = UsersTable
	UserLinkedAgentsTable.ForeignKeys[1].RefTable = UsersTable
}
