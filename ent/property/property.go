// Code generated by ent, DO NOT EDIT.

package property

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the property type in the database.
	Label = "property"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldPropertyType holds the string denoting the property_type field in the database.
	FieldPropertyType = "property_type"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldBedrooms holds the string denoting the bedrooms field in the database.
	FieldBedrooms = "bedrooms"
	// FieldAreaSqm holds the string denoting the area_sqm field in the database.
	FieldAreaSqm = "area_sqm"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLead holds the string denoting the lead edge name in mutations.
	EdgeLead = "lead"
	// Table holds the table name of the property in the database.
	Table = "properties"
	// LeadTable is the table that holds the lead relation/edge.
	LeadTable = "properties"
	// LeadInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadInverseTable = "leads"
	// LeadColumn is the table column denoting the lead relation/edge.
	LeadColumn = "lead_property"
)

// Columns holds all SQL columns for property fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldAddress,
	FieldCity,
	FieldPropertyType,
	FieldPrice,
	FieldBedrooms,
	FieldAreaSqm,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "properties"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"lead_property",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice float64
	// DefaultBedrooms holds the default value on creation for the "bedrooms" field.
	DefaultBedrooms int
	// DefaultAreaSqm holds the default value on creation for the "area_sqm" field.
	DefaultAreaSqm float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// PropertyType defines the type for the "property_type" enum field.
type PropertyType string

// PropertyTypeHouse is the default value of the PropertyType enum.
const DefaultPropertyType = PropertyTypeHouse

// PropertyType values.
const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

func (pt PropertyType) String() string {
	return string(pt)
}

// PropertyTypeValidator is a validator for the "property_type" field enum values. It is called by the builders before save.
func PropertyTypeValidator(pt PropertyType) error {
	switch pt {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeLand, PropertyTypeCommercial:
		return nil
	default:
		return fmt.Errorf("property: invalid enum value for property_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the Property queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByPropertyType orders the results by the property_type field.
func ByPropertyType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyType, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByBedrooms orders the results by the bedrooms field.
func ByBedrooms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBedrooms, opts...).ToFunc()
}

// ByAreaSqm orders the results by the area_sqm field.
func ByAreaSqm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAreaSqm, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLeadField orders the results by lead field.
func ByLeadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadStep(), sql.OrderByField(field, opts...))
	}
}
func newLeadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, LeadTable, LeadColumn),
	)
}
