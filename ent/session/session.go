// Code generated by ent, DO NOT EDIT.

package session

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldGym holds the string denoting the gym field in the database.
	FieldGym = "gym"
	// FieldDiscipline holds the string denoting the discipline field in the database.
	FieldDiscipline = "discipline"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldClimbs holds the string denoting the climbs field in the database.
	FieldClimbs = "climbs"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldGym,
	FieldDiscipline,
	FieldStartTime,
	FieldEndTime,
	FieldDurationMinutes,
	FieldClimbs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// GymValidator is a validator for the "gym" field. It is called by the builders before save.
	GymValidator func(string) error
	// DisciplineValidator is a validator for the "discipline" field. It is called by the builders before save.
	DisciplineValidator func(string) error
	// DefaultDurationMinutes holds the default value on creation for the "duration_minutes" field.
	DefaultDurationMinutes int
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByGym orders the results by the gym field.
func ByGym(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGym, opts...).ToFunc()
}

// ByDiscipline orders the results by the discipline field.
func ByDiscipline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscipline, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}
