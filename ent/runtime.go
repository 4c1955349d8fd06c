// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/abhisek/cruxlog/ent/schema"
	"github.com/abhisek/cruxlog/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescUserID is the schema descriptor for user_id field.
	sessionDescUserID := sessionFields[0].Descriptor()
	// session.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	session.UserIDValidator = sessionDescUserID.Validators[0].(func(string) error)
	// sessionDescGym is the schema descriptor for gym field.
	sessionDescGym := sessionFields[1].Descriptor()
	// session.GymValidator is a validator for the "gym" field. It is called by the builders before save.
	session.GymValidator = sessionDescGym.Validators[0].(func(string) error)
	// sessionDescDiscipline is the schema descriptor for discipline field.
	sessionDescDiscipline := sessionFields[2].Descriptor()
	// session.DisciplineValidator is a validator for the "discipline" field. It is called by the builders before save.
	session.DisciplineValidator = sessionDescDiscipline.Validators[0].(func(string) error)
	// sessionDescDurationMinutes is the schema descriptor for duration_minutes field.
	sessionDescDurationMinutes := sessionFields[5].Descriptor()
	// session.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	session.DefaultDurationMinutes = sessionDescDurationMinutes.Default.(int)
}
