package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one climbing session document, owned by a single user.
type Session struct {
	ent.Schema
}

// ClimbRecord is the serialized form of one climb attempt. The store has no
// partial-delete primitive for the list; climb removal round-trips the whole
// slice through an overwrite.
type ClimbRecord struct {
	Grade      string    `json:"grade"`
	Outcome    string    `json:"outcome"`
	Style      string    `json:"style"`
	Difficulty string    `json:"difficulty"`
	Tags       []string  `json:"tags,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	LoggedAt   time.Time `json:"logged_at"`
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Opaque anonymous user identity"),
		field.String("gym").
			NotEmpty().
			Immutable().
			Comment("Facility name, set at session start"),
		field.String("discipline").
			NotEmpty().
			Immutable().
			Comment("boulder or rope"),
		field.Time("start_time").
			Immutable(),
		field.Time("end_time").
			Optional().
			Nillable().
			Comment("Set exactly once, at session end"),
		field.Int("duration_minutes").
			Default(0).
			Comment("Elapsed whole minutes, floored (on end only)"),
		field.JSON("climbs", []ClimbRecord{}).
			Optional().
			Comment("Insertion-ordered climb attempts"),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "start_time"),
	}
}
