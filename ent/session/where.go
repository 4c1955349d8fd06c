// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cruxlog/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// Gym applies equality check predicate on the "gym" field. It's identical to GymEQ.
func Gym(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldGym, v))
}

// Discipline applies equality check predicate on the "discipline" field. It's identical to DisciplineEQ.
func Discipline(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDiscipline, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndTime, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDurationMinutes, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUserID, v))
}

// GymEQ applies the EQ predicate on the "gym" field.
func GymEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldGym, v))
}

// GymNEQ applies the NEQ predicate on the "gym" field.
func GymNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldGym, v))
}

// GymIn applies the In predicate on the "gym" field.
func GymIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldGym, vs...))
}

// GymNotIn applies the NotIn predicate on the "gym" field.
func GymNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldGym, vs...))
}

// GymGT applies the GT predicate on the "gym" field.
func GymGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldGym, v))
}

// GymGTE applies the GTE predicate on the "gym" field.
func GymGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldGym, v))
}

// GymLT applies the LT predicate on the "gym" field.
func GymLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldGym, v))
}

// GymLTE applies the LTE predicate on the "gym" field.
func GymLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldGym, v))
}

// GymContains applies the Contains predicate on the "gym" field.
func GymContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldGym, v))
}

// GymHasPrefix applies the HasPrefix predicate on the "gym" field.
func GymHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldGym, v))
}

// GymHasSuffix applies the HasSuffix predicate on the "gym" field.
func GymHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldGym, v))
}

// GymEqualFold applies the EqualFold predicate on the "gym" field.
func GymEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldGym, v))
}

// GymContainsFold applies the ContainsFold predicate on the "gym" field.
func GymContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldGym, v))
}

// DisciplineEQ applies the EQ predicate on the "discipline" field.
func DisciplineEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDiscipline, v))
}

// DisciplineNEQ applies the NEQ predicate on the "discipline" field.
func DisciplineNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDiscipline, v))
}

// DisciplineIn applies the In predicate on the "discipline" field.
func DisciplineIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDiscipline, vs...))
}

// DisciplineNotIn applies the NotIn predicate on the "discipline" field.
func DisciplineNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDiscipline, vs...))
}

// DisciplineGT applies the GT predicate on the "discipline" field.
func DisciplineGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDiscipline, v))
}

// DisciplineGTE applies the GTE predicate on the "discipline" field.
func DisciplineGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDiscipline, v))
}

// DisciplineLT applies the LT predicate on the "discipline" field.
func DisciplineLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDiscipline, v))
}

// DisciplineLTE applies the LTE predicate on the "discipline" field.
func DisciplineLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDiscipline, v))
}

// DisciplineContains applies the Contains predicate on the "discipline" field.
func DisciplineContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldDiscipline, v))
}

// DisciplineHasPrefix applies the HasPrefix predicate on the "discipline" field.
func DisciplineHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldDiscipline, v))
}

// DisciplineHasSuffix applies the HasSuffix predicate on the "discipline" field.
func DisciplineHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldDiscipline, v))
}

// DisciplineEqualFold applies the EqualFold predicate on the "discipline" field.
func DisciplineEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldDiscipline, v))
}

// DisciplineContainsFold applies the ContainsFold predicate on the "discipline" field.
func DisciplineContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldDiscipline, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndTime))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDurationMinutes, v))
}

// ClimbsIsNil applies the IsNil predicate on the "climbs" field.
func ClimbsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldClimbs))
}

// ClimbsNotNil applies the NotNil predicate on the "climbs" field.
func ClimbsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldClimbs))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
