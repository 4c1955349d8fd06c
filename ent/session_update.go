// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cruxlog/ent/predicate"
	"github.com/abhisek/cruxlog/ent/schema"
	"github.com/abhisek/cruxlog/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SessionUpdate) SetEndTime(v time.Time) *SessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndTime(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *SessionUpdate) ClearEndTime() *SessionUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionUpdate) SetDurationMinutes(v int) *SessionUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDurationMinutes(v *int) *SessionUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionUpdate) AddDurationMinutes(v int) *SessionUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetClimbs sets the "climbs" field.
func (_u *SessionUpdate) SetClimbs(v []schema.ClimbRecord) *SessionUpdate {
	_u.mutation.SetClimbs(v)
	return _u
}

// AppendClimbs appends value to the "climbs" field.
func (_u *SessionUpdate) AppendClimbs(v []schema.ClimbRecord) *SessionUpdate {
	_u.mutation.AppendClimbs(v)
	return _u
}

// ClearClimbs clears the value of the "climbs" field.
func (_u *SessionUpdate) ClearClimbs() *SessionUpdate {
	_u.mutation.ClearClimbs()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(session.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Climbs(); ok {
		_spec.SetField(session.FieldClimbs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClimbs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldClimbs, value)
		})
	}
	if _u.mutation.ClimbsCleared() {
		_spec.ClearField(session.FieldClimbs, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetEndTime sets the "end_time" field.
func (_u *SessionUpdateOne) SetEndTime(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndTime(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *SessionUpdateOne) ClearEndTime() *SessionUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionUpdateOne) SetDurationMinutes(v int) *SessionUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDurationMinutes(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionUpdateOne) AddDurationMinutes(v int) *SessionUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetClimbs sets the "climbs" field.
func (_u *SessionUpdateOne) SetClimbs(v []schema.ClimbRecord) *SessionUpdateOne {
	_u.mutation.SetClimbs(v)
	return _u
}

// AppendClimbs appends value to the "climbs" field.
func (_u *SessionUpdateOne) AppendClimbs(v []schema.ClimbRecord) *SessionUpdateOne {
	_u.mutation.AppendClimbs(v)
	return _u
}

// ClearClimbs clears the value of the "climbs" field.
func (_u *SessionUpdateOne) ClearClimbs() *SessionUpdateOne {
	_u.mutation.ClearClimbs()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(session.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Climbs(); ok {
		_spec.SetField(session.FieldClimbs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClimbs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldClimbs, value)
		})
	}
	if _u.mutation.ClimbsCleared() {
		_spec.ClearField(session.FieldClimbs, field.TypeJSON)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
