// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pupilplay/engine/ent/actionevent"
	"github.com/pupilplay/engine/ent/predicate"
)

// ActionEventUpdate is the builder for updating ActionEvent entities.
type ActionEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActionEventMutation
}

// Where appends a list predicates to the ActionEventUpdate builder.
func (_u *ActionEventUpdate) Where(ps ...predicate.ActionEvent) *ActionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEpisodeID sets the "episode_id" field.
func (_u *ActionEventUpdate) SetEpisodeID(v string) *ActionEventUpdate {
	_u.mutation.SetEpisodeID(v)
	return _u
}

// SetNillableEpisodeID sets the "episode_id" field if the given value is not nil.
func (_u *ActionEventUpdate) SetNillableEpisodeID(v *string) *ActionEventUpdate {
	if v != nil {
		_u.SetEpisodeID(*v)
	}
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *ActionEventUpdate) SetCallID(v string) *ActionEventUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *ActionEventUpdate) SetNillableCallID(v *string) *ActionEventUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ActionEventUpdate) SetName(v string) *ActionEventUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActionEventUpdate) SetNillableName(v *string) *ActionEventUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOk sets the "ok" field.
func (_u *ActionEventUpdate) SetOk(v bool) *ActionEventUpdate {
	_u.mutation.SetOk(v)
	return _u
}

// SetNillableOk sets the "ok" field if the given value is not nil.
func (_u *ActionEventUpdate) SetNillableOk(v *bool) *ActionEventUpdate {
	if v != nil {
		_u.SetOk(*v)
	}
	return _u
}

// SetFailure sets the "failure" field.
func (_u *ActionEventUpdate) SetFailure(v string) *ActionEventUpdate {
	_u.mutation.SetFailure(v)
	return _u
}

// SetNillableFailure sets the "failure" field if the given value is not nil.
func (_u *ActionEventUpdate) SetNillableFailure(v *string) *ActionEventUpdate {
	if v != nil {
		_u.SetFailure(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ActionEventUpdate) SetDetail(v string) *ActionEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ActionEventUpdate) SetNillableDetail(v *string) *ActionEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ActionEventUpdate) SetDurationMs(v int64) *ActionEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ActionEventUpdate) SetNillableDurationMs(v *int64) *ActionEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ActionEventUpdate) AddDurationMs(v int64) *ActionEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the ActionEventMutation object of the builder.
func (_u *ActionEventUpdate) Mutation() *ActionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(actionevent.Table, actionevent.Columns, sqlgraph.NewFieldSpec(actionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EpisodeID(); ok {
		_spec.SetField(actionevent.FieldEpisodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(actionevent.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(actionevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ok(); ok {
		_spec.SetField(actionevent.FieldOk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Failure(); ok {
		_spec.SetField(actionevent.FieldFailure, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(actionevent.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(actionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(actionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionEventUpdateOne is the builder for updating a single ActionEvent entity.
type ActionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionEventMutation
}

// SetEpisodeID sets the "episode_id" field.
func (_u *ActionEventUpdateOne) SetEpisodeID(v string) *ActionEventUpdateOne {
	_u.mutation.SetEpisodeID(v)
	return _u
}

// SetNillableEpisodeID sets the "episode_id" field if the given value is not nil.
func (_u *ActionEventUpdateOne) SetNillableEpisodeID(v *string) *ActionEventUpdateOne {
	if v != nil {
		_u.SetEpisodeID(*v)
	}
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *ActionEventUpdateOne) SetCallID(v string) *ActionEventUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *ActionEventUpdateOne) SetNillableCallID(v *string) *ActionEventUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ActionEventUpdateOne) SetName(v string) *ActionEventUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActionEventUpdateOne) SetNillableName(v *string) *ActionEventUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOk sets the "ok" field.
func (_u *ActionEventUpdateOne) SetOk(v bool) *ActionEventUpdateOne {
	_u.mutation.SetOk(v)
	return _u
}

// SetNillableOk sets the "ok" field if the given value is not nil.
func (_u *ActionEventUpdateOne) SetNillableOk(v *bool) *ActionEventUpdateOne {
	if v != nil {
		_u.SetOk(*v)
	}
	return _u
}

// SetFailure sets the "failure" field.
func (_u *ActionEventUpdateOne) SetFailure(v string) *ActionEventUpdateOne {
	_u.mutation.SetFailure(v)
	return _u
}

// SetNillableFailure sets the "failure" field if the given value is not nil.
func (_u *ActionEventUpdateOne) SetNillableFailure(v *string) *ActionEventUpdateOne {
	if v != nil {
		_u.SetFailure(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ActionEventUpdateOne) SetDetail(v string) *ActionEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ActionEventUpdateOne) SetNillableDetail(v *string) *ActionEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ActionEventUpdateOne) SetDurationMs(v int64) *ActionEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ActionEventUpdateOne) SetNillableDurationMs(v *int64) *ActionEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ActionEventUpdateOne) AddDurationMs(v int64) *ActionEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the ActionEventMutation object of the builder.
func (_u *ActionEventUpdateOne) Mutation() *ActionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionEventUpdate builder.
func (_u *ActionEventUpdateOne) Where(ps ...predicate.ActionEvent) *ActionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionEventUpdateOne) Select(field string, fields ...string) *ActionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionEvent entity.
func (_u *ActionEventUpdateOne) Save(ctx context.Context) (*ActionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionEventUpdateOne) SaveX(ctx context.Context) *ActionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActionEventUpdateOne) sqlSave(ctx context.Context) (_node *ActionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(actionevent.Table, actionevent.Columns, sqlgraph.NewFieldSpec(actionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionevent.FieldID)
		for _, f := range fields {
			if !actionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionevent.FieldID {
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
	if value, ok := _u.mutation.EpisodeID(); ok {
		_spec.SetField(actionevent.FieldEpisodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(actionevent.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(actionevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ok(); ok {
		_spec.SetField(actionevent.FieldOk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Failure(); ok {
		_spec.SetField(actionevent.FieldFailure, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(actionevent.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(actionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(actionevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &ActionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
