// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pupilplay/engine/ent/predicate"
	"github.com/pupilplay/engine/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEpisodeID sets the "episode_id" field.
func (_u *TurnEventUpdate) SetEpisodeID(v string) *TurnEventUpdate {
	_u.mutation.SetEpisodeID(v)
	return _u
}

// SetNillableEpisodeID sets the "episode_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableEpisodeID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetEpisodeID(*v)
	}
	return _u
}

// SetTurn sets the "turn" field.
func (_u *TurnEventUpdate) SetTurn(v int) *TurnEventUpdate {
	_u.mutation.ResetTurn()
	_u.mutation.SetTurn(v)
	return _u
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTurn(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetTurn(*v)
	}
	return _u
}

// AddTurn adds value to the "turn" field.
func (_u *TurnEventUpdate) AddTurn(v int) *TurnEventUpdate {
	_u.mutation.AddTurn(v)
	return _u
}

// SetUserMessage sets the "user_message" field.
func (_u *TurnEventUpdate) SetUserMessage(v string) *TurnEventUpdate {
	_u.mutation.SetUserMessage(v)
	return _u
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableUserMessage(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetUserMessage(*v)
	}
	return _u
}

// SetFinalMessage sets the "final_message" field.
func (_u *TurnEventUpdate) SetFinalMessage(v string) *TurnEventUpdate {
	_u.mutation.SetFinalMessage(v)
	return _u
}

// SetNillableFinalMessage sets the "final_message" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableFinalMessage(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetFinalMessage(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *TurnEventUpdate) SetTier(v string) *TurnEventUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTier(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *TurnEventUpdate) SetDegraded(v bool) *TurnEventUpdate {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableDegraded(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetRounds sets the "rounds" field.
func (_u *TurnEventUpdate) SetRounds(v int) *TurnEventUpdate {
	_u.mutation.ResetRounds()
	_u.mutation.SetRounds(v)
	return _u
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableRounds(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetRounds(*v)
	}
	return _u
}

// AddRounds adds value to the "rounds" field.
func (_u *TurnEventUpdate) AddRounds(v int) *TurnEventUpdate {
	_u.mutation.AddRounds(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *TurnEventUpdate) SetDifficulty(v float64) *TurnEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableDifficulty(v *float64) *TurnEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *TurnEventUpdate) AddDifficulty(v float64) *TurnEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EpisodeID(); ok {
		_spec.SetField(turnevent.FieldEpisodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turn(); ok {
		_spec.SetField(turnevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurn(); ok {
		_spec.AddField(turnevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserMessage(); ok {
		_spec.SetField(turnevent.FieldUserMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalMessage(); ok {
		_spec.SetField(turnevent.FieldFinalMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(turnevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(turnevent.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rounds(); ok {
		_spec.SetField(turnevent.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRounds(); ok {
		_spec.AddField(turnevent.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(turnevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(turnevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetEpisodeID sets the "episode_id" field.
func (_u *TurnEventUpdateOne) SetEpisodeID(v string) *TurnEventUpdateOne {
	_u.mutation.SetEpisodeID(v)
	return _u
}

// SetNillableEpisodeID sets the "episode_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableEpisodeID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetEpisodeID(*v)
	}
	return _u
}

// SetTurn sets the "turn" field.
func (_u *TurnEventUpdateOne) SetTurn(v int) *TurnEventUpdateOne {
	_u.mutation.ResetTurn()
	_u.mutation.SetTurn(v)
	return _u
}

// SetNillableTurn sets the "turn" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTurn(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTurn(*v)
	}
	return _u
}

// AddTurn adds value to the "turn" field.
func (_u *TurnEventUpdateOne) AddTurn(v int) *TurnEventUpdateOne {
	_u.mutation.AddTurn(v)
	return _u
}

// SetUserMessage sets the "user_message" field.
func (_u *TurnEventUpdateOne) SetUserMessage(v string) *TurnEventUpdateOne {
	_u.mutation.SetUserMessage(v)
	return _u
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableUserMessage(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetUserMessage(*v)
	}
	return _u
}

// SetFinalMessage sets the "final_message" field.
func (_u *TurnEventUpdateOne) SetFinalMessage(v string) *TurnEventUpdateOne {
	_u.mutation.SetFinalMessage(v)
	return _u
}

// SetNillableFinalMessage sets the "final_message" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableFinalMessage(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetFinalMessage(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *TurnEventUpdateOne) SetTier(v string) *TurnEventUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTier(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *TurnEventUpdateOne) SetDegraded(v bool) *TurnEventUpdateOne {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableDegraded(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetRounds sets the "rounds" field.
func (_u *TurnEventUpdateOne) SetRounds(v int) *TurnEventUpdateOne {
	_u.mutation.ResetRounds()
	_u.mutation.SetRounds(v)
	return _u
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableRounds(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetRounds(*v)
	}
	return _u
}

// AddRounds adds value to the "rounds" field.
func (_u *TurnEventUpdateOne) AddRounds(v int) *TurnEventUpdateOne {
	_u.mutation.AddRounds(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *TurnEventUpdateOne) SetDifficulty(v float64) *TurnEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableDifficulty(v *float64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *TurnEventUpdateOne) AddDifficulty(v float64) *TurnEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
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
		_spec.SetField(turnevent.FieldEpisodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turn(); ok {
		_spec.SetField(turnevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurn(); ok {
		_spec.AddField(turnevent.FieldTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserMessage(); ok {
		_spec.SetField(turnevent.FieldUserMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalMessage(); ok {
		_spec.SetField(turnevent.FieldFinalMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(turnevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(turnevent.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rounds(); ok {
		_spec.SetField(turnevent.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRounds(); ok {
		_spec.AddField(turnevent.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(turnevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(turnevent.FieldDifficulty, field.TypeFloat64, value)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
