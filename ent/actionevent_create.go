// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pupilplay/engine/ent/actionevent"
)

// ActionEventCreate is the builder for creating a ActionEvent entity.
type ActionEventCreate struct {
	config
	mutation *ActionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ActionEventCreate) SetSequence(v int64) *ActionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ActionEventCreate) SetTimestamp(v time.Time) *ActionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ActionEventCreate) SetNillableTimestamp(v *time.Time) *ActionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEpisodeID sets the "episode_id" field.
func (_c *ActionEventCreate) SetEpisodeID(v string) *ActionEventCreate {
	_c.mutation.SetEpisodeID(v)
	return _c
}

// SetCallID sets the "call_id" field.
func (_c *ActionEventCreate) SetCallID(v string) *ActionEventCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ActionEventCreate) SetName(v string) *ActionEventCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOk sets the "ok" field.
func (_c *ActionEventCreate) SetOk(v bool) *ActionEventCreate {
	_c.mutation.SetOk(v)
	return _c
}

// SetFailure sets the "failure" field.
func (_c *ActionEventCreate) SetFailure(v string) *ActionEventCreate {
	_c.mutation.SetFailure(v)
	return _c
}

// SetNillableFailure sets the "failure" field if the given value is not nil.
func (_c *ActionEventCreate) SetNillableFailure(v *string) *ActionEventCreate {
	if v != nil {
		_c.SetFailure(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *ActionEventCreate) SetDetail(v string) *ActionEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *ActionEventCreate) SetNillableDetail(v *string) *ActionEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ActionEventCreate) SetDurationMs(v int64) *ActionEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ActionEventCreate) SetNillableDurationMs(v *int64) *ActionEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the ActionEventMutation object of the builder.
func (_c *ActionEventCreate) Mutation() *ActionEventMutation {
	return _c.mutation
}

// Save creates the ActionEvent in the database.
func (_c *ActionEventCreate) Save(ctx context.Context) (*ActionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionEventCreate) SaveX(ctx context.Context) *ActionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := actionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Failure(); !ok {
		v := actionevent.DefaultFailure
		_c.mutation.SetFailure(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := actionevent.DefaultDetail
		_c.mutation.SetDetail(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := actionevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ActionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ActionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EpisodeID(); !ok {
		return &ValidationError{Name: "episode_id", err: errors.New(`ent: missing required field "ActionEvent.episode_id"`)}
	}
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "ActionEvent.call_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ActionEvent.name"`)}
	}
	if _, ok := _c.mutation.Ok(); !ok {
		return &ValidationError{Name: "ok", err: errors.New(`ent: missing required field "ActionEvent.ok"`)}
	}
	if _, ok := _c.mutation.Failure(); !ok {
		return &ValidationError{Name: "failure", err: errors.New(`ent: missing required field "ActionEvent.failure"`)}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "ActionEvent.detail"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ActionEvent.duration_ms"`)}
	}
	return nil
}

func (_c *ActionEventCreate) sqlSave(ctx context.Context) (*ActionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionEventCreate) createSpec() (*ActionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionevent.Table, sqlgraph.NewFieldSpec(actionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(actionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(actionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EpisodeID(); ok {
		_spec.SetField(actionevent.FieldEpisodeID, field.TypeString, value)
		_node.EpisodeID = value
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(actionevent.FieldCallID, field.TypeString, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(actionevent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Ok(); ok {
		_spec.SetField(actionevent.FieldOk, field.TypeBool, value)
		_node.Ok = value
	}
	if value, ok := _c.mutation.Failure(); ok {
		_spec.SetField(actionevent.FieldFailure, field.TypeString, value)
		_node.Failure = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(actionevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(actionevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// ActionEventCreateBulk is the builder for creating many ActionEvent entities in bulk.
type ActionEventCreateBulk struct {
	config
	err      error
	builders []*ActionEventCreate
}

// Save creates the ActionEvent entities in the database.
func (_c *ActionEventCreateBulk) Save(ctx context.Context) ([]*ActionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActionEventCreateBulk) SaveX(ctx context.Context) []*ActionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
