// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/verificationrun"
)

// VerificationRunCreate is the builder for creating a VerificationRun entity.
type VerificationRunCreate struct {
	config
	mutation *VerificationRunMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *VerificationRunCreate) SetProjectID(v string) *VerificationRunCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *VerificationRunCreate) SetUserID(v string) *VerificationRunCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *VerificationRunCreate) SetKind(v verificationrun.Kind) *VerificationRunCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerificationRunCreate) SetStatus(v verificationrun.Status) *VerificationRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VerificationRunCreate) SetNillableStatus(v *verificationrun.Status) *VerificationRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *VerificationRunCreate) SetPayload(v string) *VerificationRunCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_c *VerificationRunCreate) SetNillablePayload(v *string) *VerificationRunCreate {
	if v != nil {
		_c.SetPayload(*v)
	}
	return _c
}

// SetReportJSON sets the "report_json" field.
func (_c *VerificationRunCreate) SetReportJSON(v string) *VerificationRunCreate {
	_c.mutation.SetReportJSON(v)
	return _c
}

// SetNillableReportJSON sets the "report_json" field if the given value is not nil.
func (_c *VerificationRunCreate) SetNillableReportJSON(v *string) *VerificationRunCreate {
	if v != nil {
		_c.SetReportJSON(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *VerificationRunCreate) SetErrorMessage(v string) *VerificationRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *VerificationRunCreate) SetNillableErrorMessage(v *string) *VerificationRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *VerificationRunCreate) SetPodID(v string) *VerificationRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *VerificationRunCreate) SetNillablePodID(v *string) *VerificationRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationRunCreate) SetCreatedAt(v time.Time) *VerificationRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationRunCreate) SetNillableCreatedAt(v *time.Time) *VerificationRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *VerificationRunCreate) SetStartedAt(v time.Time) *VerificationRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *VerificationRunCreate) SetNillableStartedAt(v *time.Time) *VerificationRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *VerificationRunCreate) SetCompletedAt(v time.Time) *VerificationRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *VerificationRunCreate) SetNillableCompletedAt(v *time.Time) *VerificationRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *VerificationRunCreate) SetLastHeartbeatAt(v time.Time) *VerificationRunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *VerificationRunCreate) SetNillableLastHeartbeatAt(v *time.Time) *VerificationRunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationRunCreate) SetID(v string) *VerificationRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *VerificationRunCreate) SetProject(v *Project) *VerificationRunCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the VerificationRunMutation object of the builder.
func (_c *VerificationRunCreate) Mutation() *VerificationRunMutation {
	return _c.mutation
}

// Save creates the VerificationRun in the database.
func (_c *VerificationRunCreate) Save(ctx context.Context) (*VerificationRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationRunCreate) SaveX(ctx context.Context) *VerificationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := verificationrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationRunCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "VerificationRun.project_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "VerificationRun.user_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "VerificationRun.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := verificationrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "VerificationRun.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VerificationRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := verificationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationRun.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "VerificationRun.project"`)}
	}
	return nil
}

func (_c *VerificationRunCreate) sqlSave(ctx context.Context) (*VerificationRun, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected VerificationRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationRunCreate) createSpec() (*VerificationRun, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationrun.Table, sqlgraph.NewFieldSpec(verificationrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(verificationrun.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(verificationrun.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verificationrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(verificationrun.FieldPayload, field.TypeString, value)
		_node.Payload = &value
	}
	if value, ok := _c.mutation.ReportJSON(); ok {
		_spec.SetField(verificationrun.FieldReportJSON, field.TypeString, value)
		_node.ReportJSON = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(verificationrun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(verificationrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(verificationrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(verificationrun.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationrun.ProjectTable,
			Columns: []string{verificationrun.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationRunCreateBulk is the builder for creating many VerificationRun entities in bulk.
type VerificationRunCreateBulk struct {
	config
	err      error
	builders []*VerificationRunCreate
}

// Save creates the VerificationRun entities in the database.
func (_c *VerificationRunCreateBulk) Save(ctx context.Context) ([]*VerificationRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationRunMutation)
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
func (_c *VerificationRunCreateBulk) SaveX(ctx context.Context) []*VerificationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
