// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/forge/ent/event"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/thread"
	"github.com/forgeworks/forge/ent/user"
	"github.com/forgeworks/forge/ent/verificationrun"
)

// ProjectCreate is the builder for creating a Project entity.
type ProjectCreate struct {
	config
	mutation *ProjectMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProjectCreate) SetUserID(v string) *ProjectCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProjectName sets the "project_name" field.
func (_c *ProjectCreate) SetProjectName(v string) *ProjectCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ProjectCreate) SetPrompt(v string) *ProjectCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProjectCreate) SetStatus(v project.Status) *ProjectCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableStatus(v *project.Status) *ProjectCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *ProjectCreate) SetModelUsed(v string) *ProjectCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableModelUsed(v *string) *ProjectCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetSpecJSON sets the "spec_json" field.
func (_c *ProjectCreate) SetSpecJSON(v string) *ProjectCreate {
	_c.mutation.SetSpecJSON(v)
	return _c
}

// SetNillableSpecJSON sets the "spec_json" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableSpecJSON(v *string) *ProjectCreate {
	if v != nil {
		_c.SetSpecJSON(*v)
	}
	return _c
}

// SetValidationJSON sets the "validation_json" field.
func (_c *ProjectCreate) SetValidationJSON(v string) *ProjectCreate {
	_c.mutation.SetValidationJSON(v)
	return _c
}

// SetNillableValidationJSON sets the "validation_json" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableValidationJSON(v *string) *ProjectCreate {
	if v != nil {
		_c.SetValidationJSON(*v)
	}
	return _c
}

// SetVerificationJSON sets the "verification_json" field.
func (_c *ProjectCreate) SetVerificationJSON(v string) *ProjectCreate {
	_c.mutation.SetVerificationJSON(v)
	return _c
}

// SetNillableVerificationJSON sets the "verification_json" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableVerificationJSON(v *string) *ProjectCreate {
	if v != nil {
		_c.SetVerificationJSON(*v)
	}
	return _c
}

// SetZipPath sets the "zip_path" field.
func (_c *ProjectCreate) SetZipPath(v string) *ProjectCreate {
	_c.mutation.SetZipPath(v)
	return _c
}

// SetNillableZipPath sets the "zip_path" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableZipPath(v *string) *ProjectCreate {
	if v != nil {
		_c.SetZipPath(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProjectCreate) SetErrorMessage(v string) *ProjectCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableErrorMessage(v *string) *ProjectCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectCreate) SetCreatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCreatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectCreate) SetUpdatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableUpdatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectCreate) SetID(v string) *ProjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *ProjectCreate) SetOwnerID(id string) *ProjectCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *ProjectCreate) SetOwner(v *User) *ProjectCreate {
	return _c.SetOwnerID(v.ID)
}

// AddThreadIDs adds the "threads" edge to the Thread entity by IDs.
func (_c *ProjectCreate) AddThreadIDs(ids ...string) *ProjectCreate {
	_c.mutation.AddThreadIDs(ids...)
	return _c
}

// AddThreads adds the "threads" edges to the Thread entity.
func (_c *ProjectCreate) AddThreads(v ...*Thread) *ProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddThreadIDs(ids...)
}

// AddVerificationRunIDs adds the "verification_runs" edge to the VerificationRun entity by IDs.
func (_c *ProjectCreate) AddVerificationRunIDs(ids ...string) *ProjectCreate {
	_c.mutation.AddVerificationRunIDs(ids...)
	return _c
}

// AddVerificationRuns adds the "verification_runs" edges to the VerificationRun entity.
func (_c *ProjectCreate) AddVerificationRuns(v ...*VerificationRun) *ProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVerificationRunIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *ProjectCreate) AddEventIDs(ids ...int) *ProjectCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *ProjectCreate) AddEvents(v ...*Event) *ProjectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_c *ProjectCreate) Mutation() *ProjectMutation {
	return _c.mutation
}

// Save creates the Project in the database.
func (_c *ProjectCreate) Save(ctx context.Context) (*Project, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectCreate) SaveX(ctx context.Context) *Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := project.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := project.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := project.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Project.user_id"`)}
	}
	if _, ok := _c.mutation.ProjectName(); !ok {
		return &ValidationError{Name: "project_name", err: errors.New(`ent: missing required field "Project.project_name"`)}
	}
	if v, ok := _c.mutation.ProjectName(); ok {
		if err := project.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "Project.project_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Project.prompt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Project.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Project.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Project.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Project.owner"`)}
	}
	return nil
}

func (_c *ProjectCreate) sqlSave(ctx context.Context) (*Project, error) {
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
			return nil, fmt.Errorf("unexpected Project.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectCreate) createSpec() (*Project, *sqlgraph.CreateSpec) {
	var (
		_node = &Project{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(project.Table, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(project.FieldProjectName, field.TypeString, value)
		_node.ProjectName = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(project.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(project.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = &value
	}
	if value, ok := _c.mutation.SpecJSON(); ok {
		_spec.SetField(project.FieldSpecJSON, field.TypeString, value)
		_node.SpecJSON = &value
	}
	if value, ok := _c.mutation.ValidationJSON(); ok {
		_spec.SetField(project.FieldValidationJSON, field.TypeString, value)
		_node.ValidationJSON = &value
	}
	if value, ok := _c.mutation.VerificationJSON(); ok {
		_spec.SetField(project.FieldVerificationJSON, field.TypeString, value)
		_node.VerificationJSON = &value
	}
	if value, ok := _c.mutation.ZipPath(); ok {
		_spec.SetField(project.FieldZipPath, field.TypeString, value)
		_node.ZipPath = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(project.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.OwnerTable,
			Columns: []string{project.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ThreadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ThreadsTable,
			Columns: []string{project.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VerificationRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.VerificationRunsTable,
			Columns: []string{project.VerificationRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.EventsTable,
			Columns: []string{project.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProjectCreateBulk is the builder for creating many Project entities in bulk.
type ProjectCreateBulk struct {
	config
	err      error
	builders []*ProjectCreate
}

// Save creates the Project entities in the database.
func (_c *ProjectCreateBulk) Save(ctx context.Context) ([]*Project, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Project, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectMutation)
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
func (_c *ProjectCreateBulk) SaveX(ctx context.Context) []*Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
