// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/forge/ent/event"
	"github.com/forgeworks/forge/ent/predicate"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/thread"
	"github.com/forgeworks/forge/ent/verificationrun"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *ProjectUpdate) SetProjectName(v string) *ProjectUpdate {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableProjectName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ProjectUpdate) SetPrompt(v string) *ProjectUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillablePrompt(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdate) SetStatus(v project.Status) *ProjectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableStatus(v *project.Status) *ProjectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *ProjectUpdate) SetModelUsed(v string) *ProjectUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableModelUsed(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *ProjectUpdate) ClearModelUsed() *ProjectUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetSpecJSON sets the "spec_json" field.
func (_u *ProjectUpdate) SetSpecJSON(v string) *ProjectUpdate {
	_u.mutation.SetSpecJSON(v)
	return _u
}

// SetNillableSpecJSON sets the "spec_json" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableSpecJSON(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetSpecJSON(*v)
	}
	return _u
}

// ClearSpecJSON clears the value of the "spec_json" field.
func (_u *ProjectUpdate) ClearSpecJSON() *ProjectUpdate {
	_u.mutation.ClearSpecJSON()
	return _u
}

// SetValidationJSON sets the "validation_json" field.
func (_u *ProjectUpdate) SetValidationJSON(v string) *ProjectUpdate {
	_u.mutation.SetValidationJSON(v)
	return _u
}

// SetNillableValidationJSON sets the "validation_json" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableValidationJSON(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetValidationJSON(*v)
	}
	return _u
}

// ClearValidationJSON clears the value of the "validation_json" field.
func (_u *ProjectUpdate) ClearValidationJSON() *ProjectUpdate {
	_u.mutation.ClearValidationJSON()
	return _u
}

// SetVerificationJSON sets the "verification_json" field.
func (_u *ProjectUpdate) SetVerificationJSON(v string) *ProjectUpdate {
	_u.mutation.SetVerificationJSON(v)
	return _u
}

// SetNillableVerificationJSON sets the "verification_json" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableVerificationJSON(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetVerificationJSON(*v)
	}
	return _u
}

// ClearVerificationJSON clears the value of the "verification_json" field.
func (_u *ProjectUpdate) ClearVerificationJSON() *ProjectUpdate {
	_u.mutation.ClearVerificationJSON()
	return _u
}

// SetZipPath sets the "zip_path" field.
func (_u *ProjectUpdate) SetZipPath(v string) *ProjectUpdate {
	_u.mutation.SetZipPath(v)
	return _u
}

// SetNillableZipPath sets the "zip_path" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableZipPath(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetZipPath(*v)
	}
	return _u
}

// ClearZipPath clears the value of the "zip_path" field.
func (_u *ProjectUpdate) ClearZipPath() *ProjectUpdate {
	_u.mutation.ClearZipPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProjectUpdate) SetErrorMessage(v string) *ProjectUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableErrorMessage(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProjectUpdate) ClearErrorMessage() *ProjectUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddThreadIDs adds the "threads" edge to the Thread entity by IDs.
func (_u *ProjectUpdate) AddThreadIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddThreadIDs(ids...)
	return _u
}

// AddThreads adds the "threads" edges to the Thread entity.
func (_u *ProjectUpdate) AddThreads(v ...*Thread) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThreadIDs(ids...)
}

// AddVerificationRunIDs adds the "verification_runs" edge to the VerificationRun entity by IDs.
func (_u *ProjectUpdate) AddVerificationRunIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddVerificationRunIDs(ids...)
	return _u
}

// AddVerificationRuns adds the "verification_runs" edges to the VerificationRun entity.
func (_u *ProjectUpdate) AddVerificationRuns(v ...*VerificationRun) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationRunIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ProjectUpdate) AddEventIDs(ids ...int) *ProjectUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ProjectUpdate) AddEvents(v ...*Event) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearThreads clears all "threads" edges to the Thread entity.
func (_u *ProjectUpdate) ClearThreads() *ProjectUpdate {
	_u.mutation.ClearThreads()
	return _u
}

// RemoveThreadIDs removes the "threads" edge to Thread entities by IDs.
func (_u *ProjectUpdate) RemoveThreadIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveThreadIDs(ids...)
	return _u
}

// RemoveThreads removes "threads" edges to Thread entities.
func (_u *ProjectUpdate) RemoveThreads(v ...*Thread) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThreadIDs(ids...)
}

// ClearVerificationRuns clears all "verification_runs" edges to the VerificationRun entity.
func (_u *ProjectUpdate) ClearVerificationRuns() *ProjectUpdate {
	_u.mutation.ClearVerificationRuns()
	return _u
}

// RemoveVerificationRunIDs removes the "verification_runs" edge to VerificationRun entities by IDs.
func (_u *ProjectUpdate) RemoveVerificationRunIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveVerificationRunIDs(ids...)
	return _u
}

// RemoveVerificationRuns removes "verification_runs" edges to VerificationRun entities.
func (_u *ProjectUpdate) RemoveVerificationRuns(v ...*VerificationRun) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationRunIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ProjectUpdate) ClearEvents() *ProjectUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ProjectUpdate) RemoveEventIDs(ids ...int) *ProjectUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ProjectUpdate) RemoveEvents(v ...*Event) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.ProjectName(); ok {
		if err := project.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "Project.project_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.owner"`)
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(project.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(project.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(project.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(project.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.SpecJSON(); ok {
		_spec.SetField(project.FieldSpecJSON, field.TypeString, value)
	}
	if _u.mutation.SpecJSONCleared() {
		_spec.ClearField(project.FieldSpecJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationJSON(); ok {
		_spec.SetField(project.FieldValidationJSON, field.TypeString, value)
	}
	if _u.mutation.ValidationJSONCleared() {
		_spec.ClearField(project.FieldValidationJSON, field.TypeString)
	}
	if value, ok := _u.mutation.VerificationJSON(); ok {
		_spec.SetField(project.FieldVerificationJSON, field.TypeString, value)
	}
	if _u.mutation.VerificationJSONCleared() {
		_spec.ClearField(project.FieldVerificationJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ZipPath(); ok {
		_spec.SetField(project.FieldZipPath, field.TypeString, value)
	}
	if _u.mutation.ZipPathCleared() {
		_spec.ClearField(project.FieldZipPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(project.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(project.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ThreadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThreadsIDs(); len(nodes) > 0 && !_u.mutation.ThreadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerificationRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationRunsIDs(); len(nodes) > 0 && !_u.mutation.VerificationRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetProjectName sets the "project_name" field.
func (_u *ProjectUpdateOne) SetProjectName(v string) *ProjectUpdateOne {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableProjectName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ProjectUpdateOne) SetPrompt(v string) *ProjectUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillablePrompt(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdateOne) SetStatus(v project.Status) *ProjectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableStatus(v *project.Status) *ProjectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *ProjectUpdateOne) SetModelUsed(v string) *ProjectUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableModelUsed(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *ProjectUpdateOne) ClearModelUsed() *ProjectUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetSpecJSON sets the "spec_json" field.
func (_u *ProjectUpdateOne) SetSpecJSON(v string) *ProjectUpdateOne {
	_u.mutation.SetSpecJSON(v)
	return _u
}

// SetNillableSpecJSON sets the "spec_json" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableSpecJSON(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetSpecJSON(*v)
	}
	return _u
}

// ClearSpecJSON clears the value of the "spec_json" field.
func (_u *ProjectUpdateOne) ClearSpecJSON() *ProjectUpdateOne {
	_u.mutation.ClearSpecJSON()
	return _u
}

// SetValidationJSON sets the "validation_json" field.
func (_u *ProjectUpdateOne) SetValidationJSON(v string) *ProjectUpdateOne {
	_u.mutation.SetValidationJSON(v)
	return _u
}

// SetNillableValidationJSON sets the "validation_json" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableValidationJSON(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetValidationJSON(*v)
	}
	return _u
}

// ClearValidationJSON clears the value of the "validation_json" field.
func (_u *ProjectUpdateOne) ClearValidationJSON() *ProjectUpdateOne {
	_u.mutation.ClearValidationJSON()
	return _u
}

// SetVerificationJSON sets the "verification_json" field.
func (_u *ProjectUpdateOne) SetVerificationJSON(v string) *ProjectUpdateOne {
	_u.mutation.SetVerificationJSON(v)
	return _u
}

// SetNillableVerificationJSON sets the "verification_json" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableVerificationJSON(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetVerificationJSON(*v)
	}
	return _u
}

// ClearVerificationJSON clears the value of the "verification_json" field.
func (_u *ProjectUpdateOne) ClearVerificationJSON() *ProjectUpdateOne {
	_u.mutation.ClearVerificationJSON()
	return _u
}

// SetZipPath sets the "zip_path" field.
func (_u *ProjectUpdateOne) SetZipPath(v string) *ProjectUpdateOne {
	_u.mutation.SetZipPath(v)
	return _u
}

// SetNillableZipPath sets the "zip_path" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableZipPath(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetZipPath(*v)
	}
	return _u
}

// ClearZipPath clears the value of the "zip_path" field.
func (_u *ProjectUpdateOne) ClearZipPath() *ProjectUpdateOne {
	_u.mutation.ClearZipPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProjectUpdateOne) SetErrorMessage(v string) *ProjectUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableErrorMessage(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProjectUpdateOne) ClearErrorMessage() *ProjectUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddThreadIDs adds the "threads" edge to the Thread entity by IDs.
func (_u *ProjectUpdateOne) AddThreadIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddThreadIDs(ids...)
	return _u
}

// AddThreads adds the "threads" edges to the Thread entity.
func (_u *ProjectUpdateOne) AddThreads(v ...*Thread) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThreadIDs(ids...)
}

// AddVerificationRunIDs adds the "verification_runs" edge to the VerificationRun entity by IDs.
func (_u *ProjectUpdateOne) AddVerificationRunIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddVerificationRunIDs(ids...)
	return _u
}

// AddVerificationRuns adds the "verification_runs" edges to the VerificationRun entity.
func (_u *ProjectUpdateOne) AddVerificationRuns(v ...*VerificationRun) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationRunIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ProjectUpdateOne) AddEventIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ProjectUpdateOne) AddEvents(v ...*Event) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearThreads clears all "threads" edges to the Thread entity.
func (_u *ProjectUpdateOne) ClearThreads() *ProjectUpdateOne {
	_u.mutation.ClearThreads()
	return _u
}

// RemoveThreadIDs removes the "threads" edge to Thread entities by IDs.
func (_u *ProjectUpdateOne) RemoveThreadIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveThreadIDs(ids...)
	return _u
}

// RemoveThreads removes "threads" edges to Thread entities.
func (_u *ProjectUpdateOne) RemoveThreads(v ...*Thread) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThreadIDs(ids...)
}

// ClearVerificationRuns clears all "verification_runs" edges to the VerificationRun entity.
func (_u *ProjectUpdateOne) ClearVerificationRuns() *ProjectUpdateOne {
	_u.mutation.ClearVerificationRuns()
	return _u
}

// RemoveVerificationRunIDs removes the "verification_runs" edge to VerificationRun entities by IDs.
func (_u *ProjectUpdateOne) RemoveVerificationRunIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveVerificationRunIDs(ids...)
	return _u
}

// RemoveVerificationRuns removes "verification_runs" edges to VerificationRun entities.
func (_u *ProjectUpdateOne) RemoveVerificationRuns(v ...*VerificationRun) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationRunIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ProjectUpdateOne) ClearEvents() *ProjectUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ProjectUpdateOne) RemoveEventIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ProjectUpdateOne) RemoveEvents(v ...*Event) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.ProjectName(); ok {
		if err := project.ProjectNameValidator(v); err != nil {
			return &ValidationError{Name: "project_name", err: fmt.Errorf(`ent: validator failed for field "Project.project_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.owner"`)
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(project.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(project.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(project.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(project.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.SpecJSON(); ok {
		_spec.SetField(project.FieldSpecJSON, field.TypeString, value)
	}
	if _u.mutation.SpecJSONCleared() {
		_spec.ClearField(project.FieldSpecJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationJSON(); ok {
		_spec.SetField(project.FieldValidationJSON, field.TypeString, value)
	}
	if _u.mutation.ValidationJSONCleared() {
		_spec.ClearField(project.FieldValidationJSON, field.TypeString)
	}
	if value, ok := _u.mutation.VerificationJSON(); ok {
		_spec.SetField(project.FieldVerificationJSON, field.TypeString, value)
	}
	if _u.mutation.VerificationJSONCleared() {
		_spec.ClearField(project.FieldVerificationJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ZipPath(); ok {
		_spec.SetField(project.FieldZipPath, field.TypeString, value)
	}
	if _u.mutation.ZipPathCleared() {
		_spec.ClearField(project.FieldZipPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(project.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(project.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ThreadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThreadsIDs(); len(nodes) > 0 && !_u.mutation.ThreadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerificationRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationRunsIDs(); len(nodes) > 0 && !_u.mutation.VerificationRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
