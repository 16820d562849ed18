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
	"github.com/forgeworks/forge/ent/predicate"
	"github.com/forgeworks/forge/ent/verificationrun"
)

// VerificationRunUpdate is the builder for updating VerificationRun entities.
type VerificationRunUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationRunMutation
}

// Where appends a list predicates to the VerificationRunUpdate builder.
func (_u *VerificationRunUpdate) Where(ps ...predicate.VerificationRun) *VerificationRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *VerificationRunUpdate) SetKind(v verificationrun.Kind) *VerificationRunUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *VerificationRunUpdate) SetNillableKind(v *verificationrun.Kind) *VerificationRunUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationRunUpdate) SetStatus(v verificationrun.Status) *VerificationRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationRunUpdate) SetNillableStatus(v *verificationrun.Status) *VerificationRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *VerificationRunUpdate) SetPayload(v string) *VerificationRunUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *VerificationRunUpdate) SetNillablePayload(v *string) *VerificationRunUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *VerificationRunUpdate) ClearPayload() *VerificationRunUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetReportJSON sets the "report_json" field.
func (_u *VerificationRunUpdate) SetReportJSON(v string) *VerificationRunUpdate {
	_u.mutation.SetReportJSON(v)
	return _u
}

// SetNillableReportJSON sets the "report_json" field if the given value is not nil.
func (_u *VerificationRunUpdate) SetNillableReportJSON(v *string) *VerificationRunUpdate {
	if v != nil {
		_u.SetReportJSON(*v)
	}
	return _u
}

// ClearReportJSON clears the value of the "report_json" field.
func (_u *VerificationRunUpdate) ClearReportJSON() *VerificationRunUpdate {
	_u.mutation.ClearReportJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerificationRunUpdate) SetErrorMessage(v string) *VerificationRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerificationRunUpdate) SetNillableErrorMessage(v *string) *VerificationRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerificationRunUpdate) ClearErrorMessage() *VerificationRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *VerificationRunUpdate) SetPodID(v string) *VerificationRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *VerificationRunUpdate) SetNillablePodID(v *string) *VerificationRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *VerificationRunUpdate) ClearPodID() *VerificationRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationRunUpdate) SetStartedAt(v time.Time) *VerificationRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationRunUpdate) SetNillableStartedAt(v *time.Time) *VerificationRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *VerificationRunUpdate) ClearStartedAt() *VerificationRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *VerificationRunUpdate) SetCompletedAt(v time.Time) *VerificationRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *VerificationRunUpdate) SetNillableCompletedAt(v *time.Time) *VerificationRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *VerificationRunUpdate) ClearCompletedAt() *VerificationRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *VerificationRunUpdate) SetLastHeartbeatAt(v time.Time) *VerificationRunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *VerificationRunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *VerificationRunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *VerificationRunUpdate) ClearLastHeartbeatAt() *VerificationRunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// Mutation returns the VerificationRunMutation object of the builder.
func (_u *VerificationRunUpdate) Mutation() *VerificationRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRunUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := verificationrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "VerificationRun.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationRun.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationRun.project"`)
	}
	return nil
}

func (_u *VerificationRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrun.Table, verificationrun.Columns, sqlgraph.NewFieldSpec(verificationrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(verificationrun.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(verificationrun.FieldPayload, field.TypeString, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(verificationrun.FieldPayload, field.TypeString)
	}
	if value, ok := _u.mutation.ReportJSON(); ok {
		_spec.SetField(verificationrun.FieldReportJSON, field.TypeString, value)
	}
	if _u.mutation.ReportJSONCleared() {
		_spec.ClearField(verificationrun.FieldReportJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verificationrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(verificationrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(verificationrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(verificationrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(verificationrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(verificationrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(verificationrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(verificationrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationRunUpdateOne is the builder for updating a single VerificationRun entity.
type VerificationRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationRunMutation
}

// SetKind sets the "kind" field.
func (_u *VerificationRunUpdateOne) SetKind(v verificationrun.Kind) *VerificationRunUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *VerificationRunUpdateOne) SetNillableKind(v *verificationrun.Kind) *VerificationRunUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationRunUpdateOne) SetStatus(v verificationrun.Status) *VerificationRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationRunUpdateOne) SetNillableStatus(v *verificationrun.Status) *VerificationRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *VerificationRunUpdateOne) SetPayload(v string) *VerificationRunUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *VerificationRunUpdateOne) SetNillablePayload(v *string) *VerificationRunUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *VerificationRunUpdateOne) ClearPayload() *VerificationRunUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetReportJSON sets the "report_json" field.
func (_u *VerificationRunUpdateOne) SetReportJSON(v string) *VerificationRunUpdateOne {
	_u.mutation.SetReportJSON(v)
	return _u
}

// SetNillableReportJSON sets the "report_json" field if the given value is not nil.
func (_u *VerificationRunUpdateOne) SetNillableReportJSON(v *string) *VerificationRunUpdateOne {
	if v != nil {
		_u.SetReportJSON(*v)
	}
	return _u
}

// ClearReportJSON clears the value of the "report_json" field.
func (_u *VerificationRunUpdateOne) ClearReportJSON() *VerificationRunUpdateOne {
	_u.mutation.ClearReportJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerificationRunUpdateOne) SetErrorMessage(v string) *VerificationRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerificationRunUpdateOne) SetNillableErrorMessage(v *string) *VerificationRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerificationRunUpdateOne) ClearErrorMessage() *VerificationRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *VerificationRunUpdateOne) SetPodID(v string) *VerificationRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *VerificationRunUpdateOne) SetNillablePodID(v *string) *VerificationRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *VerificationRunUpdateOne) ClearPodID() *VerificationRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationRunUpdateOne) SetStartedAt(v time.Time) *VerificationRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationRunUpdateOne) SetNillableStartedAt(v *time.Time) *VerificationRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *VerificationRunUpdateOne) ClearStartedAt() *VerificationRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *VerificationRunUpdateOne) SetCompletedAt(v time.Time) *VerificationRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *VerificationRunUpdateOne) SetNillableCompletedAt(v *time.Time) *VerificationRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *VerificationRunUpdateOne) ClearCompletedAt() *VerificationRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *VerificationRunUpdateOne) SetLastHeartbeatAt(v time.Time) *VerificationRunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *VerificationRunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *VerificationRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *VerificationRunUpdateOne) ClearLastHeartbeatAt() *VerificationRunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// Mutation returns the VerificationRunMutation object of the builder.
func (_u *VerificationRunUpdateOne) Mutation() *VerificationRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerificationRunUpdate builder.
func (_u *VerificationRunUpdateOne) Where(ps ...predicate.VerificationRun) *VerificationRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationRunUpdateOne) Select(field string, fields ...string) *VerificationRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationRun entity.
func (_u *VerificationRunUpdateOne) Save(ctx context.Context) (*VerificationRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRunUpdateOne) SaveX(ctx context.Context) *VerificationRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRunUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := verificationrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "VerificationRun.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationRun.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationRun.project"`)
	}
	return nil
}

func (_u *VerificationRunUpdateOne) sqlSave(ctx context.Context) (_node *VerificationRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrun.Table, verificationrun.Columns, sqlgraph.NewFieldSpec(verificationrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationrun.FieldID)
		for _, f := range fields {
			if !verificationrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationrun.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(verificationrun.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(verificationrun.FieldPayload, field.TypeString, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(verificationrun.FieldPayload, field.TypeString)
	}
	if value, ok := _u.mutation.ReportJSON(); ok {
		_spec.SetField(verificationrun.FieldReportJSON, field.TypeString, value)
	}
	if _u.mutation.ReportJSONCleared() {
		_spec.ClearField(verificationrun.FieldReportJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verificationrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(verificationrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(verificationrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(verificationrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(verificationrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(verificationrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(verificationrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(verificationrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	_node = &VerificationRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
