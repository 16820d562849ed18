// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/verificationrun"
)

// VerificationRun is the model entity for the VerificationRun schema.
type VerificationRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Denormalized owner for tenancy checks on status reads
	UserID string `json:"user_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind verificationrun.Kind `json:"kind,omitempty"`
	// Status holds the value of the "status" field.
	Status verificationrun.Status `json:"status,omitempty"`
	// Repair request JSON (failed tests, context)
	Payload *string `json:"payload,omitempty"`
	// Sandbox test report produced by the run
	ReportJSON *string `json:"report_json,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationRunQuery when eager-loading is set.
	Edges        VerificationRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationRunEdges holds the relations/edges for other nodes in the graph.
type VerificationRunEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationRunEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationrun.FieldID, verificationrun.FieldProjectID, verificationrun.FieldUserID, verificationrun.FieldKind, verificationrun.FieldStatus, verificationrun.FieldPayload, verificationrun.FieldReportJSON, verificationrun.FieldErrorMessage, verificationrun.FieldPodID:
			values[i] = new(sql.NullString)
		case verificationrun.FieldCreatedAt, verificationrun.FieldStartedAt, verificationrun.FieldCompletedAt, verificationrun.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationRun fields.
func (_m *VerificationRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case verificationrun.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case verificationrun.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case verificationrun.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = verificationrun.Kind(value.String)
			}
		case verificationrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = verificationrun.Status(value.String)
			}
		case verificationrun.FieldPayload:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value.Valid {
				_m.Payload = new(string)
				*_m.Payload = value.String
			}
		case verificationrun.FieldReportJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_json", values[i])
			} else if value.Valid {
				_m.ReportJSON = new(string)
				*_m.ReportJSON = value.String
			}
		case verificationrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case verificationrun.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case verificationrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case verificationrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case verificationrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case verificationrun.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationRun.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the VerificationRun entity.
func (_m *VerificationRun) QueryProject() *ProjectQuery {
	return NewVerificationRunClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this VerificationRun.
// Note that you need to call VerificationRun.Unwrap() before calling this method if this VerificationRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationRun) Update() *VerificationRunUpdateOne {
	return NewVerificationRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationRun) Unwrap() *VerificationRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationRun) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Payload; v != nil {
		builder.WriteString("payload=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReportJSON; v != nil {
		builder.WriteString("report_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// VerificationRuns is a parsable slice of VerificationRun.
type VerificationRuns []*VerificationRun
