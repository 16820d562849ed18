package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VerificationRun holds the schema definition for one queued sandbox job:
// deploy the project archive, exercise its endpoints, repair if asked.
// Workers claim pending runs FIFO with FOR UPDATE SKIP LOCKED.
type VerificationRun struct {
	ent.Schema
}

// Fields of the VerificationRun.
func (VerificationRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Denormalized owner for tenancy checks on status reads"),
		field.Enum("kind").
			Values("verify", "repair"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Text("payload").
			Optional().
			Nillable().
			Comment("Repair request JSON (failed tests, context)"),
		field.Text("report_json").
			Optional().
			Nillable().
			Comment("Sandbox test report produced by the run"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the VerificationRun.
func (VerificationRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("verification_runs").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the VerificationRun.
func (VerificationRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("project_id", "created_at"),
	}
}
