package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for a generation project: one prompt
// (possibly refined over time), one spec, one archive. The status enum is
// the pipeline's state machine; every stage boundary is a single update to
// this row.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("project_name").
			NotEmpty(),
		field.Text("prompt").
			Comment("Latest natural-language request; refinements overwrite it"),
		field.Enum("status").
			Values("pending", "generating", "awaiting_verification", "completed", "failed").
			Default("pending"),
		field.String("model_used").
			Optional().
			Nillable().
			Comment("Model that produced the accepted spec"),
		field.Text("spec_json").
			Optional().
			Nillable(),
		field.Text("validation_json").
			Optional().
			Nillable().
			Comment("Reviewer output (errors + warnings)"),
		field.Text("verification_json").
			Optional().
			Nillable().
			Comment("Deploy verification report, external or sandbox"),
		field.String("zip_path").
			Optional().
			Nillable().
			Comment("Archive location inside user storage"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("projects").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("threads", Thread.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("verification_runs", VerificationRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("status"),
	}
}
