package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for platform accounts. Everything a
// user owns (projects, documents) hangs off this entity and is scoped by
// it on every read.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("password_hash").
			Sensitive().
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("projects", Project.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("documents", Document.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
