package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type AuditRecord struct{ ent.Schema }

func (AuditRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_records"},
	}
}

func (AuditRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.String("verdict").NotEmpty(),
		field.Float("trust_score").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("completeness").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("verification_quality").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("disclosure_standards").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("deviation_percent").Optional().Nillable(),
		field.String("extraction_method").Optional().Nillable(),
		field.Bool("requires_review").Default(false),
		field.String("failure_reason").Optional().Nillable(),
		field.JSON("flags", json.RawMessage{}).Optional(),
		field.JSON("invoice", json.RawMessage{}).Optional(),
		field.JSON("history", json.RawMessage{}).Optional(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (AuditRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", InvoiceDocument.Type).
			Ref("audits").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (AuditRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("verdict", "started_at"),
	}
}
