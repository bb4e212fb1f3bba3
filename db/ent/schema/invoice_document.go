package schema

import (
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

type InvoiceDocument struct{ ent.Schema }

func (InvoiceDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_documents"},
	}
}

func (InvoiceDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("source_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Bytes("content_hash").NotEmpty(),
		field.String("raw_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("ingested_at").Default(time.Now),
	}
}

func (InvoiceDocument) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY audit records (re-audits keep history)
		edge.To("audits", AuditRecord.Type),
	}
}

func (InvoiceDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
	}
}
