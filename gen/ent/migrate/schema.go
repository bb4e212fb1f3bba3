// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditRecordsColumns holds the columns for the "audit_records" table.
	AuditRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "verdict", Type: field.TypeString},
		{Name: "trust_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "completeness", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "verification_quality", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "disclosure_standards", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "deviation_percent", Type: field.TypeFloat64, Nullable: true},
		{Name: "extraction_method", Type: field.TypeString, Nullable: true},
		{Name: "requires_review", Type: field.TypeBool, Default: false},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "flags", Type: field.TypeJSON, Nullable: true},
		{Name: "invoice", Type: field.TypeJSON, Nullable: true},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// AuditRecordsTable holds the schema information for the "audit_records" table.
	AuditRecordsTable = &schema.Table{
		Name:       "audit_records",
		Columns:    AuditRecordsColumns,
		PrimaryKey: []*schema.Column{AuditRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_records_invoice_documents_audits",
				Columns:    []*schema.Column{AuditRecordsColumns[15]},
				RefColumns: []*schema.Column{InvoiceDocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditrecord_document_id",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[15]},
			},
			{
				Name:    "auditrecord_verdict_started_at",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[1], AuditRecordsColumns[13]},
			},
		},
	}
	// InvoiceDocumentsColumns holds the columns for the "invoice_documents" table.
	InvoiceDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes},
		{Name: "raw_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ingested_at", Type: field.TypeTime},
	}
	// InvoiceDocumentsTable holds the schema information for the "invoice_documents" table.
	InvoiceDocumentsTable = &schema.Table{
		Name:       "invoice_documents",
		Columns:    InvoiceDocumentsColumns,
		PrimaryKey: []*schema.Column{InvoiceDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoicedocument_content_hash",
				Unique:  true,
				Columns: []*schema.Column{InvoiceDocumentsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditRecordsTable,
		InvoiceDocumentsTable,
	}
)

func init() {
	AuditRecordsTable.ForeignKeys[0].RefTable = InvoiceDocumentsTable
	AuditRecordsTable.Annotation = &entsql.Annotation{
		Table: "audit_records",
	}
	InvoiceDocumentsTable.Annotation = &entsql.Annotation{
		Table: "invoice_documents",
	}
}
