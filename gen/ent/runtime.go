// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/greentrust/esg-audit/db/ent/schema"
	"github.com/greentrust/esg-audit/gen/ent/auditrecord"
	"github.com/greentrust/esg-audit/gen/ent/invoicedocument"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditrecordFields := schema.AuditRecord{}.Fields()
	_ = auditrecordFields
	// auditrecordDescVerdict is the schema descriptor for verdict field.
	auditrecordDescVerdict := auditrecordFields[2].Descriptor()
	// auditrecord.VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	auditrecord.VerdictValidator = auditrecordDescVerdict.Validators[0].(func(string) error)
	// auditrecordDescRequiresReview is the schema descriptor for requires_review field.
	auditrecordDescRequiresReview := auditrecordFields[9].Descriptor()
	// auditrecord.DefaultRequiresReview holds the default value on creation for the requires_review field.
	auditrecord.DefaultRequiresReview = auditrecordDescRequiresReview.Default.(bool)
	// auditrecordDescStartedAt is the schema descriptor for started_at field.
	auditrecordDescStartedAt := auditrecordFields[14].Descriptor()
	// auditrecord.DefaultStartedAt holds the default value on creation for the started_at field.
	auditrecord.DefaultStartedAt = auditrecordDescStartedAt.Default.(func() time.Time)
	// auditrecordDescID is the schema descriptor for id field.
	auditrecordDescID := auditrecordFields[0].Descriptor()
	// auditrecord.DefaultID holds the default value on creation for the id field.
	auditrecord.DefaultID = auditrecordDescID.Default.(func() uuid.UUID)
	invoicedocumentFields := schema.InvoiceDocument{}.Fields()
	_ = invoicedocumentFields
	// invoicedocumentDescSourcePath is the schema descriptor for source_path field.
	invoicedocumentDescSourcePath := invoicedocumentFields[1].Descriptor()
	// invoicedocument.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	invoicedocument.SourcePathValidator = invoicedocumentDescSourcePath.Validators[0].(func(string) error)
	// invoicedocumentDescFileExt is the schema descriptor for file_ext field.
	invoicedocumentDescFileExt := invoicedocumentFields[2].Descriptor()
	// invoicedocument.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	invoicedocument.FileExtValidator = invoicedocumentDescFileExt.Validators[0].(func(string) error)
	// invoicedocumentDescContentHash is the schema descriptor for content_hash field.
	invoicedocumentDescContentHash := invoicedocumentFields[3].Descriptor()
	// invoicedocument.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	invoicedocument.ContentHashValidator = invoicedocumentDescContentHash.Validators[0].(func([]byte) error)
	// invoicedocumentDescIngestedAt is the schema descriptor for ingested_at field.
	invoicedocumentDescIngestedAt := invoicedocumentFields[5].Descriptor()
	// invoicedocument.DefaultIngestedAt holds the default value on creation for the ingested_at field.
	invoicedocument.DefaultIngestedAt = invoicedocumentDescIngestedAt.Default.(func() time.Time)
	// invoicedocumentDescID is the schema descriptor for id field.
	invoicedocumentDescID := invoicedocumentFields[0].Descriptor()
	// invoicedocument.DefaultID holds the default value on creation for the id field.
	invoicedocument.DefaultID = invoicedocumentDescID.Default.(func() uuid.UUID)
}
