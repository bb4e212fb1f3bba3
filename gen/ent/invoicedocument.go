// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/greentrust/esg-audit/gen/ent/invoicedocument"
)

// InvoiceDocument is the model entity for the InvoiceDocument schema.
type InvoiceDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// IngestedAt holds the value of the "ingested_at" field.
	IngestedAt time.Time `json:"ingested_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceDocumentQuery when eager-loading is set.
	Edges        InvoiceDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceDocumentEdges holds the relations/edges for other nodes in the graph.
type InvoiceDocumentEdges struct {
	// Audits holds the value of the audits edge.
	Audits []*AuditRecord `json:"audits,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditsOrErr returns the Audits value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceDocumentEdges) AuditsOrErr() ([]*AuditRecord, error) {
	if e.loadedTypes[0] {
		return e.Audits, nil
	}
	return nil, &NotLoadedError{edge: "audits"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InvoiceDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoicedocument.FieldContentHash:
			values[i] = new([]byte)
		case invoicedocument.FieldSourcePath, invoicedocument.FieldFileExt, invoicedocument.FieldRawText:
			values[i] = new(sql.NullString)
		case invoicedocument.FieldIngestedAt:
			values[i] = new(sql.NullTime)
		case invoicedocument.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InvoiceDocument fields.
func (_m *InvoiceDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoicedocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoicedocument.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case invoicedocument.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case invoicedocument.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case invoicedocument.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case invoicedocument.FieldIngestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ingested_at", values[i])
			} else if value.Valid {
				_m.IngestedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InvoiceDocument.
// This includes values selected through modifiers, order, etc.
func (_m *InvoiceDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudits queries the "audits" edge of the InvoiceDocument entity.
func (_m *InvoiceDocument) QueryAudits() *AuditRecordQuery {
	return NewInvoiceDocumentClient(_m.config).QueryAudits(_m)
}

// Update returns a builder for updating this InvoiceDocument.
// Note that you need to call InvoiceDocument.Unwrap() before calling this method if this InvoiceDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InvoiceDocument) Update() *InvoiceDocumentUpdateOne {
	return NewInvoiceDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InvoiceDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InvoiceDocument) Unwrap() *InvoiceDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InvoiceDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InvoiceDocument) String() string {
	var builder strings.Builder
	builder.WriteString("InvoiceDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("ingested_at=")
	builder.WriteString(_m.IngestedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InvoiceDocuments is a parsable slice of InvoiceDocument.
type InvoiceDocuments []*InvoiceDocument
