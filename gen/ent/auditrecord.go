// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/greentrust/esg-audit/gen/ent/auditrecord"
	"github.com/greentrust/esg-audit/gen/ent/invoicedocument"
)

// AuditRecord is the model entity for the AuditRecord schema.
type AuditRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Verdict holds the value of the "verdict" field.
	Verdict string `json:"verdict,omitempty"`
	// TrustScore holds the value of the "trust_score" field.
	TrustScore float64 `json:"trust_score,omitempty"`
	// Completeness holds the value of the "completeness" field.
	Completeness float64 `json:"completeness,omitempty"`
	// VerificationQuality holds the value of the "verification_quality" field.
	VerificationQuality float64 `json:"verification_quality,omitempty"`
	// DisclosureStandards holds the value of the "disclosure_standards" field.
	DisclosureStandards float64 `json:"disclosure_standards,omitempty"`
	// DeviationPercent holds the value of the "deviation_percent" field.
	DeviationPercent *float64 `json:"deviation_percent,omitempty"`
	// ExtractionMethod holds the value of the "extraction_method" field.
	ExtractionMethod *string `json:"extraction_method,omitempty"`
	// RequiresReview holds the value of the "requires_review" field.
	RequiresReview bool `json:"requires_review,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// Flags holds the value of the "flags" field.
	Flags json.RawMessage `json:"flags,omitempty"`
	// Invoice holds the value of the "invoice" field.
	Invoice json.RawMessage `json:"invoice,omitempty"`
	// History holds the value of the "history" field.
	History json.RawMessage `json:"history,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditRecordQuery when eager-loading is set.
	Edges        AuditRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditRecordEdges holds the relations/edges for other nodes in the graph.
type AuditRecordEdges struct {
	// Document holds the value of the document edge.
	Document *InvoiceDocument `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditRecordEdges) DocumentOrErr() (*InvoiceDocument, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: invoicedocument.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditrecord.FieldFlags, auditrecord.FieldInvoice, auditrecord.FieldHistory:
			values[i] = new([]byte)
		case auditrecord.FieldRequiresReview:
			values[i] = new(sql.NullBool)
		case auditrecord.FieldTrustScore, auditrecord.FieldCompleteness, auditrecord.FieldVerificationQuality, auditrecord.FieldDisclosureStandards, auditrecord.FieldDeviationPercent:
			values[i] = new(sql.NullFloat64)
		case auditrecord.FieldVerdict, auditrecord.FieldExtractionMethod, auditrecord.FieldFailureReason:
			values[i] = new(sql.NullString)
		case auditrecord.FieldStartedAt, auditrecord.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case auditrecord.FieldID, auditrecord.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditRecord fields.
func (_m *AuditRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case auditrecord.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case auditrecord.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = value.String
			}
		case auditrecord.FieldTrustScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field trust_score", values[i])
			} else if value.Valid {
				_m.TrustScore = value.Float64
			}
		case auditrecord.FieldCompleteness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completeness", values[i])
			} else if value.Valid {
				_m.Completeness = value.Float64
			}
		case auditrecord.FieldVerificationQuality:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field verification_quality", values[i])
			} else if value.Valid {
				_m.VerificationQuality = value.Float64
			}
		case auditrecord.FieldDisclosureStandards:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field disclosure_standards", values[i])
			} else if value.Valid {
				_m.DisclosureStandards = value.Float64
			}
		case auditrecord.FieldDeviationPercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field deviation_percent", values[i])
			} else if value.Valid {
				_m.DeviationPercent = new(float64)
				*_m.DeviationPercent = value.Float64
			}
		case auditrecord.FieldExtractionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_method", values[i])
			} else if value.Valid {
				_m.ExtractionMethod = new(string)
				*_m.ExtractionMethod = value.String
			}
		case auditrecord.FieldRequiresReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_review", values[i])
			} else if value.Valid {
				_m.RequiresReview = value.Bool
			}
		case auditrecord.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case auditrecord.FieldFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Flags); err != nil {
					return fmt.Errorf("unmarshal field flags: %w", err)
				}
			}
		case auditrecord.FieldInvoice:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field invoice", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Invoice); err != nil {
					return fmt.Errorf("unmarshal field invoice: %w", err)
				}
			}
		case auditrecord.FieldHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.History); err != nil {
					return fmt.Errorf("unmarshal field history: %w", err)
				}
			}
		case auditrecord.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case auditrecord.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AuditRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the AuditRecord entity.
func (_m *AuditRecord) QueryDocument() *InvoiceDocumentQuery {
	return NewAuditRecordClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this AuditRecord.
// Note that you need to call AuditRecord.Unwrap() before calling this method if this AuditRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditRecord) Update() *AuditRecordUpdateOne {
	return NewAuditRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditRecord) Unwrap() *AuditRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AuditRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(_m.Verdict)
	builder.WriteString(", ")
	builder.WriteString("trust_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrustScore))
	builder.WriteString(", ")
	builder.WriteString("completeness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completeness))
	builder.WriteString(", ")
	builder.WriteString("verification_quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerificationQuality))
	builder.WriteString(", ")
	builder.WriteString("disclosure_standards=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisclosureStandards))
	builder.WriteString(", ")
	if v := _m.DeviationPercent; v != nil {
		builder.WriteString("deviation_percent=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractionMethod; v != nil {
		builder.WriteString("extraction_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("requires_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresReview))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flags))
	builder.WriteString(", ")
	builder.WriteString("invoice=")
	builder.WriteString(fmt.Sprintf("%v", _m.Invoice))
	builder.WriteString(", ")
	builder.WriteString("history=")
	builder.WriteString(fmt.Sprintf("%v", _m.History))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AuditRecords is a parsable slice of AuditRecord.
type AuditRecords []*AuditRecord
