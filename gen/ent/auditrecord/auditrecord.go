// Code generated by ent, DO NOT EDIT.

package auditrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the auditrecord type in the database.
	Label = "audit_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldTrustScore holds the string denoting the trust_score field in the database.
	FieldTrustScore = "trust_score"
	// FieldCompleteness holds the string denoting the completeness field in the database.
	FieldCompleteness = "completeness"
	// FieldVerificationQuality holds the string denoting the verification_quality field in the database.
	FieldVerificationQuality = "verification_quality"
	// FieldDisclosureStandards holds the string denoting the disclosure_standards field in the database.
	FieldDisclosureStandards = "disclosure_standards"
	// FieldDeviationPercent holds the string denoting the deviation_percent field in the database.
	FieldDeviationPercent = "deviation_percent"
	// FieldExtractionMethod holds the string denoting the extraction_method field in the database.
	FieldExtractionMethod = "extraction_method"
	// FieldRequiresReview holds the string denoting the requires_review field in the database.
	FieldRequiresReview = "requires_review"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldFlags holds the string denoting the flags field in the database.
	FieldFlags = "flags"
	// FieldInvoice holds the string denoting the invoice field in the database.
	FieldInvoice = "invoice"
	// FieldHistory holds the string denoting the history field in the database.
	FieldHistory = "history"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the auditrecord in the database.
	Table = "audit_records"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "audit_records"
	// DocumentInverseTable is the table name for the InvoiceDocument entity.
	// It exists in this package in order to avoid circular dependency with the "invoicedocument" package.
	DocumentInverseTable = "invoice_documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for auditrecord fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldVerdict,
	FieldTrustScore,
	FieldCompleteness,
	FieldVerificationQuality,
	FieldDisclosureStandards,
	FieldDeviationPercent,
	FieldExtractionMethod,
	FieldRequiresReview,
	FieldFailureReason,
	FieldFlags,
	FieldInvoice,
	FieldHistory,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	VerdictValidator func(string) error
	// DefaultRequiresReview holds the default value on creation for the "requires_review" field.
	DefaultRequiresReview bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AuditRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByTrustScore orders the results by the trust_score field.
func ByTrustScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrustScore, opts...).ToFunc()
}

// ByCompleteness orders the results by the completeness field.
func ByCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleteness, opts...).ToFunc()
}

// ByVerificationQuality orders the results by the verification_quality field.
func ByVerificationQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationQuality, opts...).ToFunc()
}

// ByDisclosureStandards orders the results by the disclosure_standards field.
func ByDisclosureStandards(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisclosureStandards, opts...).ToFunc()
}

// ByDeviationPercent orders the results by the deviation_percent field.
func ByDeviationPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviationPercent, opts...).ToFunc()
}

// ByExtractionMethod orders the results by the extraction_method field.
func ByExtractionMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionMethod, opts...).ToFunc()
}

// ByRequiresReview orders the results by the requires_review field.
func ByRequiresReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresReview, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
