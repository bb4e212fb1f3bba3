// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: audit/v1/audit.proto

package auditv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SubmitAuditRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitAuditRequest) Reset() {
	*x = SubmitAuditRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitAuditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitAuditRequest) ProtoMessage() {}

func (x *SubmitAuditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitAuditRequest.ProtoReflect.Descriptor instead.
func (*SubmitAuditRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitAuditRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type SubmitAuditResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Outcome        *AuditOutcome          `protobuf:"bytes,1,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SubmitAuditResponse) Reset() {
	*x = SubmitAuditResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitAuditResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitAuditResponse) ProtoMessage() {}

func (x *SubmitAuditResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitAuditResponse.ProtoReflect.Descriptor instead.
func (*SubmitAuditResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitAuditResponse) GetOutcome() *AuditOutcome {
	if x != nil {
		return x.Outcome
	}
	return nil
}

func (x *SubmitAuditResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *SubmitAuditResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

type SubmitDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDirectoryRequest) Reset() {
	*x = SubmitDirectoryRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDirectoryRequest) ProtoMessage() {}

func (x *SubmitDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDirectoryRequest.ProtoReflect.Descriptor instead.
func (*SubmitDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *SubmitDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type SubmitDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Outcomes      []*AuditOutcome        `protobuf:"bytes,6,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDirectoryResponse) Reset() {
	*x = SubmitDirectoryResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDirectoryResponse) ProtoMessage() {}

func (x *SubmitDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDirectoryResponse.ProtoReflect.Descriptor instead.
func (*SubmitDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *SubmitDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *SubmitDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *SubmitDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *SubmitDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *SubmitDirectoryResponse) GetOutcomes() []*AuditOutcome {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

type ListAuditRecordsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// empty matches every verdict
	Verdict string `protobuf:"bytes,1,opt,name=verdict,proto3" json:"verdict,omitempty"`
	// narrows to rows flagged for review when set
	RequiresReview *bool `protobuf:"varint,2,opt,name=requires_review,json=requiresReview,proto3,oneof" json:"requires_review,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListAuditRecordsRequest) Reset() {
	*x = ListAuditRecordsRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAuditRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAuditRecordsRequest) ProtoMessage() {}

func (x *ListAuditRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAuditRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListAuditRecordsRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{4}
}

func (x *ListAuditRecordsRequest) GetVerdict() string {
	if x != nil {
		return x.Verdict
	}
	return ""
}

func (x *ListAuditRecordsRequest) GetRequiresReview() bool {
	if x != nil && x.RequiresReview != nil {
		return *x.RequiresReview
	}
	return false
}

type ListAuditRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Outcomes      []*AuditOutcome        `protobuf:"bytes,1,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAuditRecordsResponse) Reset() {
	*x = ListAuditRecordsResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAuditRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAuditRecordsResponse) ProtoMessage() {}

func (x *ListAuditRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAuditRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListAuditRecordsResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{5}
}

func (x *ListAuditRecordsResponse) GetOutcomes() []*AuditOutcome {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

type ExportAuditsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Verdict        string                 `protobuf:"bytes,1,opt,name=verdict,proto3" json:"verdict,omitempty"`
	RequiresReview *bool                  `protobuf:"varint,2,opt,name=requires_review,json=requiresReview,proto3,oneof" json:"requires_review,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExportAuditsRequest) Reset() {
	*x = ExportAuditsRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditsRequest) ProtoMessage() {}

func (x *ExportAuditsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditsRequest.ProtoReflect.Descriptor instead.
func (*ExportAuditsRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{6}
}

func (x *ExportAuditsRequest) GetVerdict() string {
	if x != nil {
		return x.Verdict
	}
	return ""
}

func (x *ExportAuditsRequest) GetRequiresReview() bool {
	if x != nil && x.RequiresReview != nil {
		return *x.RequiresReview
	}
	return false
}

type ExportAuditsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditsResponse) Reset() {
	*x = ExportAuditsResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditsResponse) ProtoMessage() {}

func (x *ExportAuditsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditsResponse.ProtoReflect.Descriptor instead.
func (*ExportAuditsResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{7}
}

func (x *ExportAuditsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type AuditOutcome struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId          string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	SourcePath          string                 `protobuf:"bytes,3,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Verdict             string                 `protobuf:"bytes,4,opt,name=verdict,proto3" json:"verdict,omitempty"`
	TrustScore          float64                `protobuf:"fixed64,5,opt,name=trust_score,json=trustScore,proto3" json:"trust_score,omitempty"`
	Completeness        float64                `protobuf:"fixed64,6,opt,name=completeness,proto3" json:"completeness,omitempty"`
	VerificationQuality float64                `protobuf:"fixed64,7,opt,name=verification_quality,json=verificationQuality,proto3" json:"verification_quality,omitempty"`
	DisclosureStandards float64                `protobuf:"fixed64,8,opt,name=disclosure_standards,json=disclosureStandards,proto3" json:"disclosure_standards,omitempty"`
	DeviationPercent    *float64               `protobuf:"fixed64,9,opt,name=deviation_percent,json=deviationPercent,proto3,oneof" json:"deviation_percent,omitempty"`
	ExtractionMethod    string                 `protobuf:"bytes,10,opt,name=extraction_method,json=extractionMethod,proto3" json:"extraction_method,omitempty"`
	RequiresReview      bool                   `protobuf:"varint,11,opt,name=requires_review,json=requiresReview,proto3" json:"requires_review,omitempty"`
	Flags               []string               `protobuf:"bytes,12,rep,name=flags,proto3" json:"flags,omitempty"`
	FailureReason       string                 `protobuf:"bytes,13,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	StartedAt           string                 `protobuf:"bytes,14,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt          string                 `protobuf:"bytes,15,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *AuditOutcome) Reset() {
	*x = AuditOutcome{}
	mi := &file_audit_v1_audit_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditOutcome) ProtoMessage() {}

func (x *AuditOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditOutcome.ProtoReflect.Descriptor instead.
func (*AuditOutcome) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{8}
}

func (x *AuditOutcome) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AuditOutcome) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *AuditOutcome) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *AuditOutcome) GetVerdict() string {
	if x != nil {
		return x.Verdict
	}
	return ""
}

func (x *AuditOutcome) GetTrustScore() float64 {
	if x != nil {
		return x.TrustScore
	}
	return 0
}

func (x *AuditOutcome) GetCompleteness() float64 {
	if x != nil {
		return x.Completeness
	}
	return 0
}

func (x *AuditOutcome) GetVerificationQuality() float64 {
	if x != nil {
		return x.VerificationQuality
	}
	return 0
}

func (x *AuditOutcome) GetDisclosureStandards() float64 {
	if x != nil {
		return x.DisclosureStandards
	}
	return 0
}

func (x *AuditOutcome) GetDeviationPercent() float64 {
	if x != nil && x.DeviationPercent != nil {
		return *x.DeviationPercent
	}
	return 0
}

func (x *AuditOutcome) GetExtractionMethod() string {
	if x != nil {
		return x.ExtractionMethod
	}
	return ""
}

func (x *AuditOutcome) GetRequiresReview() bool {
	if x != nil {
		return x.RequiresReview
	}
	return false
}

func (x *AuditOutcome) GetFlags() []string {
	if x != nil {
		return x.Flags
	}
	return nil
}

func (x *AuditOutcome) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

func (x *AuditOutcome) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *AuditOutcome) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

var File_audit_v1_audit_proto protoreflect.FileDescriptor

const file_audit_v1_audit_proto_rawDesc = "" +
	"\n" +
	"\x14audit/v1/audit.proto\x12\baudit.v1\"(\n" +
	"\x12SubmitAuditRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\x95\x01\n" +
	"\x13SubmitAuditResponse\x120\n" +
	"\aoutcome\x18\x01 \x01(\v2\x16.audit.v1.AuditOutcomeR\aoutcome\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\"V\n" +
	"\x16SubmitDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xdb\x01\n" +
	"\x17SubmitDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x122\n" +
	"\boutcomes\x18\x06 \x03(\v2\x16.audit.v1.AuditOutcomeR\boutcomes\"u\n" +
	"\x17ListAuditRecordsRequest\x12\x18\n" +
	"\averdict\x18\x01 \x01(\tR\averdict\x12,\n" +
	"\x0frequires_review\x18\x02 \x01(\bH\x00R\x0erequiresReview\x88\x01\x01B\x12\n" +
	"\x10_requires_review\"N\n" +
	"\x18ListAuditRecordsResponse\x122\n" +
	"\boutcomes\x18\x01 \x03(\v2\x16.audit.v1.AuditOutcomeR\boutcomes\"q\n" +
	"\x13ExportAuditsRequest\x12\x18\n" +
	"\averdict\x18\x01 \x01(\tR\averdict\x12,\n" +
	"\x0frequires_review\x18\x02 \x01(\bH\x00R\x0erequiresReview\x88\x01\x01B\x12\n" +
	"\x10_requires_review\"*\n" +
	"\x14ExportAuditsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xc0\x04\n" +
	"\fAuditOutcome\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vsource_path\x18\x03 \x01(\tR\n" +
	"sourcePath\x12\x18\n" +
	"\averdict\x18\x04 \x01(\tR\averdict\x12\x1f\n" +
	"\vtrust_score\x18\x05 \x01(\x01R\n" +
	"trustScore\x12\"\n" +
	"\fcompleteness\x18\x06 \x01(\x01R\fcompleteness\x121\n" +
	"\x14verification_quality\x18\a \x01(\x01R\x13verificationQuality\x121\n" +
	"\x14disclosure_standards\x18\b \x01(\x01R\x13disclosureStandards\x120\n" +
	"\x11deviation_percent\x18\t \x01(\x01H\x00R\x10deviationPercent\x88\x01\x01\x12+\n" +
	"\x11extraction_method\x18\n" +
	" \x01(\tR\x10extractionMethod\x12'\n" +
	"\x0frequires_review\x18\v \x01(\bR\x0erequiresReview\x12\x14\n" +
	"\x05flags\x18\f \x03(\tR\x05flags\x12%\n" +
	"\x0efailure_reason\x18\r \x01(\tR\rfailureReason\x12\x1d\n" +
	"\n" +
	"started_at\x18\x0e \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x0f \x01(\tR\n" +
	"finishedAtB\x14\n" +
	"\x12_deviation_percent2\xdc\x02\n" +
	"\fAuditService\x12J\n" +
	"\vSubmitAudit\x12\x1c.audit.v1.SubmitAuditRequest\x1a\x1d.audit.v1.SubmitAuditResponse\x12V\n" +
	"\x0fSubmitDirectory\x12 .audit.v1.SubmitDirectoryRequest\x1a!.audit.v1.SubmitDirectoryResponse\x12Y\n" +
	"\x10ListAuditRecords\x12!.audit.v1.ListAuditRecordsRequest\x1a\".audit.v1.ListAuditRecordsResponse\x12M\n" +
	"\fExportAudits\x12\x1d.audit.v1.ExportAuditsRequest\x1a\x1e.audit.v1.ExportAuditsResponseB<Z:github.com/greentrust/esg-audit/gen/proto/audit/v1;auditv1b\x06proto3"

var (
	file_audit_v1_audit_proto_rawDescOnce sync.Once
	file_audit_v1_audit_proto_rawDescData []byte
)

func file_audit_v1_audit_proto_rawDescGZIP() []byte {
	file_audit_v1_audit_proto_rawDescOnce.Do(func() {
		file_audit_v1_audit_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_audit_v1_audit_proto_rawDesc), len(file_audit_v1_audit_proto_rawDesc)))
	})
	return file_audit_v1_audit_proto_rawDescData
}

var file_audit_v1_audit_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_audit_v1_audit_proto_goTypes = []any{
	(*SubmitAuditRequest)(nil),       // 0: audit.v1.SubmitAuditRequest
	(*SubmitAuditResponse)(nil),      // 1: audit.v1.SubmitAuditResponse
	(*SubmitDirectoryRequest)(nil),   // 2: audit.v1.SubmitDirectoryRequest
	(*SubmitDirectoryResponse)(nil),  // 3: audit.v1.SubmitDirectoryResponse
	(*ListAuditRecordsRequest)(nil),  // 4: audit.v1.ListAuditRecordsRequest
	(*ListAuditRecordsResponse)(nil), // 5: audit.v1.ListAuditRecordsResponse
	(*ExportAuditsRequest)(nil),      // 6: audit.v1.ExportAuditsRequest
	(*ExportAuditsResponse)(nil),     // 7: audit.v1.ExportAuditsResponse
	(*AuditOutcome)(nil),             // 8: audit.v1.AuditOutcome
}
var file_audit_v1_audit_proto_depIdxs = []int32{
	8, // 0: audit.v1.SubmitAuditResponse.outcome:type_name -> audit.v1.AuditOutcome
	8, // 1: audit.v1.SubmitDirectoryResponse.outcomes:type_name -> audit.v1.AuditOutcome
	8, // 2: audit.v1.ListAuditRecordsResponse.outcomes:type_name -> audit.v1.AuditOutcome
	0, // 3: audit.v1.AuditService.SubmitAudit:input_type -> audit.v1.SubmitAuditRequest
	2, // 4: audit.v1.AuditService.SubmitDirectory:input_type -> audit.v1.SubmitDirectoryRequest
	4, // 5: audit.v1.AuditService.ListAuditRecords:input_type -> audit.v1.ListAuditRecordsRequest
	6, // 6: audit.v1.AuditService.ExportAudits:input_type -> audit.v1.ExportAuditsRequest
	1, // 7: audit.v1.AuditService.SubmitAudit:output_type -> audit.v1.SubmitAuditResponse
	3, // 8: audit.v1.AuditService.SubmitDirectory:output_type -> audit.v1.SubmitDirectoryResponse
	5, // 9: audit.v1.AuditService.ListAuditRecords:output_type -> audit.v1.ListAuditRecordsResponse
	7, // 10: audit.v1.AuditService.ExportAudits:output_type -> audit.v1.ExportAuditsResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_audit_v1_audit_proto_init() }
func file_audit_v1_audit_proto_init() {
	if File_audit_v1_audit_proto != nil {
		return
	}
	file_audit_v1_audit_proto_msgTypes[4].OneofWrappers = []any{}
	file_audit_v1_audit_proto_msgTypes[6].OneofWrappers = []any{}
	file_audit_v1_audit_proto_msgTypes[8].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_audit_v1_audit_proto_rawDesc), len(file_audit_v1_audit_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_audit_v1_audit_proto_goTypes,
		DependencyIndexes: file_audit_v1_audit_proto_depIdxs,
		MessageInfos:      file_audit_v1_audit_proto_msgTypes,
	}.Build()
	File_audit_v1_audit_proto = out.File
	file_audit_v1_audit_proto_goTypes = nil
	file_audit_v1_audit_proto_depIdxs = nil
}
