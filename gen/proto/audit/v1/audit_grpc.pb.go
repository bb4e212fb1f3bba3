// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: audit/v1/audit.proto

package auditv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AuditService_SubmitAudit_FullMethodName      = "/audit.v1.AuditService/SubmitAudit"
	AuditService_SubmitDirectory_FullMethodName  = "/audit.v1.AuditService/SubmitDirectory"
	AuditService_ListAuditRecords_FullMethodName = "/audit.v1.AuditService/ListAuditRecords"
	AuditService_ExportAudits_FullMethodName     = "/audit.v1.AuditService/ExportAudits"
)

// AuditServiceClient is the client API for AuditService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AuditService runs freight invoices through the audit pipeline and exposes
// stored outcomes.
type AuditServiceClient interface {
	// SubmitAudit ingests a single invoice text file and audits it.
	SubmitAudit(ctx context.Context, in *SubmitAuditRequest, opts ...grpc.CallOption) (*SubmitAuditResponse, error)
	// SubmitDirectory ingests every matching file under a root and audits them.
	SubmitDirectory(ctx context.Context, in *SubmitDirectoryRequest, opts ...grpc.CallOption) (*SubmitDirectoryResponse, error)
	// ListAuditRecords returns stored audit outcomes, optionally filtered.
	ListAuditRecords(ctx context.Context, in *ListAuditRecordsRequest, opts ...grpc.CallOption) (*ListAuditRecordsResponse, error)
	// ExportAudits renders stored audit outcomes as an XLSX workbook.
	ExportAudits(ctx context.Context, in *ExportAuditsRequest, opts ...grpc.CallOption) (*ExportAuditsResponse, error)
}

type auditServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuditServiceClient(cc grpc.ClientConnInterface) AuditServiceClient {
	return &auditServiceClient{cc}
}

func (c *auditServiceClient) SubmitAudit(ctx context.Context, in *SubmitAuditRequest, opts ...grpc.CallOption) (*SubmitAuditResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitAuditResponse)
	err := c.cc.Invoke(ctx, AuditService_SubmitAudit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *auditServiceClient) SubmitDirectory(ctx context.Context, in *SubmitDirectoryRequest, opts ...grpc.CallOption) (*SubmitDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDirectoryResponse)
	err := c.cc.Invoke(ctx, AuditService_SubmitDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *auditServiceClient) ListAuditRecords(ctx context.Context, in *ListAuditRecordsRequest, opts ...grpc.CallOption) (*ListAuditRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAuditRecordsResponse)
	err := c.cc.Invoke(ctx, AuditService_ListAuditRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *auditServiceClient) ExportAudits(ctx context.Context, in *ExportAuditsRequest, opts ...grpc.CallOption) (*ExportAuditsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportAuditsResponse)
	err := c.cc.Invoke(ctx, AuditService_ExportAudits_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AuditServiceServer is the server API for AuditService service.
// All implementations must embed UnimplementedAuditServiceServer
// for forward compatibility.
//
// AuditService runs freight invoices through the audit pipeline and exposes
// stored outcomes.
type AuditServiceServer interface {
	// SubmitAudit ingests a single invoice text file and audits it.
	SubmitAudit(context.Context, *SubmitAuditRequest) (*SubmitAuditResponse, error)
	// SubmitDirectory ingests every matching file under a root and audits them.
	SubmitDirectory(context.Context, *SubmitDirectoryRequest) (*SubmitDirectoryResponse, error)
	// ListAuditRecords returns stored audit outcomes, optionally filtered.
	ListAuditRecords(context.Context, *ListAuditRecordsRequest) (*ListAuditRecordsResponse, error)
	// ExportAudits renders stored audit outcomes as an XLSX workbook.
	ExportAudits(context.Context, *ExportAuditsRequest) (*ExportAuditsResponse, error)
	mustEmbedUnimplementedAuditServiceServer()
}

// UnimplementedAuditServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAuditServiceServer struct{}

func (UnimplementedAuditServiceServer) SubmitAudit(context.Context, *SubmitAuditRequest) (*SubmitAuditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitAudit not implemented")
}
func (UnimplementedAuditServiceServer) SubmitDirectory(context.Context, *SubmitDirectoryRequest) (*SubmitDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDirectory not implemented")
}
func (UnimplementedAuditServiceServer) ListAuditRecords(context.Context, *ListAuditRecordsRequest) (*ListAuditRecordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAuditRecords not implemented")
}
func (UnimplementedAuditServiceServer) ExportAudits(context.Context, *ExportAuditsRequest) (*ExportAuditsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportAudits not implemented")
}
func (UnimplementedAuditServiceServer) mustEmbedUnimplementedAuditServiceServer() {}
func (UnimplementedAuditServiceServer) testEmbeddedByValue()                      {}

// UnsafeAuditServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AuditServiceServer will
// result in compilation errors.
type UnsafeAuditServiceServer interface {
	mustEmbedUnimplementedAuditServiceServer()
}

func RegisterAuditServiceServer(s grpc.ServiceRegistrar, srv AuditServiceServer) {
	// If the following call pancis, it indicates UnimplementedAuditServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AuditService_ServiceDesc, srv)
}

func _AuditService_SubmitAudit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitAuditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditServiceServer).SubmitAudit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuditService_SubmitAudit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditServiceServer).SubmitAudit(ctx, req.(*SubmitAuditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuditService_SubmitDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditServiceServer).SubmitDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuditService_SubmitDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditServiceServer).SubmitDirectory(ctx, req.(*SubmitDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuditService_ListAuditRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAuditRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditServiceServer).ListAuditRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuditService_ListAuditRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditServiceServer).ListAuditRecords(ctx, req.(*ListAuditRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuditService_ExportAudits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportAuditsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditServiceServer).ExportAudits(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuditService_ExportAudits_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditServiceServer).ExportAudits(ctx, req.(*ExportAuditsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AuditService_ServiceDesc is the grpc.ServiceDesc for AuditService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AuditService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "audit.v1.AuditService",
	HandlerType: (*AuditServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitAudit",
			Handler:    _AuditService_SubmitAudit_Handler,
		},
		{
			MethodName: "SubmitDirectory",
			Handler:    _AuditService_SubmitDirectory_Handler,
		},
		{
			MethodName: "ListAuditRecords",
			Handler:    _AuditService_ListAuditRecords_Handler,
		},
		{
			MethodName: "ExportAudits",
			Handler:    _AuditService_ExportAudits_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "audit/v1/audit.proto",
}
