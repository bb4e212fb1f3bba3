// Package proto holds the wire definitions for the audit API. Generated
// stubs land under gen/proto and are not committed.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative audit/v1/audit.proto
