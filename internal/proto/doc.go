// Package proto holds the timevault.v1 messages and VaultService stubs
// generated from vault.proto.
package proto

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/proto/vault.proto
