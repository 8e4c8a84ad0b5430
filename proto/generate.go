// Package proto holds the wire definition for the model sidecar; the Go
// bindings are generated.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative lingqian.proto
