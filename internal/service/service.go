// Package service implements the Tripmate RPC services on top of
// storage.Store. Handlers exchange the plain-struct wire types from pkg/api
// using a JSON codec instead of generated protobuf code.
package service

import (
	"connectrpc.com/connect"

	"github.com/nvelez/tripmate/pkg/api"
)

// withJSONCodec prepends the shared JSON codec so caller-supplied options
// can still override other handler settings.
func withJSONCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
}
