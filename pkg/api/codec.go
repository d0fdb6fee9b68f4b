package api

import "encoding/json"

// JSONCodec serializes the plain-struct wire types with encoding/json. It
// replaces Connect's default proto-JSON codec, which only accepts
// proto.Message values. Register it on both handlers and clients with
// connect.WithCodec.
type JSONCodec struct{}

// Name returns "json" so the connect protocol negotiates the
// application/json content type.
func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (JSONCodec) Unmarshal(data []byte, message any) error {
	return json.Unmarshal(data, message)
}
