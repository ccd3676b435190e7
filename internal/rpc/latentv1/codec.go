// Package latentv1 defines the planner wire surface. The service is described
// by hand rather than generated from a .proto file: messages are plain
// structs carried over gRPC with a JSON codec registered under the "json"
// content-subtype. Client stubs attach the subtype on every call, so both
// peers only need this package imported.
package latentv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype used by all planner RPCs.
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
