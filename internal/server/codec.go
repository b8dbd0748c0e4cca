package server

import (
	"github.com/goccy/go-json"
	"google.golang.org/grpc/encoding"
)

// codecName is the gRPC content subtype of the calculator service
// ("application/grpc+json").
const codecName = "json"

// jsonCodec carries the calculator's plain Go structs over gRPC as JSON.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return codecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
