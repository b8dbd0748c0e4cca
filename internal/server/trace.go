package server

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// TraceIDMetadataKey is the gRPC metadata key carrying the request trace id.
const TraceIDMetadataKey = "x-trace-id"

// fieldTraceID is the log field name for the trace id.
const fieldTraceID = "trace_id"

// traceID returns the caller's trace id from incoming metadata, or a new UUID.
// The id is echoed back in the response header.
func (s *Server) traceID(ctx context.Context) string {
	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceIDMetadataKey); len(values) > 0 && values[0] != "" {
			id = values[0]
		}
	}
	if id == "" {
		id = uuid.New().String()
	}

	// SetHeader fails outside a gRPC call (e.g. direct use in tests); that is harmless.
	_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDMetadataKey, id))
	return id
}
