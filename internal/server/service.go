// Package server exposes the landed-cost engine as the gRPC service
// landedcost.v1.CalculatorService. Messages are the calculator's Go types
// encoded as JSON (content subtype "json").
package server

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/rshade/landedcost/internal/calculator"
	"github.com/rshade/landedcost/internal/metrics"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "landedcost.v1.CalculatorService"

const (
	calculateMethod    = "/" + ServiceName + "/Calculate"
	requirementsMethod = "/" + ServiceName + "/Requirements"
)

// RequirementsRequest asks for a country's form metadata.
type RequirementsRequest struct {
	Country string `json:"country"`
}

// CalculatorServer is the server API of landedcost.v1.CalculatorService.
type CalculatorServer interface {
	Calculate(ctx context.Context, in *calculator.Inputs) (*calculator.FullOutput, error)
	Requirements(ctx context.Context, req *RequirementsRequest) (*calculator.Requirements, error)
}

// Server implements CalculatorServer on top of a calculator.Engine.
type Server struct {
	engine  *calculator.Engine
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// New creates a Server. m may be nil to disable metrics.
func New(engine *calculator.Engine, m *metrics.Metrics, logger zerolog.Logger) *Server {
	return &Server{
		engine:  engine,
		metrics: m,
		logger:  logger.With().Str("component", "server").Logger(),
	}
}

// Calculate runs one landed-cost calculation.
func (s *Server) Calculate(ctx context.Context, in *calculator.Inputs) (*calculator.FullOutput, error) {
	traceID := s.traceID(ctx)
	log := s.logger.With().Str(fieldTraceID, traceID).Logger()

	if in == nil {
		in = &calculator.Inputs{}
	}
	country := string(in.Country)

	start := time.Now()
	out, err := s.engine.Calculate(*in)
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.ObserveError(countryLabel(country, err), errorReason(err))
		log.Info().Str("country", country).Err(err).Msg("calculation rejected")
		return nil, s.toStatus(traceID, err)
	}

	s.metrics.ObserveSuccess(string(out.Country), elapsed, out.LandedCost, out.DutyFallback)
	log.Info().
		Str("country", string(out.Country)).
		Float64("landed_cost", out.LandedCost).
		Bool("duty_fallback", out.DutyFallback).
		Dur("elapsed", elapsed).
		Msg("calculation served")
	return out, nil
}

// Requirements returns form metadata for the requested country.
func (s *Server) Requirements(ctx context.Context, req *RequirementsRequest) (*calculator.Requirements, error) {
	traceID := s.traceID(ctx)
	if req == nil {
		req = &RequirementsRequest{}
	}
	r, err := s.engine.Requirements(req.Country)
	if err != nil {
		return nil, s.toStatus(traceID, err)
	}
	return &r, nil
}

// unsupportedCountryLabel replaces unknown country codes in metric labels.
const unsupportedCountryLabel = "unsupported"

// countryLabel returns a metric label drawn from the supported country codes
// only, so client input cannot create new series.
func countryLabel(country string, err error) string {
	if errors.Is(err, calculator.ErrUnsupportedCountry) {
		return unsupportedCountryLabel
	}
	c, parseErr := calculator.ParseCountry(country)
	if parseErr != nil {
		return unsupportedCountryLabel
	}
	return string(c)
}

// errorReason maps an engine error to a low-cardinality metric label.
func errorReason(err error) string {
	switch {
	case errors.Is(err, calculator.ErrUnsupportedCountry):
		return "unsupported_country"
	case errors.Is(err, calculator.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}

// ServiceDesc describes landedcost.v1.CalculatorService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Calculate", Handler: calculateHandler},
		{MethodName: "Requirements", Handler: requirementsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "landedcost/v1/calculator",
}

func calculateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(calculator.Inputs)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Calculate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: calculateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CalculatorServer).Calculate(ctx, req.(*calculator.Inputs))
	}
	return interceptor(ctx, in, info, handler)
}

func requirementsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RequirementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Requirements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: requirementsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CalculatorServer).Requirements(ctx, req.(*RequirementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NewGRPCServer returns a grpc.Server with the calculator and the standard
// health service registered. The health status of ServiceName is SERVING.
func NewGRPCServer(s *Server, opts ...grpc.ServerOption) *grpc.Server {
	gs := grpc.NewServer(opts...)
	gs.RegisterService(&ServiceDesc, s)

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)
	return gs
}
