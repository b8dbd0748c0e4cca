package server

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rshade/landedcost/internal/calculator"
)

// errorDomain identifies this service in ErrorInfo details.
const errorDomain = "landedcost"

// ErrorInfo reasons attached to rejected requests.
const (
	ReasonUnsupportedCountry = "UNSUPPORTED_COUNTRY"
	ReasonInvalidInput       = "INVALID_INPUT"
)

// toStatus converts an engine error to a gRPC status error. Caller errors map
// to InvalidArgument with BadRequest and ErrorInfo details; anything else is Internal.
func (s *Server) toStatus(traceID string, err error) error {
	var (
		countryErr *calculator.UnsupportedCountryError
		inputErr   *calculator.InvalidInputError
		field      string
		reason     string
		meta       = map[string]string{fieldTraceID: traceID}
	)

	switch {
	case errors.As(err, &countryErr):
		field, reason = "country", ReasonUnsupportedCountry
		meta["country"] = countryErr.Country
	case errors.As(err, &inputErr):
		field, reason = inputErr.Field, ReasonInvalidInput
	default:
		s.logger.Error().Str(fieldTraceID, traceID).Err(err).Msg("unexpected calculation error")
		return status.Error(codes.Internal, "internal error")
	}

	st := status.New(codes.InvalidArgument, err.Error())
	withDetails, detailErr := st.WithDetails(
		&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: field, Description: err.Error()},
			},
		},
		&errdetails.ErrorInfo{
			Reason:   reason,
			Domain:   errorDomain,
			Metadata: meta,
		},
	)
	if detailErr != nil {
		s.logger.Warn().
			Str(fieldTraceID, traceID).
			Str("reason", reason).
			Err(detailErr).
			Msg("failed to attach error details to gRPC status")
		return st.Err()
	}
	return withDetails.Err()
}
