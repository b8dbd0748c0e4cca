package server

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rshade/landedcost/internal/calculator"
)

// Client calls a remote landedcost.v1.CalculatorService.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps an existing connection.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Dial opens a plaintext connection to addr. The caller closes the returned conn.
func Dial(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return conn, nil
}

// Calculate runs a calculation remotely.
func (c *Client) Calculate(ctx context.Context, in calculator.Inputs, opts ...grpc.CallOption) (*calculator.FullOutput, error) {
	out := new(calculator.FullOutput)
	if err := c.conn.Invoke(ctx, calculateMethod, &in, out, c.callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// Requirements fetches form metadata remotely.
func (c *Client) Requirements(ctx context.Context, country string, opts ...grpc.CallOption) (*calculator.Requirements, error) {
	out := new(calculator.Requirements)
	req := &RequirementsRequest{Country: country}
	if err := c.conn.Invoke(ctx, requirementsMethod, req, out, c.callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
}
