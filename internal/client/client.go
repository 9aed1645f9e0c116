package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/ppiankov/svcprofile/internal/api"
	"github.com/ppiankov/svcprofile/internal/model"
)

// callTimeout bounds every RPC.
const callTimeout = 5 * time.Second

// Client connects to a profiler server and tracks the session it logged in as.
type Client struct {
	conn      *grpc.ClientConn
	sessionID string
}

// New creates a gRPC client for the given address.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to profiler server: %w", err)
	}
	return &Client{conn: conn}, nil
}

// SessionID returns the session established by Login, or "".
func (c *Client) SessionID() string {
	return c.sessionID
}

// Ping checks the server's health service.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := healthpb.NewHealthClient(c.conn).Check(ctx, &healthpb.HealthCheckRequest{Service: api.ServiceName})
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("profiler server is %s", resp.GetStatus())
	}
	return nil
}

// Login authenticates and remembers the returned session.
func (c *Client) Login(ctx context.Context, employeeID, password string) (*api.SessionReply, error) {
	var out api.SessionReply
	req := &api.LoginRequest{SessionID: c.sessionID, EmployeeID: employeeID, Password: password}
	if err := c.invoke(ctx, api.MethodLogin, req, &out); err != nil {
		return nil, err
	}
	c.sessionID = out.SessionID
	return &out, nil
}

// Logout ends the session.
func (c *Client) Logout(ctx context.Context) error {
	var out api.SessionReply
	if err := c.invoke(ctx, api.MethodLogout, &api.SessionRequest{SessionID: c.sessionID}, &out); err != nil {
		return err
	}
	c.sessionID = ""
	return nil
}

// SubmitForm scores a whole form.
func (c *Client) SubmitForm(ctx context.Context, f model.Form) (*api.ComputeReply, error) {
	var out api.ComputeReply
	if err := c.invoke(ctx, api.MethodSubmitForm, &api.FormRequest{SessionID: c.sessionID, Form: f}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Answer submits one dialogue answer.
func (c *Client) Answer(ctx context.Context, answer string) (*api.DialogueReply, error) {
	var out api.DialogueReply
	if err := c.invoke(ctx, api.MethodAnswer, &api.AnswerRequest{SessionID: c.sessionID, Answer: answer}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Restart resets the dialogue.
func (c *Client) Restart(ctx context.Context) (*api.DialogueReply, error) {
	return c.dialogue(ctx, api.MethodRestart)
}

// View returns the current dialogue position.
func (c *Client) View(ctx context.Context) (*api.DialogueReply, error) {
	return c.dialogue(ctx, api.MethodView)
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) dialogue(ctx context.Context, method string) (*api.DialogueReply, error) {
	var out api.DialogueReply
	if err := c.invoke(ctx, method, &api.SessionRequest{SessionID: c.sessionID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	return c.conn.Invoke(ctx, api.FullMethod(method), req, resp, api.CallOption())
}
