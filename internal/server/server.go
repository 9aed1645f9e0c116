package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/ppiankov/svcprofile/internal/api"
	"github.com/ppiankov/svcprofile/internal/identity"
	"github.com/ppiankov/svcprofile/internal/model"
	"github.com/ppiankov/svcprofile/internal/session"
)

// Config holds gRPC server configuration.
type Config struct {
	Listen          string
	CredentialsPath string
}

// Server implements the Profiler gRPC service. Each client session gets its
// own session.Session; the server only routes calls to it.
type Server struct {
	api.UnimplementedProfilerServer

	mu       sync.Mutex
	sessions map[string]*session.Session

	registry *identity.Registry
	logger   *slog.Logger
	cfg      Config

	grpcServer *grpc.Server
	health     *health.Server
}

// New creates a server with the credential table loaded from cfg.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	registry, err := identity.Load(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	s := &Server{
		sessions: make(map[string]*session.Session),
		registry: registry,
		logger:   logger,
		cfg:      cfg,
		health:   health.NewServer(),
	}

	s.grpcServer = grpc.NewServer(grpc.UnaryInterceptor(s.logCalls))
	api.RegisterProfilerServer(s.grpcServer, s)
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	s.health.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return s, nil
}

// Serve listens on the configured address. Blocks until stopped.
func (s *Server) Serve() error {
	lis, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Listen, err)
	}
	return s.ServeOn(lis)
}

// ServeOn serves on the given listener. For testing.
func (s *Server) ServeOn(lis net.Listener) error {
	s.logger.Info("profiler server listening", "addr", lis.Addr().String(), "users", s.registry.Len())
	return s.grpcServer.Serve(lis)
}

// GracefulStop marks the service not serving and drains in-flight calls.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

// ReloadCredentials re-reads the credential table. Existing sessions keep
// their login state. Called by the hot-reloader on file change.
func (s *Server) ReloadCredentials() error {
	users, err := identity.LoadUsers(s.cfg.CredentialsPath)
	if err != nil {
		return fmt.Errorf("failed to reload credentials: %w", err)
	}
	s.registry.Replace(users)
	return nil
}

// Sessions returns the number of live sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Login implements the Login RPC.
func (s *Server) Login(ctx context.Context, req *api.LoginRequest) (*api.SessionReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[req.SessionID]
	if !ok {
		sess = session.New()
	}
	if err := sess.Login(s.registry, req.EmployeeID, req.Password); err != nil {
		s.logger.Warn("login rejected", "employee_id", req.EmployeeID)
		return nil, toStatus(err)
	}
	s.sessions[sess.ID] = sess
	s.logger.Info("login", "employee_id", sess.EmployeeID, "session_id", sess.ID)
	return sessionReply(sess), nil
}

// Logout implements the Logout RPC. The session is discarded.
func (s *Server) Logout(ctx context.Context, req *api.SessionRequest) (*api.SessionReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(req.SessionID)
	if err != nil {
		return nil, err
	}
	sess.Logout()
	delete(s.sessions, sess.ID)
	return sessionReply(sess), nil
}

// SubmitForm implements the SubmitForm RPC.
func (s *Server) SubmitForm(ctx context.Context, req *api.FormRequest) (*api.ComputeReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(req.SessionID)
	if err != nil {
		return nil, err
	}
	if !sess.LoggedIn {
		return nil, toStatus(session.ErrNotLoggedIn)
	}
	in, err := req.Form.Input()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	res, err := sess.Compute(in)
	if err != nil {
		return nil, toStatus(err)
	}
	return api.NewComputeReply(in, res), nil
}

// Answer implements the Answer RPC.
func (s *Server) Answer(ctx context.Context, req *api.AnswerRequest) (*api.DialogueReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(req.SessionID)
	if err != nil {
		return nil, err
	}
	reply, err := sess.Answer(req.Answer)
	if err != nil {
		return nil, toStatus(err)
	}
	return api.NewDialogueReply(reply), nil
}

// Restart implements the Restart RPC.
func (s *Server) Restart(ctx context.Context, req *api.SessionRequest) (*api.DialogueReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(req.SessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Restart(); err != nil {
		return nil, toStatus(err)
	}
	return api.NewDialogueReply(sess.View()), nil
}

// View implements the View RPC.
func (s *Server) View(ctx context.Context, req *api.SessionRequest) (*api.DialogueReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(req.SessionID)
	if err != nil {
		return nil, err
	}
	if !sess.LoggedIn {
		return nil, toStatus(session.ErrNotLoggedIn)
	}
	return api.NewDialogueReply(sess.View()), nil
}

// lookup must be called with s.mu held.
func (s *Server) lookup(id string) (*session.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown session %q", id)
	}
	return sess, nil
}

func (s *Server) logCalls(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug("rpc",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}

func sessionReply(sess *session.Session) *api.SessionReply {
	return &api.SessionReply{
		SessionID:  sess.ID,
		EmployeeID: sess.EmployeeID,
		LoggedIn:   sess.LoggedIn,
	}
}

// toStatus maps domain errors to gRPC status codes.
func toStatus(err error) error {
	var re *model.RangeError
	switch {
	case errors.Is(err, session.ErrInvalidCredentials), errors.Is(err, session.ErrNotLoggedIn):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.As(err, &re):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
