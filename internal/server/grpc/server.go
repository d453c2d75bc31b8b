// Package grpc exposes the TimeVault core as the timevault.v1.VaultService
// gRPC service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/timevault/internal/logging"
	pb "github.com/dmitrijs2005/timevault/internal/proto"
	"github.com/dmitrijs2005/timevault/internal/server/auth"
	"github.com/dmitrijs2005/timevault/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedVaultServiceServer
	address string
	users   *services.UserService
	vaults  *services.VaultService
	gate    *services.AccessGate
	tokens  *auth.TokenService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, vs *services.VaultService,
	gate *services.AccessGate, tokens *auth.TokenService) (*GRPCServer, error) {
	if l == nil {
		l = logging.Nop()
	}
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		vaults:  vs,
		gate:    gate,
		tokens:  tokens,
	}, nil
}

// newServer creates the grpc.Server with interceptors and the service
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.sessionTokenInterceptor, s.validationInterceptor))
	pb.RegisterVaultServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
