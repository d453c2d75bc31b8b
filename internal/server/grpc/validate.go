package grpc

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/common"
	pb "github.com/dmitrijs2005/timevault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return common.Validationf("username and password are required")
	}
	return nil
}

func validateSelector(s *pb.VaultSelector) error {
	if s.GetVaultId() == "" && s.GetName() == "" {
		return common.Validationf("vault_id or name is required")
	}
	return nil
}

func validateTimestamp(field string, ts *timestamppb.Timestamp) error {
	if ts == nil {
		return common.Validationf("%s is required", field)
	}
	if err := ts.CheckValid(); err != nil {
		return common.Validationf("%s: %v", field, err)
	}
	return nil
}

// validateRequest checks the shape of a request before it reaches the core.
func validateRequest(req any) error {
	switch r := req.(type) {
	case *pb.RegisterRequest:
		return validateCredentials(r.GetUsername(), r.GetPassword())
	case *pb.LoginRequest:
		return validateCredentials(r.GetUsername(), r.GetPassword())
	case *pb.CreateVaultRequest:
		if r.GetName() == "" {
			return common.Validationf("name is required")
		}
		if err := validateTimestamp("unlock_at", r.GetUnlockAt()); err != nil {
			return err
		}
		if r.GetPassword() == "" {
			return common.Validationf("password is required")
		}
	case *pb.AppendFilesRequest:
		if err := validateSelector(r.GetVault()); err != nil {
			return err
		}
		if len(r.GetFileRefs()) == 0 {
			return common.Validationf("file_refs is empty")
		}
	case *pb.UploadFilesRequest:
		if err := validateSelector(r.GetVault()); err != nil {
			return err
		}
		if len(r.GetFiles()) == 0 {
			return common.Validationf("files is empty")
		}
		for i, f := range r.GetFiles() {
			if f.GetName() == "" {
				return common.Validationf("files[%d].name is required", i)
			}
		}
	case *pb.AccessVaultRequest:
		return validateSelector(r.GetVault())
	case *pb.DeleteVaultRequest:
		if r.GetVaultId() == "" {
			return common.Validationf("vault_id is required")
		}
	case *pb.ShareVaultRequest:
		if r.GetVaultId() == "" {
			return common.Validationf("vault_id is required")
		}
	}
	return nil
}

// validationInterceptor rejects malformed requests with InvalidArgument.
func (s *GRPCServer) validationInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if err := validateRequest(req); err != nil {
		return nil, toStatus(err)
	}
	return handler(ctx, req)
}
