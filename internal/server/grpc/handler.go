package grpc

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/common"
	pb "github.com/dmitrijs2005/timevault/internal/proto"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ pb.VaultServiceServer = (*GRPCServer)(nil)

// fail converts err to a status and logs causes the status hides.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	switch status.Code(st) {
	case codes.Internal, codes.Unavailable:
		s.logger.Error(ctx, op+" failed", "error", err)
	}
	return st
}

func (s *GRPCServer) caller(ctx context.Context) (string, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

// resolve turns a selector into a vault id, looking names up among the
// caller's vaults.
func (s *GRPCServer) resolve(ctx context.Context, userID string, sel *pb.VaultSelector) (string, error) {
	if id := sel.GetVaultId(); id != "" {
		return id, nil
	}
	v, err := s.vaults.FindVault(ctx, userID, sel.GetName())
	if err != nil {
		return "", err
	}
	return v.ID, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := s.users.Register(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "register", err)
	}
	return &pb.RegisterResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, err := s.users.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}
	return &pb.LoginResponse{SessionToken: token.Value, ExpiresAt: timestamppb.New(token.ExpiresAt)}, nil
}

func (s *GRPCServer) CreateVault(ctx context.Context, req *pb.CreateVaultRequest) (*pb.CreateVaultResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.vaults.CreateVault(ctx, userID, req.GetName(), req.GetUnlockAt().AsTime(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "create vault", err)
	}
	return &pb.CreateVaultResponse{VaultId: v.ID}, nil
}

func (s *GRPCServer) AppendFiles(ctx context.Context, req *pb.AppendFilesRequest) (*pb.AppendFilesResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	vaultID, err := s.resolve(ctx, userID, req.GetVault())
	if err != nil {
		return nil, s.fail(ctx, "append files", err)
	}
	count, err := s.vaults.AppendFiles(ctx, vaultID, userID, req.GetFileRefs())
	if err != nil {
		return nil, s.fail(ctx, "append files", err)
	}
	return &pb.AppendFilesResponse{Count: int32(count)}, nil
}

func (s *GRPCServer) UploadFiles(ctx context.Context, req *pb.UploadFilesRequest) (*pb.UploadFilesResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	vaultID, err := s.resolve(ctx, userID, req.GetVault())
	if err != nil {
		return nil, s.fail(ctx, "upload files", err)
	}

	files := make([]models.NamedFile, len(req.GetFiles()))
	for i, f := range req.GetFiles() {
		files[i] = models.NamedFile{Name: f.GetName(), Content: f.GetContent()}
	}

	res, err := s.vaults.UploadFiles(ctx, vaultID, userID, files)
	if err != nil {
		return nil, s.fail(ctx, "upload files", err)
	}

	out := &pb.UploadFilesResponse{Count: int32(res.Count), Files: make([]*pb.UploadedFile, len(res.Objects))}
	for i, o := range res.Objects {
		out.Files[i] = &pb.UploadedFile{Ref: o.Ref, Url: o.URL}
	}
	return out, nil
}

func (s *GRPCServer) AccessVault(ctx context.Context, req *pb.AccessVaultRequest) (*pb.AccessVaultResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	refs, err := s.gate.AccessVault(ctx, userID, services.VaultRef{ID: req.GetVault().GetVaultId(), Name: req.GetVault().GetName()}, req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "access vault", err)
	}
	return &pb.AccessVaultResponse{FileRefs: refs}, nil
}

func (s *GRPCServer) DeleteVault(ctx context.Context, req *pb.DeleteVaultRequest) (*pb.DeleteVaultResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.vaults.DeleteVault(ctx, req.GetVaultId(), userID); err != nil {
		return nil, s.fail(ctx, "delete vault", err)
	}
	return &pb.DeleteVaultResponse{}, nil
}

func (s *GRPCServer) ShareVault(ctx context.Context, req *pb.ShareVaultRequest) (*pb.ShareVaultResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	token, err := s.gate.ShareVault(ctx, userID, req.GetVaultId())
	if err != nil {
		return nil, s.fail(ctx, "share vault", err)
	}
	return &pb.ShareVaultResponse{ShareToken: token.Value, ExpiresAt: timestamppb.New(token.ExpiresAt)}, nil
}

func (s *GRPCServer) PublicAccess(ctx context.Context, req *pb.PublicAccessRequest) (*pb.PublicAccessResponse, error) {
	token := metadataValue(ctx, common.ShareTokenHeaderName)
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing share token")
	}
	v, err := s.gate.PublicAccess(ctx, token)
	if err != nil {
		return nil, s.fail(ctx, "public access", err)
	}
	return &pb.PublicAccessResponse{Name: v.Name, FileRefs: v.FileRefs}, nil
}

func (s *GRPCServer) ListVaults(ctx context.Context, req *pb.ListVaultsRequest) (*pb.ListVaultsResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.vaults.ListVaults(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, "list vaults", err)
	}

	out := &pb.ListVaultsResponse{Vaults: make([]*pb.VaultInfo, len(list))}
	for i, v := range list {
		out.Vaults[i] = &pb.VaultInfo{
			Id:        v.ID,
			Name:      v.Name,
			UnlockAt:  timestamppb.New(v.UnlockAt),
			CreatedAt: timestamppb.New(v.CreatedAt),
			FileCount: int32(v.FileCount),
			Locked:    v.Locked,
		}
	}
	return out, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
