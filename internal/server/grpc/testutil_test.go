package grpc

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/timevault/internal/clock"
	"github.com/dmitrijs2005/timevault/internal/common"
	pb "github.com/dmitrijs2005/timevault/internal/proto"
	"github.com/dmitrijs2005/timevault/internal/server/auth"
	"github.com/dmitrijs2005/timevault/internal/server/blobstore"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/timevault/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

var t2025 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut bool
}

func (m *memBlobs) Put(_ context.Context, key string, data []byte) (*blobstore.Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return nil, common.ErrStorageFailure
	}
	m.objects[key] = data
	return &blobstore.Object{Ref: key, URL: "mem://" + key}, nil
}

func (m *memBlobs) Remove(_ context.Context, refs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range refs {
		delete(m.objects, r)
	}
	return nil
}

func (m *memBlobs) has(ref string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[ref]
	return ok
}

func (m *memBlobs) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

type testEnv struct {
	clock  *clock.FakeClock
	blobs  *memBlobs
	tokens *auth.TokenService
	server *GRPCServer
	client pb.VaultServiceClient
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		SecretKey:            "secret",
		SessionTokenValidity: 24 * time.Hour,
		ShareTokenValidity:   7 * 24 * time.Hour,
		BcryptCost:           10,
		StorageTimeout:       time.Second,
	}
	clk := clock.Fake(t2025)
	rm := repomanager.NewMemoryRepositoryManager(clk)
	blobs := &memBlobs{objects: map[string][]byte{}}

	tokens, err := auth.NewTokenService([]byte(cfg.SecretKey), cfg.SessionTokenValidity, cfg.ShareTokenValidity, clk)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	vaults := services.NewVaultService(rm, blobs, cfg, clk, nil)
	srv, err := NewGRPCServer("bufnet", nil,
		services.NewUserService(rm, tokens, cfg, nil),
		vaults,
		services.NewAccessGate(vaults, tokens, clk, nil),
		tokens)
	if err != nil {
		t.Fatalf("NewGRPCServer: %v", err)
	}
	return &testEnv{clock: clk, blobs: blobs, tokens: tokens, server: srv}
}

// start serves env.server over bufconn and dials it.
func (e *testEnv) start(t *testing.T) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- e.server.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("grpc.NewClient: %v", err)
	}
	e.client = pb.NewVaultServiceClient(conn)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
}

func withSession(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.SessionTokenHeaderName, token)
}

func withShare(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.ShareTokenHeaderName, token)
}

// login registers username and returns a session token.
func (e *testEnv) login(t *testing.T, username string) string {
	t.Helper()
	ctx := context.Background()

	if _, err := e.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: "pw-" + username}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	out, err := e.client.Login(ctx, &pb.LoginRequest{Username: username, Password: "pw-" + username})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return out.GetSessionToken()
}
