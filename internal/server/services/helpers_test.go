package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/timevault/internal/clock"
	"github.com/dmitrijs2005/timevault/internal/server/auth"
	"github.com/dmitrijs2005/timevault/internal/server/blobstore"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

var t2025 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeBlobs is an in-memory blobstore.Store that can be told to fail.
type fakeBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int

	failPutAt int // 1-based Put call that fails; 0 means never
	removeErr error
	removed   [][]string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: map[string][]byte{}}
}

func (f *fakeBlobs) Put(ctx context.Context, key string, data []byte) (*blobstore.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.puts++
	if f.failPutAt == f.puts {
		return nil, fmt.Errorf("put %s: boom", key)
	}
	f.objects[key] = data
	return &blobstore.Object{Ref: key, URL: "mem://" + key}, nil
}

func (f *fakeBlobs) Remove(ctx context.Context, refs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removed = append(f.removed, append([]string{}, refs...))
	if f.removeErr != nil {
		return f.removeErr
	}
	for _, r := range refs {
		delete(f.objects, r)
	}
	return nil
}

func (f *fakeBlobs) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.objects))
	for k := range f.objects {
		out = append(out, k)
	}
	return out
}

// blockingBlobs waits for ctx in Remove.
type blockingBlobs struct{ fakeBlobs }

func (b *blockingBlobs) Remove(ctx context.Context, refs []string) error {
	<-ctx.Done()
	return ctx.Err()
}

// gatedBlobs signals entered when Remove starts and blocks until release
// is closed.
type gatedBlobs struct {
	fakeBlobs
	entered chan struct{}
	release chan struct{}
}

func newGatedBlobs() *gatedBlobs {
	return &gatedBlobs{
		fakeBlobs: fakeBlobs{objects: map[string][]byte{}},
		entered:   make(chan struct{}, 1),
		release:   make(chan struct{}),
	}
}

func (g *gatedBlobs) Remove(ctx context.Context, refs []string) error {
	g.entered <- struct{}{}
	select {
	case <-g.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return g.fakeBlobs.Remove(ctx, refs)
}

type fixture struct {
	clock  *clock.FakeClock
	rm     *repomanager.MemoryRepositoryManager
	blobs  *fakeBlobs
	tokens *auth.TokenService
	users  *UserService
	vaults *VaultService
	gate   *AccessGate
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:            "test-secret",
		SessionTokenValidity: 24 * time.Hour,
		ShareTokenValidity:   7 * 24 * time.Hour,
		BcryptCost:           10,
		StorageTimeout:       time.Second,
	}
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	cfg := testConfig()
	clk := clock.Fake(now)
	rm := repomanager.NewMemoryRepositoryManager(clk)
	blobs := newFakeBlobs()

	tokens, err := auth.NewTokenService([]byte(cfg.SecretKey), cfg.SessionTokenValidity, cfg.ShareTokenValidity, clk)
	require.NoError(t, err)

	vaults := NewVaultService(rm, blobs, cfg, clk, nil)
	return &fixture{
		clock:  clk,
		rm:     rm,
		blobs:  blobs,
		tokens: tokens,
		users:  NewUserService(rm, tokens, cfg, nil),
		vaults: vaults,
		gate:   NewAccessGate(vaults, tokens, clk, nil),
	}
}

func (f *fixture) register(t *testing.T, name string) string {
	t.Helper()
	u, err := f.users.Register(context.Background(), name, name+"-pw")
	require.NoError(t, err)
	return u.ID
}

func hasPrefix(refs []string, prefix string) bool {
	for _, r := range refs {
		if !strings.HasPrefix(r, prefix) {
			return false
		}
	}
	return true
}

var errBoom = errors.New("boom")
