// Package server initializes and runs the TimeVault gRPC server: it picks
// the repository and blob storage backends from configuration, wires the
// services and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/timevault/internal/clock"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/auth"
	"github.com/dmitrijs2005/timevault/internal/server/blobstore"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/timevault/internal/server/services"

	gs "github.com/dmitrijs2005/timevault/internal/server/grpc"
)

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

var errDefaultSecretKey = errors.New("the development secret key must not be used with PostgreSQL; set SECRET_KEY or -s")

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	server      *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel, c.LogFormat)
	clk := clock.Real()

	if err := checkSecretKey(ctx, c, logger); err != nil {
		return nil, err
	}

	rm, err := newRepositoryManager(ctx, c, clk)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs, err := newBlobStore(ctx, c, logger)
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	tokens, err := auth.NewTokenService([]byte(c.SecretKey), c.SessionTokenValidity, c.ShareTokenValidity, clk)
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("token service init error: %w", err)
	}

	us := services.NewUserService(rm, tokens, c, logger)
	vs := services.NewVaultService(rm, blobs, c, clk, logger)
	gate := services.NewAccessGate(vs, tokens, clk, logger)

	s, err := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, vs, gate, tokens)
	if err != nil {
		_ = rm.Close()
		return nil, err
	}

	return &App{config: c, logger: logger, repomanager: rm, server: s}, nil
}

// checkSecretKey refuses the development secret for a persistent store and
// warns about it for the in-memory one.
func checkSecretKey(ctx context.Context, c *config.Config, l logging.Logger) error {
	if !c.UsesDefaultSecretKey() {
		return nil
	}
	if !c.UsesMemoryStore() {
		return errDefaultSecretKey
	}
	l.Warn(ctx, "tokens are signed with the development secret key", "dsn", config.MemoryDSN)
	return nil
}

func newRepositoryManager(ctx context.Context, c *config.Config, clk clock.Clock) (repomanager.RepositoryManager, error) {
	if c.UsesMemoryStore() {
		return repomanager.NewMemoryRepositoryManager(clk), nil
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return rm, nil
}

func newBlobStore(ctx context.Context, c *config.Config, l logging.Logger) (blobstore.Store, error) {
	switch c.StorageBackend {
	case config.StorageS3:
		return blobstore.NewS3Store(ctx, blobstore.S3Config{
			AccessKeyID:  c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		}, l)
	case config.StorageB2:
		return blobstore.NewB2Store(blobstore.B2Config{
			BucketID: c.B2BucketID,
			KeyID:    c.B2KeyID,
			Key:      c.B2Key,
		}, l)
	case config.StorageB2Local:
		return blobstore.NewB2Store(blobstore.B2Config{
			BucketID:  c.B2BucketID,
			LocalPath: c.B2LocalPath,
		}, l)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the repositories.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageBackend, "memory_store", app.config.UsesMemoryStore())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(ctx, "close repositories", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
