package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcctx "github.com/dtroode/sessionkeeper/internal/api/grpc/context"
	grpcRouter "github.com/dtroode/sessionkeeper/internal/api/grpc/router"
	grpcServer "github.com/dtroode/sessionkeeper/internal/api/grpc/server"
	httpctx "github.com/dtroode/sessionkeeper/internal/api/http/context"
	"github.com/dtroode/sessionkeeper/internal/api/http/handler"
	httpRouter "github.com/dtroode/sessionkeeper/internal/api/http/router"
	httpServer "github.com/dtroode/sessionkeeper/internal/api/http/server"
	"github.com/dtroode/sessionkeeper/internal/config"
	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
	"github.com/dtroode/sessionkeeper/internal/password"
	"github.com/dtroode/sessionkeeper/internal/repository/memory"
	"github.com/dtroode/sessionkeeper/internal/repository/postgres"
	"github.com/dtroode/sessionkeeper/internal/server"
	"github.com/dtroode/sessionkeeper/internal/service"
	"github.com/dtroode/sessionkeeper/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	if err != nil {
		logger.Fatal("invalid token configuration", "error", err)
	}

	var (
		userStore    model.UserStore
		refreshStore model.RefreshTokenStore
		health       pinger
	)
	if cfg.Database.DSN == "" {
		logger.Warn("DATABASE_DSN is empty, sessions are kept in memory")
		mem := memory.NewRefreshTokenStore()
		userStore, refreshStore, health = memory.NewUserStore(), mem, mem
	} else {
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("failed to initialize storage", "error", err)
		}
		defer db.Close()
		userStore = postgres.NewUserRepository(db)
		refreshStore = postgres.NewRefreshTokenRepository(db)
		health = db
	}

	refreshTokens := service.NewRefreshTokens(refreshStore, userStore, cfg.Refresh.TTL, logger)
	sessionService := service.NewSession(tokenManager, refreshTokens, logger)
	hasher := password.NewBcrypt(cfg.Auth.BcryptCost)
	accountService := service.NewAccount(userStore, hasher, sessionService, cfg.Auth.AllowAdminSignup, logger)

	httpRoutes := httpRouter.New(
		accountService,
		sessionService,
		sessionService,
		health,
		httpctx.NewManager(),
		handler.NewCookies(cfg.IsProduction()),
		logger,
	)
	servers := []struct {
		server model.Server
		sl     model.SecurityLayer
	}{
		{
			server: httpServer.NewHTTPServer(httpRoutes.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port)),
			sl:     server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName),
		},
		{
			server: grpcServer.NewGRPCServer(
				grpcRouter.New(sessionService, sessionService, grpcctx.NewManager(), logger).Register(),
				fmt.Sprintf(":%s", cfg.GRPC.Port),
			),
			sl: server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName),
		},
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.sl)
	}

	cleanup := service.NewCleanup(refreshTokens, cfg.Cleanup.Interval, cfg.Cleanup.Retention, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		cleanup.Run(ctx)
	}()

	logAppVersion()
	logger.Debug("configuration loaded",
		"bcrypt_cost", cfg.Auth.BcryptCost,
		"access_ttl", cfg.JWT.AccessTTL,
		"refresh_ttl", cfg.Refresh.TTL)

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
