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

	httpctx "github.com/sentra-app/auth-server/internal/api/http/context"
	"github.com/sentra-app/auth-server/internal/api/http/handler"
	"github.com/sentra-app/auth-server/internal/api/http/router"
	httpServer "github.com/sentra-app/auth-server/internal/api/http/server"
	"github.com/sentra-app/auth-server/internal/config"
	"github.com/sentra-app/auth-server/internal/federation"
	"github.com/sentra-app/auth-server/internal/logger"
	"github.com/sentra-app/auth-server/internal/mailer"
	"github.com/sentra-app/auth-server/internal/model"
	"github.com/sentra-app/auth-server/internal/repository/postgres"
	"github.com/sentra-app/auth-server/internal/security"
	"github.com/sentra-app/auth-server/internal/server"
	"github.com/sentra-app/auth-server/internal/service"
	"github.com/sentra-app/auth-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	identityRepo := postgres.NewIdentityRepository(db)
	challengeRepo := postgres.NewChallengeRepository(db)

	hasher := security.NewHasher(cfg.Password.BcryptCost, cfg.JWT.Secret)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	challenges := service.NewChallenge(challengeRepo, hasher, cfg.OTP.TTL, logger)

	deliverer, err := mailer.NewMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.FromEmail,
		cfg.SMTP.FromName,
		cfg.OTP.TTL,
	)
	if err != nil {
		logger.Fatal("failed to create mailer", "error", err)
	}

	google, err := federation.NewGoogle(ctx, cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
	if err != nil {
		logger.Fatal("failed to create google federation provider", "error", err)
	}

	authService := service.NewAuth(identityRepo, challenges, hasher, tokenManager, deliverer, google, logger)
	ctxMgr := httpctx.NewManager()

	srv := registerHTTPServer(authService, tokenManager, ctxMgr, cfg, logger)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
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

func registerHTTPServer(
	authService *service.Auth,
	tokenManager model.TokenManager,
	ctxMgr model.ContextManager,
	cfg *config.Config,
	logger *logger.Logger,
) *httpServer.HTTPServer {
	cookies := handler.CookieConfig{
		Secure:     cfg.HTTP.CookieSecure || cfg.HTTP.EnableHTTPS,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	}

	r := router.New(
		authService,
		tokenManager,
		ctxMgr,
		cookies,
		cfg.Google.FrontendSuccessURL,
		cfg.CORS.AllowedOrigins,
		logger,
	)

	return httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
}
