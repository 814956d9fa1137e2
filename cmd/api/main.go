package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/justsurfingit/hireable/internal/auth"
	"github.com/justsurfingit/hireable/internal/catalog"
	"github.com/justsurfingit/hireable/internal/config"
	"github.com/justsurfingit/hireable/internal/contact"
	"github.com/justsurfingit/hireable/internal/database"
	"github.com/justsurfingit/hireable/internal/handlers"
	"github.com/justsurfingit/hireable/internal/logger"
	"github.com/justsurfingit/hireable/internal/posting"
	"github.com/justsurfingit/hireable/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hireable:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *gorm.DB
	if cfg.UsesDatabase() {
		db, err = database.Connect(cfg.Database.DSN, log)
		if err != nil {
			return err
		}
	}

	// Catalog
	var src catalog.Source = catalog.EmbeddedSource{}
	if cfg.Catalog.Source == config.CatalogDatabase {
		dbSrc := catalog.NewDatabaseSource(db, log)
		if err := dbSrc.Seed(ctx); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		src = dbSrc
	}
	jobCatalog, err := catalog.Load(ctx, src)
	if err != nil {
		return err
	}
	log.Info("catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("jobs", jobCatalog.Len()),
		zap.Int("companies", len(jobCatalog.Companies())),
	)

	// Submission sinks
	logSink := services.NewLogSink(log)
	var (
		postingSink posting.Sink       = logSink
		contactSink contact.Sink       = logSink
		eventSink   services.EventSink = logSink
	)
	if cfg.Submission.Sink == config.SinkDatabase {
		dbSink := services.NewDBSink(db)
		postingSink, contactSink, eventSink = dbSink, dbSink, dbSink
	}
	if cfg.Gmail.Inbox != "" {
		gmailSink, err := newGmailSink(ctx, cfg.Gmail)
		if err != nil {
			log.Warn("gmail delivery disabled", zap.Error(err))
		} else {
			contactSink = services.ContactFanout{contactSink, gmailSink}
			log.Info("contact messages also forwarded by gmail", zap.String("inbox", cfg.Gmail.Inbox))
		}
	}

	llmService, err := services.NewLLMService(ctx, cfg.LLM.APIKey, cfg.LLM.Model, log)
	if err != nil {
		return err
	}

	jobHandler := handlers.NewJobHandler(
		llmService,
		services.NewJobService(jobCatalog, eventSink, log),
		posting.NewService(postingSink, cfg.Submission.PostDelay, log),
	)
	contactHandler := handlers.NewContactHandler(contact.NewService(contactSink, cfg.Submission.ContactDelay, log))

	gin.SetMode(cfg.Server.Mode)
	router := handlers.NewRouter(jobHandler, contactHandler, cfg.CORS.AllowedOrigins, log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newGmailSink(ctx context.Context, cfg config.GmailConfig) (*services.GmailSink, error) {
	httpClient, err := auth.GetGmailClient(ctx, cfg.CredentialsFile, cfg.TokenFile)
	if err != nil {
		return nil, err
	}
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return services.NewGmailSink(svc, cfg.Sender, cfg.Inbox), nil
}
