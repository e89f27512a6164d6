package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wellbeing/config"
	"wellbeing/models"
	"wellbeing/routes"
	"wellbeing/services"
	"wellbeing/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	db, err := config.Database(cfg.DB, log)
	if err != nil {
		return err
	}
	if err := config.Migrate(db); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := buildDeps(ctx, cfg, db, log, services.NewDayClock(loc))
	if err != nil {
		return err
	}

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           routes.SetupRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildDeps wires stores and services onto db. The export service is only
// built when a bucket is configured.
func buildDeps(ctx context.Context, cfg *config.Config, db *gorm.DB, log *zap.Logger, days services.DayClock) (routes.Deps, error) {
	hub := services.NewRealtimeHub(log)

	gStore := services.NewDailyStore[models.Gratitude, *models.Gratitude](db, days)
	hStore := services.NewDailyStore[models.Happiness, *models.Happiness](db, days)
	wStore := services.NewDailyStore[models.Wellness, *models.Wellness](db, days)
	calendar := services.NewCalendarService(gStore, hStore, wStore, days)

	deps := routes.Deps{
		DB:        db,
		Log:       log,
		JWTSecret: cfg.JWT.Secret,
		Gratitude: services.NewGratitudeService(gStore, days, hub),
		Happiness: services.NewHappinessService(hStore, days, hub),
		Wellness:  services.NewWellnessService(wStore, days, hub),
		Insights:  services.NewInsightsService(gStore, hStore, wStore, days),
		Calendar:  calendar,
		Realtime:  hub,
	}

	if cfg.Export.Bucket != "" {
		client, err := utils.NewS3Client(ctx, cfg.Export.Region)
		if err != nil {
			return routes.Deps{}, fmt.Errorf("export: %w", err)
		}
		deps.Export = services.NewExportService(calendar, client, cfg.Export.Bucket, cfg.Export.Prefix)
		log.Info("export enabled", zap.String("bucket", cfg.Export.Bucket))
	}
	return deps, nil
}
