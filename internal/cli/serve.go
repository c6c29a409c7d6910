package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/moneywise/backend/internal/auth"
	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/router"
	"github.com/moneywise/backend/internal/worker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

// Login attempts per email: a burst of 5, then one every 12 seconds.
const (
	loginBurst = 5
	loginEvery = 12 * time.Second
)

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mailer, closeMailer := a.mailer()
	defer closeMailer()

	r, teardown, err := router.Config(a.cfg.APIURL)
	defer teardown()
	if err != nil {
		return err
	}

	co := v1.Controller{
		Mailer:     mailer,
		Throttle:   auth.NewThrottle(loginEvery, loginBurst),
		SessionTTL: a.cfg.SessionTTL,
		Version:    a.version,
	}
	router.AttachRoutes(co, r.Group("/"))

	sweeper := worker.Sweeper{DB: models.DB, Mailer: mailer, Interval: a.cfg.SweepInterval}
	sweeperDone := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(sweeperDone)
	}()

	server := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("version", a.version).Msg("backend startup complete")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		stop()
		<-sweeperDone
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	<-sweeperDone

	sqlDB, dbErr := models.DB.DB()
	if dbErr == nil {
		_ = sqlDB.Close()
	}

	if err != nil {
		return err
	}

	log.Info().Msg("backend shutdown complete")
	return nil
}
