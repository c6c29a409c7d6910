// Package worker runs the periodic maintenance of the backend.
package worker

import (
	"context"
	"time"

	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/budgeting"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/notify"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Sweeper applies the reset policy and checks alerts for all users.
//
// Users are only processed when they use the API otherwise, the sweeper
// makes sure that budgets roll over and alert mails are sent without a
// request.
type Sweeper struct {
	DB       *gorm.DB
	Mailer   notify.Mailer
	Interval time.Duration
	Now      func() time.Time // Defaults to time.Now
}

// Result summarizes one sweep.
type Result struct {
	Users         int   // Users that were processed
	Failed        int   // Users for which the refresh failed
	Notifications int   // Notifications created
	Sessions      int64 // Expired sessions deleted
}

func (s *Sweeper) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Sweep processes all users once.
//
// A failure for a single user is logged and does not stop the sweep.
func (s *Sweeper) Sweep(ctx context.Context) (Result, error) {
	var result Result
	now := s.now()

	var users []models.User
	err := s.DB.Order("created_at").Find(&users).Error
	if err != nil {
		return result, err
	}

	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		notifications, err := budgeting.Refresh(ctx, s.DB, s.Mailer, user, now)
		result.Users++
		if err != nil {
			result.Failed++
			log.Error().Str("user", user.ID.String()).Err(err).Msg("Sweeper")
			continue
		}
		result.Notifications += len(notifications)
	}

	result.Sessions, err = auth.PruneSessions(s.DB, now)
	if err != nil {
		return result, err
	}

	log.Info().
		Int("users", result.Users).
		Int("failed", result.Failed).
		Int("notifications", result.Notifications).
		Int64("sessions", result.Sessions).
		Msg("Sweeper")

	return result, nil
}

// Run sweeps immediately and then every interval until the context is
// cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	log.Info().Dur("interval", s.Interval).Msg("Sweeper started")

	if _, err := s.Sweep(ctx); err != nil {
		log.Error().Err(err).Msg("Sweeper")
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				log.Error().Err(err).Msg("Sweeper")
			}
		}
	}
}
