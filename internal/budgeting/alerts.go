package budgeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/notify"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Alerts returns the alert levels the status crossed, lowest first.
// Archived budgets never alert.
func Alerts(s SpendStatus) []models.AlertLevel {
	if s.Archived {
		return nil
	}

	switch s.Level {
	case models.AlertExceeded:
		return []models.AlertLevel{models.AlertWarning, models.AlertExceeded}
	case models.AlertWarning:
		return []models.AlertLevel{models.AlertWarning}
	default:
		return nil
	}
}

// CheckAlerts creates a notification for each alert level a budget crossed
// in its current period, unless the notification already exists.
//
// When the user enabled email alerts, new notifications are sent with the
// mailer. Failures to send are logged and do not fail the check.
func CheckAlerts(ctx context.Context, db *gorm.DB, mailer notify.Mailer, user models.User, statuses []SpendStatus) ([]models.Notification, error) {
	created := []models.Notification{}

	for _, s := range statuses {
		for _, level := range Alerts(s) {
			notification := models.Notification{
				UserID:      user.ID,
				SubjectID:   models.Subject(s.BudgetID, s.GroupID),
				GroupID:     s.GroupID,
				Level:       level,
				PeriodStart: s.PeriodStart,
			}
			if s.GroupID == nil {
				budgetID := s.BudgetID
				notification.BudgetID = &budgetID
			}

			var existing int64
			err := db.Model(&models.Notification{}).
				Where(&models.Notification{SubjectID: notification.SubjectID, Level: level, PeriodStart: s.PeriodStart}).
				Count(&existing).Error
			if err != nil {
				return created, err
			}

			if existing > 0 {
				continue
			}

			notification.Title, notification.Message = alertText(user, s, level)

			// The unique index catches concurrent checks for the same subject
			err = db.Create(&notification).Error
			if errors.Is(err, models.ErrNotificationNotUnique) {
				continue
			} else if err != nil {
				return created, err
			}

			if user.EmailAlerts && mailer != nil {
				send(ctx, db, mailer, user, &notification)
			}

			created = append(created, notification)
		}
	}

	return created, nil
}

func send(ctx context.Context, db *gorm.DB, mailer notify.Mailer, user models.User, notification *models.Notification) {
	err := mailer.Send(ctx, notify.Message{
		To:      user.Email,
		Subject: notification.Title,
		Body:    notification.Message,
	})
	if err != nil {
		log.Error().Err(err).Str("notification", notification.ID.String()).Msg("sending alert mail failed")
		return
	}

	notification.Emailed = true
	err = db.Model(notification).UpdateColumn("emailed", true).Error
	if err != nil {
		log.Error().Err(err).Str("notification", notification.ID.String()).Msg("marking notification as emailed failed")
	}
}

func alertText(user models.User, s SpendStatus, level models.AlertLevel) (string, string) {
	kind := "Budget"
	if s.GroupID != nil {
		kind = "Budget group"
	}

	spent := notify.FormatAmount(user.Currency, s.Spent)
	limit := notify.FormatAmount(user.Currency, s.Limit)
	since := s.PeriodStart.Format("2 January 2006")

	if level == models.AlertExceeded {
		return fmt.Sprintf("%s %s exceeded", kind, s.Name),
			fmt.Sprintf("You spent %s of %s since %s.", spent, limit, since)
	}

	return fmt.Sprintf("%s %s at %s%%", kind, s.Name, WarningPercent),
		fmt.Sprintf("You spent %s of %s since %s, %s remaining.", spent, limit, since, notify.FormatAmount(user.Currency, s.Remaining))
}
