package cli

import (
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/worker"
	"github.com/spf13/cobra"
)

func (a *app) runSweep(cmd *cobra.Command, _ []string) error {
	mailer, closeMailer := a.mailer()
	defer closeMailer()

	sweeper := worker.Sweeper{DB: models.DB, Mailer: mailer, Interval: a.cfg.SweepInterval}
	result, err := sweeper.Sweep(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("Processed %d users, %d failed, created %d notifications, deleted %d expired sessions\n",
		result.Users, result.Failed, result.Notifications, result.Sessions)
	return nil
}
