// Package cli implements the moneywise command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/config"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/notify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries the state shared by all commands.
type app struct {
	version string
	envFile string
	cfg     *config.Config
}

// NewRootCommand returns the moneywise command. Without a subcommand,
// it serves the API.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	rootCmd := &cobra.Command{
		Use:   "moneywise",
		Short: "moneywise expense tracker backend",
		Long: `moneywise tracks income and expenses, watches budgets and
sends alerts when a budget reaches 80% or 100% of its amount.

Configuration is read from the environment and, if present, a .env file.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runServe,
	}

	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Environment file to load")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the API and run the periodic sweeper",
		RunE:  a.runServe,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "sweep",
		Short: "Apply budget resets, check alerts and prune sessions once",
		Long: `Applies the reset policy to all budgets, creates notifications and
sends alert mails for all thresholds budgets crossed, then deletes expired
sessions. Use this to run the sweeper from cron instead of the server.`,
		RunE: a.runSweep,
	})

	return rootCmd
}

// setup loads the configuration, configures logging and connects the database.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	err := config.LoadEnvFile(a.envFile)
	if err != nil {
		return err
	}

	a.cfg, err = config.Load()
	if err != nil {
		return err
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(a.cfg.GinMode)
	setupLogger(a.cfg.LogFormat, os.Stdout)

	err = os.MkdirAll(a.cfg.DataDir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	return models.Connect(a.cfg.DatabasePath())
}

// setupLogger configures the global logger.
//
// Log format can be explicitly set. If it is not set, it defaults
// to human readable for development and JSON for release.
func setupLogger(format string, out io.Writer) {
	output := out
	if (format == "" && gin.IsDebugging()) || format == "human" {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// mailer returns the AMQP mailer if a broker is configured. Without a
// broker, alert mails are logged.
func (a *app) mailer() (notify.Mailer, func()) {
	if a.cfg.AMQPURL == "" {
		log.Info().Msg("AMQP disabled, alert mails are only logged")
		return notify.LogMailer{}, func() {}
	}

	m, err := notify.NewAMQPMailer(a.cfg.AMQPURL, a.cfg.AMQPExchange, a.cfg.AMQPQueue)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to AMQP broker, alert mails are only logged")
		return notify.LogMailer{}, func() {}
	}

	return m, func() {
		if err := m.Close(); err != nil {
			log.Error().Err(err).Msg("closing AMQP connection")
		}
	}
}
