package notify

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg(msg.Body)
	return nil
}
