// Package notify delivers budget alerts to users by email.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrRecipientMissing = errors.New("the message has no recipient")

// Message is an email to a user.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailer sends messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// FormatAmount formats an amount with the symbol of the currency and the
// number of decimals the currency uses. Unknown currencies fall back to
// the currency code and two decimals.
func FormatAmount(code string, amount decimal.Decimal) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", code, amount.StringFixed(2))
	}

	scale, _ := currency.Standard.Rounding(unit)
	return fmt.Sprintf("%s%s", currency.Symbol(unit), amount.StringFixed(int32(scale)))
}

func validate(msg Message) error {
	if msg.To == "" {
		return ErrRecipientMissing
	}
	return nil
}
