package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Sender delivers account emails. Delivery is a collaborator concern; the
// auth service only composes the message and fires it off.
type Sender interface {
	SendVerificationEmail(ctx context.Context, to, link string) error
}

// LogSender writes the mail to the log instead of an SMTP relay. Used in
// development and as the default until a real relay is configured.
type LogSender struct {
	Logger *zap.SugaredLogger
}

func (s *LogSender) SendVerificationEmail(ctx context.Context, to, link string) error {
	s.Logger.Infow("verification email", "to", to, "link", link)
	return nil
}

// VerificationLink builds the link embedded in the verification email.
func VerificationLink(publicURL, rawToken string) string {
	return fmt.Sprintf("%s/auth/verify?token=%s", publicURL, rawToken)
}
