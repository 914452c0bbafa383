package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/momentu-app/momentu-backend/internal/config"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(cfg *config.Config, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(cfg.Resend.APIKey),
		from:     cfg.Resend.FromAddress,
		fromName: cfg.Resend.FromName,
		logger:   logger,
	}
}

func (s *EmailService) SendWelcomeEmail(to, displayName string) error {
	html := fmt.Sprintf(`<h2>Bem-vindo ao Momentu, %s!</h2>
<p>Sua conta foi criada. Entre em um álbum com o código do evento e comece a compartilhar seus momentos.</p>`, displayName)

	return s.send(to, "Bem-vindo ao Momentu", html)
}

func (s *EmailService) SendVerificationEmail(to, displayName, token string) error {
	html := fmt.Sprintf(`<h2>Olá, %s</h2>
<p>Confirme seu email clicando no link abaixo:</p>
<p><a href="https://momentu.app/verify?token=%s">Verificar email</a></p>`, displayName, token)

	return s.send(to, "Confirme seu email", html)
}

func (s *EmailService) send(to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("email send failed", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent", zap.String("to", to), zap.String("id", sent.Id))
	return nil
}
