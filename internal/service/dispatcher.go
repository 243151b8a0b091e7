package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lionreport/internal/errors"
	"lionreport/internal/model"
	"lionreport/internal/repository"
)

const (
	reportSubject        = "Weekly L.I.O.N Report"
	reportBody           = "Please find the attached weekly L.I.O.N report."
	reportAttachmentName = "LION_Report.pdf"
	reportAttachmentMIME = "application/pdf"
)

// DispatcherConfig bounds the mail transport call.
type DispatcherConfig struct {
	SendTimeout time.Duration
	MaxRetries  int
	RetryDelay  time.Duration
}

// DefaultDispatcherConfig returns the production retry/timeout policy.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		SendTimeout: 15 * time.Second,
		MaxRetries:  3,
		RetryDelay:  500 * time.Millisecond,
	}
}

// Dispatcher emails rendered reports and persists the audit record.
type Dispatcher interface {
	Dispatch(ctx context.Context, user *model.User, summary model.Summary, pdf []byte) (*model.Report, error)
	SendAll(ctx context.Context) error
}

type dispatcher struct {
	mailer     Mailer
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	teamRepo   repository.TeamRepository
	composer   Composer
	renderer   Renderer
	cfg        DispatcherConfig
}

// NewDispatcher creates a new report dispatcher.
func NewDispatcher(
	mailer Mailer,
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	composer Composer,
	renderer Renderer,
	cfg DispatcherConfig,
) Dispatcher {
	return &dispatcher{
		mailer:     mailer,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		teamRepo:   teamRepo,
		composer:   composer,
		renderer:   renderer,
		cfg:        cfg,
	}
}

// Recipients builds the delivery set: always the user's own address,
// plus a manager address when one can be resolved. The user's own
// manager email wins over the team's.
func (d *dispatcher) Recipients(ctx context.Context, user *model.User) []string {
	recipients := []string{user.Email}

	managerEmail := user.ManagerEmail
	if managerEmail == "" && user.TeamID != nil {
		if team, err := d.teamRepo.FindTeamByID(ctx, *user.TeamID); err == nil {
			managerEmail = team.ManagerEmail
		}
	}
	if managerEmail != "" {
		recipients = append(recipients, managerEmail)
	}
	return recipients
}

// Dispatch emails the PDF to the recipient set and, only after the
// transport confirms success, persists exactly one Report audit row.
// A transport failure leaves zero rows and returns ErrDeliveryFailed.
func (d *dispatcher) Dispatch(ctx context.Context, user *model.User, summary model.Summary, pdf []byte) (*model.Report, error) {
	recipients := d.Recipients(ctx, user)

	msg := &MailMessage{
		To:             recipients,
		Subject:        reportSubject,
		Body:           reportBody,
		AttachmentName: reportAttachmentName,
		AttachmentMIME: reportAttachmentMIME,
		Attachment:     pdf,
	}

	if err := d.sendWithRetry(ctx, msg); err != nil {
		slog.Error("report delivery failed", "user_id", user.ID, "err", err)
		return nil, fmt.Errorf("%w: %v", errors.ErrDeliveryFailed, err)
	}

	report := &model.Report{
		UserID:        user.ID,
		SentAt:        time.Now(),
		Recipients:    strings.Join(recipients, ", "),
		LastWeek:      summary.LastWeek,
		Issues:        summary.Issues,
		Opportunities: summary.Opportunities,
		NextWeek:      summary.NextWeek,
	}
	if err := d.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report record: %w", err)
	}

	slog.Info("report sent", "user_id", user.ID, "recipients", report.Recipients)
	return report, nil
}

// sendWithRetry bounds each attempt with the configured timeout and
// retries transport failures with doubling delay. A cancelled context
// stops the loop immediately.
func (d *dispatcher) sendWithRetry(ctx context.Context, msg *MailMessage) error {
	attempts := d.cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	delay := d.cfg.RetryDelay
	for i := 0; i < attempts; i++ {
		sendCtx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
		lastErr = d.mailer.Send(sendCtx, msg)
		cancel()
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if i < attempts-1 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
	}
	return lastErr
}

// SendAll runs the full compose/render/dispatch pipeline for every user.
// Users are independent: one user's failure is logged and the loop
// continues.
func (d *dispatcher) SendAll(ctx context.Context) error {
	users, err := d.userRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	var failed int
	for i := range users {
		user := &users[i]
		summary, err := d.composer.Compose(ctx, user.ID, time.Time{}, time.Time{})
		if err != nil {
			slog.Error("compose failed", "user_id", user.ID, "err", err)
			failed++
			continue
		}
		pdf, err := d.renderer.Render(summary)
		if err != nil {
			slog.Error("render failed", "user_id", user.ID, "err", err)
			failed++
			continue
		}
		if _, err := d.Dispatch(ctx, user, summary, pdf); err != nil {
			failed++
			continue
		}
	}

	if failed > 0 {
		return fmt.Errorf("weekly run: %d of %d reports failed", failed, len(users))
	}
	return nil
}
