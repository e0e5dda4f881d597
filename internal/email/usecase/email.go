package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"nurse-manager/internal/email"
	"nurse-manager/pkg/sendgrid"
)

const (
	defaultFooter     = email.DefaultFooter
	alertSubjectLimit = 40
	msgSent           = "Email sent successfully"
)

func (uc *implUseCase) Send(ctx context.Context, input email.SendInput) (email.Result, error) {
	if len(compact(input.To)) == 0 || strings.TrimSpace(input.Subject) == "" || (input.Text == "" && input.HTML == "") {
		return email.Result{}, email.ErrMissingFields
	}
	return uc.deliver(ctx, sendgrid.Message{
		To:      compact(input.To),
		Subject: input.Subject,
		Text:    input.Text,
		HTML:    input.HTML,
	})
}

func (uc *implUseCase) SendScheduleNotification(ctx context.Context, input email.ScheduleNotificationInput) (email.Result, error) {
	if len(compact(input.To)) == 0 || input.NurseName == "" || input.ScheduleDetails == "" || input.StartDate == "" || input.EndDate == "" {
		return email.Result{}, email.ErrMissingFields
	}

	html, text, err := uc.render("schedule", input)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendScheduleNotification.render: %v", err)
		return email.Result{}, err
	}

	return uc.deliver(ctx, sendgrid.Message{
		To:      compact(input.To),
		Subject: "Schedule Update: " + input.StartDate + " - " + input.EndDate,
		Text:    text,
		HTML:    html,
	})
}

type alertView struct {
	email.AlertInput
	Color string
}

func (uc *implUseCase) SendAlert(ctx context.Context, input email.AlertInput) (email.Result, error) {
	if len(compact(input.To)) == 0 || input.AlertType == "" || strings.TrimSpace(input.AlertDetails) == "" {
		return email.Result{}, email.ErrMissingFields
	}
	if !input.AlertType.IsValid() {
		return email.Result{}, email.ErrInvalidAlertType
	}

	html, text, err := uc.render("alert", alertView{AlertInput: input, Color: input.AlertType.Color()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendAlert.render: %v", err)
		return email.Result{}, err
	}

	return uc.deliver(ctx, sendgrid.Message{
		To:      compact(input.To),
		Subject: alertSubject(input.AlertType, input.AlertDetails),
		Text:    text,
		HTML:    html,
	})
}

func (uc *implUseCase) SendBatch(ctx context.Context, input email.BatchInput) (email.Result, error) {
	to := compact(input.Recipients)
	if len(to) == 0 || strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.MessageContent) == "" {
		return email.Result{}, email.ErrMissingFields
	}
	return uc.deliver(ctx, sendgrid.Message{
		To:      to,
		Subject: input.Subject,
		Text:    stripTags(input.MessageContent),
		HTML:    input.MessageContent,
	})
}

func (uc *implUseCase) deliver(ctx context.Context, msg sendgrid.Message) (email.Result, error) {
	if uc.sender == nil {
		uc.l.Warnf(ctx, "uc.deliver: sendgrid not configured, dropping %q", msg.Subject)
		return email.Result{}, email.ErrNotConfigured
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.l.Errorf(ctx, "uc.deliver.Send: %v", err)
		return email.Result{}, email.ErrDeliveryFailed
	}

	uc.l.Infof(ctx, "uc.deliver: email sent to %s", strings.Join(msg.To, ", "))
	return email.Result{Success: true, Message: msgSent}, nil
}

// alertSubject is "<type> Alert: " plus the first 40 characters of details,
// with "..." when they were cut.
func alertSubject(t email.AlertType, details string) string {
	subject := string(t) + " Alert: "
	if utf8.RuneCountInString(details) <= alertSubjectLimit {
		return subject + details
	}
	return subject + string([]rune(details)[:alertSubjectLimit]) + "..."
}

func compact(addrs []string) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
