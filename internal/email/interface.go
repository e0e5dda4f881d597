package email

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Send(ctx context.Context, input SendInput) (Result, error)
	SendScheduleNotification(ctx context.Context, input ScheduleNotificationInput) (Result, error)
	SendAlert(ctx context.Context, input AlertInput) (Result, error)
	SendBatch(ctx context.Context, input BatchInput) (Result, error)
}
