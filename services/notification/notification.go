package notification

import (
	"context"

	"fundihub/utils"

	"go.uber.org/zap"
)

// NotificationService delivers booking notices to customers and workers.
// Delivery is best-effort; lifecycle operations never fail on a notification
// error.
type NotificationService interface {
	NotifyCustomer(ctx context.Context, customerID, title, body string)
	NotifyWorker(ctx context.Context, workerID, title, body string)
}

// DefaultNotificationService logs notices. A push transport can be swapped
// in behind the same interface.
type DefaultNotificationService struct{}

func (n *DefaultNotificationService) NotifyCustomer(ctx context.Context, customerID, title, body string) {
	utils.GetLogger().Info("notify customer",
		zap.String("customerID", customerID),
		zap.String("title", title),
		zap.String("body", body))
}

func (n *DefaultNotificationService) NotifyWorker(ctx context.Context, workerID, title, body string) {
	utils.GetLogger().Info("notify worker",
		zap.String("workerID", workerID),
		zap.String("title", title),
		zap.String("body", body))
}
