package repository

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository manages customer notifications.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByCustomer retrieves the customer's notifications,
	// newest first.
	FindNotificationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Notification, error)
}
