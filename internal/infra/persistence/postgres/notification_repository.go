package postgres

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the domain.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	var referenceID *uuid.UUID
	if notification.ReferenceID != "" {
		parsed, err := uuid.Parse(notification.ReferenceID)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
		}
		referenceID = &parsed
	}

	notificationM := &model.NotificationModel{
		ID:          notification.ID,
		CustomerID:  notification.CustomerID,
		Title:       notification.Title,
		Message:     notification.Message,
		Date:        notification.Date,
		Read:        notification.Read,
		Type:        notification.Type,
		ReferenceID: referenceID,
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid customer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID

	return nil
}

// FindNotificationsByCustomer retrieves the customer's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&notificationModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		referenceID := ""
		if notificationM.ReferenceID != nil {
			referenceID = notificationM.ReferenceID.String()
		}

		notifications = append(notifications, &entity.Notification{
			ID:          notificationM.ID,
			CustomerID:  notificationM.CustomerID,
			Title:       notificationM.Title,
			Message:     notificationM.Message,
			Date:        notificationM.Date,
			Read:        notificationM.Read,
			Type:        notificationM.Type,
			ReferenceID: referenceID,
		})
	}

	return notifications, nil
}
