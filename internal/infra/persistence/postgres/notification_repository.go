package postgres

import (
	"context"

	"locheck/internal/domain/entity"
	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/domain/repository"
	"locheck/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification appends an audit row capturing a payload as sent.
func (repo *notificationRepository) CreateNotification(ctx context.Context, record *entity.NotificationRecord) error {
	recordM := fromNotificationDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification record")
	}

	return nil
}

// --- Mapper Functions ---

// fromNotificationDomain converts a domain NotificationRecord entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.NotificationRecord) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Type:      data.Type,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}
