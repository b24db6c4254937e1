package repository

import (
	"context"

	"locheck/internal/domain/entity"
)

// NotificationRepository defines the interface for the append-only notification audit log.
type NotificationRepository interface {
	// CreateNotification appends an audit row capturing a payload as sent.
	CreateNotification(ctx context.Context, record *entity.NotificationRecord) error
}
