package postgres

import (
	"context"
	"time"

	"locheck/internal/domain/entity"
	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/domain/repository"
	"locheck/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device identity row.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// Two concurrent first registrations can race past the existence
		// check; the primary key settles it.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDeviceRegistrationFailed.WrapMessage("device already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	return nil
}

// FindDeviceByID retrieves a device by its client-generated identifier.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, deviceID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDeviceByIDForUpdate retrieves a device and locks its row until the
// surrounding transaction ends, serializing writers per device.
func (repo *deviceRepository) FindDeviceByIDForUpdate(ctx context.Context, deviceID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to lock device row")
	}

	return toDeviceDomain(&deviceM), nil
}

// TouchLastSeen updates the device's last_seen_at timestamp.
func (repo *deviceRepository) TouchLastSeen(ctx context.Context, deviceID string, seenAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Update("last_seen_at", seenAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last seen timestamp")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpsertInfo overwrites the device's metadata envelopes. Fields the caller
// left nil are stored as NULL, so each upsert is a full snapshot.
func (repo *deviceRepository) UpsertInfo(ctx context.Context, info *entity.DeviceInfo) error {
	infoM := fromDeviceInfoDomain(info)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			UpdateAll: true,
		}).
		Create(infoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device info")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:         data.DeviceID,
		CreatedAt:  data.CreatedAt,
		LastSeenAt: data.LastSeenAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		DeviceID:   data.ID,
		CreatedAt:  data.CreatedAt,
		LastSeenAt: data.LastSeenAt,
	}
}

// fromDeviceInfoDomain converts a domain DeviceInfo entity to a GORM DeviceInfoModel.
func fromDeviceInfoDomain(data *entity.DeviceInfo) *model.DeviceInfoModel {
	if data == nil {
		return nil
	}

	return &model.DeviceInfoModel{
		DeviceID:         data.DeviceID,
		BatteryLevel:     data.BatteryLevel,
		DeviceModel:      data.DeviceModel,
		DeviceName:       data.DeviceName,
		OSVersion:        data.OSVersion,
		ScreenResolution: data.ScreenResolution,
		AppVersion:       data.AppVersion,
		UpdatedAt:        data.UpdatedAt,
	}
}
