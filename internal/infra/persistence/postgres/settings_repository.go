package postgres

import (
	"context"

	"locheck/internal/domain/entity"
	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/domain/repository"
	"locheck/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// EnsureDefaultSettings creates the settings row if it does not exist yet.
// An existing row keeps whatever values it already has.
func (repo *settingsRepository) EnsureDefaultSettings(ctx context.Context, settings *entity.DeviceSettings) error {
	settingsM := fromSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoNothing: true,
		}).
		Create(settingsM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure default settings")
	}

	return nil
}

// FindSettingsByDevice retrieves the settings row for a device.
func (repo *settingsRepository) FindSettingsByDevice(ctx context.Context, deviceID string) (*entity.DeviceSettings, error) {
	var settingsM model.DeviceSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find settings by device")
	}

	return toSettingsDomain(&settingsM), nil
}

// --- Mapper Functions ---

// toSettingsDomain converts a GORM DeviceSettingsModel to a domain DeviceSettings entity.
func toSettingsDomain(data *model.DeviceSettingsModel) *entity.DeviceSettings {
	if data == nil {
		return nil
	}

	return &entity.DeviceSettings{
		DeviceID:            data.DeviceID,
		DataSendInterval:    data.DataSendInterval,
		NotificationEnabled: data.NotificationEnabled,
		PowerSaveMode:       data.PowerSaveMode,
		LastUpdated:         data.LastUpdated,
	}
}

// fromSettingsDomain converts a domain DeviceSettings entity to a GORM DeviceSettingsModel.
func fromSettingsDomain(data *entity.DeviceSettings) *model.DeviceSettingsModel {
	if data == nil {
		return nil
	}

	return &model.DeviceSettingsModel{
		DeviceID:            data.DeviceID,
		DataSendInterval:    data.DataSendInterval,
		NotificationEnabled: data.NotificationEnabled,
		PowerSaveMode:       data.PowerSaveMode,
		LastUpdated:         data.LastUpdated,
	}
}
