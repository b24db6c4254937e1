package postgres

import (
	"context"

	"locheck/internal/domain/entity"
	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/domain/repository"
	"locheck/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation appends a new location row.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.DeviceLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	return nil
}

// ListLocationsByDevice retrieves locations for a device, newest first.
func (repo *locationRepository) ListLocationsByDevice(ctx context.Context, deviceID string, limit, offset int) ([]*entity.DeviceLocation, error) {
	var locationModels []*model.DeviceLocationModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations by device")
	}

	locations := make([]*entity.DeviceLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindLatestLocation retrieves the most recent location for a device.
func (repo *locationRepository) FindLatestLocation(ctx context.Context, deviceID string) (*entity.DeviceLocation, error) {
	var locationM model.DeviceLocationModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("timestamp DESC").
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return toLocationDomain(&locationM), nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM DeviceLocationModel to a domain DeviceLocation entity.
func toLocationDomain(data *model.DeviceLocationModel) *entity.DeviceLocation {
	if data == nil {
		return nil
	}

	return &entity.DeviceLocation{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Timestamp: data.Timestamp,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Altitude:  data.Altitude,
		Accuracy:  data.Accuracy,
	}
}

// fromLocationDomain converts a domain DeviceLocation entity to a GORM DeviceLocationModel.
func fromLocationDomain(data *entity.DeviceLocation) *model.DeviceLocationModel {
	if data == nil {
		return nil
	}

	return &model.DeviceLocationModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Timestamp: data.Timestamp,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Altitude:  data.Altitude,
		Accuracy:  data.Accuracy,
	}
}
