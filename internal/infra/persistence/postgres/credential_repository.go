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

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// UpsertCredential stores the credential for a device, replacing any previous
// one. Overwriting is what revokes the old token.
func (repo *credentialRepository) UpsertCredential(ctx context.Context, credential *entity.AuthCredential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			UpdateAll: true,
		}).
		Create(credentialM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert credential")
	}

	return nil
}

// FindCredentialByDevice retrieves the currently active credential for a device.
func (repo *credentialRepository) FindCredentialByDevice(ctx context.Context, deviceID string) (*entity.AuthCredential, error) {
	var credentialM model.AuthCredentialModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by device")
	}

	return toCredentialDomain(&credentialM), nil
}

// --- Mapper Functions ---

// toCredentialDomain converts a GORM AuthCredentialModel to a domain AuthCredential entity.
func toCredentialDomain(data *model.AuthCredentialModel) *entity.AuthCredential {
	if data == nil {
		return nil
	}

	return &entity.AuthCredential{
		DeviceID:  data.DeviceID,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
	}
}

// fromCredentialDomain converts a domain AuthCredential entity to a GORM AuthCredentialModel.
func fromCredentialDomain(data *entity.AuthCredential) *model.AuthCredentialModel {
	if data == nil {
		return nil
	}

	return &model.AuthCredentialModel{
		DeviceID:  data.DeviceID,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
	}
}
