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

// addressRepository implements the domain.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid customer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an active address by id.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&addressM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressByIDAndCustomer retrieves an address only when it belongs to the given customer.
func (repo *addressRepository) FindAddressByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND customer_id = ? AND record_state = ?", id, customerID, entity.RecordStateActive).
		First(&addressM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByCustomer retrieves the customer's active addresses, primary first.
func (repo *addressRepository) FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND record_state = ?", customerID, entity.RecordStateActive).
		Order("is_primary DESC, created_at DESC").
		Find(&addressModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdateAddress persists address changes.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"name":       address.Name,
			"reference":  address.Reference,
			"latitude":   address.Latitude,
			"longitude":  address.Longitude,
			"is_primary": address.IsPrimary,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// UnmarkPrimaryAddresses clears the primary flag on every address of the
// customer except the one given (uuid.Nil clears all).
func (repo *addressRepository) UnmarkPrimaryAddresses(ctx context.Context, customerID, exceptID uuid.UUID) error {
	query := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("customer_id = ? AND is_primary = ?", customerID, true)
	if exceptID != uuid.Nil {
		query = query.Where("id <> ?", exceptID)
	}

	if err := query.Update("is_primary", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unmark primary addresses")
	}

	return nil
}

// DeactivateAddress soft-deletes an address and clears its primary flag.
func (repo *addressRepository) DeactivateAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"record_state": entity.RecordStateInactive,
			"is_primary":   false,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// FindNewestActiveAddress retrieves the most recently created active address of a customer.
func (repo *addressRepository) FindNewestActiveAddress(ctx context.Context, customerID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND record_state = ?", customerID, entity.RecordStateActive).
		Order("created_at DESC").
		First(&addressM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAddressDomain(&addressM), nil
}

// MarkPrimary sets the primary flag on one address.
func (repo *addressRepository) MarkPrimary(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", id).
		Update("is_primary", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark primary address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

func toAddressDomain(m *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Reference:   m.Reference,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		IsPrimary:   m.IsPrimary,
		RecordState: m.RecordState,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromAddressDomain(e *entity.Address) *model.AddressModel {
	state := e.RecordState
	if state == "" {
		state = entity.RecordStateActive
	}

	return &model.AddressModel{
		ID:          e.ID,
		CustomerID:  e.CustomerID,
		Name:        e.Name,
		Reference:   e.Reference,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		IsPrimary:   e.IsPrimary,
		RecordState: state,
	}
}
