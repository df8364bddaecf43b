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

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// CreateCustomer persists a new customer profile.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "customer profile already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves an active customer by id.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&customerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomerByAccount retrieves the customer profile owned by an account.
func (repo *customerRepository) FindCustomerByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND record_state = ?", accountID, entity.RecordStateActive).
		First(&customerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCustomerDomain(&customerM), nil
}

// UpdateCustomer persists profile changes.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":       customer.Name,
			"phone":      customer.Phone,
			"photo_path": customer.PhotoPath,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// UpdateMembership sets or clears the customer's plan reference.
func (repo *customerRepository) UpdateMembership(ctx context.Context, customerID uuid.UUID, planID *uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customerID).
		Update("membership_plan_id", planID)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "invalid membership plan reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update membership")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:               m.ID,
		AccountID:        m.AccountID,
		Name:             m.Name,
		Phone:            m.Phone,
		PhotoPath:        m.PhotoPath,
		MembershipPlanID: m.MembershipPlanID,
		RecordState:      m.RecordState,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromCustomerDomain(e *entity.Customer) *model.CustomerModel {
	state := e.RecordState
	if state == "" {
		state = entity.RecordStateActive
	}

	return &model.CustomerModel{
		ID:               e.ID,
		AccountID:        e.AccountID,
		Name:             e.Name,
		Phone:            e.Phone,
		PhotoPath:        e.PhotoPath,
		MembershipPlanID: e.MembershipPlanID,
		RecordState:      state,
	}
}
