// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// CreateAccount persists a new account.
func (repo *accountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with generated values
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindAccountByEmail retrieves an account by its unique email.
func (repo *accountRepository) FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(&accountM), nil
}

// FindAccountByID retrieves an account by its id.
func (repo *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(&accountM), nil
}

// UpdateLastAccess stamps the last successful login time.
func (repo *accountRepository) UpdateLastAccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("last_access_at", at)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update last access")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// FindRoleByName retrieves a role by its unique name.
func (repo *accountRepository) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	var roleM model.RoleModel
	err := repo.db.WithContext(ctx).
		Where("name = ? AND record_state = ?", name, entity.RecordStateActive).
		First(&roleM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRoleDomain(&roleM), nil
}

// CreateAccountRole links an account to a role.
func (repo *accountRepository) CreateAccountRole(ctx context.Context, link *entity.AccountRole) error {
	linkM := &model.AccountRoleModel{
		ID:          link.ID,
		AccountID:   link.AccountID,
		RoleID:      link.RoleID,
		RecordState: link.RecordState,
	}
	if linkM.RecordState == "" {
		linkM.RecordState = entity.RecordStateActive
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid account or role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role")
	}

	link.ID = linkM.ID
	link.RecordState = linkM.RecordState

	return nil
}

// FindRolesByAccount retrieves all active roles assigned to an account.
func (repo *accountRepository) FindRolesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN account_roles ON account_roles.role_id = roles.id").
		Where("account_roles.account_id = ? AND account_roles.record_state = ? AND roles.record_state = ?",
			accountID, entity.RecordStateActive, entity.RecordStateActive).
		Find(&roleModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

// toAccountDomain maps the persistence model back to a pure domain entity.
func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		RecordState:  m.RecordState,
		LastAccessAt: m.LastAccessAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// fromAccountDomain maps a pure domain entity to a GORM persistence model.
func fromAccountDomain(e *entity.Account) *model.AccountModel {
	state := e.RecordState
	if state == "" {
		state = entity.RecordStateActive
	}

	return &model.AccountModel{
		ID:           e.ID,
		Email:        e.Email,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		RecordState:  state,
		LastAccessAt: e.LastAccessAt,
	}
}

func toRoleDomain(m *model.RoleModel) *entity.Role {
	return &entity.Role{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		RecordState: m.RecordState,
	}
}
