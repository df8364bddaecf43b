// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/domain/service"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerRepository
	hasher       service.PasswordHasher
	tokens       service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	customerRepo repository.CustomerRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

// Register creates the account, assigns the customer role and creates the
// customer profile in one transaction.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Registering account", "email", input.Email)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	var account *entity.Account
	var customer *entity.Customer

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		customerRepo := repoFactory.NewCustomerRepository()

		if _, err := accountRepo.FindAccountByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		account = &entity.Account{
			Email:        input.Email,
			Username:     input.Name,
			PasswordHash: hash,
			RecordState:  entity.RecordStateActive,
		}
		if err := accountRepo.CreateAccount(ctx, account); err != nil {
			return err
		}

		role, err := accountRepo.FindRoleByName(ctx, entity.RoleCustomer)
		if err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return domainerrors.ErrRoleNotConfigured
			}

			return errors.Wrap(err, "failed to find customer role")
		}

		if err := accountRepo.CreateAccountRole(ctx, &entity.AccountRole{
			AccountID: account.ID,
			RoleID:    role.ID,
		}); err != nil {
			return err
		}

		customer = &entity.Customer{
			AccountID: account.ID,
			Name:      input.Name,
			Phone:     input.Phone,
		}

		return customerRepo.CreateCustomer(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	roles := []string{entity.RoleCustomer}
	token, err := srv.tokens.GenerateToken(account.ID, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{
		AccessToken: token,
		Account:     account,
		Customer:    customer,
		Roles:       roles,
	}, nil
}

// Login verifies the credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	account, err := srv.accountRepo.FindAccountByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if account.RecordState != entity.RecordStateActive {
		return nil, domainerrors.ErrAccountInactive
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	roleEntities, err := srv.accountRepo.FindRolesByAccount(ctx, account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles")
	}
	roles := make([]string, 0, len(roleEntities))
	for _, role := range roleEntities {
		roles = append(roles, role.Name)
	}

	now := time.Now()
	if err := srv.accountRepo.UpdateLastAccess(ctx, account.ID, now); err != nil {
		return nil, errors.Wrap(err, "failed to stamp last access")
	}
	account.LastAccessAt = &now

	var customer *entity.Customer
	customer, err = srv.customerRepo.FindCustomerByAccount(ctx, account.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(err, "failed to load customer profile")
		}
		// Accounts without a customer profile (staff) can still log in.
		customer = nil
	}

	token, err := srv.tokens.GenerateToken(account.ID, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{
		AccessToken: token,
		Account:     account,
		Customer:    customer,
		Roles:       roles,
	}, nil
}
