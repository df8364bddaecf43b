package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/domain/service"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const profileUploadsDir = "clientes"

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	customerRepo     repository.CustomerRepository
	addressRepo      repository.AddressRepository
	membershipRepo   repository.MembershipRepository
	notificationRepo repository.NotificationRepository
	storage          service.FileStorage
	logger           *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	customerRepo repository.CustomerRepository,
	addressRepo repository.AddressRepository,
	membershipRepo repository.MembershipRepository,
	notificationRepo repository.NotificationRepository,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager:        txManager,
		accountRepo:      accountRepo,
		customerRepo:     customerRepo,
		addressRepo:      addressRepo,
		membershipRepo:   membershipRepo,
		notificationRepo: notificationRepo,
		storage:          storage,
		logger:           logger,
	}
}

// findCustomer resolves the customer profile of an authenticated account.
func (srv *customerService) findCustomer(ctx context.Context, accountID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

func (srv *customerService) GetProfile(ctx context.Context, accountID uuid.UUID) (*usecase.ProfileOutput, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	var plan *entity.MembershipPlan
	if customer.MembershipPlanID != nil {
		plan, err = srv.membershipRepo.FindPlanByID(ctx, *customer.MembershipPlanID)
		if err != nil && !errors.Is(err, repository.ErrPlanNotFound) {
			return nil, errors.Wrap(err, "failed to find membership plan")
		}
	}

	return &usecase.ProfileOutput{
		Account:  account,
		Customer: customer,
		Plan:     plan,
	}, nil
}

func (srv *customerService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Customer, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Photo != nil {
		name := fmt.Sprintf("cliente_%s_%s", customer.ID, input.Photo.Filename)
		path, err := srv.storage.Save(ctx, profileUploadsDir, name, input.Photo.Content)
		if err != nil {
			// A lost photo should not lose the rest of the update.
			srv.logger.Warn("Failed to store profile photo", "customerID", customer.ID, "error", err)
		} else {
			customer.PhotoPath = path
		}
	}

	if err := srv.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (srv *customerService) CreateAddress(ctx context.Context, accountID uuid.UUID, input usecase.CreateAddressInput) (*entity.Address, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	address := &entity.Address{
		CustomerID: customer.ID,
		Name:       input.Name,
		Reference:  input.Reference,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		IsPrimary:  input.IsPrimary,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if input.IsPrimary {
			if err := addressRepo.UnmarkPrimaryAddresses(ctx, customer.ID, uuid.Nil); err != nil {
				return err
			}
		}

		return addressRepo.CreateAddress(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

func (srv *customerService) ListAddresses(ctx context.Context, accountID uuid.UUID) ([]*entity.Address, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return srv.addressRepo.FindAddressesByCustomer(ctx, customer.ID)
}

func (srv *customerService) UpdateAddress(ctx context.Context, accountID, addressID uuid.UUID, input usecase.UpdateAddressInput) (*entity.Address, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var address *entity.Address
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		var err error
		address, err = addressRepo.FindAddressByIDAndCustomer(ctx, addressID, customer.ID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to find address")
		}

		if input.Name != nil {
			address.Name = *input.Name
		}
		if input.Reference != nil {
			address.Reference = *input.Reference
		}
		if input.Latitude != nil {
			address.Latitude = *input.Latitude
		}
		if input.Longitude != nil {
			address.Longitude = *input.Longitude
		}
		if input.IsPrimary != nil {
			if *input.IsPrimary {
				if err := addressRepo.UnmarkPrimaryAddresses(ctx, customer.ID, address.ID); err != nil {
					return err
				}
			}
			address.IsPrimary = *input.IsPrimary
		}

		return addressRepo.UpdateAddress(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// DeleteAddress soft-deletes the address. When the removed address was the
// primary one, the newest remaining address inherits the flag.
func (srv *customerService) DeleteAddress(ctx context.Context, accountID, addressID uuid.UUID) error {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := addressRepo.FindAddressByIDAndCustomer(ctx, addressID, customer.ID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to find address")
		}

		if err := addressRepo.DeactivateAddress(ctx, address.ID); err != nil {
			return err
		}

		if !address.IsPrimary {
			return nil
		}

		newest, err := addressRepo.FindNewestActiveAddress(ctx, customer.ID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find replacement address")
		}

		return addressRepo.MarkPrimary(ctx, newest.ID)
	})
}

func (srv *customerService) ListNotifications(ctx context.Context, accountID uuid.UUID) ([]*entity.Notification, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return srv.notificationRepo.FindNotificationsByCustomer(ctx, customer.ID)
}
