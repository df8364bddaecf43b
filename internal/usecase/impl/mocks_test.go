package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTxManager runs the transactional function directly against the
// given factory, with no real transaction underneath.
type passthroughTxManager struct {
	factory repository.RepositoryFactory
}

func (m *passthroughTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// stubRepositoryFactory hands back the same mock repositories the service
// under test was built with, mimicking transaction-bound instances.
type stubRepositoryFactory struct {
	accounts      repository.AccountRepository
	customers     repository.CustomerRepository
	addresses     repository.AddressRepository
	pets          repository.PetRepository
	catalog       repository.CatalogRepository
	orders        repository.OrderRepository
	specs         repository.SpecializedOrderRepository
	nutritionists repository.NutritionistRepository
	payments      repository.PaymentRepository
	notifications repository.NotificationRepository
}

func (f *stubRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return f.accounts
}

func (f *stubRepositoryFactory) NewCustomerRepository() repository.CustomerRepository {
	return f.customers
}

func (f *stubRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	return f.addresses
}

func (f *stubRepositoryFactory) NewPetRepository() repository.PetRepository {
	return f.pets
}

func (f *stubRepositoryFactory) NewCatalogRepository() repository.CatalogRepository {
	return f.catalog
}

func (f *stubRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.orders
}

func (f *stubRepositoryFactory) NewSpecializedOrderRepository() repository.SpecializedOrderRepository {
	return f.specs
}

func (f *stubRepositoryFactory) NewNutritionistRepository() repository.NutritionistRepository {
	return f.nutritionists
}

func (f *stubRepositoryFactory) NewPaymentRepository() repository.PaymentRepository {
	return f.payments
}

func (f *stubRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return f.notifications
}

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateLastAccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockAccountRepository) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Role), args.Error(1)
}

func (m *MockAccountRepository) CreateAccountRole(ctx context.Context, link *entity.AccountRole) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockAccountRepository) FindRolesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Role, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Role), args.Error(1)
}

// MockCustomerRepository mocks repository.CustomerRepository.
type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) UpdateMembership(ctx context.Context, customerID uuid.UUID, planID *uuid.UUID) error {
	return m.Called(ctx, customerID, planID).Error(0)
}

// MockAddressRepository mocks repository.AddressRepository.
type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Address), args.Error(1)
}

func (m *MockAddressRepository) FindAddressByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, id, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Address), args.Error(1)
}

func (m *MockAddressRepository) FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Address), args.Error(1)
}

func (m *MockAddressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) UnmarkPrimaryAddresses(ctx context.Context, customerID, exceptID uuid.UUID) error {
	return m.Called(ctx, customerID, exceptID).Error(0)
}

func (m *MockAddressRepository) DeactivateAddress(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAddressRepository) FindNewestActiveAddress(ctx context.Context, customerID uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Address), args.Error(1)
}

func (m *MockAddressRepository) MarkPrimary(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockPetRepository mocks repository.PetRepository.
type MockPetRepository struct{ mock.Mock }

func (m *MockPetRepository) CreatePet(ctx context.Context, pet *entity.Pet) error {
	return m.Called(ctx, pet).Error(0)
}

func (m *MockPetRepository) FindPetByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Pet), args.Error(1)
}

func (m *MockPetRepository) FindPetByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Pet, error) {
	args := m.Called(ctx, id, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Pet), args.Error(1)
}

func (m *MockPetRepository) FindPetsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Pet, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Pet), args.Error(1)
}

func (m *MockPetRepository) UpdatePet(ctx context.Context, pet *entity.Pet) error {
	return m.Called(ctx, pet).Error(0)
}

func (m *MockPetRepository) DeletePet(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPetRepository) DeactivatePet(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPetRepository) FindSpeciesByID(ctx context.Context, id uuid.UUID) (*entity.Species, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Species), args.Error(1)
}

func (m *MockPetRepository) FindSpeciesAllergyByID(ctx context.Context, id uuid.UUID) (*entity.SpeciesAllergy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SpeciesAllergy), args.Error(1)
}

func (m *MockPetRepository) CreatePetAllergy(ctx context.Context, allergy *entity.PetAllergy) error {
	return m.Called(ctx, allergy).Error(0)
}

func (m *MockPetRepository) FindPetAllergy(ctx context.Context, petID, speciesAllergyID uuid.UUID) (*entity.PetAllergy, error) {
	args := m.Called(ctx, petID, speciesAllergyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PetAllergy), args.Error(1)
}

func (m *MockPetRepository) FindAllergiesByPet(ctx context.Context, petID uuid.UUID) ([]*repository.PetAllergyDetail, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.PetAllergyDetail), args.Error(1)
}

func (m *MockPetRepository) CreateAllergyNote(ctx context.Context, note *entity.AllergyNote) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockPetRepository) FindLatestAllergyNoteByPet(ctx context.Context, petID uuid.UUID) (*entity.AllergyNote, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.AllergyNote), args.Error(1)
}

func (m *MockPetRepository) CreateHealthCondition(ctx context.Context, condition *entity.HealthCondition) error {
	return m.Called(ctx, condition).Error(0)
}

func (m *MockPetRepository) FindConditionsByPet(ctx context.Context, petID uuid.UUID) ([]*entity.HealthCondition, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.HealthCondition), args.Error(1)
}

func (m *MockPetRepository) CreateDietaryPreference(ctx context.Context, preference *entity.DietaryPreference) error {
	return m.Called(ctx, preference).Error(0)
}

func (m *MockPetRepository) FindPreferencesByPet(ctx context.Context, petID uuid.UUID) ([]*entity.DietaryPreference, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.DietaryPreference), args.Error(1)
}

func (m *MockPetRepository) CreatePrescription(ctx context.Context, prescription *entity.Prescription) error {
	return m.Called(ctx, prescription).Error(0)
}

func (m *MockPetRepository) FindPrescriptionsByPet(ctx context.Context, petID uuid.UUID) ([]*entity.Prescription, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Prescription), args.Error(1)
}

func (m *MockPetRepository) FindPrescriptionsBySpecializedOrder(ctx context.Context, specializedOrderID uuid.UUID) ([]*entity.Prescription, error) {
	args := m.Called(ctx, specializedOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Prescription), args.Error(1)
}

// MockCatalogRepository mocks repository.CatalogRepository.
type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) FindPublishedDishes(ctx context.Context, filter repository.CatalogFilter) ([]*repository.DishDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.DishDetail), args.Error(1)
}

func (m *MockCatalogRepository) FindDishByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Dish), args.Error(1)
}

func (m *MockCatalogRepository) FindDishDetailByID(ctx context.Context, id uuid.UUID) (*repository.DishDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.DishDetail), args.Error(1)
}

func (m *MockCatalogRepository) SearchActiveDishesByName(ctx context.Context, query string, limit int) ([]*repository.DishDetail, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.DishDetail), args.Error(1)
}

func (m *MockCatalogRepository) CreateDish(ctx context.Context, dish *entity.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *MockCatalogRepository) CreatePersonalDish(ctx context.Context, link *entity.PersonalDish) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockCatalogRepository) FindPersonalDishesByPet(ctx context.Context, petID uuid.UUID) ([]*entity.Dish, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Dish), args.Error(1)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindCartByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*repository.OrderSummary, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.OrderSummary), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOrderRepository) CreateOrderItem(ctx context.Context, item *entity.OrderItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockOrderRepository) FindOrderItem(ctx context.Context, orderID, dishID uuid.UUID) (*entity.OrderItem, error) {
	args := m.Called(ctx, orderID, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) FindItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*repository.OrderItemDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.OrderItemDetail), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderItem(ctx context.Context, item *entity.OrderItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockOrderRepository) DeleteOrderItem(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) DeleteItemsByOrder(ctx context.Context, orderID uuid.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *MockOrderRepository) SumOrderItems(ctx context.Context, orderID uuid.UUID) (float64, error) {
	args := m.Called(ctx, orderID)

	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepository) CreateDeliveryControl(ctx context.Context, control *entity.DeliveryControl) error {
	return m.Called(ctx, control).Error(0)
}

func (m *MockOrderRepository) FindDeliveryControlByOrder(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryControl, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.DeliveryControl), args.Error(1)
}

func (m *MockOrderRepository) ConfirmDelivery(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

// MockSpecializedOrderRepository mocks repository.SpecializedOrderRepository.
type MockSpecializedOrderRepository struct{ mock.Mock }

func (m *MockSpecializedOrderRepository) CreateSpecializedOrder(ctx context.Context, spec *entity.SpecializedOrder) error {
	return m.Called(ctx, spec).Error(0)
}

func (m *MockSpecializedOrderRepository) FindSpecializedOrderByID(ctx context.Context, id uuid.UUID) (*entity.SpecializedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SpecializedOrder), args.Error(1)
}

func (m *MockSpecializedOrderRepository) FindSpecializedOrderByOrder(ctx context.Context, orderID uuid.UUID) (*entity.SpecializedOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SpecializedOrder), args.Error(1)
}

func (m *MockSpecializedOrderRepository) FindSummaryByID(ctx context.Context, id uuid.UUID) (*repository.SpecializedOrderSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.SpecializedOrderSummary), args.Error(1)
}

func (m *MockSpecializedOrderRepository) FindPendingSummaries(ctx context.Context) ([]*repository.SpecializedOrderSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.SpecializedOrderSummary), args.Error(1)
}

func (m *MockSpecializedOrderRepository) FindSummariesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*repository.SpecializedOrderSummary, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.SpecializedOrderSummary), args.Error(1)
}

func (m *MockSpecializedOrderRepository) CountActiveByPet(ctx context.Context, petID uuid.UUID) (int64, error) {
	args := m.Called(ctx, petID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSpecializedOrderRepository) UpdateSpecializedOrder(ctx context.Context, spec *entity.SpecializedOrder) error {
	return m.Called(ctx, spec).Error(0)
}

// MockNutritionistRepository mocks repository.NutritionistRepository.
type MockNutritionistRepository struct{ mock.Mock }

func (m *MockNutritionistRepository) FindFirstNutritionist(ctx context.Context) (*entity.Nutritionist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Nutritionist), args.Error(1)
}

func (m *MockNutritionistRepository) FindNutritionistByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Nutritionist, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Nutritionist), args.Error(1)
}

func (m *MockNutritionistRepository) CreateConsultation(ctx context.Context, consultation *entity.Consultation) error {
	return m.Called(ctx, consultation).Error(0)
}

func (m *MockNutritionistRepository) FindConsultationsByPet(ctx context.Context, petID uuid.UUID) ([]*entity.Consultation, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Consultation), args.Error(1)
}

func (m *MockNutritionistRepository) FindPatients(ctx context.Context) ([]*repository.PatientSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.PatientSummary), args.Error(1)
}

func (m *MockNutritionistRepository) FindHistory(ctx context.Context) ([]*repository.ConsultationDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.ConsultationDetail), args.Error(1)
}

// MockPaymentRepository mocks repository.PaymentRepository.
type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) FindPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentDetailByOrder(ctx context.Context, orderID uuid.UUID) (*repository.PaymentDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.PaymentDetail), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentDetailsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*repository.PaymentDetail, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.PaymentDetail), args.Error(1)
}

func (m *MockPaymentRepository) FindGatewayByID(ctx context.Context, id uuid.UUID) (*entity.PaymentGateway, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PaymentGateway), args.Error(1)
}

func (m *MockPaymentRepository) FindGateways(ctx context.Context) ([]*entity.PaymentGateway, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.PaymentGateway), args.Error(1)
}

// MockMembershipRepository mocks repository.MembershipRepository.
type MockMembershipRepository struct{ mock.Mock }

func (m *MockMembershipRepository) FindPlans(ctx context.Context) ([]*entity.MembershipPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.MembershipPlan), args.Error(1)
}

func (m *MockMembershipRepository) FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.MembershipPlan), args.Error(1)
}

func (m *MockMembershipRepository) FindPlanByName(ctx context.Context, name string) (*entity.MembershipPlan, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.MembershipPlan), args.Error(1)
}

// MockFavoriteRepository mocks repository.FavoriteRepository.
type MockFavoriteRepository struct{ mock.Mock }

func (m *MockFavoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.FavoriteDish) error {
	return m.Called(ctx, favorite).Error(0)
}

func (m *MockFavoriteRepository) FindFavorite(ctx context.Context, customerID, dishID uuid.UUID) (*entity.FavoriteDish, error) {
	args := m.Called(ctx, customerID, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.FavoriteDish), args.Error(1)
}

func (m *MockFavoriteRepository) FindFavoritesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*repository.FavoriteDetail, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.FavoriteDetail), args.Error(1)
}

func (m *MockFavoriteRepository) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockNotificationRepository mocks repository.NotificationRepository.
type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockNotificationRepository) FindNotificationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Notification, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Notification), args.Error(1)
}

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) GenerateToken(accountID uuid.UUID, roles []string) (string, error) {
	args := m.Called(accountID, roles)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockQRCodeService mocks service.QRCodeService.
type MockQRCodeService struct{ mock.Mock }

func (m *MockQRCodeService) GenerateOrderQR(orderID uuid.UUID) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// MockFileStorage mocks service.FileStorage.
type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) Save(ctx context.Context, dir, name string, content io.Reader) (string, error) {
	args := m.Called(ctx, dir, name, content)

	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Remove(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}
