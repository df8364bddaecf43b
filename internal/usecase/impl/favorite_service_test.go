package impl

import (
	"context"
	"testing"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	customerRepo *MockCustomerRepository
	catalogRepo  *MockCatalogRepository
	favoriteRepo *MockFavoriteRepository
}

func createTestFavoriteService() favoriteServiceFixtures {
	customerRepo := new(MockCustomerRepository)
	catalogRepo := new(MockCatalogRepository)
	favoriteRepo := new(MockFavoriteRepository)

	service := NewFavoriteService(customerRepo, catalogRepo, favoriteRepo, newDiscardLogger())

	return favoriteServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		catalogRepo:  catalogRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (fx favoriteServiceFixtures) expectCustomer(ctx context.Context, accountID uuid.UUID) *entity.Customer {
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}
	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)

	return customer
}

func TestFavoriteService_AddFavorite_Success(t *testing.T) {
	fx := createTestFavoriteService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	dishID := uuid.New()
	fx.catalogRepo.On("FindDishByID", ctx, dishID).Return(&entity.Dish{ID: dishID}, nil)
	fx.favoriteRepo.On("CreateFavorite", ctx, mock.MatchedBy(func(favorite *entity.FavoriteDish) bool {
		return favorite.CustomerID == customer.ID && favorite.DishID == dishID
	})).Return(nil)

	err := fx.service.AddFavorite(ctx, accountID, dishID)
	require.NoError(t, err)

	fx.favoriteRepo.AssertExpectations(t)
}

func TestFavoriteService_AddFavorite_UnknownDish(t *testing.T) {
	fx := createTestFavoriteService()
	ctx := context.Background()
	accountID := uuid.New()
	fx.expectCustomer(ctx, accountID)

	dishID := uuid.New()
	fx.catalogRepo.On("FindDishByID", ctx, dishID).Return(nil, repository.ErrDishNotFound)

	err := fx.service.AddFavorite(ctx, accountID, dishID)
	assert.ErrorIs(t, err, domainerrors.ErrDishNotFound)
	fx.favoriteRepo.AssertNotCalled(t, "CreateFavorite", mock.Anything, mock.Anything)
}

func TestFavoriteService_RemoveFavorite_NotFavorited(t *testing.T) {
	fx := createTestFavoriteService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	dishID := uuid.New()
	fx.favoriteRepo.On("FindFavorite", ctx, customer.ID, dishID).
		Return(nil, repository.ErrFavoriteNotFound)

	err := fx.service.RemoveFavorite(ctx, accountID, dishID)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_RemoveFavorite_Success(t *testing.T) {
	fx := createTestFavoriteService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	favorite := &entity.FavoriteDish{ID: uuid.New(), CustomerID: customer.ID, DishID: uuid.New()}
	fx.favoriteRepo.On("FindFavorite", ctx, customer.ID, favorite.DishID).Return(favorite, nil)
	fx.favoriteRepo.On("DeleteFavorite", ctx, favorite.ID).Return(nil)

	err := fx.service.RemoveFavorite(ctx, accountID, favorite.DishID)
	require.NoError(t, err)

	fx.favoriteRepo.AssertExpectations(t)
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	fx := createTestFavoriteService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	favoritedID := uuid.New()
	otherID := uuid.New()
	fx.favoriteRepo.On("FindFavorite", ctx, customer.ID, favoritedID).
		Return(&entity.FavoriteDish{ID: uuid.New()}, nil)
	fx.favoriteRepo.On("FindFavorite", ctx, customer.ID, otherID).
		Return(nil, repository.ErrFavoriteNotFound)

	yes, err := fx.service.IsFavorite(ctx, accountID, favoritedID)
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := fx.service.IsFavorite(ctx, accountID, otherID)
	require.NoError(t, err)
	assert.False(t, no)
}
