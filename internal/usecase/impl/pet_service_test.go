package impl

import (
	"context"
	"strings"
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

type petServiceFixtures struct {
	service      usecase.PetUsecase
	customerRepo *MockCustomerRepository
	petRepo      *MockPetRepository
	specRepo     *MockSpecializedOrderRepository
	nutriRepo    *MockNutritionistRepository
	catalogRepo  *MockCatalogRepository
	storage      *MockFileStorage
}

func createTestPetService() petServiceFixtures {
	customerRepo := new(MockCustomerRepository)
	petRepo := new(MockPetRepository)
	specRepo := new(MockSpecializedOrderRepository)
	nutriRepo := new(MockNutritionistRepository)
	catalogRepo := new(MockCatalogRepository)
	storage := new(MockFileStorage)

	service := NewPetService(customerRepo, petRepo, specRepo, nutriRepo, catalogRepo, storage, newDiscardLogger())

	return petServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		petRepo:      petRepo,
		specRepo:     specRepo,
		nutriRepo:    nutriRepo,
		catalogRepo:  catalogRepo,
		storage:      storage,
	}
}

func (fx petServiceFixtures) expectCustomer(ctx context.Context, accountID uuid.UUID) *entity.Customer {
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}
	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)

	return customer
}

func TestPetService_CreatePet_DefaultPhotoBySpecies(t *testing.T) {
	tests := []struct {
		speciesName string
		wantPhoto   string
	}{
		{"Perro", "mascotas/perro.png"},
		{"Gato", "mascotas/gato.png"},
		{"Conejo", "mascotas/default.png"},
	}

	for _, tt := range tests {
		t.Run(tt.speciesName, func(t *testing.T) {
			fx := createTestPetService()
			ctx := context.Background()
			accountID := uuid.New()
			fx.expectCustomer(ctx, accountID)

			speciesID := uuid.New()
			fx.petRepo.On("FindSpeciesByID", ctx, speciesID).
				Return(&entity.Species{ID: speciesID, Name: tt.speciesName}, nil)
			fx.petRepo.On("CreatePet", ctx, mock.AnythingOfType("*entity.Pet")).Return(nil)

			pet, err := fx.service.CreatePet(ctx, accountID, usecase.CreatePetInput{
				Name:      "Firulais",
				SpeciesID: speciesID,
				Sex:       entity.PetSexMale,
				Age:       3,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPhoto, pet.PhotoPath)
		})
	}
}

func TestPetService_CreatePet_InvalidSex(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	fx.expectCustomer(ctx, accountID)

	_, err := fx.service.CreatePet(ctx, accountID, usecase.CreatePetInput{
		Name:      "Firulais",
		SpeciesID: uuid.New(),
		Sex:       "X",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPetSex)
	fx.petRepo.AssertNotCalled(t, "CreatePet", mock.Anything, mock.Anything)
}

func TestPetService_CreatePet_UnknownSpecies(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	fx.expectCustomer(ctx, accountID)

	speciesID := uuid.New()
	fx.petRepo.On("FindSpeciesByID", ctx, speciesID).Return(nil, repository.ErrSpeciesNotFound)

	_, err := fx.service.CreatePet(ctx, accountID, usecase.CreatePetInput{
		Name:      "Firulais",
		SpeciesID: speciesID,
		Sex:       entity.PetSexFemale,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSpeciesNotFound)
}

func TestPetService_CreatePet_UploadedPhotoReplacesDefault(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	fx.expectCustomer(ctx, accountID)

	speciesID := uuid.New()
	fx.petRepo.On("FindSpeciesByID", ctx, speciesID).
		Return(&entity.Species{ID: speciesID, Name: "Perro"}, nil)
	fx.petRepo.On("CreatePet", ctx, mock.AnythingOfType("*entity.Pet")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Pet).ID = uuid.New()
		}).
		Return(nil)
	fx.storage.On("Save", ctx, "mascotas", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "mascota_") && strings.HasSuffix(name, ".jpg")
	}), mock.Anything).Return("mascotas/mascota_x.jpg", nil)
	fx.petRepo.On("UpdatePet", ctx, mock.AnythingOfType("*entity.Pet")).Return(nil)

	pet, err := fx.service.CreatePet(ctx, accountID, usecase.CreatePetInput{
		Name:      "Firulais",
		SpeciesID: speciesID,
		Sex:       entity.PetSexMale,
		Photo:     &usecase.FileUpload{Filename: "FOTO.JPG"},
	})
	require.NoError(t, err)
	assert.Equal(t, "mascotas/mascota_x.jpg", pet.PhotoPath)
}

func TestPetService_UpdatePet_RejectsBadPhotoExtension(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	petID := uuid.New()
	fx.petRepo.On("FindPetByIDAndCustomer", ctx, petID, customer.ID).
		Return(&entity.Pet{ID: petID, CustomerID: customer.ID, Sex: entity.PetSexMale}, nil)

	_, err := fx.service.UpdatePet(ctx, accountID, petID, usecase.UpdatePetInput{
		Photo: &usecase.FileUpload{Filename: "virus.exe"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImageFormat)
	fx.petRepo.AssertNotCalled(t, "UpdatePet", mock.Anything, mock.Anything)
}

func TestPetService_DeletePet_DeactivatesWhenActiveDietRequests(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	petID := uuid.New()
	fx.petRepo.On("FindPetByIDAndCustomer", ctx, petID, customer.ID).
		Return(&entity.Pet{ID: petID, CustomerID: customer.ID}, nil)
	fx.specRepo.On("CountActiveByPet", ctx, petID).Return(int64(2), nil)
	fx.petRepo.On("DeactivatePet", ctx, petID).Return(nil)

	err := fx.service.DeletePet(ctx, accountID, petID)
	require.NoError(t, err)

	fx.petRepo.AssertNotCalled(t, "DeletePet", mock.Anything, mock.Anything)
}

func TestPetService_DeletePet_HardDeleteWhenNoActiveRequests(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	petID := uuid.New()
	fx.petRepo.On("FindPetByIDAndCustomer", ctx, petID, customer.ID).
		Return(&entity.Pet{ID: petID, CustomerID: customer.ID}, nil)
	fx.specRepo.On("CountActiveByPet", ctx, petID).Return(int64(0), nil)
	fx.petRepo.On("DeletePet", ctx, petID).Return(nil)

	err := fx.service.DeletePet(ctx, accountID, petID)
	require.NoError(t, err)

	fx.petRepo.AssertNotCalled(t, "DeactivatePet", mock.Anything, mock.Anything)
}

func TestPetService_GetPet_NotOwned(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	petID := uuid.New()
	fx.petRepo.On("FindPetByIDAndCustomer", ctx, petID, customer.ID).
		Return(nil, repository.ErrPetNotFound)

	_, err := fx.service.GetPet(ctx, accountID, petID)
	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}

func TestPetService_GetPet_LoadsClinicalRecord(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	petID := uuid.New()
	speciesID := uuid.New()
	pet := &entity.Pet{ID: petID, CustomerID: customer.ID, SpeciesID: speciesID}

	fx.petRepo.On("FindPetByIDAndCustomer", ctx, petID, customer.ID).Return(pet, nil)
	fx.petRepo.On("FindSpeciesByID", ctx, speciesID).
		Return(&entity.Species{ID: speciesID, Name: "Gato"}, nil)
	fx.petRepo.On("FindAllergiesByPet", ctx, petID).
		Return([]*repository.PetAllergyDetail{{AllergyName: "Pollo"}}, nil)
	fx.petRepo.On("FindLatestAllergyNoteByPet", ctx, petID).Return(nil, nil)
	fx.petRepo.On("FindConditionsByPet", ctx, petID).
		Return([]*entity.HealthCondition{{Name: "Diabetes"}}, nil)
	fx.petRepo.On("FindPreferencesByPet", ctx, petID).Return([]*entity.DietaryPreference{}, nil)
	fx.nutriRepo.On("FindConsultationsByPet", ctx, petID).Return([]*entity.Consultation{}, nil)
	fx.petRepo.On("FindPrescriptionsByPet", ctx, petID).Return([]*entity.Prescription{}, nil)
	fx.catalogRepo.On("FindPersonalDishesByPet", ctx, petID).
		Return([]*entity.Dish{{Name: "Dieta renal"}}, nil)

	output, err := fx.service.GetPet(ctx, accountID, petID)
	require.NoError(t, err)
	assert.Equal(t, "Gato", output.SpeciesName)
	assert.Len(t, output.Allergies, 1)
	assert.Len(t, output.Conditions, 1)
	assert.Len(t, output.Menus, 1)
	assert.Nil(t, output.AllergyNote)
}

func (fx petServiceFixtures) expectOwnedPet(ctx context.Context, accountID uuid.UUID) *entity.Pet {
	customer := fx.expectCustomer(ctx, accountID)
	pet := &entity.Pet{ID: uuid.New(), CustomerID: customer.ID}
	fx.petRepo.On("FindPetByIDAndCustomer", ctx, pet.ID, customer.ID).Return(pet, nil)

	return pet
}

func TestPetService_AddAllergy_UnknownCatalogEntry(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	pet := fx.expectOwnedPet(ctx, accountID)

	allergyID := uuid.New()
	fx.petRepo.On("FindSpeciesAllergyByID", ctx, allergyID).
		Return(nil, repository.ErrSpeciesAllergyNotFound)

	_, err := fx.service.AddAllergy(ctx, accountID, pet.ID, usecase.AddAllergyInput{SpeciesAllergyID: allergyID})
	assert.ErrorIs(t, err, domainerrors.ErrAllergyNotFound)
	fx.petRepo.AssertNotCalled(t, "CreatePetAllergy", mock.Anything, mock.Anything)
}

func TestPetService_AddAllergy_Duplicate(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	pet := fx.expectOwnedPet(ctx, accountID)

	allergyID := uuid.New()
	fx.petRepo.On("FindSpeciesAllergyByID", ctx, allergyID).
		Return(&entity.SpeciesAllergy{ID: allergyID, Name: "Pollo"}, nil)
	fx.petRepo.On("FindPetAllergy", ctx, pet.ID, allergyID).
		Return(&entity.PetAllergy{PetID: pet.ID, SpeciesAllergyID: allergyID}, nil)

	_, err := fx.service.AddAllergy(ctx, accountID, pet.ID, usecase.AddAllergyInput{SpeciesAllergyID: allergyID})
	assert.ErrorIs(t, err, domainerrors.ErrAllergyAlreadyRegistered)
	fx.petRepo.AssertNotCalled(t, "CreatePetAllergy", mock.Anything, mock.Anything)
}

func TestPetService_AddAllergy_DefaultsSeverity(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	pet := fx.expectOwnedPet(ctx, accountID)

	allergyID := uuid.New()
	fx.petRepo.On("FindSpeciesAllergyByID", ctx, allergyID).
		Return(&entity.SpeciesAllergy{ID: allergyID, Name: "Pollo"}, nil)
	fx.petRepo.On("FindPetAllergy", ctx, pet.ID, allergyID).
		Return(nil, repository.ErrPetAllergyNotFound)
	fx.petRepo.On("CreatePetAllergy", ctx, mock.MatchedBy(func(a *entity.PetAllergy) bool {
		return a.PetID == pet.ID && a.Severity == defaultAllergySeverity
	})).Return(nil)

	detail, err := fx.service.AddAllergy(ctx, accountID, pet.ID, usecase.AddAllergyInput{SpeciesAllergyID: allergyID})
	require.NoError(t, err)
	assert.Equal(t, "Pollo", detail.AllergyName)
	fx.petRepo.AssertExpectations(t)
}

func TestPetService_AddCondition_Success(t *testing.T) {
	fx := createTestPetService()
	ctx := context.Background()
	accountID := uuid.New()
	pet := fx.expectOwnedPet(ctx, accountID)

	fx.petRepo.On("CreateHealthCondition", ctx, mock.MatchedBy(func(c *entity.HealthCondition) bool {
		return c.PetID == pet.ID && c.Name == "Diabetes"
	})).Return(nil)

	condition, err := fx.service.AddCondition(ctx, accountID, pet.ID, usecase.AddConditionInput{Name: "Diabetes"})
	require.NoError(t, err)
	assert.Equal(t, "Diabetes", condition.Name)
}
