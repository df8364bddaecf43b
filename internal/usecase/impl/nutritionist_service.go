package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/domain/service"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	prescriptionUploadsDir = "recetas"
	customDishUploadsDir   = "platos_personalizados"

	// dishSearchLimit caps autocomplete results in the diet builder.
	dishSearchLimit = 10
)

// nutritionistService implements the NutritionistUsecase interface.
type nutritionistService struct {
	txManager        repository.TransactionManager
	specRepo         repository.SpecializedOrderRepository
	petRepo          repository.PetRepository
	catalogRepo      repository.CatalogRepository
	nutriRepo        repository.NutritionistRepository
	notificationRepo repository.NotificationRepository
	storage          service.FileStorage
	logger           *slog.Logger
}

// NewNutritionistService is the constructor for nutritionistService.
func NewNutritionistService(
	txManager repository.TransactionManager,
	specRepo repository.SpecializedOrderRepository,
	petRepo repository.PetRepository,
	catalogRepo repository.CatalogRepository,
	nutriRepo repository.NutritionistRepository,
	notificationRepo repository.NotificationRepository,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.NutritionistUsecase {
	return &nutritionistService{
		txManager:        txManager,
		specRepo:         specRepo,
		petRepo:          petRepo,
		catalogRepo:      catalogRepo,
		nutriRepo:        nutriRepo,
		notificationRepo: notificationRepo,
		storage:          storage,
		logger:           logger,
	}
}

func (srv *nutritionistService) ListPendingOrders(ctx context.Context) ([]*repository.SpecializedOrderSummary, error) {
	return srv.specRepo.FindPendingSummaries(ctx)
}

func (srv *nutritionistService) GetOrderDetail(ctx context.Context, specID uuid.UUID) (*usecase.SpecializedOrderDetailOutput, error) {
	summary, err := srv.specRepo.FindSummaryByID(ctx, specID)
	if err != nil {
		if errors.Is(err, repository.ErrSpecializedOrderNotFound) {
			return nil, domainerrors.ErrSpecializedOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find diet request")
	}

	petID := summary.Pet.ID

	allergies, err := srv.petRepo.FindAllergiesByPet(ctx, petID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load allergies")
	}

	note, err := srv.petRepo.FindLatestAllergyNoteByPet(ctx, petID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load allergy note")
	}

	conditions, err := srv.petRepo.FindConditionsByPet(ctx, petID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load conditions")
	}

	preferences, err := srv.petRepo.FindPreferencesByPet(ctx, petID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	consultations, err := srv.nutriRepo.FindConsultationsByPet(ctx, petID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load consultations")
	}

	prescriptions, err := srv.petRepo.FindPrescriptionsBySpecializedOrder(ctx, specID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load prescriptions")
	}

	return &usecase.SpecializedOrderDetailOutput{
		Summary:       summary,
		Allergies:     allergies,
		AllergyNote:   note,
		Conditions:    conditions,
		Preferences:   preferences,
		Consultations: consultations,
		Prescriptions: prescriptions,
	}, nil
}

// ReviewOrder records the professional verdict. Reviews are attributed to the
// first registered nutritionist until per-account assignment exists.
func (srv *nutritionistService) ReviewOrder(ctx context.Context, specID uuid.UUID, input usecase.ReviewInput) (*entity.Consultation, error) {
	spec, err := srv.specRepo.FindSpecializedOrderByID(ctx, specID)
	if err != nil {
		if errors.Is(err, repository.ErrSpecializedOrderNotFound) {
			return nil, domainerrors.ErrSpecializedOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find diet request")
	}

	var nutritionistID *uuid.UUID
	nutritionist, err := srv.nutriRepo.FindFirstNutritionist(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNutritionistNotFound) {
			return nil, errors.Wrap(err, "failed to find nutritionist")
		}
	} else {
		nutritionistID = &nutritionist.ID
	}

	consultation := &entity.Consultation{
		PetID:           spec.PetID,
		NutritionistID:  nutritionistID,
		Date:            time.Now(),
		Observations:    input.Observations,
		Recommendations: input.Recommendations,
	}

	status := entity.OrderStatusObserved
	if input.Approved {
		status = entity.OrderStatusReviewed
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewNutritionistRepository().CreateConsultation(ctx, consultation); err != nil {
			return err
		}

		return repoFactory.NewOrderRepository().UpdateOrderStatus(ctx, spec.OrderID, status)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Diet request reviewed", "specID", specID, "status", status)

	return consultation, nil
}

// CreateMixDish blends base dishes into an unpublished custom dish, links it
// to the pet of the diet request and notifies the owner.
func (srv *nutritionistService) CreateMixDish(ctx context.Context, input usecase.MixDishInput) (*entity.Dish, error) {
	spec, err := srv.specRepo.FindSpecializedOrderByID(ctx, input.SpecializedOrderID)
	if err != nil {
		if errors.Is(err, repository.ErrSpecializedOrderNotFound) {
			return nil, domainerrors.ErrSpecializedOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find diet request")
	}

	pet, err := srv.petRepo.FindPetByID(ctx, spec.PetID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	description := input.Description
	baseNames := make([]string, 0, len(input.BaseDishIDs))
	for _, dishID := range input.BaseDishIDs {
		base, err := srv.catalogRepo.FindDishByID(ctx, dishID)
		if err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				return nil, domainerrors.ErrDishNotFound
			}

			return nil, errors.Wrap(err, "failed to find base dish")
		}
		baseNames = append(baseNames, base.Name)
	}
	if description == "" && len(baseNames) > 0 {
		description = "Mix de " + strings.Join(baseNames, " + ")
	}

	dish := &entity.Dish{
		Name:             input.Name,
		Description:      description,
		Price:            input.Price,
		SpeciesID:        &pet.SpeciesID,
		IsRaw:            true,
		Published:        false,
		NutritionistMade: true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.NewCatalogRepository()

		if err := catalogRepo.CreateDish(ctx, dish); err != nil {
			return err
		}

		if err := catalogRepo.CreatePersonalDish(ctx, &entity.PersonalDish{
			DishID: dish.ID,
			PetID:  pet.ID,
		}); err != nil {
			return err
		}

		return repoFactory.NewNotificationRepository().CreateNotification(ctx, &entity.Notification{
			CustomerID:  pet.CustomerID,
			Title:       "¡Dieta Lista! 🥗",
			Message:     fmt.Sprintf("El menú personalizado para %s está listo. Toca aquí para ver y comprar.", pet.Name),
			Date:        time.Now(),
			Type:        entity.NotificationTypeDietReady,
			ReferenceID: pet.ID.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Mix dish created", "dishID", dish.ID, "petID", pet.ID)

	return dish, nil
}

func (srv *nutritionistService) CreatePersonalizedDish(ctx context.Context, specID uuid.UUID, input usecase.CreateDishInput) (*entity.Dish, error) {
	spec, err := srv.specRepo.FindSpecializedOrderByID(ctx, specID)
	if err != nil {
		if errors.Is(err, repository.ErrSpecializedOrderNotFound) {
			return nil, domainerrors.ErrSpecializedOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find diet request")
	}

	// The id is minted here so the stored image can be named after it.
	dish := &entity.Dish{
		ID:               uuid.New(),
		Name:             input.Name,
		Description:      input.Description,
		Ingredients:      input.Ingredients,
		Price:            input.Price,
		CategoryID:       input.CategoryID,
		SpeciesID:        input.SpeciesID,
		IsRaw:            input.IsRaw,
		Published:        false,
		NutritionistMade: true,
	}

	if input.Image != nil {
		name := fmt.Sprintf("plato_%s_%s", dish.ID, input.Image.Filename)
		path, err := srv.storage.Save(ctx, customDishUploadsDir, name, input.Image.Content)
		if err != nil {
			// The dish is still usable without its picture.
			srv.logger.Warn("Failed to store dish image", "dishID", dish.ID, "error", err)
		} else {
			dish.ImagePath = path
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.NewCatalogRepository()

		if err := catalogRepo.CreateDish(ctx, dish); err != nil {
			return err
		}

		return catalogRepo.CreatePersonalDish(ctx, &entity.PersonalDish{
			DishID: dish.ID,
			PetID:  spec.PetID,
		})
	})
	if err != nil {
		return nil, err
	}

	return dish, nil
}

func (srv *nutritionistService) ListPersonalizedDishes(ctx context.Context, petID uuid.UUID) ([]*entity.Dish, error) {
	if _, err := srv.petRepo.FindPetByID(ctx, petID); err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	return srv.catalogRepo.FindPersonalDishesByPet(ctx, petID)
}

func (srv *nutritionistService) ListPatients(ctx context.Context) ([]*repository.PatientSummary, error) {
	return srv.nutriRepo.FindPatients(ctx)
}

func (srv *nutritionistService) GetHistory(ctx context.Context) ([]*repository.ConsultationDetail, error) {
	return srv.nutriRepo.FindHistory(ctx)
}

func (srv *nutritionistService) SearchDishes(ctx context.Context, query string) ([]*repository.DishDetail, error) {
	return srv.catalogRepo.SearchActiveDishesByName(ctx, query, dishSearchLimit)
}

func (srv *nutritionistService) UploadPrescription(ctx context.Context, specID uuid.UUID, file usecase.FileUpload) (*entity.Prescription, error) {
	spec, err := srv.specRepo.FindSpecializedOrderByID(ctx, specID)
	if err != nil {
		if errors.Is(err, repository.ErrSpecializedOrderNotFound) {
			return nil, domainerrors.ErrSpecializedOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find diet request")
	}

	name := fmt.Sprintf("receta_%s_%s", spec.ID, file.Filename)
	path, err := srv.storage.Save(ctx, prescriptionUploadsDir, name, file.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store prescription")
	}

	prescription := &entity.Prescription{
		PetID:              spec.PetID,
		SpecializedOrderID: &spec.ID,
		Date:               time.Now(),
		FilePath:           path,
	}
	if err := srv.petRepo.CreatePrescription(ctx, prescription); err != nil {
		return nil, err
	}

	return prescription, nil
}
