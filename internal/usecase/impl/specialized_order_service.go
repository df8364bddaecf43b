package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
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
	specializedUploadsDir = "pedido_especializado"

	// defaultAllergySeverity is assigned to allergy links created from a diet
	// request; the owner only picks the allergy, not its grade.
	defaultAllergySeverity = "moderada"
)

// specializedOrderService implements the SpecializedOrderUsecase interface.
type specializedOrderService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	petRepo      repository.PetRepository
	specRepo     repository.SpecializedOrderRepository
	storage      service.FileStorage
	logger       *slog.Logger
}

// NewSpecializedOrderService is the constructor for specializedOrderService.
func NewSpecializedOrderService(
	txManager repository.TransactionManager,
	customerRepo repository.CustomerRepository,
	petRepo repository.PetRepository,
	specRepo repository.SpecializedOrderRepository,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.SpecializedOrderUsecase {
	return &specializedOrderService{
		txManager:    txManager,
		customerRepo: customerRepo,
		petRepo:      petRepo,
		specRepo:     specRepo,
		storage:      storage,
		logger:       logger,
	}
}

// parseJSONList decodes a multipart form field holding either a JSON array or
// a single JSON value, which is wrapped into a one-element list.
func parseJSONList(value string) ([]any, error) {
	if value == "" {
		return nil, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		return nil, domainerrors.ErrMalformedListPayload
	}

	if list, ok := decoded.([]any); ok {
		return list, nil
	}

	return []any{decoded}, nil
}

// namedEntry extracts the name and description of a list element that may be
// either an object with "nombre"/"descripcion" keys or a plain string.
func namedEntry(element any) (name, description string) {
	switch value := element.(type) {
	case map[string]any:
		name, _ = value["nombre"].(string)
		description, _ = value["descripcion"].(string)
	case string:
		name = value
	default:
		name = fmt.Sprintf("%v", value)
	}

	return name, description
}

func (srv *specializedOrderService) CreateSpecializedOrder(ctx context.Context, accountID uuid.UUID, input usecase.CreateSpecializedOrderInput) (*usecase.SpecializedOrderOutput, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	pet, err := srv.petRepo.FindPetByIDAndCustomer(ctx, input.PetID, customer.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	// All three lists are validated upfront so a malformed field rejects the
	// request before any row is written.
	allergyElements, err := parseJSONList(input.AllergiesJSON)
	if err != nil {
		return nil, err
	}
	allergyIDs := make([]uuid.UUID, 0, len(allergyElements))
	for _, element := range allergyElements {
		raw, ok := element.(string)
		if !ok {
			return nil, domainerrors.ErrMalformedListPayload
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domainerrors.ErrMalformedListPayload
		}
		allergyIDs = append(allergyIDs, id)
	}

	conditions, err := parseJSONList(input.ConditionsJSON)
	if err != nil {
		return nil, err
	}

	preferences, err := parseJSONList(input.PreferencesJSON)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerID:   customer.ID,
		Date:         time.Now(),
		Total:        0,
		Status:       entity.OrderStatusPending,
		IncludesDish: false,
	}
	spec := &entity.SpecializedOrder{
		PetID:             pet.ID,
		Frequency:         input.Frequency,
		DietGoal:          input.DietGoal,
		ExtraInstructions: input.ExtraInstructions,
		WantsConsultation: input.WantsConsultation,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		specRepo := repoFactory.NewSpecializedOrderRepository()
		petRepo := repoFactory.NewPetRepository()

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return err
		}

		spec.OrderID = order.ID
		if err := specRepo.CreateSpecializedOrder(ctx, spec); err != nil {
			return err
		}

		if input.ExtraFile != nil {
			name := fmt.Sprintf("extra_%s_%s", spec.ID, input.ExtraFile.Filename)
			path, err := srv.storage.Save(ctx, specializedUploadsDir, name, input.ExtraFile.Content)
			if err != nil {
				return errors.Wrap(err, "failed to store extra file")
			}
			spec.ExtraFilePath = path
			if err := specRepo.UpdateSpecializedOrder(ctx, spec); err != nil {
				return err
			}
		}

		if input.Prescription != nil {
			name := fmt.Sprintf("receta_%s_%s", spec.ID, input.Prescription.Filename)
			path, err := srv.storage.Save(ctx, specializedUploadsDir, name, input.Prescription.Content)
			if err != nil {
				return errors.Wrap(err, "failed to store prescription")
			}
			if err := petRepo.CreatePrescription(ctx, &entity.Prescription{
				PetID:              pet.ID,
				SpecializedOrderID: &spec.ID,
				Date:               time.Now(),
				FilePath:           path,
			}); err != nil {
				return err
			}
		}

		for _, allergyID := range allergyIDs {
			if err := petRepo.CreatePetAllergy(ctx, &entity.PetAllergy{
				PetID:            pet.ID,
				SpeciesAllergyID: allergyID,
				Severity:         defaultAllergySeverity,
			}); err != nil {
				return err
			}
		}

		if input.AllergyNote != "" {
			if err := petRepo.CreateAllergyNote(ctx, &entity.AllergyNote{
				PetID:       pet.ID,
				Description: input.AllergyNote,
				Date:        time.Now(),
			}); err != nil {
				return err
			}
		}

		for _, element := range conditions {
			name, description := namedEntry(element)
			if name == "" {
				continue
			}
			if err := petRepo.CreateHealthCondition(ctx, &entity.HealthCondition{
				PetID:       pet.ID,
				Name:        name,
				Description: description,
				Date:        time.Now(),
			}); err != nil {
				return err
			}
		}

		for _, element := range preferences {
			name, description := namedEntry(element)
			if name == "" {
				continue
			}
			if err := petRepo.CreateDietaryPreference(ctx, &entity.DietaryPreference{
				PetID:       pet.ID,
				Name:        name,
				Description: description,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Diet request created", "specID", spec.ID, "orderID", order.ID, "petID", pet.ID)

	return &usecase.SpecializedOrderOutput{Order: order, Spec: spec}, nil
}

func (srv *specializedOrderService) ListSpecializedOrders(ctx context.Context, accountID uuid.UUID) ([]*repository.SpecializedOrderSummary, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return srv.specRepo.FindSummariesByCustomer(ctx, customer.ID)
}

// GetSpecializedOrder resolves a diet request and hides it from customers who
// do not own the underlying order.
func (srv *specializedOrderService) GetSpecializedOrder(ctx context.Context, accountID, specID uuid.UUID) (*repository.SpecializedOrderSummary, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	summary, err := srv.specRepo.FindSummaryByID(ctx, specID)
	if err != nil {
		if errors.Is(err, repository.ErrSpecializedOrderNotFound) {
			return nil, domainerrors.ErrSpecializedOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find diet request")
	}

	if summary.Order == nil || summary.Order.CustomerID != customer.ID {
		return nil, domainerrors.ErrSpecializedOrderNotFound
	}

	return summary, nil
}
