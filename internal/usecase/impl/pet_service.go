package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
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

const petUploadsDir = "mascotas"

// allowedPhotoExtensions lists the photo formats accepted for pet uploads.
var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// petService implements the PetUsecase interface.
type petService struct {
	customerRepo repository.CustomerRepository
	petRepo      repository.PetRepository
	specRepo     repository.SpecializedOrderRepository
	nutriRepo    repository.NutritionistRepository
	catalogRepo  repository.CatalogRepository
	storage      service.FileStorage
	logger       *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(
	customerRepo repository.CustomerRepository,
	petRepo repository.PetRepository,
	specRepo repository.SpecializedOrderRepository,
	nutriRepo repository.NutritionistRepository,
	catalogRepo repository.CatalogRepository,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.PetUsecase {
	return &petService{
		customerRepo: customerRepo,
		petRepo:      petRepo,
		specRepo:     specRepo,
		nutriRepo:    nutriRepo,
		catalogRepo:  catalogRepo,
		storage:      storage,
		logger:       logger,
	}
}

func (srv *petService) findCustomer(ctx context.Context, accountID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

func (srv *petService) findOwnedPet(ctx context.Context, accountID, petID uuid.UUID) (*entity.Pet, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	pet, err := srv.petRepo.FindPetByIDAndCustomer(ctx, petID, customer.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	return pet, nil
}

// defaultPhotoForSpecies resolves the stock image used when no photo was
// uploaded. Matching is by species name so new species fall back gracefully.
func defaultPhotoForSpecies(speciesName string) string {
	switch {
	case strings.Contains(strings.ToLower(speciesName), "perro"):
		return path.Join(petUploadsDir, "perro.png")
	case strings.Contains(strings.ToLower(speciesName), "gato"):
		return path.Join(petUploadsDir, "gato.png")
	default:
		return path.Join(petUploadsDir, "default.png")
	}
}

func (srv *petService) storePetPhoto(ctx context.Context, petID uuid.UUID, photo *usecase.FileUpload) (string, error) {
	ext := strings.ToLower(path.Ext(photo.Filename))
	if !allowedPhotoExtensions[ext] {
		return "", domainerrors.ErrInvalidImageFormat
	}

	return srv.storage.Save(ctx, petUploadsDir, fmt.Sprintf("mascota_%s%s", petID, ext), photo.Content)
}

func (srv *petService) CreatePet(ctx context.Context, accountID uuid.UUID, input usecase.CreatePetInput) (*entity.Pet, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if input.Sex != entity.PetSexMale && input.Sex != entity.PetSexFemale {
		return nil, domainerrors.ErrInvalidPetSex
	}

	species, err := srv.petRepo.FindSpeciesByID(ctx, input.SpeciesID)
	if err != nil {
		if errors.Is(err, repository.ErrSpeciesNotFound) {
			return nil, domainerrors.ErrSpeciesNotFound
		}

		return nil, errors.Wrap(err, "failed to find species")
	}

	pet := &entity.Pet{
		CustomerID:   customer.ID,
		Name:         input.Name,
		SpeciesID:    species.ID,
		Breed:        input.Breed,
		Age:          input.Age,
		Sex:          input.Sex,
		Weight:       input.Weight,
		Observations: input.Observations,
		PhotoPath:    defaultPhotoForSpecies(species.Name),
	}

	if err := srv.petRepo.CreatePet(ctx, pet); err != nil {
		return nil, err
	}

	if input.Photo != nil {
		photoPath, err := srv.storePetPhoto(ctx, pet.ID, input.Photo)
		if err != nil {
			return nil, err
		}
		pet.PhotoPath = photoPath
		if err := srv.petRepo.UpdatePet(ctx, pet); err != nil {
			return nil, err
		}
	}

	srv.logger.Info("Pet registered", "petID", pet.ID, "customerID", customer.ID)

	return pet, nil
}

func (srv *petService) ListPets(ctx context.Context, accountID uuid.UUID) ([]*entity.Pet, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return srv.petRepo.FindPetsByCustomer(ctx, customer.ID)
}

func (srv *petService) GetPet(ctx context.Context, accountID, petID uuid.UUID) (*usecase.PetDetailOutput, error) {
	pet, err := srv.findOwnedPet(ctx, accountID, petID)
	if err != nil {
		return nil, err
	}

	species, err := srv.petRepo.FindSpeciesByID(ctx, pet.SpeciesID)
	if err != nil && !errors.Is(err, repository.ErrSpeciesNotFound) {
		return nil, errors.Wrap(err, "failed to find species")
	}
	speciesName := ""
	if species != nil {
		speciesName = species.Name
	}

	allergies, err := srv.petRepo.FindAllergiesByPet(ctx, pet.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load allergies")
	}

	note, err := srv.petRepo.FindLatestAllergyNoteByPet(ctx, pet.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load allergy note")
	}

	conditions, err := srv.petRepo.FindConditionsByPet(ctx, pet.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load conditions")
	}

	preferences, err := srv.petRepo.FindPreferencesByPet(ctx, pet.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	consultations, err := srv.nutriRepo.FindConsultationsByPet(ctx, pet.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load consultations")
	}

	prescriptions, err := srv.petRepo.FindPrescriptionsByPet(ctx, pet.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load prescriptions")
	}

	menus, err := srv.catalogRepo.FindPersonalDishesByPet(ctx, pet.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load personalized menus")
	}

	return &usecase.PetDetailOutput{
		Pet:           pet,
		SpeciesName:   speciesName,
		Allergies:     allergies,
		AllergyNote:   note,
		Conditions:    conditions,
		Preferences:   preferences,
		Consultations: consultations,
		Prescriptions: prescriptions,
		Menus:         menus,
	}, nil
}

func (srv *petService) UpdatePet(ctx context.Context, accountID, petID uuid.UUID, input usecase.UpdatePetInput) (*entity.Pet, error) {
	pet, err := srv.findOwnedPet(ctx, accountID, petID)
	if err != nil {
		return nil, err
	}

	if input.Sex != nil && *input.Sex != entity.PetSexMale && *input.Sex != entity.PetSexFemale {
		return nil, domainerrors.ErrInvalidPetSex
	}

	if input.SpeciesID != nil {
		if _, err := srv.petRepo.FindSpeciesByID(ctx, *input.SpeciesID); err != nil {
			if errors.Is(err, repository.ErrSpeciesNotFound) {
				return nil, domainerrors.ErrSpeciesNotFound
			}

			return nil, errors.Wrap(err, "failed to find species")
		}
		pet.SpeciesID = *input.SpeciesID
	}
	if input.Name != nil {
		pet.Name = *input.Name
	}
	if input.Breed != nil {
		pet.Breed = *input.Breed
	}
	if input.Age != nil {
		pet.Age = *input.Age
	}
	if input.Sex != nil {
		pet.Sex = *input.Sex
	}
	if input.Weight != nil {
		pet.Weight = input.Weight
	}
	if input.Observations != nil {
		pet.Observations = *input.Observations
	}
	if input.Photo != nil {
		photoPath, err := srv.storePetPhoto(ctx, pet.ID, input.Photo)
		if err != nil {
			return nil, err
		}
		pet.PhotoPath = photoPath
	}

	if err := srv.petRepo.UpdatePet(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

// DeletePet removes a pet. Pets referenced by undelivered diet requests keep
// their rows and are deactivated so the review history stays intact.
func (srv *petService) DeletePet(ctx context.Context, accountID, petID uuid.UUID) error {
	pet, err := srv.findOwnedPet(ctx, accountID, petID)
	if err != nil {
		return err
	}

	active, err := srv.specRepo.CountActiveByPet(ctx, pet.ID)
	if err != nil {
		return errors.Wrap(err, "failed to count active diet requests")
	}

	if active > 0 {
		srv.logger.Info("Deactivating pet with active diet requests", "petID", pet.ID, "active", active)

		return srv.petRepo.DeactivatePet(ctx, pet.ID)
	}

	return srv.petRepo.DeletePet(ctx, pet.ID)
}

func (srv *petService) ListAllergies(ctx context.Context, accountID, petID uuid.UUID) ([]*repository.PetAllergyDetail, error) {
	pet, err := srv.findOwnedPet(ctx, accountID, petID)
	if err != nil {
		return nil, err
	}

	return srv.petRepo.FindAllergiesByPet(ctx, pet.ID)
}

// AddAllergy links a catalog allergy to the pet, rejecting duplicates.
func (srv *petService) AddAllergy(ctx context.Context, accountID, petID uuid.UUID, input usecase.AddAllergyInput) (*repository.PetAllergyDetail, error) {
	pet, err := srv.findOwnedPet(ctx, accountID, petID)
	if err != nil {
		return nil, err
	}

	catalogAllergy, err := srv.petRepo.FindSpeciesAllergyByID(ctx, input.SpeciesAllergyID)
	if err != nil {
		if errors.Is(err, repository.ErrSpeciesAllergyNotFound) {
			return nil, domainerrors.ErrAllergyNotFound
		}

		return nil, errors.Wrap(err, "failed to find allergy")
	}

	_, err = srv.petRepo.FindPetAllergy(ctx, pet.ID, catalogAllergy.ID)
	if err == nil {
		return nil, domainerrors.ErrAllergyAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrPetAllergyNotFound) {
		return nil, errors.Wrap(err, "failed to check allergy")
	}

	severity := input.Severity
	if severity == "" {
		severity = defaultAllergySeverity
	}

	allergy := &entity.PetAllergy{
		PetID:            pet.ID,
		SpeciesAllergyID: catalogAllergy.ID,
		Severity:         severity,
		Description:      input.Description,
	}
	if err := srv.petRepo.CreatePetAllergy(ctx, allergy); err != nil {
		return nil, err
	}

	return &repository.PetAllergyDetail{Allergy: allergy, AllergyName: catalogAllergy.Name}, nil
}

func (srv *petService) ListConditions(ctx context.Context, accountID, petID uuid.UUID) ([]*entity.HealthCondition, error) {
	pet, err := srv.findOwnedPet(ctx, accountID, petID)
	if err != nil {
		return nil, err
	}

	return srv.petRepo.FindConditionsByPet(ctx, pet.ID)
}

func (srv *petService) AddCondition(ctx context.Context, accountID, petID uuid.UUID, input usecase.AddConditionInput) (*entity.HealthCondition, error) {
	pet, err := srv.findOwnedPet(ctx, accountID, petID)
	if err != nil {
		return nil, err
	}

	condition := &entity.HealthCondition{
		PetID:       pet.ID,
		Name:        input.Name,
		Description: input.Description,
		Date:        time.Now(),
	}
	if err := srv.petRepo.CreateHealthCondition(ctx, condition); err != nil {
		return nil, err
	}

	return condition, nil
}

func (srv *petService) ListPrescriptions(ctx context.Context, accountID, petID uuid.UUID) ([]*entity.Prescription, error) {
	pet, err := srv.findOwnedPet(ctx, accountID, petID)
	if err != nil {
		return nil, err
	}

	return srv.petRepo.FindPrescriptionsByPet(ctx, pet.ID)
}
