package postgres

import (
	"context"
	"log/slog"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"
	"github.com/PaulCari/PawPals/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the database schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.RoleModel{},
		&model.AccountModel{},
		&model.AccountRoleModel{},
		&model.MembershipPlanModel{},
		&model.CustomerModel{},
		&model.AddressModel{},
		&model.NotificationModel{},
		&model.SpeciesModel{},
		&model.SpeciesAllergyModel{},
		&model.PetModel{},
		&model.PetAllergyModel{},
		&model.AllergyNoteModel{},
		&model.HealthConditionModel{},
		&model.DietaryPreferenceModel{},
		&model.CategoryModel{},
		&model.TagModel{},
		&model.DishModel{},
		&model.PersonalDishModel{},
		&model.FavoriteDishModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.DeliveryControlModel{},
		&model.SpecializedOrderModel{},
		&model.NutritionistModel{},
		&model.ConsultationModel{},
		&model.PrescriptionModel{},
		&model.PaymentGatewayModel{},
		&model.PaymentModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// Seed provisions the reference data the platform expects on first boot.
// Every insert ignores conflicts on the unique name columns, so reruns are safe.
func Seed(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	tx := db.WithContext(ctx)

	roles := []model.RoleModel{
		{Name: entity.RoleAdmin, Description: "Platform administrator"},
		{Name: entity.RoleCustomer, Description: "Pet owner"},
		{Name: entity.RoleNutritionist, Description: "Reviews specialized diet requests"},
		{Name: entity.RoleCourier, Description: "Delivers orders"},
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
		return errors.Wrap(err, "failed to seed roles")
	}

	plans := []model.MembershipPlanModel{
		{
			Name:         entity.BasicPlanName,
			DurationDays: 365,
			Price:        0.00,
			Description:  "Plan básico sin costo",
			Benefits:     "Acceso al catálogo,Pedidos estándar",
		},
		{
			Name:         "Premium",
			DurationDays: 30,
			Price:        29.90,
			Description:  "Beneficios exclusivos para tu mascota",
			Benefits:     "Envío gratuito,Descuentos en platos,Consultas prioritarias",
		},
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&plans).Error; err != nil {
		return errors.Wrap(err, "failed to seed membership plans")
	}

	categories := []model.CategoryModel{
		{Name: "Platos caseros"},
		{Name: "Ensaladas"},
		{Name: "Postres"},
		{Name: "Bebidas"},
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
		return errors.Wrap(err, "failed to seed categories")
	}

	species := []model.SpeciesModel{
		{Name: "Perro"},
		{Name: "Gato"},
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&species).Error; err != nil {
		return errors.Wrap(err, "failed to seed species")
	}

	gateways := []model.PaymentGatewayModel{
		{Name: "Yape"},
		{Name: "Plin"},
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&gateways).Error; err != nil {
		return errors.Wrap(err, "failed to seed payment gateways")
	}

	nutritionists := []model.NutritionistModel{
		{Name: "Nutricionista PawPals"},
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&nutritionists).Error; err != nil {
		return errors.Wrap(err, "failed to seed nutritionists")
	}

	if err := seedAllergyCatalog(tx); err != nil {
		return err
	}

	if err := seedDishes(tx); err != nil {
		return err
	}

	if logger != nil {
		logger.InfoContext(ctx, "Seed data provisioned")
	}

	return nil
}

func seedAllergyCatalog(tx *gorm.DB) error {
	var dog, cat model.SpeciesModel
	if err := tx.Where("name = ?", "Perro").First(&dog).Error; err != nil {
		return errors.Wrap(err, "failed to load dog species")
	}
	if err := tx.Where("name = ?", "Gato").First(&cat).Error; err != nil {
		return errors.Wrap(err, "failed to load cat species")
	}

	allergies := []model.SpeciesAllergyModel{
		{SpeciesID: dog.ID, Name: "Pollo"},
		{SpeciesID: dog.ID, Name: "Res"},
		{SpeciesID: dog.ID, Name: "Lácteos"},
		{SpeciesID: dog.ID, Name: "Granos"},
		{SpeciesID: cat.ID, Name: "Pescado"},
		{SpeciesID: cat.ID, Name: "Pollo"},
		{SpeciesID: cat.ID, Name: "Lácteos"},
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&allergies).Error; err != nil {
		return errors.Wrap(err, "failed to seed allergy catalog")
	}

	return nil
}

func seedDishes(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&model.DishModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count dishes")
	}
	if count > 0 {
		return nil
	}

	var homemade model.CategoryModel
	if err := tx.Where("name = ?", "Platos caseros").First(&homemade).Error; err != nil {
		return errors.Wrap(err, "failed to load homemade category")
	}
	var dog model.SpeciesModel
	if err := tx.Where("name = ?", "Perro").First(&dog).Error; err != nil {
		return errors.Wrap(err, "failed to load dog species")
	}

	barf := []model.DishModel{
		{
			Name:        "BARF de pollo y vegetales",
			Description: "Dieta cruda balanceada a base de pollo, zanahoria y espinaca",
			Ingredients: "Pollo, zanahoria, espinaca, aceite de pescado",
			Price:       24.90,
			CategoryID:  &homemade.ID,
			SpeciesID:   &dog.ID,
			IsRaw:       true,
		},
		{
			Name:        "BARF de res y zapallo",
			Description: "Dieta cruda con res magra, zapallo y vísceras",
			Ingredients: "Res, zapallo, hígado, huevo",
			Price:       27.90,
			CategoryID:  &homemade.ID,
			SpeciesID:   &dog.ID,
			IsRaw:       true,
		},
		{
			Name:        "BARF de pavo y quinua",
			Description: "Dieta cruda hipoalergénica de pavo con quinua",
			Ingredients: "Pavo, quinua, brócoli, aceite de oliva",
			Price:       26.50,
			CategoryID:  &homemade.ID,
			SpeciesID:   &dog.ID,
			IsRaw:       true,
		},
	}

	generic := []model.DishModel{
		{Name: "Guiso de pollo con arroz", Price: 18.90},
		{Name: "Estofado de res con camote", Price: 19.90},
		{Name: "Pescado al vapor con verduras", Price: 21.00},
		{Name: "Pollo desmenuzado con calabaza", Price: 17.50},
		{Name: "Tortilla de huevo y espinaca", Price: 14.90},
		{Name: "Croquetas caseras de atún", Price: 16.90},
		{Name: "Puré de pavo con zanahoria", Price: 18.00},
		{Name: "Arroz con hígado de pollo", Price: 15.90},
		{Name: "Ensalada de pollo y manzana", Price: 16.50},
		{Name: "Ensalada tibia de res", Price: 17.90},
		{Name: "Galletas de avena y mantequilla de maní", Price: 9.90},
		{Name: "Helado de plátano para mascotas", Price: 8.90},
		{Name: "Muffin de zanahoria canino", Price: 10.50},
		{Name: "Batido de frutas pet friendly", Price: 7.90},
		{Name: "Caldo de huesos", Price: 6.90},
		{Name: "Agua saborizada de sandía", Price: 5.50},
		{Name: "Snack deshidratado de camote", Price: 8.50},
	}
	for i := range generic {
		generic[i].CategoryID = &homemade.ID
		generic[i].SpeciesID = &dog.ID
	}

	dishes := append(barf, generic...)
	if err := tx.Create(&dishes).Error; err != nil {
		return errors.Wrap(err, "failed to seed dishes")
	}

	return nil
}
