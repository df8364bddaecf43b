package main

import (
	"github.com/PaulCari/PawPals/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AccountModel{},
		model.RoleModel{},
		model.AccountRoleModel{},
		model.CustomerModel{},
		model.AddressModel{},
		model.NotificationModel{},
		model.PetModel{},
		model.SpeciesModel{},
		model.SpeciesAllergyModel{},
		model.PetAllergyModel{},
		model.AllergyNoteModel{},
		model.HealthConditionModel{},
		model.DietaryPreferenceModel{},
		model.PrescriptionModel{},
		model.CategoryModel{},
		model.TagModel{},
		model.DishModel{},
		model.PersonalDishModel{},
		model.FavoriteDishModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.DeliveryControlModel{},
		model.SpecializedOrderModel{},
		model.NutritionistModel{},
		model.ConsultationModel{},
		model.PaymentGatewayModel{},
		model.PaymentModel{},
		model.MembershipPlanModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
