// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/PaulCari/PawPals/internal/delivery/http/middleware"
	"github.com/PaulCari/PawPals/internal/delivery/http/router/handler"
	"github.com/PaulCari/PawPals/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler needed to serve the API.
type RouterParams struct {
	fx.In

	AuthHandler             *handler.AuthHandler
	CustomerHandler         *handler.CustomerHandler
	PetHandler              *handler.PetHandler
	CatalogHandler          *handler.CatalogHandler
	CartHandler             *handler.CartHandler
	OrderHandler            *handler.OrderHandler
	SpecializedOrderHandler *handler.SpecializedOrderHandler
	PaymentHandler          *handler.PaymentHandler
	SubscriptionHandler     *handler.SubscriptionHandler
	FavoriteHandler         *handler.FavoriteHandler
	NutritionistHandler     *handler.NutritionistHandler
	AuthMiddleware          *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate
	requireCustomer := r.params.AuthMiddleware.RequireRole(entity.RoleCustomer)
	requireNutritionist := r.params.AuthMiddleware.RequireRole(entity.RoleNutritionist)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public endpoints
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout, authenticate)
	}

	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/dishes", r.params.CatalogHandler.ListDishes)
		catalogGroup.GET("/dishes/:dishID", r.params.CatalogHandler.GetDish)
	}

	e.GET("/plans", r.params.SubscriptionHandler.ListPlans)
	e.GET("/plans/:planID", r.params.SubscriptionHandler.GetPlan)

	// Customer endpoints
	profileGroup := e.Group("/profile", authenticate, requireCustomer)
	{
		profileGroup.GET("", r.params.CustomerHandler.GetProfile)
		profileGroup.PUT("", r.params.CustomerHandler.UpdateProfile)
	}

	addressGroup := e.Group("/addresses", authenticate, requireCustomer)
	{
		addressGroup.POST("", r.params.CustomerHandler.CreateAddress)
		addressGroup.GET("", r.params.CustomerHandler.ListAddresses)
		addressGroup.PUT("/:addressID", r.params.CustomerHandler.UpdateAddress)
		addressGroup.DELETE("/:addressID", r.params.CustomerHandler.DeleteAddress)
	}

	e.GET("/notifications", r.params.CustomerHandler.ListNotifications, authenticate, requireCustomer)

	petGroup := e.Group("/pets", authenticate, requireCustomer)
	{
		petGroup.POST("", r.params.PetHandler.CreatePet)
		petGroup.GET("", r.params.PetHandler.ListPets)
		petGroup.GET("/:petID", r.params.PetHandler.GetPet)
		petGroup.PUT("/:petID", r.params.PetHandler.UpdatePet)
		petGroup.DELETE("/:petID", r.params.PetHandler.DeletePet)
		petGroup.GET("/:petID/allergies", r.params.PetHandler.ListAllergies)
		petGroup.POST("/:petID/allergies", r.params.PetHandler.AddAllergy)
		petGroup.GET("/:petID/conditions", r.params.PetHandler.ListConditions)
		petGroup.POST("/:petID/conditions", r.params.PetHandler.AddCondition)
		petGroup.GET("/:petID/prescriptions", r.params.PetHandler.ListPrescriptions)
	}

	cartGroup := e.Group("/cart", authenticate, requireCustomer)
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.DELETE("", r.params.CartHandler.ClearCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:itemID", r.params.CartHandler.UpdateItem)
		cartGroup.DELETE("/items/:itemID", r.params.CartHandler.RemoveItem)
	}

	orderGroup := e.Group("/orders", authenticate, requireCustomer)
	{
		orderGroup.POST("", r.params.OrderHandler.Checkout)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.POST("/specialized", r.params.SpecializedOrderHandler.Create)
		orderGroup.GET("/specialized", r.params.SpecializedOrderHandler.List)
		orderGroup.GET("/specialized/:specID", r.params.SpecializedOrderHandler.GetDetail)
		orderGroup.GET("/:orderID", r.params.OrderHandler.GetOrder)
		orderGroup.POST("/:orderID/confirm", r.params.OrderHandler.ConfirmReceived)
		orderGroup.GET("/:orderID/qr", r.params.OrderHandler.GetOrderQR)
	}

	paymentGroup := e.Group("/payments", authenticate, requireCustomer)
	{
		paymentGroup.POST("", r.params.PaymentHandler.RegisterPayment)
		paymentGroup.GET("", r.params.PaymentHandler.ListPayments)
		paymentGroup.GET("/gateways", r.params.PaymentHandler.ListGateways)
		paymentGroup.GET("/:orderID", r.params.PaymentHandler.GetPayment)
	}

	subscriptionGroup := e.Group("/subscription", authenticate, requireCustomer)
	{
		subscriptionGroup.GET("", r.params.SubscriptionHandler.GetCurrentPlan)
		subscriptionGroup.POST("", r.params.SubscriptionHandler.Subscribe)
		subscriptionGroup.DELETE("", r.params.SubscriptionHandler.Cancel)
	}

	favoriteGroup := e.Group("/favorites", authenticate, requireCustomer)
	{
		favoriteGroup.GET("", r.params.FavoriteHandler.ListFavorites)
		favoriteGroup.POST("/:dishID", r.params.FavoriteHandler.AddFavorite)
		favoriteGroup.DELETE("/:dishID", r.params.FavoriteHandler.RemoveFavorite)
		favoriteGroup.GET("/:dishID", r.params.FavoriteHandler.IsFavorite)
	}

	// Nutritionist endpoints
	nutritionistGroup := e.Group("/nutritionist", authenticate, requireNutritionist)
	{
		nutritionistGroup.GET("/orders", r.params.NutritionistHandler.ListPendingOrders)
		nutritionistGroup.GET("/orders/:specID", r.params.NutritionistHandler.GetOrderDetail)
		nutritionistGroup.POST("/orders/:specID/review", r.params.NutritionistHandler.ReviewOrder)
		nutritionistGroup.POST("/orders/:specID/mix", r.params.NutritionistHandler.CreateMixDish)
		nutritionistGroup.POST("/orders/:specID/dishes", r.params.NutritionistHandler.CreatePersonalizedDish)
		nutritionistGroup.POST("/orders/:specID/prescriptions", r.params.NutritionistHandler.UploadPrescription)
		nutritionistGroup.GET("/pets/:petID/dishes", r.params.NutritionistHandler.ListPersonalizedDishes)
		nutritionistGroup.GET("/patients", r.params.NutritionistHandler.ListPatients)
		nutritionistGroup.GET("/history", r.params.NutritionistHandler.GetHistory)
		nutritionistGroup.GET("/dishes/search", r.params.NutritionistHandler.SearchDishes)
	}
}
