package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/PaulCari/PawPals/config"
	"github.com/PaulCari/PawPals/internal/delivery"
	"github.com/PaulCari/PawPals/internal/delivery/http"
	"github.com/PaulCari/PawPals/internal/delivery/http/middleware"
	"github.com/PaulCari/PawPals/internal/delivery/http/router/handler"
	"github.com/PaulCari/PawPals/internal/domain/service"
	"github.com/PaulCari/PawPals/internal/infra/auth"
	logs "github.com/PaulCari/PawPals/internal/infra/log"
	"github.com/PaulCari/PawPals/internal/infra/persistence/postgres"
	"github.com/PaulCari/PawPals/internal/infra/qrcode"
	"github.com/PaulCari/PawPals/internal/infra/storage"
	"github.com/PaulCari/PawPals/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			prepareDatabase,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewCustomerRepository,
			postgres.NewAddressRepository,
			postgres.NewPetRepository,
			postgres.NewCatalogRepository,
			postgres.NewOrderRepository,
			postgres.NewSpecializedOrderRepository,
			postgres.NewNutritionistRepository,
			postgres.NewPaymentRepository,
			postgres.NewMembershipRepository,
			postgres.NewFavoriteRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newPasswordHasher,
			newFileStorage,
			newQRCodeService,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher from the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newFileStorage creates the local upload store rooted at the configured dir
func newFileStorage(cfg *config.Config) service.FileStorage {
	return storage.NewLocalStorage(cfg.Storage.UploadsDir)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCustomerService,
			impl.NewPetService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewSpecializedOrderService,
			impl.NewNutritionistService,
			impl.NewPaymentService,
			impl.NewSubscriptionService,
			impl.NewFavoriteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCustomerHandler,
			handler.NewPetHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewSpecializedOrderHandler,
			handler.NewPaymentHandler,
			handler.NewSubscriptionHandler,
			handler.NewFavoriteHandler,
			handler.NewNutritionistHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// prepareDatabase migrates the schema and seeds the reference data the
// application depends on (roles, species, plans, gateways).
func prepareDatabase(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := postgres.Migrate(db); err != nil {
		return err
	}

	return postgres.Seed(ctx, db, logger)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		delivery := delivery
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
