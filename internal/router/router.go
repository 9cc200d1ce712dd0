package router

import (
	"io"
	"os"

	"inventory/internal/apperrors"
	"inventory/internal/auth"
	"inventory/internal/config"
	"inventory/internal/handlers"
	"inventory/internal/middleware"
	"inventory/internal/repositories"
	"inventory/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Config    *config.Config
	Users     repositories.UserRepository
	Products  repositories.ProductRepository
	Publisher services.EventPublisher // optional
	Ping      func() error            // optional, reported by /health
	Logger    *zap.Logger
	AccessLog io.Writer // defaults to os.Stdout
}

// New assembles the Fiber app with every route of the service.
func New(deps Dependencies) *fiber.App {
	cfg := deps.Config
	accessLog := deps.AccessLog
	if accessLog == nil {
		accessLog = os.Stdout
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	authService := services.NewAuthService(deps.Users, hasher, tokens, deps.Publisher, deps.Logger)
	userService := services.NewUserService(deps.Users, hasher, deps.Publisher, deps.Logger)
	productService := services.NewProductService(deps.Products, deps.Publisher, deps.Logger)

	app := fiber.New(fiber.Config{
		AppName:      "inventory",
		ErrorHandler: apperrors.FiberErrorHandler(deps.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: accessLog,
	}))

	authRequired := middleware.AuthRequired(tokens, cfg.AuthHeader, deps.Logger)

	handlers.NewHealthHandler(deps.Ping).RegisterRoutes(app)
	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewUserHandler(userService).RegisterRoutes(app, authRequired)
	handlers.NewProductHandler(productService).RegisterRoutes(app, authRequired)

	return app
}
