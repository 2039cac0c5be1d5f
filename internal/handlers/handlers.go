package handlers

import (
	"LinkBank/internal/config"
	"LinkBank/internal/middleware"
	"LinkBank/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	bankService *service.BankService,
	categoryService *service.CategoryService,
	linkService *service.LinkService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	bankHandler := NewBankHandler(bankService, logger)
	categoryHandler := NewCategoryHandler(categoryService, logger)
	linkHandler := NewLinkHandler(linkService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Get("/api/user/me", userHandler.Me)

	// Bank routes
	r.Get("/api/banks", bankHandler.List)
	r.Post("/api/banks", bankHandler.Create)
	r.Get("/api/banks/{id}", bankHandler.Get)
	r.Put("/api/banks/{id}", bankHandler.Update)
	r.Delete("/api/banks/{id}", bankHandler.Delete)

	// Category routes; share — публичный, без аутентификации
	r.Get("/api/categories/bank/{bankID}", categoryHandler.ListByBank)
	r.Post("/api/categories", categoryHandler.Create)
	r.Get("/api/categories/share/{slug}", categoryHandler.GetBySlug)
	r.Get("/api/categories/{id}", categoryHandler.Get)
	r.Put("/api/categories/{id}", categoryHandler.Update)
	r.Delete("/api/categories/{id}", categoryHandler.Delete)
	r.Put("/api/categories/{id}/regenerate-slug", categoryHandler.RegenerateSlug)

	// Link routes; click — публичный
	r.Get("/api/links/category/{categoryID}", linkHandler.ListByCategory)
	r.Post("/api/links", linkHandler.Create)
	r.Put("/api/links/reorder", linkHandler.Reorder)
	r.Get("/api/links/{id}", linkHandler.Get)
	r.Put("/api/links/{id}", linkHandler.Update)
	r.Delete("/api/links/{id}", linkHandler.Delete)
	r.Post("/api/links/{id}/click", linkHandler.TrackClick)

	// Health check
	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeData(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return &Handler{Router: r}
}
