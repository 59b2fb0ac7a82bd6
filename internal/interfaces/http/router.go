package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-rb-api/internal/application/auth"
	"github.com/jhoicas/restaurante-rb-api/internal/application/ordering"
	"github.com/jhoicas/restaurante-rb-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	UserUC          *usecase.UserUseCase
	ProductUC       *usecase.ProductUseCase
	EstablishmentUC *usecase.EstablishmentUseCase
	PlaceOrder      *ordering.PlaceOrderUseCase
	OrderQuery      *ordering.QueryService
	OrderReceipt    *ordering.ReceiptUseCase
	OrderPolicy     ordering.AccessPolicy
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	requireAuth := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/check-session", OptionalAuth(deps.JWTSecret), authHandler.CheckSession)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/profile", requireAuth, userHandler.Profile)
	app.Get("/users", requireAuth, adminOnly, userHandler.List)

	// Productos (lectura pública)
	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products", productHandler.List)
	app.Post("/products", requireAuth, adminOnly, productHandler.Create)

	// Órdenes (protegido). /orders/user va antes de /orders/:id.
	orders := app.Group("/orders", requireAuth)
	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.OrderQuery, deps.OrderReceipt, deps.OrderPolicy)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", adminOnly, orderHandler.ListAll)
	orders.Get("/user", orderHandler.ListMine)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Administración
	admin := app.Group("/admin", requireAuth, adminOnly)
	admin.Put("/users", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)
	admin.Put("/products", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)

	establishmentHandler := NewEstablishmentHandler(deps.EstablishmentUC)
	admin.Get("/establecimientos", establishmentHandler.List)
	admin.Post("/establecimientos", establishmentHandler.Create)
	admin.Put("/establecimientos", establishmentHandler.Update)
	admin.Delete("/establecimientos/:id", establishmentHandler.Delete)
}
