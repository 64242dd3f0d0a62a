package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastro/personas-api/internal/application/auth"
	"github.com/jcastro/personas-api/internal/application/usecase"
	"github.com/jcastro/personas-api/internal/domain/entity"
	"github.com/jcastro/personas-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	PersonaUC *usecase.PersonaUseCase
	PerfilUC  *usecase.PerfilUseCase
	UserRepo  repository.UserRepository
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	userHandler := NewUserHandler(deps.UserUC)
	personaHandler := NewPersonaHandler(deps.PersonaUC)
	perfilHandler := NewPerfilHandler(deps.PerfilUC)

	// Auth (público): login siempre; register solo funciona con el sistema vacío.
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	// Rutas protegidas (requieren Bearer Token; el rol se resuelve contra la DB)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret, deps.UserRepo), authHandler.Me)

	// Users (protegido; crear y borrar solo admin)
	users := protected.Group("/users")
	users.Post("/", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)

	// Personas (protegido). Las rutas literales van antes de /:id para que
	// Fiber no capture "create" o "identificacion" como un id.
	personas := protected.Group("/persona")
	personas.Post("/create", personaHandler.Create)
	personas.Get("/identificacion/:numero", personaHandler.GetByIdentificacion)
	personas.Get("/", personaHandler.List)
	personas.Get("/:id", personaHandler.GetByID)
	personas.Put("/:id", personaHandler.Update)
	personas.Delete("/:id", personaHandler.Delete)

	// Perfiles 1:1 de la persona
	personas.Post("/:id/cliente", perfilHandler.AttachCliente)
	personas.Put("/:id/cliente", perfilHandler.UpdateCliente)
	personas.Post("/:id/proveedor", perfilHandler.AttachProveedor)
	personas.Put("/:id/proveedor", perfilHandler.UpdateProveedor)
	personas.Post("/:id/empleado", perfilHandler.AttachEmpleado)
	personas.Put("/:id/empleado", perfilHandler.UpdateEmpleado)
}
