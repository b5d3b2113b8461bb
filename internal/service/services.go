package service

import (
	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
)

// Services aggregates every application service. It is built once in main
// and handed to the HTTP handler.
type Services struct {
	UserService UserService
	AuthService AuthService
}

// NewServices wires the service layer on top of the given storages.
// AuthService deliberately depends on UserService rather than on the
// repository: account creation during signup then goes through the same
// hashing create path as the CRUD routes.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	userService := NewUserService(storages.UserRepository, cfg.App, logger)

	return &Services{
		UserService: userService,
		AuthService: NewAuthService(userService, cfg.App, logger),
	}
}
