package store

import "github.com/MKhiriev/go-user-keeper/internal/logger"

// Storages aggregates every repository backed by the shared database
// handle. It is built once in main and passed to the service layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages constructs all repositories on top of the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
