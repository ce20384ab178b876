package store

import "github.com/MKhiriev/go-auth-gate/internal/logger"

// Storages aggregates every repository of the application behind one struct
// so that the service layer receives a single dependency.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
