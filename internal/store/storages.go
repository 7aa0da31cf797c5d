package store

import "github.com/MKhiriev/cpoint/internal/logger"

// Storages groups the repositories built on a single database connection.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}
}
