package repository

import (
	"awami-saholat/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Catalog  CatalogRepository
	Session  SessionRepository
	Booking  BookingRepository
	Snapshot SnapshotRepository
}

func NewRepository(db database.KVIface, defaultCity string, log *zap.Logger) *Repository {
	return &Repository{
		Catalog:  NewCatalogRepository(log),
		Session:  NewSessionRepository(defaultCity, log),
		Booking:  NewBookingRepository(log),
		Snapshot: NewSnapshotRepository(db, log),
	}
}
