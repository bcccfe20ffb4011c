package repository

import (
	"sync"

	"awami-saholat/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingPatch adalah partial update untuk satu booking. Field nil tidak
// disentuh. TotalPrice sengaja tidak ada di sini: dihitung sekali saat
// create dan tidak pernah di-recompute.
type BookingPatch struct {
	Status      *entity.BookingStatus
	Date        *string
	Time        *string
	Address     *string
	Description *string
}

// BookingRepository menyimpan bookings untuk session berjalan. In-memory
// saja - hilang saat logout atau restart, sesuai perilaku aslinya.
type BookingRepository interface {
	List() []entity.Booking
	Add(booking entity.Booking)
	Update(id uuid.UUID, patch BookingPatch) bool
	Clear()
}

type bookingRepository struct {
	mu       sync.Mutex
	bookings []entity.Booking
	log      *zap.Logger
}

func NewBookingRepository(log *zap.Logger) BookingRepository {
	return &bookingRepository{
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) List() []entity.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

func (r *bookingRepository) Add(booking entity.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, booking)
}

// Update merges patch ke booking dengan id yang cocok.
// No-op (return false) kalau id tidak ditemukan.
func (r *bookingRepository) Update(id uuid.UUID, patch BookingPatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID != id {
			continue
		}

		if patch.Status != nil {
			r.bookings[i].Status = *patch.Status
		}
		if patch.Date != nil {
			r.bookings[i].Date = *patch.Date
		}
		if patch.Time != nil {
			r.bookings[i].Time = *patch.Time
		}
		if patch.Address != nil {
			r.bookings[i].Address = *patch.Address
		}
		if patch.Description != nil {
			r.bookings[i].Description = *patch.Description
		}
		return true
	}

	return false
}

func (r *bookingRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = nil
}
