package usecase

import (
	"context"
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes so services can be tested without a database.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	s, ok := f.sessions[token]
	if !ok || s.RevokedAt != nil || s.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	if s, ok := f.sessions[token]; ok {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, s := range f.sessions {
		if s.UserID == userID {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error {
	return nil
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entity.Vehicle
}

func (f *fakeVehicleRepo) Create(_ context.Context, vehicle *entity.Vehicle) error {
	f.vehicles[vehicle.ID] = vehicle
	return nil
}

func (f *fakeVehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	return f.vehicles[id], nil
}

func (f *fakeVehicleRepo) FindAll(_ context.Context) ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for _, v := range f.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, vehicle *entity.Vehicle) error {
	f.vehicles[vehicle.ID] = vehicle
	return nil
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.vehicles, id)
	return nil
}

func (f *fakeVehicleRepo) UpdateMileage(_ context.Context, id uuid.UUID, mileage int) error {
	if v, ok := f.vehicles[id]; ok {
		v.Mileage = mileage
	}
	return nil
}

func (f *fakeVehicleRepo) SetMaintenance(_ context.Context, id uuid.UUID, start, end time.Time, reason string) error {
	if v, ok := f.vehicles[id]; ok {
		v.Status = entity.VehicleStatusMaintenance
		v.MaintenanceStart = &start
		v.MaintenanceEnd = &end
		v.MaintenanceReason = &reason
	}
	return nil
}

func (f *fakeVehicleRepo) ClearMaintenance(_ context.Context, id uuid.UUID) error {
	if v, ok := f.vehicles[id]; ok {
		v.Status = entity.VehicleStatusAvailable
		v.MaintenanceStart = nil
		v.MaintenanceEnd = nil
		v.MaintenanceReason = nil
	}
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBookingRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) FindActiveByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.VehicleID == vehicleID && b.Status == entity.BookingStatusActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindAllActive(_ context.Context) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.Status == entity.BookingStatusActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if b, ok := f.bookings[bookingID]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) UpdateTimes(_ context.Context, bookingID uuid.UUID, pickupTime, returnTime string) error {
	if b, ok := f.bookings[bookingID]; ok {
		b.PickupTime = pickupTime
		b.ReturnTime = returnTime
	}
	return nil
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:    &fakeUserRepo{users: map[uuid.UUID]*entity.User{}},
		Session: &fakeSessionRepo{sessions: map[string]*entity.Session{}},
		Vehicle: &fakeVehicleRepo{vehicles: map[uuid.UUID]*entity.Vehicle{}},
		Booking: &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}},
	}
}
