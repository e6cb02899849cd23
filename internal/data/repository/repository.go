package repository

import (
	"context"

	"hotel-management/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Customer    CustomerRepository
	Room        RoomRepository
	Reservation ReservationRepository
	Payment     PaymentRepository
	Staff       StaffRepository
	Dashboard   DashboardRepository

	db  database.PgxIface
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.db = db
	return repo
}

func newRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Customer:    NewCustomerRepository(db, log),
		Room:        NewRoomRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
		Staff:       NewStaffRepository(db, log),
		Dashboard:   NewDashboardRepository(db, log),
		log:         log,
	}
}

// WithinTx runs fn with repositories bound to a single transaction. Every
// statement fn issues through txRepo commits or rolls back together.
func (r *Repository) WithinTx(ctx context.Context, fn func(txRepo *Repository) error) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(newRepository(tx, r.log))
	})
}
