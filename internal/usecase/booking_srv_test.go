package usecase

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/data/repository"
	"hotel-management/internal/dto/request"
	"hotel-management/pkg/cache"
	"hotel-management/pkg/events"
	"hotel-management/pkg/metrics"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	roomCols        = []string{"room_id", "room_no", "room_type", "bed", "price", "status"}
	reservationCols = []string{"res_id", "customer_id", "room_id", "check_in", "check_out", "total_days", "total_cost", "status"}
	detailCols      = append(append([]string{}, reservationCols...), "name", "room_no")
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	return m.Called(eventType).Error(0)
}

func (m *mockPublisher) Close() error { return nil }

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(key)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return m.Called(key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(keys).Error(0)
}

func newTestBookingService(t *testing.T) (BookingService, pgxmock.PgxPoolIface) {
	t.Helper()

	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(db.Close)

	repo := repository.NewRepository(db, zap.NewNop())
	return NewBookingService(repo, cache.NopCache{}, events.NopPublisher{}, zap.NewNop()), db
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func q(sql string) string {
	return regexp.QuoteMeta(sql)
}

func expectCustomerLookup(db pgxmock.PgxPoolIface, name string, ids ...int64) {
	rows := pgxmock.NewRows([]string{"customer_id"})
	for _, id := range ids {
		rows.AddRow(id)
	}
	db.ExpectQuery(q("SELECT customer_id FROM customers WHERE name = $1")).
		WithArgs(name, 2).
		WillReturnRows(rows)
}

func expectRoomLock(db pgxmock.PgxPoolIface, roomNo string, price int64, status entity.RoomStatus) {
	db.ExpectQuery(q("FROM rooms WHERE room_no = $1 FOR UPDATE")).
		WithArgs(roomNo).
		WillReturnRows(pgxmock.NewRows(roomCols).AddRow(int64(1), roomNo, "Single", "Single", price, status))
}

func TestCreateReservation_BooksRoom(t *testing.T) {
	svc, db := newTestBookingService(t)

	before := testutil.ToFloat64(metrics.BookingOperations.WithLabelValues("create_reservation", "success"))

	db.ExpectBegin()
	expectCustomerLookup(db, "Ali Khan", 1)
	expectRoomLock(db, "101", 3000, entity.RoomStatusAvailable)
	db.ExpectQuery(q("INSERT INTO reservations")).
		WithArgs(int64(1), int64(1), pgxmock.AnyArg(), pgxmock.AnyArg(), 2, int64(6000), entity.ReservationStatusActive).
		WillReturnRows(pgxmock.NewRows([]string{"res_id"}).AddRow(int64(1)))
	db.ExpectExec(q("UPDATE rooms SET status = $2 WHERE room_id = $1")).
		WithArgs(int64(1), entity.RoomStatusBooked).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectCommit()

	res, err := svc.CreateReservation(context.Background(), &request.CreateReservationRequest{
		CustomerName: "Ali Khan",
		RoomNo:       "101",
		CheckIn:      "2025-01-10",
		CheckOut:     "2025-01-12",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "Ali Khan", res.CustomerName)
	assert.Equal(t, "101", res.RoomNo)
	assert.Equal(t, 2, res.TotalDays)
	assert.Equal(t, int64(6000), res.TotalCost)
	assert.Equal(t, entity.ReservationStatusActive, res.Status)
	assert.Equal(t, "2025-01-10", res.CheckIn)
	assert.NoError(t, db.ExpectationsWereMet())

	after := testutil.ToFloat64(metrics.BookingOperations.WithLabelValues("create_reservation", "success"))
	assert.Equal(t, before+1, after)
}

func TestCreateReservation_RejectsBeforeTouchingStore(t *testing.T) {
	tests := []struct {
		name    string
		req     request.CreateReservationRequest
		wantErr error
	}{
		{
			name:    "missing customer",
			req:     request.CreateReservationRequest{RoomNo: "101", CheckIn: "2025-01-10", CheckOut: "2025-01-12"},
			wantErr: entity.ErrMissingSelection,
		},
		{
			name:    "blank room",
			req:     request.CreateReservationRequest{CustomerName: "Ali Khan", RoomNo: "  ", CheckIn: "2025-01-10", CheckOut: "2025-01-12"},
			wantErr: entity.ErrMissingSelection,
		},
		{
			name:    "bad check-in",
			req:     request.CreateReservationRequest{CustomerName: "Ali Khan", RoomNo: "101", CheckIn: "10/01/2025", CheckOut: "2025-01-12"},
			wantErr: entity.ErrInvalidDateFormat,
		},
		{
			name:    "impossible check-out",
			req:     request.CreateReservationRequest{CustomerName: "Ali Khan", RoomNo: "101", CheckIn: "2025-02-27", CheckOut: "2025-02-30"},
			wantErr: entity.ErrInvalidDateFormat,
		},
		{
			name:    "same day",
			req:     request.CreateReservationRequest{CustomerName: "Ali Khan", RoomNo: "101", CheckIn: "2025-01-10", CheckOut: "2025-01-10"},
			wantErr: entity.ErrInvalidDateRange,
		},
		{
			name:    "check-out before check-in",
			req:     request.CreateReservationRequest{CustomerName: "Ali Khan", RoomNo: "101", CheckIn: "2025-01-12", CheckOut: "2025-01-10"},
			wantErr: entity.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := newTestBookingService(t)

			res, err := svc.CreateReservation(context.Background(), &tt.req)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
			// no transaction was started, so nothing was written
			assert.NoError(t, db.ExpectationsWereMet())
		})
	}
}

func TestCreateReservation_BookedRoomRollsBack(t *testing.T) {
	svc, db := newTestBookingService(t)

	db.ExpectBegin()
	expectCustomerLookup(db, "Ali Khan", 1)
	expectRoomLock(db, "101", 3000, entity.RoomStatusBooked)
	db.ExpectRollback()

	res, err := svc.CreateReservation(context.Background(), &request.CreateReservationRequest{
		CustomerName: "Ali Khan",
		RoomNo:       "101",
		CheckIn:      "2025-01-10",
		CheckOut:     "2025-01-12",
	})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, entity.ErrRoomUnavailable)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestCreateReservation_CenturiesLongStay(t *testing.T) {
	svc, db := newTestBookingService(t)

	db.ExpectBegin()
	expectCustomerLookup(db, "Ali Khan", 1)
	expectRoomLock(db, "101", 2, entity.RoomStatusAvailable)
	db.ExpectQuery(q("INSERT INTO reservations")).
		WithArgs(int64(1), int64(1), pgxmock.AnyArg(), pgxmock.AnyArg(), 136965, int64(273930), entity.ReservationStatusActive).
		WillReturnRows(pgxmock.NewRows([]string{"res_id"}).AddRow(int64(9)))
	db.ExpectExec(q("UPDATE rooms SET status = $2 WHERE room_id = $1")).
		WithArgs(int64(1), entity.RoomStatusBooked).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectCommit()

	res, err := svc.CreateReservation(context.Background(), &request.CreateReservationRequest{
		CustomerName: "Ali Khan",
		RoomNo:       "101",
		CheckIn:      "2025-01-10",
		CheckOut:     "2400-01-10",
	})

	require.NoError(t, err)
	assert.Equal(t, 136965, res.TotalDays)
	assert.Equal(t, int64(273930), res.TotalCost)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestCreateReservation_CostOverflowRollsBack(t *testing.T) {
	svc, db := newTestBookingService(t)

	db.ExpectBegin()
	expectCustomerLookup(db, "Ali Khan", 1)
	expectRoomLock(db, "101", math.MaxInt64/2, entity.RoomStatusAvailable)
	db.ExpectRollback()

	res, err := svc.CreateReservation(context.Background(), &request.CreateReservationRequest{
		CustomerName: "Ali Khan",
		RoomNo:       "101",
		CheckIn:      "2025-01-10",
		CheckOut:     "2025-01-13",
	})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, entity.ErrValidation)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestCreateReservation_UnknownRoom(t *testing.T) {
	svc, db := newTestBookingService(t)

	db.ExpectBegin()
	expectCustomerLookup(db, "Ali Khan", 1)
	db.ExpectQuery(q("FROM rooms WHERE room_no = $1 FOR UPDATE")).
		WithArgs("999").
		WillReturnRows(pgxmock.NewRows(roomCols))
	db.ExpectRollback()

	_, err := svc.CreateReservation(context.Background(), &request.CreateReservationRequest{
		CustomerName: "Ali Khan",
		RoomNo:       "999",
		CheckIn:      "2025-01-10",
		CheckOut:     "2025-01-12",
	})

	assert.ErrorIs(t, err, entity.ErrRoomUnavailable)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestCreateReservation_CustomerMustResolveToOne(t *testing.T) {
	tests := []struct {
		name string
		ids  []int64
	}{
		{name: "no match", ids: nil},
		{name: "ambiguous name", ids: []int64{1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := newTestBookingService(t)

			db.ExpectBegin()
			expectCustomerLookup(db, "Ali Khan", tt.ids...)
			db.ExpectRollback()

			_, err := svc.CreateReservation(context.Background(), &request.CreateReservationRequest{
				CustomerName: "Ali Khan",
				RoomNo:       "101",
				CheckIn:      "2025-01-10",
				CheckOut:     "2025-01-12",
			})

			assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
			assert.NoError(t, db.ExpectationsWereMet())
		})
	}
}

func TestCreateReservation_StatusUpdateFailureRollsBack(t *testing.T) {
	svc, db := newTestBookingService(t)

	db.ExpectBegin()
	expectCustomerLookup(db, "Ali Khan", 1)
	expectRoomLock(db, "101", 3000, entity.RoomStatusAvailable)
	db.ExpectQuery(q("INSERT INTO reservations")).
		WillReturnRows(pgxmock.NewRows([]string{"res_id"}).AddRow(int64(9)))
	db.ExpectExec(q("UPDATE rooms SET status = $2 WHERE room_id = $1")).
		WillReturnError(errors.New("connection reset"))
	db.ExpectRollback()

	_, err := svc.CreateReservation(context.Background(), &request.CreateReservationRequest{
		CustomerName: "Ali Khan",
		RoomNo:       "101",
		CheckIn:      "2025-01-10",
		CheckOut:     "2025-01-12",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestCreateReservation_SideEffectsAfterCommit(t *testing.T) {
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer db.Close()

	statsCache := new(mockCache)
	statsCache.On("Delete", []string{dashboardStatsKey}).Return(errors.New("redis down"))
	publisher := new(mockPublisher)
	publisher.On("Publish", events.ReservationCreated).Return(errors.New("broker down"))

	svc := NewBookingService(repository.NewRepository(db, zap.NewNop()), statsCache, publisher, zap.NewNop())

	db.ExpectBegin()
	expectCustomerLookup(db, "Sara Ahmed", 2)
	expectRoomLock(db, "103", 7000, entity.RoomStatusAvailable)
	db.ExpectQuery(q("INSERT INTO reservations")).
		WithArgs(int64(2), int64(1), pgxmock.AnyArg(), pgxmock.AnyArg(), 3, int64(21000), entity.ReservationStatusActive).
		WillReturnRows(pgxmock.NewRows([]string{"res_id"}).AddRow(int64(5)))
	db.ExpectExec(q("UPDATE rooms SET status = $2 WHERE room_id = $1")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectCommit()

	res, err := svc.CreateReservation(context.Background(), &request.CreateReservationRequest{
		CustomerName: "Sara Ahmed",
		RoomNo:       "103",
		CheckIn:      "2025-03-01",
		CheckOut:     "2025-03-04",
	})

	// cache and broker failures never fail a committed booking
	require.NoError(t, err)
	assert.Equal(t, int64(21000), res.TotalCost)
	statsCache.AssertExpectations(t)
	publisher.AssertExpectations(t)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestDeleteReservation_FreesRoom(t *testing.T) {
	svc, db := newTestBookingService(t)

	db.ExpectBegin()
	db.ExpectQuery(q("FROM reservations WHERE res_id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(reservationCols).AddRow(
			int64(1), int64(1), int64(3), date("2025-01-10"), date("2025-01-12"), 2, int64(6000), entity.ReservationStatusActive,
		))
	db.ExpectExec(q("UPDATE rooms SET status = $2 WHERE room_id = $1")).
		WithArgs(int64(3), entity.RoomStatusAvailable).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectExec(q("DELETE FROM reservations WHERE res_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	db.ExpectCommit()

	err := svc.DeleteReservation(context.Background(), 1)

	require.NoError(t, err)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestDeleteReservation_MissingLeavesRoomsAlone(t *testing.T) {
	svc, db := newTestBookingService(t)

	// second delete of the same reservation: the row is gone
	db.ExpectBegin()
	db.ExpectQuery(q("FROM reservations WHERE res_id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(reservationCols))
	db.ExpectRollback()

	err := svc.DeleteReservation(context.Background(), 1)

	assert.ErrorIs(t, err, entity.ErrReservationNotFound)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestDeleteReservation_DeleteFailureRestoresStatus(t *testing.T) {
	svc, db := newTestBookingService(t)

	db.ExpectBegin()
	db.ExpectQuery(q("FROM reservations WHERE res_id = $1 FOR UPDATE")).
		WillReturnRows(pgxmock.NewRows(reservationCols).AddRow(
			int64(1), int64(1), int64(3), date("2025-01-10"), date("2025-01-12"), 2, int64(6000), entity.ReservationStatusActive,
		))
	db.ExpectExec(q("UPDATE rooms SET status = $2 WHERE room_id = $1")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectExec(q("DELETE FROM reservations WHERE res_id = $1")).
		WillReturnError(errors.New("deadlock detected"))
	// the room update is undone with the rest of the transaction
	db.ExpectRollback()

	err := svc.DeleteReservation(context.Background(), 1)

	require.Error(t, err)
	assert.NoError(t, db.ExpectationsWereMet())
}

func expectReservationDetail(db pgxmock.PgxPoolIface, id int64) {
	db.ExpectQuery(q("WHERE r.res_id = $1")).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(detailCols).AddRow(
			id, int64(1), int64(1), date("2025-01-10"), date("2025-01-12"), 2, int64(6000),
			entity.ReservationStatusActive, "Ali Khan", "101",
		))
}

func TestRecordPayment_Succeeds(t *testing.T) {
	svc, db := newTestBookingService(t)

	expectReservationDetail(db, 1)
	db.ExpectQuery(q("INSERT INTO payments")).
		WithArgs(pgxmock.AnyArg(), float64(6000), pgxmock.AnyArg(), entity.PaymentMethodCash).
		WillReturnRows(pgxmock.NewRows([]string{"payment_id"}).AddRow(int64(1)))

	payment, err := svc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: 1,
		Amount:        "6000",
		PaymentDate:   "2025-01-10",
		Method:        "Cash",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), payment.ID)
	require.NotNil(t, payment.ReservationID)
	assert.Equal(t, int64(1), *payment.ReservationID)
	assert.Equal(t, "Ali Khan", payment.CustomerName)
	assert.Equal(t, 6000.0, payment.Amount)
	assert.Equal(t, "2025-01-10", payment.PaymentDate)
	assert.Equal(t, entity.PaymentMethodCash, payment.Method)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestRecordPayment_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     request.RecordPaymentRequest
		wantErr error
	}{
		{
			name:    "not a number",
			req:     request.RecordPaymentRequest{ReservationID: 1, Amount: "six thousand", PaymentDate: "2025-01-10", Method: "Cash"},
			wantErr: entity.ErrInvalidAmount,
		},
		{
			name:    "negative",
			req:     request.RecordPaymentRequest{ReservationID: 1, Amount: "-1", PaymentDate: "2025-01-10", Method: "Cash"},
			wantErr: entity.ErrInvalidAmount,
		},
		{
			name:    "NaN",
			req:     request.RecordPaymentRequest{ReservationID: 1, Amount: "NaN", PaymentDate: "2025-01-10", Method: "Cash"},
			wantErr: entity.ErrInvalidAmount,
		},
		{
			name:    "bad date",
			req:     request.RecordPaymentRequest{ReservationID: 1, Amount: "100", PaymentDate: "2025/01/10", Method: "Card"},
			wantErr: entity.ErrInvalidDateFormat,
		},
		{
			name:    "unknown method",
			req:     request.RecordPaymentRequest{ReservationID: 1, Amount: "100", PaymentDate: "2025-01-10", Method: "Cheque"},
			wantErr: entity.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := newTestBookingService(t)
			expectReservationDetail(db, 1)

			payment, err := svc.RecordPayment(context.Background(), &tt.req)

			assert.Nil(t, payment)
			assert.ErrorIs(t, err, tt.wantErr)
			// no INSERT expected
			assert.NoError(t, db.ExpectationsWereMet())
		})
	}
}

func TestRecordPayment_UnknownReservation(t *testing.T) {
	svc, db := newTestBookingService(t)

	db.ExpectQuery(q("WHERE r.res_id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(detailCols))

	_, err := svc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: 42,
		Amount:        "100",
		PaymentDate:   "2025-01-10",
		Method:        "Online",
	})

	assert.ErrorIs(t, err, entity.ErrReservationNotFound)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestRecordPayment_ReservationDeletedBeforeInsert(t *testing.T) {
	svc, db := newTestBookingService(t)

	expectReservationDetail(db, 1)
	db.ExpectQuery(q("INSERT INTO payments")).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "payments_res_id_fkey"})

	payment, err := svc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: 1,
		Amount:        "6000",
		PaymentDate:   "2025-01-10",
		Method:        "Card",
	})

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, entity.ErrReservationNotFound)
	assert.NotErrorIs(t, err, entity.ErrIntegrityViolation)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestListReservations_Paginates(t *testing.T) {
	svc, db := newTestBookingService(t)

	db.ExpectQuery(q("ORDER BY r.res_id DESC LIMIT $1 OFFSET $2")).
		WithArgs(5, 5).
		WillReturnRows(pgxmock.NewRows(detailCols).AddRow(
			int64(6), int64(1), int64(1), date("2025-01-10"), date("2025-01-12"), 2, int64(6000),
			entity.ReservationStatusActive, "Ali Khan", "101",
		))
	db.ExpectQuery(q("SELECT COUNT(*) FROM reservations")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(6)))

	page, err := svc.ListReservations(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 5})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Ali Khan", page.Data[0].CustomerName)
	assert.Equal(t, int64(6), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestListAvailableRooms(t *testing.T) {
	svc, db := newTestBookingService(t)

	db.ExpectQuery(q("SELECT room_no FROM rooms WHERE status = $1")).
		WithArgs(entity.RoomStatusAvailable).
		WillReturnRows(pgxmock.NewRows([]string{"room_no"}).AddRow("102").AddRow("103"))

	rooms, err := svc.ListAvailableRooms(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"102", "103"}, rooms)
	assert.NoError(t, db.ExpectationsWereMet())
}
