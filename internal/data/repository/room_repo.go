package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-management/internal/data/entity"
	"hotel-management/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id int64) (*entity.Room, error)
	FindByNumber(ctx context.Context, roomNo string) (*entity.Room, error)
	FindAll(ctx context.Context, filter entity.RoomFilter) ([]*entity.Room, error)
	ListAvailableNumbers(ctx context.Context) ([]string, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id int64) error

	// Booking engine only: must run inside a transaction
	FindByNumberForUpdate(ctx context.Context, roomNo string) (*entity.Room, error)
	UpdateStatus(ctx context.Context, id int64, status entity.RoomStatus) error
}

type roomRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRoomRepository(db database.Querier, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `room_id, room_no, room_type, bed, price, status`

// Create always stores the room as Available
func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (room_no, room_type, bed, price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING room_id
	`

	room.Status = entity.RoomStatusAvailable
	err := r.db.QueryRow(ctx, query,
		room.RoomNo,
		room.RoomType,
		room.Bed,
		room.Price,
		room.Status,
	).Scan(&room.ID)

	if err != nil {
		err = translateConstraintError(err, "rooms_room_no_key", entity.ErrDuplicateRoomNumber)
		if errors.Is(err, entity.ErrDuplicateRoomNumber) {
			r.log.Warn("Duplicate room number", zap.String("room_no", room.RoomNo))
			return err
		}
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_no", room.RoomNo),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNo, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = $1`
	return r.findOne(ctx, query, id)
}

func (r *roomRepository) FindByNumber(ctx context.Context, roomNo string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_no = $1`
	return r.findOne(ctx, query, roomNo)
}

// FindByNumberForUpdate locks the room row until the surrounding transaction ends
func (r *roomRepository) FindByNumberForUpdate(ctx context.Context, roomNo string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_no = $1 FOR UPDATE`
	return r.findOne(ctx, query, roomNo)
}

func (r *roomRepository) findOne(ctx context.Context, query string, arg any) (*entity.Room, error) {
	var room entity.Room
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&room.ID,
		&room.RoomNo,
		&room.RoomType,
		&room.Bed,
		&room.Price,
		&room.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room", zap.Error(err), zap.Any("key", arg))
		return nil, fmt.Errorf("find room %v: %w", arg, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context, filter entity.RoomFilter) ([]*entity.Room, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.RoomType != "" {
		args = append(args, filter.RoomType)
		conditions = append(conditions, fmt.Sprintf("room_type = $%d", len(args)))
	}
	if filter.OnlyAvailable {
		args = append(args, entity.RoomStatusAvailable)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(room_no ILIKE $%d OR room_type ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + roomColumns + ` FROM rooms`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY room_no`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err), zap.Any("filter", filter))
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(
			&room.ID,
			&room.RoomNo,
			&room.RoomType,
			&room.Bed,
			&room.Price,
			&room.Status,
		); err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) ListAvailableNumbers(ctx context.Context) ([]string, error) {
	query := `SELECT room_no FROM rooms WHERE status = $1 ORDER BY room_no`

	rows, err := r.db.Query(ctx, query, entity.RoomStatusAvailable)
	if err != nil {
		r.log.Error("Failed to list available rooms", zap.Error(err))
		return nil, fmt.Errorf("list available rooms: %w", err)
	}

	numbers, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect available rooms: %w", err)
	}

	return numbers, nil
}

// Update changes the descriptive fields only; status belongs to the booking engine
func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_no = $2, room_type = $3, bed = $4, price = $5
		WHERE room_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNo,
		room.RoomType,
		room.Bed,
		room.Price,
	)
	if err != nil {
		err = translateConstraintError(err, "rooms_room_no_key", entity.ErrDuplicateRoomNumber)
		if errors.Is(err, entity.ErrDuplicateRoomNumber) {
			return err
		}
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.Int64("room_id", room.ID),
		)
		return fmt.Errorf("update room %d: %w", room.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %d: %w", room.ID, entity.ErrNotFound)
	}

	return nil
}

func (r *roomRepository) UpdateStatus(ctx context.Context, id int64, status entity.RoomStatus) error {
	query := `UPDATE rooms SET status = $2 WHERE room_id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update room status",
			zap.Error(err),
			zap.Int64("room_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update room %d status to %s: %w", id, status, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %d: %w", id, entity.ErrNotFound)
	}

	return nil
}

// Delete cascades to the room's reservations
func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM rooms WHERE room_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return fmt.Errorf("delete room %d: %w", id, translateConstraintError(err, "", nil))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %d: %w", id, entity.ErrNotFound)
	}

	r.log.Info("Room deleted", zap.Int64("room_id", id))
	return nil
}
