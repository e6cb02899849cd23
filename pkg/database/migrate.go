package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the hotel schema. Every statement is idempotent.
func Migrate(ctx context.Context, db Querier) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SeedUser is a login created on first start
type SeedUser struct {
	Username     string
	PasswordHash string
}

// Seed inserts demo users, rooms, customers, one reservation and its payment.
// It only touches an empty database: rooms and customers are skipped when any
// row already exists.
func Seed(ctx context.Context, db PgxIface, users []SeedUser) error {
	return WithTx(ctx, db, func(tx pgx.Tx) error {
		for _, u := range users {
			if _, err := tx.Exec(ctx,
				`INSERT INTO users (username, password) VALUES ($1, $2) ON CONFLICT (username) DO NOTHING`,
				u.Username, u.PasswordHash,
			); err != nil {
				return fmt.Errorf("seed user %s: %w", u.Username, err)
			}
		}

		var rooms int64
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&rooms); err != nil {
			return fmt.Errorf("count rooms: %w", err)
		}
		if rooms > 0 {
			return nil
		}

		statements := []string{
			`INSERT INTO rooms (room_no, room_type, bed, price, status) VALUES
				('101', 'Single', 'Single', 3000, 'Booked'),
				('102', 'Double', 'Double', 4500, 'Available'),
				('103', 'Deluxe', 'King', 7000, 'Available')`,
			`INSERT INTO customers (name, phone, nationality, gender, dob, address) VALUES
				('Ali Khan', '03123456789', 'Pakistani', 'Male', '1998-05-12', 'Lahore'),
				('Sara Ahmed', '03051234567', 'Pakistani', 'Female', '2000-11-20', 'Karachi')`,
			`INSERT INTO reservations (customer_id, room_id, check_in, check_out, total_days, total_cost, status)
				SELECT c.customer_id, r.room_id, DATE '2025-01-10', DATE '2025-01-12', 2, 6000, 'Active'
				FROM customers c, rooms r
				WHERE c.name = 'Ali Khan' AND r.room_no = '101'`,
			`INSERT INTO payments (res_id, amount, payment_date, method)
				SELECT res_id, 6000, DATE '2025-01-10', 'Cash' FROM reservations ORDER BY res_id LIMIT 1`,
		}
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("seed sample data: %w", err)
			}
		}

		return nil
	})
}
