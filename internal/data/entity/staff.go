package entity

type Staff struct {
	ID     int64  `db:"staff_id"`
	Name   string `db:"name"`
	Phone  string `db:"phone"`
	Role   string `db:"role"`
	Salary int64  `db:"salary"`
}
