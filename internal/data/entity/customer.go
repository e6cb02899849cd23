package entity

type Customer struct {
	ID          int64  `db:"customer_id"`
	Name        string `db:"name"`
	Phone       string `db:"phone"`
	Nationality string `db:"nationality"`
	Gender      string `db:"gender"`
	DOB         string `db:"dob"`
	Address     string `db:"address"`
}
