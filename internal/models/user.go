package models

// User is the row of the users table.
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Salt         string `db:"salt"`
	IsAdmin      bool   `db:"is_admin"`
}
