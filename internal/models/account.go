package models

import (
	"database/sql"
	"time"
)

// Account is the row of the accounts table.
type Account struct {
	Number    string         `db:"number"`
	Label     string         `db:"label"`
	LabelKey  string         `db:"label_key"` // Case-folded label, used for uniqueness and search
	Kind      sql.NullString `db:"kind"`
	Active    bool           `db:"active"`
	CreatedAt time.Time      `db:"created_at"`
}
