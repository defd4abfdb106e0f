package domain

// User is an operator of the ledger file, managed by the credential store.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose the hash
	Salt         string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
}
