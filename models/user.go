package models

import "time"

// User is the persisted credential record. It is created by registration and
// read back by login and by the authenticated "me" lookup.
type User struct {
	// UserID is the opaque identifier assigned by the store on creation.
	// It never changes once the record exists.
	UserID string `json:"id"`

	// Username is the display name. Uniqueness is not enforced.
	Username string `json:"username"`

	// Email is the lookup key used by login. Matching is exact and
	// case-sensitive.
	Email string `json:"email"`

	// PasswordHash is the self-describing bcrypt encoding of the user's
	// password (algorithm, cost, salt and digest). It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the record was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
