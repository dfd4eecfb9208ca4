// Package models defines the typed records persisted by the data-access
// layer, one struct per table plus the join-query result shapes.
package models

import "time"

// User is a row in the users table. PasswordHash holds the bcrypt hash
// of the account password; callers must not expose it outside the
// authentication path.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	CreatedAt    time.Time
}
