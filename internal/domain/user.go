package domain

import "time"

// User represents a phone-identified customer.
// Phone is the natural key; the record is created on first login and never mutated after.
type User struct {
	ID        int64
	Phone     string
	IsAdmin   bool
	CreatedAt time.Time
}
