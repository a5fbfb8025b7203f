package domain

import "time"

// User represents a bot user allowed to browse the deck
type User struct {
	UserID     int64
	Authorized bool
	CreatedAt  time.Time
}
