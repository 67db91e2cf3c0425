package domain

import "time"

// Ministry describes a church ministry and its leader.
type Ministry struct {
	ID          string
	Name        string
	Leader      string
	Description string
	CreatedAt   time.Time
}
