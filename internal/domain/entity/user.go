package entity

import (
	"time"
)

// User is the aggregate root for the user domain. IDs are assigned by the
// store on insert and never change afterwards.
type User struct {
	ID          int64
	Username    string
	Email       string
	FirstName   string
	LastName    string
	DateCreated time.Time
	DateUpdated time.Time
}
