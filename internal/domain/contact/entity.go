package contact

import (
	"time"
)

type (
	ID      int64
	Contact struct {
		ID             ID
		FirstName      string
		LastName       string
		Email          string
		Phone          string
		Birthday       time.Time
		AdditionalData *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Contacts []*Contact

	// Update carries a partial mutation: nil fields are left untouched.
	Update struct {
		FirstName      *string
		LastName       *string
		Email          *string
		Phone          *string
		Birthday       *time.Time
		AdditionalData *string
	}
)

// Apply overwrites the fields of c that are present in u.
func (u Update) Apply(c *Contact) {
	if u.FirstName != nil {
		c.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		c.LastName = *u.LastName
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Birthday != nil {
		c.Birthday = *u.Birthday
	}
	if u.AdditionalData != nil {
		c.AdditionalData = u.AdditionalData
	}
}
