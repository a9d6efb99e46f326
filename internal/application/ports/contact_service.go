package ports

import (
	"context"

	"contacthub-api/internal/domain/contact"
)

type ContactService interface {
	FindContactByID(ctx context.Context, id contact.ID) (*contact.Contact, error)
	FindContacts(ctx context.Context, skip, limit int) (contact.Contacts, error)
	SearchContacts(ctx context.Context, query string) (contact.Contacts, error)
	FindUpcomingBirthdays(ctx context.Context) (contact.Contacts, error)
	CreateContact(ctx context.Context, c contact.Contact) (*contact.Contact, error)
	UpdateContact(ctx context.Context, id contact.ID, patch contact.Update) (*contact.Contact, error)
	DeleteContact(ctx context.Context, id contact.ID) (*contact.Contact, error)
}
