package contact

import (
	"context"
)

type Repository interface {
	FetchContactByID(ctx context.Context, id ID) (*Contact, error)
	FetchContacts(ctx context.Context, skip, limit int) (Contacts, error)
	FetchAllContacts(ctx context.Context) (Contacts, error)
	SearchContacts(ctx context.Context, query string) (Contacts, error)
	CreateContact(ctx context.Context, req Contact) (*Contact, error)
	UpdateContact(ctx context.Context, req Contact) (*Contact, error)
	DeleteContact(ctx context.Context, id ID) (*Contact, error)
}
