package contact

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "contacthub-api/internal/domain/contact"
	"contacthub-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("contact with this email already exists")

// DB is the slice of pgxpool.Pool the repository needs. Declared as an
// interface so unit tests can substitute a pgxmock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchContacts(ctx context.Context, skip, limit int) (domain.Contacts, error) {
	rows, err := r.db.Query(ctx, SelectContacts, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContacts(rows)
}

func (r *Repository) FetchAllContacts(ctx context.Context) (domain.Contacts, error) {
	rows, err := r.db.Query(ctx, SelectAllContacts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContacts(rows)
}

func (r *Repository) SearchContacts(ctx context.Context, query string) (domain.Contacts, error) {
	rows, err := r.db.Query(ctx, SearchContactsByQuery, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContacts(rows)
}

func (r *Repository) FetchContactByID(ctx context.Context, id domain.ID) (*domain.Contact, error) {
	c := new(Contact)
	err := r.db.QueryRow(ctx, SelectContactByID, int64(id)).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Birthday,
		&c.AdditionalData,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) CreateContact(ctx context.Context, req domain.Contact) (*domain.Contact, error) {
	c := new(Contact)

	err := r.db.QueryRow(
		ctx,
		InsertContact,
		req.FirstName, req.LastName, req.Email, req.Phone, req.Birthday, req.AdditionalData,
	).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Birthday,
		&c.AdditionalData,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) UpdateContact(ctx context.Context, req domain.Contact) (*domain.Contact, error) {
	c := new(Contact)

	err := r.db.QueryRow(ctx, UpdateContactByID,
		req.FirstName, req.LastName, req.Email, req.Phone, req.Birthday, req.AdditionalData, int64(req.ID),
	).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Birthday,
		&c.AdditionalData,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) DeleteContact(ctx context.Context, id domain.ID) (*domain.Contact, error) {
	c := new(Contact)
	err := r.db.QueryRow(ctx, DeleteContactByID, int64(id)).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Birthday,
		&c.AdditionalData,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func scanContacts(rows pgx.Rows) (domain.Contacts, error) {
	var cs Contacts
	for rows.Next() {
		c := new(Contact)

		if err := rows.Scan(
			&c.ID,
			&c.FirstName,
			&c.LastName,
			&c.Email,
			&c.Phone,
			&c.Birthday,
			&c.AdditionalData,

			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}

		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&cs), nil
}
