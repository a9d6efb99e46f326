package contact

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "contacthub-api/internal/domain/contact"
)

var contactColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "birthday",
	"additional_data", "created_at", "updated_at",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func contactRow(mock pgxmock.PgxPoolIface, id int64, email string) *pgxmock.Rows {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	return mock.NewRows(contactColumns).AddRow(
		id, "John", "Doe", email, "+420123456789",
		time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
		(*string)(nil), now, now,
	)
}

func TestCreateContact(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	birthday := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(InsertContact).
		WithArgs("John", "Doe", "john.doe@example.com", "+420123456789", birthday, (*string)(nil)).
		WillReturnRows(contactRow(mock, 1, "john.doe@example.com"))

	c, err := repo.CreateContact(context.Background(), domain.Contact{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Phone:     "+420123456789",
		Birthday:  birthday,
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.ID(1), c.ID)
	assert.Equal(t, "john.doe@example.com", c.Email)
	assert.False(t, c.CreatedAt.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Email uniqueness is enforced by the database constraint, not by a
// lookup-then-insert check, so concurrent creates with the same email cannot
// both succeed: the second one surfaces as ErrEmailAlreadyExists.
func TestCreateContactDuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	birthday := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(InsertContact).
		WithArgs("John", "Doe", "john.doe@example.com", "+420123456789", birthday, (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "contacts_email_key"})

	c, err := repo.CreateContact(context.Background(), domain.Contact{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Phone:     "+420123456789",
		Birthday:  birthday,
	})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchContactByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(SelectContactByID).
		WithArgs(int64(7)).
		WillReturnRows(contactRow(mock, 7, "john.doe@example.com"))

	c, err := repo.FetchContactByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.ID(7), c.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchContactByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(SelectContactByID).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	c, err := repo.FetchContactByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, c)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchContactsPaging(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	rows := mock.NewRows(contactColumns).
		AddRow(int64(1), "John", "Doe", "john@example.com", "+420123456789",
			time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
			(*string)(nil), time.Now().UTC(), time.Now().UTC()).
		AddRow(int64(2), "Jane", "Roe", "jane@example.com", "+420987654321",
			time.Date(1992, time.March, 3, 0, 0, 0, 0, time.UTC),
			(*string)(nil), time.Now().UTC(), time.Now().UTC())

	mock.ExpectQuery(SelectContacts).
		WithArgs(0, 2).
		WillReturnRows(rows)

	cs, err := repo.FetchContacts(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, domain.ID(1), cs[0].ID)
	assert.Equal(t, domain.ID(2), cs[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchContactsPattern(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(SearchContactsByQuery).
		WithArgs("%ann%").
		WillReturnRows(contactRow(mock, 3, "anna@example.com"))

	cs, err := repo.SearchContacts(context.Background(), "ann")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "anna@example.com", cs[0].Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchContactsNoMatches(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(SearchContactsByQuery).
		WithArgs("%zzz%").
		WillReturnRows(mock.NewRows(contactColumns))

	cs, err := repo.SearchContacts(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, cs)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContactDuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	birthday := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(UpdateContactByID).
		WithArgs("John", "Doe", "taken@example.com", "+420123456789", birthday, (*string)(nil), int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "contacts_email_key"})

	c, err := repo.UpdateContact(context.Background(), domain.Contact{
		ID:        1,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "taken@example.com",
		Phone:     "+420123456789",
		Birthday:  birthday,
	})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteContact(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(DeleteContactByID).
		WithArgs(int64(1)).
		WillReturnRows(contactRow(mock, 1, "john.doe@example.com"))

	c, err := repo.DeleteContact(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.ID(1), c.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteContactNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(DeleteContactByID).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	c, err := repo.DeleteContact(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, c)

	assert.NoError(t, mock.ExpectationsWereMet())
}
