package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacthub-api/internal/interface/api/rest/dto/contact"
)

func validRequest() contact.Request {
	return contact.Request{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Phone:     "+420123456789",
		Birthday:  "1990-06-15",
	}
}

func strPtr(s string) *string { return &s }

func TestValidateContactOK(t *testing.T) {
	assert.Nil(t, ValidateContact(validRequest()))
}

func TestValidateContactRequiredFields(t *testing.T) {
	errs := ValidateContact(contact.Request{})
	require.NotNil(t, errs)

	for _, field := range []string{"first_name", "last_name", "email", "phone", "birthday"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateContactNameLength(t *testing.T) {
	r := validRequest()
	r.FirstName = "Jo"
	errs := ValidateContact(r)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "first_name")

	r = validRequest()
	r.FirstName = strings.Repeat("a", 50)
	assert.Nil(t, ValidateContact(r))

	r.FirstName = strings.Repeat("a", 51)
	errs = ValidateContact(r)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "first_name")

	r = validRequest()
	r.LastName = "Do"
	errs = ValidateContact(r)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "last_name")
}

func TestValidateContactPhoneLength(t *testing.T) {
	r := validRequest()
	r.Phone = "123456789" // 9 chars
	errs := ValidateContact(r)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "phone")

	r.Phone = "1234567890"
	assert.Nil(t, ValidateContact(r))

	r.Phone = strings.Repeat("1", 20)
	assert.Nil(t, ValidateContact(r))

	r.Phone = strings.Repeat("1", 21)
	errs = ValidateContact(r)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "phone")
}

func TestValidateContactEmailFormat(t *testing.T) {
	r := validRequest()
	r.Email = "not-an-email"
	errs := ValidateContact(r)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "email")
}

func TestValidateContactBirthdayFormat(t *testing.T) {
	r := validRequest()
	r.Birthday = "15.06.1990"
	errs := ValidateContact(r)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "birthday")
}

func TestValidateContactUpdateSkipsAbsentFields(t *testing.T) {
	assert.Nil(t, ValidateContactUpdate(contact.UpdateRequest{}))

	assert.Nil(t, ValidateContactUpdate(contact.UpdateRequest{
		Phone: strPtr("+420123456789"),
	}))
}

func TestValidateContactUpdateChecksPresentFields(t *testing.T) {
	errs := ValidateContactUpdate(contact.UpdateRequest{
		FirstName: strPtr("Jo"),
		Email:     strPtr("broken"),
	})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "first_name")
	assert.Contains(t, errs, "email")
	assert.NotContains(t, errs, "phone")
}

func TestValidatePagingDefaults(t *testing.T) {
	skip, limit, errs := ValidatePaging("", "")
	require.Nil(t, errs)
	assert.Equal(t, 0, skip)
	assert.Equal(t, 100, limit)
}

func TestValidatePagingBounds(t *testing.T) {
	skip, limit, errs := ValidatePaging("10", "500")
	require.Nil(t, errs)
	assert.Equal(t, 10, skip)
	assert.Equal(t, 500, limit)

	_, _, errs = ValidatePaging("-1", "")
	require.NotNil(t, errs)
	assert.Contains(t, errs, "skip")

	_, _, errs = ValidatePaging("", "0")
	require.NotNil(t, errs)
	assert.Contains(t, errs, "limit")

	_, _, errs = ValidatePaging("", "501")
	require.NotNil(t, errs)
	assert.Contains(t, errs, "limit")

	_, _, errs = ValidatePaging("abc", "xyz")
	require.NotNil(t, errs)
	assert.Contains(t, errs, "skip")
	assert.Contains(t, errs, "limit")
}

func TestValidateSearchQuery(t *testing.T) {
	q, err := ValidateSearchQuery("ann")
	require.NoError(t, err)
	assert.Equal(t, "ann", q)

	q, err = ValidateSearchQuery("  ann  ")
	require.NoError(t, err)
	assert.Equal(t, "ann", q)

	_, err = ValidateSearchQuery("ab")
	assert.Error(t, err)

	_, err = ValidateSearchQuery(" a ")
	assert.Error(t, err)
}

func TestParseContactID(t *testing.T) {
	id, err := ParseContactID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseContactID("abc")
	assert.Error(t, err)

	_, err = ParseContactID("0")
	assert.Error(t, err)

	_, err = ParseContactID("-5")
	assert.Error(t, err)
}
