package contact

import (
	"errors"
	"strings"
	"time"

	domain "contacthub-api/internal/domain/contact"
)

// birthdayLayout is the wire format for the birthday field: a calendar date
// without a time component.
const birthdayLayout = "2006-01-02"

func ToResponseContact(cDomain domain.Contact) Contact {
	var c = Contact{
		ID:             int64(cDomain.ID),
		FirstName:      cDomain.FirstName,
		LastName:       cDomain.LastName,
		Email:          cDomain.Email,
		Phone:          cDomain.Phone,
		Birthday:       cDomain.Birthday.Format(birthdayLayout),
		AdditionalData: cDomain.AdditionalData,
	}

	return c
}

func ToResponseContacts(csDomain domain.Contacts) Contacts {
	cs := make(Contacts, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponseContact(*c)
	}

	return cs
}

func ToDomainContact(cRequest Request) (domain.Contact, error) {
	d, err := time.Parse(birthdayLayout, cRequest.Birthday)
	if err != nil {
		return domain.Contact{}, errors.New("invalid birthday format, want YYYY-MM-DD")
	}

	var c = domain.Contact{
		FirstName:      strings.TrimSpace(cRequest.FirstName),
		LastName:       strings.TrimSpace(cRequest.LastName),
		Email:          normalizeEmail(cRequest.Email),
		Phone:          strings.TrimSpace(cRequest.Phone),
		Birthday:       d,
		AdditionalData: cRequest.AdditionalData,
	}

	return c, nil
}

func ToDomainUpdate(cRequest UpdateRequest) (domain.Update, error) {
	var u domain.Update

	if cRequest.FirstName != nil {
		v := strings.TrimSpace(*cRequest.FirstName)
		u.FirstName = &v
	}
	if cRequest.LastName != nil {
		v := strings.TrimSpace(*cRequest.LastName)
		u.LastName = &v
	}
	if cRequest.Email != nil {
		v := normalizeEmail(*cRequest.Email)
		u.Email = &v
	}
	if cRequest.Phone != nil {
		v := strings.TrimSpace(*cRequest.Phone)
		u.Phone = &v
	}
	if cRequest.Birthday != nil {
		d, err := time.Parse(birthdayLayout, *cRequest.Birthday)
		if err != nil {
			return domain.Update{}, errors.New("invalid birthday format, want YYYY-MM-DD")
		}
		u.Birthday = &d
	}
	if cRequest.AdditionalData != nil {
		u.AdditionalData = cRequest.AdditionalData
	}

	return u, nil
}

// normalizeEmail lowercases the address so email uniqueness is
// case-insensitive end to end.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
