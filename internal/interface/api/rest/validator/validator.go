package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"contacthub-api/internal/interface/api/rest/dto/contact"
)

const (
	minNameLen  = 3
	maxNameLen  = 50
	minPhoneLen = 10
	maxPhoneLen = 20
	minQueryLen = 3

	defaultSkip  = 0
	defaultLimit = 100
	maxLimit     = 500
)

// ParseContactID accepts the path parameter; anything that is not a positive
// integer is treated as an unknown contact.
func ParseContactID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("contact_id must be a positive integer")
	}
	return id, nil
}

// ValidatePaging checks the skip/limit query parameters. Out-of-range values
// are rejected, never clamped.
func ValidatePaging(skipStr, limitStr string) (int, int, map[string]string) {
	errs := make(map[string]string)

	skip := defaultSkip
	if skipStr != "" {
		v, err := strconv.Atoi(skipStr)
		if err != nil || v < 0 {
			errs["skip"] = "skip must be an integer >= 0"
		} else {
			skip = v
		}
	}

	limit := defaultLimit
	if limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v < 1 || v > maxLimit {
			errs["limit"] = "limit must be an integer between 1 and 500"
		} else {
			limit = v
		}
	}

	if len(errs) == 0 {
		return skip, limit, nil
	}
	return 0, 0, errs
}

func ValidateSearchQuery(query string) (string, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < minQueryLen {
		return "", errors.New("query must be at least 3 characters")
	}
	return q, nil
}

// ValidateContact checks the create payload: every business field is
// mandatory.
func ValidateContact(r contact.Request) map[string]string {
	errs := make(map[string]string)

	first := strings.TrimSpace(r.FirstName)
	last := strings.TrimSpace(r.LastName)
	email := strings.ToLower(strings.TrimSpace(r.Email))
	phone := strings.TrimSpace(r.Phone)
	bday := strings.TrimSpace(r.Birthday)

	if first == "" {
		errs["first_name"] = "first_name is required"
	} else if msg := checkName(first); msg != "" {
		errs["first_name"] = "first_name " + msg
	}

	if last == "" {
		errs["last_name"] = "last_name is required"
	} else if msg := checkName(last); msg != "" {
		errs["last_name"] = "last_name " + msg
	}

	if email == "" {
		errs["email"] = "email is required"
	} else if msg := checkEmail(email); msg != "" {
		errs["email"] = msg
	}

	if phone == "" {
		errs["phone"] = "phone is required"
	} else if msg := checkPhone(phone); msg != "" {
		errs["phone"] = msg
	}

	if bday == "" {
		errs["birthday"] = "birthday is required"
	} else if msg := checkBirthday(bday); msg != "" {
		errs["birthday"] = msg
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateContactUpdate checks the partial-update payload: the same
// constraints as on create, applied only to the fields that are present.
func ValidateContactUpdate(r contact.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.FirstName != nil {
		if msg := checkName(strings.TrimSpace(*r.FirstName)); msg != "" {
			errs["first_name"] = "first_name " + msg
		}
	}
	if r.LastName != nil {
		if msg := checkName(strings.TrimSpace(*r.LastName)); msg != "" {
			errs["last_name"] = "last_name " + msg
		}
	}
	if r.Email != nil {
		if msg := checkEmail(strings.ToLower(strings.TrimSpace(*r.Email))); msg != "" {
			errs["email"] = msg
		}
	}
	if r.Phone != nil {
		if msg := checkPhone(strings.TrimSpace(*r.Phone)); msg != "" {
			errs["phone"] = msg
		}
	}
	if r.Birthday != nil {
		if msg := checkBirthday(strings.TrimSpace(*r.Birthday)); msg != "" {
			errs["birthday"] = msg
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func checkName(s string) string {
	if l := utf8.RuneCountInString(s); l < minNameLen || l > maxNameLen {
		return "length must be 3-50 characters"
	}
	return ""
}

func checkEmail(s string) string {
	if _, err := mail.ParseAddress(s); err != nil {
		return "invalid email format"
	}
	return ""
}

func checkPhone(s string) string {
	if l := utf8.RuneCountInString(s); l < minPhoneLen || l > maxPhoneLen {
		return "phone length must be 10-20 characters"
	}
	return ""
}

func checkBirthday(s string) string {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "must be YYYY-MM-DD"
	}
	return ""
}
