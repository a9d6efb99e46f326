package contact

type (
	// Request is the create payload. All business fields are mandatory;
	// the validator enforces that.
	Request struct {
		FirstName      string  `json:"first_name"`
		LastName       string  `json:"last_name"`
		Email          string  `json:"email"`
		Phone          string  `json:"phone"`
		Birthday       string  `json:"birthday"`
		AdditionalData *string `json:"additional_data"`
	}

	// UpdateRequest is the partial-update payload. Absent fields stay
	// untouched on the stored record.
	UpdateRequest struct {
		FirstName      *string `json:"first_name"`
		LastName       *string `json:"last_name"`
		Email          *string `json:"email"`
		Phone          *string `json:"phone"`
		Birthday       *string `json:"birthday"`
		AdditionalData *string `json:"additional_data"`
	}
)
