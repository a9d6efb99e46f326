package contact

type (
	Contact struct {
		ID             int64   `json:"id"`
		FirstName      string  `json:"first_name"`
		LastName       string  `json:"last_name"`
		Email          string  `json:"email"`
		Phone          string  `json:"phone"`
		Birthday       string  `json:"birthday"`
		AdditionalData *string `json:"additional_data,omitempty"`
	}
	Contacts     []Contact
	ResponseData struct {
		Data Contacts `json:"data"`
	}
)
