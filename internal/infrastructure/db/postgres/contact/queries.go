package contact

const (
	SelectContacts = `
		SELECT id, first_name, last_name, email, phone, birthday, additional_data, created_at, updated_at
		FROM contacts
		ORDER BY id
		LIMIT $2 OFFSET $1
	`
	SelectAllContacts = `
		SELECT id, first_name, last_name, email, phone, birthday, additional_data, created_at, updated_at
		FROM contacts
	`
	SelectContactByID = `
		SELECT id, first_name, last_name, email, phone, birthday, additional_data, created_at, updated_at
		FROM contacts
		WHERE id = $1
	`
	SearchContactsByQuery = `
		SELECT id, first_name, last_name, email, phone, birthday, additional_data, created_at, updated_at
		FROM contacts
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
		ORDER BY id
	`
	InsertContact = `
		INSERT INTO contacts (first_name, last_name, email, phone, birthday, additional_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, first_name, last_name, email, phone, birthday, additional_data, created_at, updated_at
	`
	UpdateContactByID = `
		UPDATE contacts
		SET first_name = $1,
		    last_name = $2,
		    email = $3,
		    phone = $4,
		    birthday = $5,
		    additional_data = $6,
		    updated_at = now()
		WHERE id = $7
		RETURNING
		  id, first_name, last_name, email, phone, birthday, additional_data, created_at, updated_at
	`
	DeleteContactByID = `
		DELETE FROM contacts
		WHERE id = $1
		RETURNING
		  id, first_name, last_name, email, phone, birthday, additional_data, created_at, updated_at
	`
)
