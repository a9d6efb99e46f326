package contact

import (
	domain "contacthub-api/internal/domain/contact"
)

func fromDBModel(model *Contact) *domain.Contact {
	var c = &domain.Contact{
		ID:             domain.ID(model.ID),
		FirstName:      model.FirstName,
		LastName:       model.LastName,
		Email:          model.Email,
		Phone:          model.Phone,
		Birthday:       model.Birthday,
		AdditionalData: model.AdditionalData,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return c
}

func fromDBModels(models *Contacts) domain.Contacts {
	cs := make(domain.Contacts, len(*models))
	for idx, c := range *models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}
