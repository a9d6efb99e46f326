package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"contacthub-api/internal/application/ports"
	domain "contacthub-api/internal/domain/contact"
	"contacthub-api/internal/infrastructure/mq"
	"contacthub-api/internal/interface/api/rest/dto/contact"
)

// birthdayWindowDays is the lookahead for the upcoming-birthdays query.
const birthdayWindowDays = 7

type ContactService struct {
	contactRepository domain.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewContactService(
	contactRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ContactService {
	return &ContactService{
		contactRepository: contactRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (cs *ContactService) FindContactByID(ctx context.Context, id domain.ID) (*domain.Contact, error) {
	c, err := cs.contactRepository.FetchContactByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (cs *ContactService) FindContacts(ctx context.Context, skip, limit int) (domain.Contacts, error) {
	contacts, err := cs.contactRepository.FetchContacts(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

func (cs *ContactService) SearchContacts(ctx context.Context, query string) (domain.Contacts, error) {
	contacts, err := cs.contactRepository.SearchContacts(ctx, query)
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

// FindUpcomingBirthdays loads the full record set and keeps contacts whose
// next birthday falls within the 7-day window starting today. O(n) over the
// contact list.
func (cs *ContactService) FindUpcomingBirthdays(ctx context.Context) (domain.Contacts, error) {
	contacts, err := cs.contactRepository.FetchAllContacts(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	upcoming := make(domain.Contacts, 0, len(contacts))
	for _, c := range contacts {
		if domain.BirthdayWithinDays(c.Birthday, today, birthdayWindowDays) {
			upcoming = append(upcoming, c)
		}
	}

	return upcoming, nil
}

func (cs *ContactService) CreateContact(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	cRet, err := cs.contactRepository.CreateContact(ctx, c)
	if err != nil {
		return nil, err
	}

	if cRet != nil {
		cs.mq.GetInputChan() <- mq.Event{
			Id:        uuid.New(),
			TS:        time.Now(),
			Method:    http.MethodPost,
			ContactID: int64(cRet.ID),
			Payload:   contact.ToResponseContact(*cRet),
		}
	}

	cs.mCounter.WithLabelValues("contact_created_total").Inc()

	return cRet, nil
}

// UpdateContact applies the supplied fields of patch on top of the stored
// record and persists the result. Returns nil if the contact is absent.
func (cs *ContactService) UpdateContact(ctx context.Context, id domain.ID, patch domain.Update) (*domain.Contact, error) {
	existing, err := cs.contactRepository.FetchContactByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	patch.Apply(existing)

	cRet, err := cs.contactRepository.UpdateContact(ctx, *existing)
	if err != nil {
		return nil, err
	}

	if cRet != nil {
		cs.mq.GetInputChan() <- mq.Event{
			Id:        uuid.New(),
			TS:        time.Now(),
			Method:    http.MethodPut,
			ContactID: int64(cRet.ID),
			Payload:   contact.ToResponseContact(*cRet),
		}
	}

	cs.mCounter.WithLabelValues("contact_updated_total").Inc()

	return cRet, nil
}

func (cs *ContactService) DeleteContact(ctx context.Context, id domain.ID) (*domain.Contact, error) {
	c, err := cs.contactRepository.DeleteContact(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	cs.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Method:    http.MethodDelete,
		ContactID: int64(c.ID),
		Payload:   contact.ToResponseContact(*c),
	}

	cs.mCounter.WithLabelValues("contact_deleted_total").Inc()

	return c, nil
}
