package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contacthub-api/internal/application/ports"
	domain "contacthub-api/internal/domain/contact"
	contactDB "contacthub-api/internal/infrastructure/db/postgres/contact"
	"contacthub-api/internal/interface/api/rest/dto/contact"
	"contacthub-api/internal/interface/api/rest/validator"
)

type ContactController struct {
	contactService ports.ContactService
	logger         *zap.Logger
}

func NewContactController(
	r *gin.Engine,
	contactService ports.ContactService,
	logger *zap.Logger,
) *ContactController {
	cc := &ContactController{
		contactService: contactService,
		logger:         logger,
	}

	r.GET(RouteContacts, cc.GetContactsHandler)
	r.GET(RouteContactSearch, cc.SearchContactsHandler)
	r.GET(RouteContactBirthdays, cc.GetUpcomingBirthdaysHandler)
	r.GET(RouteContact, cc.GetContactHandler)
	r.POST(RouteContacts, cc.CreateContactHandler)
	r.PUT(RouteContact, cc.UpdateContactHandler)
	r.DELETE(RouteContact, cc.DeleteContactHandler)

	return cc
}

func (cc *ContactController) GetContactsHandler(c *gin.Context) {
	skip, limit, errs := validator.ValidatePaging(c.Query("skip"), c.Query("limit"))
	if errs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid paging parameters",
			"details": errs,
		})
		return
	}

	contacts, err := cc.contactService.FindContacts(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get contacts"},
		)
		cc.logger.Error("FindContacts() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, contact.ResponseData{
		Data: contact.ToResponseContacts(contacts),
	})
}

func (cc *ContactController) SearchContactsHandler(c *gin.Context) {
	query, err := validator.ValidateSearchQuery(c.Query("query"))
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			gin.H{"error": err.Error()},
		)
		return
	}

	contacts, err := cc.contactService.SearchContacts(c.Request.Context(), query)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to search contacts"},
		)
		cc.logger.Error("SearchContacts() error", zap.Error(err))
		return
	}

	// Zero matches is a NotFound, matching the reference behavior of the
	// search endpoint.
	if len(contacts) == 0 {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "no contacts found matching '" + query + "'"},
		)
		return
	}

	c.JSON(http.StatusOK, contact.ResponseData{
		Data: contact.ToResponseContacts(contacts),
	})
}

func (cc *ContactController) GetUpcomingBirthdaysHandler(c *gin.Context) {
	contacts, err := cc.contactService.FindUpcomingBirthdays(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get upcoming birthdays"},
		)
		cc.logger.Error("FindUpcomingBirthdays() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, contact.ResponseData{
		Data: contact.ToResponseContacts(contacts),
	})
}

func (cc *ContactController) GetContactHandler(c *gin.Context) {
	id, err := validator.ParseContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	ct, err := cc.contactService.FindContactByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a contact"},
		)
		cc.logger.Error("FindContactByID() error", zap.Error(err))
		return
	}

	if ct == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	c.JSON(http.StatusOK, contact.ToResponseContact(*ct))
}

func (cc *ContactController) CreateContactHandler(c *gin.Context) {
	var req contact.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateContact(req); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cDomain, err := contact.ToDomainContact(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	ct, err := cc.contactService.CreateContact(c.Request.Context(), cDomain)
	if err != nil {
		if errors.Is(err, contactDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a contact"},
		)
		cc.logger.Error("CreateContact() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, contact.ToResponseContact(*ct))
}

func (cc *ContactController) UpdateContactHandler(c *gin.Context) {
	id, err := validator.ParseContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	var req contact.UpdateRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateContactUpdate(req); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	patch, err := contact.ToDomainUpdate(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	ct, err := cc.contactService.UpdateContact(c.Request.Context(), domain.ID(id), patch)
	if err != nil {
		if errors.Is(err, contactDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a contact"},
		)
		cc.logger.Error("UpdateContact() error", zap.Error(err))
		return
	}

	if ct == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	c.JSON(http.StatusOK, contact.ToResponseContact(*ct))
}

func (cc *ContactController) DeleteContactHandler(c *gin.Context) {
	id, err := validator.ParseContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	ct, err := cc.contactService.DeleteContact(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete contact"},
		)
		cc.logger.Error("DeleteContact() error", zap.Error(err))
		return
	}

	if ct == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	c.Status(http.StatusNoContent)
}
