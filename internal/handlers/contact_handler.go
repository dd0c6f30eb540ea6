package handlers

import (
	"errors"
	"log"

	"contactboard/internal/repositories"
	"contactboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles HTTP requests for contacts.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: newValidate(),
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	contactRoutes := router.Group("/contacts")
	// /groups must come before /:id, Fiber matches in registration order.
	contactRoutes.Get("/groups", h.HandleGetGroups)
	contactRoutes.Get("/", h.HandleListContacts)
	contactRoutes.Get("/:id", h.HandleGetContactByID)
	contactRoutes.Post("/", h.HandleCreateContact)
	contactRoutes.Put("/:id", h.HandleUpdateContact)
	contactRoutes.Delete("/:id", h.HandleDeleteContact)
}

// HandleListContacts retrieves contacts with optional search, group filter,
// and sort query parameters.
func (h *ContactHandler) HandleListContacts(c *fiber.Ctx) error {
	q := repositories.ListQuery{
		Search: c.Query("search"),
		Group:  c.Query("group"),
		Sort:   c.Query("sort"),
	}
	contacts, err := h.service.ListContacts(q)
	if err != nil {
		log.Printf("Error listing contacts: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch contacts")
	}
	return c.JSON(contacts)
}

// HandleGetGroups returns the sorted set of distinct group values in use.
func (h *ContactHandler) HandleGetGroups(c *fiber.Ctx) error {
	groups, err := h.service.ContactGroups()
	if err != nil {
		log.Printf("Error listing contact groups: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch groups")
	}
	return c.JSON(groups)
}

// HandleGetContactByID retrieves a single contact by its ID.
func (h *ContactHandler) HandleGetContactByID(c *fiber.Ctx) error {
	id := c.Params("id")
	contact, err := h.service.GetContactByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Contact not found")
		}
		log.Printf("Error getting contact %s: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch contact")
	}
	return c.JSON(contact)
}

// HandleCreateContact validates the request body and creates a new contact.
func (h *ContactHandler) HandleCreateContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.normalize()
	if err := h.validate.Struct(&req); err != nil {
		return respondValidationFailed(c, validationDetails(err, contactMessages))
	}

	contact := req.toModel()
	if err := h.service.CreateContact(contact); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			// Duplicates are reported as a plain 400, not 409.
			return respondError(c, fiber.StatusBadRequest, "A contact with this email already exists")
		}
		log.Printf("Error creating contact: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to create contact")
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

// HandleUpdateContact replaces every editable field of an existing contact.
func (h *ContactHandler) HandleUpdateContact(c *fiber.Ctx) error {
	id := c.Params("id")
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.normalize()
	if err := h.validate.Struct(&req); err != nil {
		return respondValidationFailed(c, validationDetails(err, contactMessages))
	}

	contact, err := h.service.UpdateContact(id, req.toModel())
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "Contact not found")
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return respondError(c, fiber.StatusBadRequest, "A contact with this email already exists")
		}
		log.Printf("Error updating contact %s: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to update contact")
	}
	return c.JSON(contact)
}

// HandleDeleteContact removes a contact by its ID.
func (h *ContactHandler) HandleDeleteContact(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteContact(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Contact not found")
		}
		log.Printf("Error deleting contact %s: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete contact")
	}
	return c.JSON(fiber.Map{
		"message": "Contact deleted successfully",
	})
}
